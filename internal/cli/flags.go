package cli

import (
	"strings"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/spf13/pflag"
)

// targetModeValue is a pflag.Value accepting daily, monthly or yearly.
type targetModeValue struct {
	mode *domain.TargetMode
}

var _ pflag.Value = (*targetModeValue)(nil)

func newTargetModeValue(def domain.TargetMode, p *domain.TargetMode) *targetModeValue {
	*p = def
	return &targetModeValue{mode: p}
}

func (v *targetModeValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

func (v *targetModeValue) Set(s string) error {
	m, err := domain.ParseTargetMode(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func (v *targetModeValue) Type() string {
	return "mode"
}

// dateFlag registers the shared --date flag.
func dateFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "date", "", "Date as YYYY-MM-DD (default today)")
}
