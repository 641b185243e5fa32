package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// Snapshot is the JSON interchange form of the progress state. Its keys
// match the records of the key-value store, so a dump of the browser app's
// localStorage can be imported directly.
type Snapshot struct {
	ChantData     LogField `json:"chantData"`
	TargetType    string   `json:"targetType,omitempty"`
	DailyTarget   *FlexInt `json:"dailyTarget,omitempty"`
	MonthlyTarget *FlexInt `json:"monthlyTarget,omitempty"`
	YearlyTarget  *FlexInt `json:"yearlyTarget,omitempty"`
}

// LogField accepts the daily log either as a JSON object or as a string
// holding a JSON object (localStorage stores values as strings).
type LogField map[string]int

func (f *LogField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("chantData: %w", err)
	}
	*f = m
	return nil
}

// FlexInt accepts a JSON number or a string holding an integer.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", s)
		}
		*n = FlexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

// LoadSnapshot reads and decodes a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// DecodeSnapshot decodes a snapshot from r.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &s, nil
}

// NewSnapshot builds the export form of a log and target.
func NewSnapshot(log domain.DailyLog, t domain.Target) *Snapshot {
	daily, monthly, yearly := FlexInt(t.Daily), FlexInt(t.Monthly), FlexInt(t.Yearly)
	return &Snapshot{
		ChantData:     LogField(log.Clone()),
		TargetType:    string(t.Mode),
		DailyTarget:   &daily,
		MonthlyTarget: &monthly,
		YearlyTarget:  &yearly,
	}
}

// Encode writes the snapshot as indented JSON.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
