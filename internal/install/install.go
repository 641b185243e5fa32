// Package install offers to install the shell integration (completion
// script) for the chant command.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type Outcome string

const (
	Accepted    Outcome = "accepted"
	Dismissed   Outcome = "dismissed"
	Unavailable Outcome = "unavailable"
)

// Prompter offers installation to the user.
type Prompter interface {
	Available() bool
	Prompt(ctx context.Context) (Outcome, error)
}

// Store persists whether the offer was accepted.
type Store interface {
	Accepted(ctx context.Context) (bool, error)
	Accept(ctx context.Context) error
}

// Offer prompts unless the offer was already accepted and records an
// acceptance. Dismissals are not recorded, so the offer comes back.
func Offer(ctx context.Context, p Prompter, store Store) (Outcome, error) {
	done, err := store.Accepted(ctx)
	if err != nil {
		return "", err
	}
	if done {
		return Accepted, nil
	}
	if !p.Available() {
		return Unavailable, nil
	}

	outcome, err := p.Prompt(ctx)
	if err != nil {
		return "", err
	}
	if outcome == Accepted {
		if err := store.Accept(ctx); err != nil {
			return "", fmt.Errorf("recording install: %w", err)
		}
	}
	return outcome, nil
}

var ErrUnsupportedShell = errors.New("unsupported shell")

// CompletionInstaller writes the cobra completion script for Shell into
// Dir once Confirm agrees.
type CompletionInstaller struct {
	Root    *cobra.Command
	Shell   string
	Dir     string
	Confirm func(ctx context.Context, question string) (bool, error)
}

// Available reports whether the shell is supported and a target directory
// is known.
func (c *CompletionInstaller) Available() bool {
	_, ok := scriptNames[c.Shell]
	return ok && c.Dir != "" && c.Root != nil
}

// Path is where the completion script is written.
func (c *CompletionInstaller) Path() string {
	name, ok := scriptNames[c.Shell]
	if !ok {
		return c.Dir
	}
	return filepath.Join(c.Dir, fmt.Sprintf(name, c.Root.Name()))
}

func (c *CompletionInstaller) Prompt(ctx context.Context) (Outcome, error) {
	if !c.Available() {
		return Unavailable, nil
	}
	if c.Confirm != nil {
		ok, err := c.Confirm(ctx, fmt.Sprintf("Install %s completion to %s?", c.Shell, c.Path()))
		if err != nil {
			return "", err
		}
		if !ok {
			return Dismissed, nil
		}
	}
	if err := c.write(); err != nil {
		return "", err
	}
	return Accepted, nil
}

func (c *CompletionInstaller) write() error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating completion directory: %w", err)
	}
	f, err := os.Create(c.Path())
	if err != nil {
		return fmt.Errorf("creating completion script: %w", err)
	}
	if err := GenerateCompletion(c.Root, c.Shell, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var scriptNames = map[string]string{
	"bash": "%s",
	"zsh":  "_%s",
	"fish": "%s.fish",
}

// GenerateCompletion writes root's completion script for shell to w.
func GenerateCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	default:
		return fmt.Errorf("%q: %w", shell, ErrUnsupportedShell)
	}
}

// DetectShell returns the base name of a $SHELL value.
func DetectShell(shellEnv string) string {
	if shellEnv == "" {
		return ""
	}
	return filepath.Base(shellEnv)
}

// DefaultDir is the per-user completion directory each shell loads from.
func DefaultDir(shell, home string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case "bash":
		return filepath.Join(home, ".local", "share", "bash-completion", "completions")
	case "zsh":
		return filepath.Join(home, ".zsh", "completions")
	case "fish":
		return filepath.Join(home, ".config", "fish", "completions")
	default:
		return ""
	}
}
