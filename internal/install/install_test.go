package install

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	accepted bool
	accepts  int
}

func (m *memStore) Accepted(context.Context) (bool, error) { return m.accepted, nil }
func (m *memStore) Accept(context.Context) error {
	m.accepted = true
	m.accepts++
	return nil
}

type stubPrompter struct {
	available bool
	outcome   Outcome
	err       error
	prompts   int
}

func (s *stubPrompter) Available() bool { return s.available }
func (s *stubPrompter) Prompt(context.Context) (Outcome, error) {
	s.prompts++
	return s.outcome, s.err
}

func TestOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted is recorded", func(t *testing.T) {
		store := &memStore{}
		p := &stubPrompter{available: true, outcome: Accepted}
		got, err := Offer(ctx, p, store)
		require.NoError(t, err)
		assert.Equal(t, Accepted, got)
		assert.True(t, store.accepted)
	})

	t.Run("dismissed is not recorded", func(t *testing.T) {
		store := &memStore{}
		got, err := Offer(ctx, &stubPrompter{available: true, outcome: Dismissed}, store)
		require.NoError(t, err)
		assert.Equal(t, Dismissed, got)
		assert.False(t, store.accepted)
	})

	t.Run("already accepted skips the prompt", func(t *testing.T) {
		store := &memStore{accepted: true}
		p := &stubPrompter{available: true, outcome: Dismissed}
		got, err := Offer(ctx, p, store)
		require.NoError(t, err)
		assert.Equal(t, Accepted, got)
		assert.Zero(t, p.prompts)
		assert.Zero(t, store.accepts)
	})

	t.Run("unavailable", func(t *testing.T) {
		got, err := Offer(ctx, &stubPrompter{}, &memStore{})
		require.NoError(t, err)
		assert.Equal(t, Unavailable, got)
	})

	t.Run("prompt error", func(t *testing.T) {
		_, err := Offer(ctx, &stubPrompter{available: true, err: errors.New("tty closed")}, &memStore{})
		assert.Error(t, err)
	})
}

func TestCompletionInstaller_WritesScriptAfterConfirm(t *testing.T) {
	root := &cobra.Command{Use: "chant"}
	dir := filepath.Join(t.TempDir(), "completions")
	var asked string
	c := &CompletionInstaller{
		Root:  root,
		Shell: "zsh",
		Dir:   dir,
		Confirm: func(_ context.Context, q string) (bool, error) {
			asked = q
			return true, nil
		},
	}
	require.True(t, c.Available())
	assert.Equal(t, filepath.Join(dir, "_chant"), c.Path())

	got, err := c.Prompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Accepted, got)
	assert.Contains(t, asked, "zsh completion")

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "chant")
}

func TestCompletionInstaller_Declined(t *testing.T) {
	dir := t.TempDir()
	c := &CompletionInstaller{
		Root:    &cobra.Command{Use: "chant"},
		Shell:   "bash",
		Dir:     dir,
		Confirm: func(context.Context, string) (bool, error) { return false, nil },
	}
	got, err := c.Prompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Dismissed, got)
	_, err = os.Stat(c.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestCompletionInstaller_UnsupportedShell(t *testing.T) {
	c := &CompletionInstaller{Root: &cobra.Command{Use: "chant"}, Shell: "tcsh", Dir: t.TempDir()}
	assert.False(t, c.Available())
	got, err := c.Prompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Unavailable, got)
}

func TestGenerateCompletion(t *testing.T) {
	root := &cobra.Command{Use: "chant"}
	var buf bytes.Buffer
	require.NoError(t, GenerateCompletion(root, "fish", &buf))
	assert.Contains(t, buf.String(), "chant")
	assert.ErrorIs(t, GenerateCompletion(root, "tcsh", &buf), ErrUnsupportedShell)
}

func TestDetectShellAndDefaultDir(t *testing.T) {
	assert.Equal(t, "zsh", DetectShell("/usr/bin/zsh"))
	assert.Equal(t, "", DetectShell(""))
	assert.Equal(t, filepath.Join("/home/a", ".config", "fish", "completions"), DefaultDir("fish", "/home/a"))
	assert.Equal(t, "", DefaultDir("tcsh", "/home/a"))
	assert.Equal(t, "", DefaultDir("bash", ""))
}
