package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against a temp deck, database
// and state dir, returning stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args,
		"--cards", filepath.Join(dir, "deck.csv"),
		"--db", filepath.Join(dir, "history.db"),
	))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFirstRunCreatesSampleDeck(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created a sample deck")
	assert.FileExists(t, filepath.Join(dir, "deck.csv"))
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.csv"), []byte("Question,Answer\n"), 0o644))

	out, err := execute(t, dir, "add", "Capital of Japan?", "Tokyo")
	require.NoError(t, err)
	assert.Contains(t, out, "Added to")

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Capital of Japan?")
	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "1 cards")
}

func TestAddRejectsEmptySide(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.csv"), []byte("Question,Answer\n"), 0o644))

	_, err := execute(t, dir, "add", "Capital of Japan?", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answer")
}

func TestHistoryAndStatsOnEmptyDatabase(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No history yet.")

	out, err = execute(t, dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions:      0")
	assert.NotContains(t, out, "Card generation")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "flashdeck "), out)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer question", 10, "a longe..."},
		{"日本の首都はどこ", 5, "日本..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.n), "truncate(%q, %d)", tt.in, tt.n)
	}
}
