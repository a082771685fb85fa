package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartInDark(t *testing.T) {
	require.False(t, startInDark(Options{}))
	require.False(t, startInDark(Options{Theme: "light"}))
	require.False(t, startInDark(Options{Theme: "solarized"}))
	require.True(t, startInDark(Options{Dark: true}))
	require.True(t, startInDark(Options{Theme: "dark"}))
	require.True(t, startInDark(Options{Theme: "Dark"}))
	require.True(t, startInDark(Options{Theme: "light", Dark: true}))
}

func TestRunHelp(t *testing.T) {
	require.Equal(t, 0, Run([]string{"help"}, Options{}))
}

func TestRunUnknownSubcommand(t *testing.T) {
	require.Equal(t, 2, Run([]string{"frobnicate"}, Options{}))
}

func TestRunReplayUsage(t *testing.T) {
	require.Equal(t, 2, Run([]string{"replay"}, Options{}))
	require.Equal(t, 2, Run([]string{"replay", "a.json", "b.json"}, Options{}))
}

func TestRunReplayMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	require.Equal(t, 1, Run([]string{"replay", missing}, Options{}))
}

func TestRunReplayScript(t *testing.T) {
	p := filepath.Join(t.TempDir(), "script.json")
	script := `[{"type": "increment"}, {"type": "addTodo", "title": "Buy milk"}]`
	require.NoError(t, os.WriteFile(p, []byte(script), 0o644))

	out := captureStdout(t, func() {
		require.Equal(t, 0, Run([]string{"replay", p}, Options{}))
	})
	require.Contains(t, out, `"value": 1`)
	require.Contains(t, out, "Buy milk")
	require.Contains(t, out, "replayed 2 transitions")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}
