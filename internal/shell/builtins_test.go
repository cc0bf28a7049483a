package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smallsh/internal/history"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestChangeDirectoryWithArgument(t *testing.T) {
	chdirTemp(t)
	s, _ := newTestShell(t)
	dir := t.TempDir()

	require.NoError(t, s.Execute("cd "+dir))

	wd, err := os.Getwd()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, wd)
}

func TestChangeDirectoryBareGoesHome(t *testing.T) {
	chdirTemp(t)
	s, _ := newTestShell(t)
	s.cfg.HomeDir = t.TempDir()

	require.NoError(t, s.Execute("cd"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(s.cfg.HomeDir)
	require.NoError(t, err)
	assert.Equal(t, want, wd)
}

func TestChangeDirectoryErrors(t *testing.T) {
	s, _ := newTestShell(t)

	assert.ErrorContains(t, s.Execute("cd a b"), "too many arguments")
	assert.Error(t, s.Execute("cd /definitely/not/a/dir"))
}

func TestStatusBuiltinDefaultAndIdempotence(t *testing.T) {
	s, out := newTestShell(t)

	// Before any foreground command the outcome is defined as exit 0.
	require.NoError(t, s.Execute("status"))
	require.NoError(t, s.Execute("status"))
	assert.Equal(t, "exit value 0\nexit value 0\n", out.String())
}

func TestStatusBuiltinReflectsLastForeground(t *testing.T) {
	s, out := newTestShell(t)

	require.NoError(t, s.Execute("false"))
	out.Reset()
	require.NoError(t, s.Execute("status"))
	assert.Equal(t, "exit value 1\n", out.String())

	// A background job in between must not change the report.
	out.Reset()
	require.NoError(t, s.Execute("sleep 30 &"))
	out.Reset()
	require.NoError(t, s.Execute("status"))
	assert.Equal(t, "exit value 1\n", out.String())
}

func TestStatusBuiltinRejectsArguments(t *testing.T) {
	s, _ := newTestShell(t)
	assert.ErrorContains(t, s.Execute("status now"), "takes no arguments")
}

func TestBuiltinsIgnoreBackgroundMarker(t *testing.T) {
	s, out := newTestShell(t)

	require.NoError(t, s.Execute("status &"))
	assert.Equal(t, "exit value 0\n", out.String())
	assert.Zero(t, s.jobs.Len())
}

func TestJobsBuiltin(t *testing.T) {
	s, out := newTestShell(t)
	// Synthetic pid: drop it before the KillAll cleanup can signal it.
	t.Cleanup(func() { s.jobs.jobs = nil })
	require.NoError(t, s.jobs.Add(4242, "sleep 30"))

	require.NoError(t, s.Execute("jobs"))
	assert.Equal(t, "[4242] Running\tsleep 30\n", out.String())
}

func TestHistoryBuiltin(t *testing.T) {
	s, out := newTestShell(t)
	hist, err := history.New(filepath.Join(t.TempDir(), "history"))
	require.NoError(t, err)
	hist.Add("echo one")
	hist.Add("status")
	s.history = hist

	require.NoError(t, s.Execute("history"))
	assert.Equal(t, "1: echo one\n2: status\n", out.String())
}
