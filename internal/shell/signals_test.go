package shell

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigintAcknowledgesWithoutStateChange(t *testing.T) {
	s, out := newTestShell(t)

	s.handleSignal(syscall.SIGINT)

	assert.Equal(t, string(msgInterrupt), out.String())
	assert.False(t, s.ForegroundOnly())
}

func TestSigtstpTogglesForegroundOnly(t *testing.T) {
	s, out := newTestShell(t)
	require.False(t, s.ForegroundOnly())

	s.handleSignal(syscall.SIGTSTP)
	assert.True(t, s.ForegroundOnly())
	assert.Equal(t, string(msgEnterFgOnly), out.String())

	out.Reset()
	s.handleSignal(syscall.SIGTSTP)
	assert.False(t, s.ForegroundOnly())
	assert.Equal(t, string(msgExitFgOnly), out.String())
}

func TestSignalMessagesArePreRendered(t *testing.T) {
	// The delivery path writes fixed bytes ending in a fresh prompt marker;
	// nothing is formatted at delivery time.
	for _, msg := range [][]byte{msgInterrupt, msgEnterFgOnly, msgExitFgOnly} {
		assert.True(t, bytes.HasSuffix(msg, []byte("\n: ")), "message %q", msg)
	}
}

func TestToggleAffectsOnlyLaterCommands(t *testing.T) {
	s, out := newTestShell(t)

	require.NoError(t, s.Execute("sleep 30 &"))
	require.Equal(t, 1, s.jobs.Len())

	// Entering foreground-only mode does not touch the already-running job.
	s.handleSignal(syscall.SIGTSTP)
	s.jobs.Reap(out)
	assert.Equal(t, 1, s.jobs.Len())
}
