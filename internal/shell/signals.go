package shell

import (
	"os"
	"os/signal"
	"syscall"
)

// Messages emitted from the signal path. Rendered once, here; the delivery
// goroutine only ever writes these fixed byte sequences, each ending with a
// fresh prompt marker.
var (
	msgInterrupt   = []byte("Caught SIGINT\n: ")
	msgEnterFgOnly = []byte("Entering foreground-only mode (& is now ignored)\n: ")
	msgExitFgOnly  = []byte("Exiting foreground-only mode\n: ")
)

func (s *Shell) setupSignalHandling() {
	signal.Notify(s.signalChan, syscall.SIGINT, syscall.SIGTSTP)
	go func() {
		for sig := range s.signalChan {
			s.handleSignal(sig)
		}
	}()
}

func (s *Shell) stopSignalHandling() {
	signal.Stop(s.signalChan)
}

// handleSignal is the whole of the asynchronous signal path. SIGINT is
// acknowledged and otherwise ignored; it never terminates the shell, and
// reaches a foreground child only through the kernel's own delivery.
// SIGTSTP flips foreground-only mode for commands parsed afterwards. The
// mode flag is the only state shared with the main loop, and it is atomic.
func (s *Shell) handleSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGINT:
		s.stdout.Write(msgInterrupt)
	case syscall.SIGTSTP:
		if s.fgOnly.CompareAndSwap(false, true) {
			s.stdout.Write(msgEnterFgOnly)
		} else {
			s.fgOnly.Store(false)
			s.stdout.Write(msgExitFgOnly)
		}
	}
}

// ForegroundOnly reports whether a trailing & is currently being ignored.
func (s *Shell) ForegroundOnly() bool {
	return s.fgOnly.Load()
}
