package shell

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Status records how the last foreground command ended: a normal exit code,
// or the number of the signal that killed it. The zero value reads as
// "exit value 0", which is the defined outcome before any foreground
// command has run.
type Status struct {
	Signaled bool
	Code     int
}

func (s Status) String() string {
	if s.Signaled {
		return fmt.Sprintf("terminated by signal %d", s.Code)
	}
	return fmt.Sprintf("exit value %d", s.Code)
}

// ExitCode maps the outcome onto a process exit code, using the usual shell
// convention of 128+signal for signal deaths.
func (s Status) ExitCode() int {
	if s.Signaled {
		return 128 + s.Code
	}
	return s.Code
}

func statusFromWait(ws unix.WaitStatus) Status {
	if ws.Signaled() {
		return Status{Signaled: true, Code: int(ws.Signal())}
	}
	return Status{Code: ws.ExitStatus()}
}
