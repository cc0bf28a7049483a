package shell

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Job is one tracked background process.
type Job struct {
	PID     int
	Command string
}

// jobTable is the ordered set of background jobs awaiting reaping. It only
// ever holds pids this shell spawned, at most one entry each. The table is
// owned by the main loop and never touched from the signal path.
type jobTable struct {
	jobs []*Job
	max  int // 0 means unbounded
}

func newJobTable(max int) *jobTable {
	return &jobTable{max: max}
}

// Full reports whether a configured capacity has been reached. Checked
// before spawning so an over-limit job is refused, never silently dropped.
func (t *jobTable) Full() bool {
	return t.max > 0 && len(t.jobs) >= t.max
}

func (t *jobTable) Len() int {
	return len(t.jobs)
}

func (t *jobTable) List() []*Job {
	return append([]*Job{}, t.jobs...)
}

func (t *jobTable) Add(pid int, command string) error {
	for _, job := range t.jobs {
		if job.PID == pid {
			return fmt.Errorf("pid %d is already tracked", pid)
		}
	}
	t.jobs = append(t.jobs, &Job{PID: pid, Command: command})
	return nil
}

// Reap polls every job once with a non-blocking wait, reports the ones that
// finished, and removes them. Jobs still running stay for the next pass.
// Never blocks the prompt loop.
func (t *jobTable) Reap(w io.Writer) {
	remaining := t.jobs[:0]
	for _, job := range t.jobs {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(job.PID, &ws, unix.WNOHANG, nil)
		switch {
		case err == nil && pid == 0:
			remaining = append(remaining, job)
		case err == nil && pid == job.PID:
			fmt.Fprintf(w, "process %d completed\n", job.PID)
			fmt.Fprintf(w, "%s\n", statusFromWait(ws))
		default:
			// The pid can no longer be waited on; drop it rather than
			// re-polling forever.
			fmt.Fprintf(w, "process %d lost: %v\n", job.PID, err)
		}
	}
	t.jobs = remaining
}

// KillAll forcibly terminates every tracked job and reaps each with a
// blocking wait. Used by the exit built-in so no child outlives the shell.
func (t *jobTable) KillAll() {
	for _, job := range t.jobs {
		_ = unix.Kill(job.PID, unix.SIGKILL)
		var ws unix.WaitStatus
		_, _ = unix.Wait4(job.PID, &ws, 0, nil)
	}
	t.jobs = nil
}
