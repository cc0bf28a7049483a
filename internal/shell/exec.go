package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"

	"smallsh/internal/parser"
)

// runExternal spawns the command as a real OS process, blocking on it in
// the foreground or registering it as a background job.
func (s *Shell) runExternal(cmd *parser.Command) error {
	if cmd.Background {
		return s.runBackground(cmd)
	}
	return s.runForeground(cmd)
}

func (s *Shell) runForeground(cmd *parser.Command) error {
	c := exec.Command(cmd.Name, cmd.Args[1:]...)
	c.Stdin = s.stdin
	c.Stdout = s.stdout
	c.Stderr = s.stderr

	files, err := s.redirect(c, cmd, false)
	if err != nil {
		// A redirection that cannot be opened fails only this command;
		// the outcome is recorded as if the child had reported and died.
		s.lastStatus = Status{Code: 1}
		return err
	}
	defer closeAll(files)

	err = c.Run()
	if err == nil {
		s.lastStatus = Status{}
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			s.lastStatus = Status{Signaled: true, Code: int(ws.Signal())}
			// Every signal death is reported; no signal number is exempt.
			fmt.Fprintf(s.stdout, "%s\n", s.lastStatus)
			return nil
		}
		s.lastStatus = Status{Code: exitErr.ExitCode()}
		return nil
	}

	// The program could not be started at all (missing, not executable, or
	// resource exhaustion). Recorded as a plain nonzero exit, never a
	// signal, and the shell keeps running.
	s.lastStatus = Status{Code: 1}
	return fmt.Errorf("%s: %w", cmd.Name, err)
}

func (s *Shell) runBackground(cmd *parser.Command) error {
	if s.jobs.Full() {
		return fmt.Errorf("job table is full (%d jobs); refusing to start %s",
			s.jobs.Len(), cmd.Name)
	}

	c := exec.Command(cmd.Name, cmd.Args[1:]...)
	// Background jobs get their own process group so terminal signals
	// aimed at the shell never reach them.
	c.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	c.Stderr = s.stderr

	files, err := s.redirect(c, cmd, true)
	if err != nil {
		return err
	}
	defer closeAll(files)

	if err := c.Start(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	pid := c.Process.Pid
	fmt.Fprintf(s.stdout, "background pid is %d\n", pid)
	if err := s.jobs.Add(pid, shellquote.Join(cmd.Args...)); err != nil {
		return err
	}
	// Reaped via wait4 in the job table, never through this handle.
	_ = c.Process.Release()
	return nil
}

// redirect binds the command's stdio per the parsed redirections. For
// background commands, stdin and stdout not explicitly redirected fall back
// to the null device so a detached job never touches the terminal.
func (s *Shell) redirect(c *exec.Cmd, cmd *parser.Command, background bool) ([]*os.File, error) {
	var files []*os.File

	switch {
	case cmd.InputFile != "":
		f, err := os.Open(cmd.InputFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s for input: %w", cmd.InputFile, err)
		}
		files = append(files, f)
		c.Stdin = f
	case background:
		f, err := os.Open(os.DevNull)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		c.Stdin = f
	}

	switch {
	case cmd.OutputFile != "":
		f, err := os.OpenFile(cmd.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			closeAll(files)
			return nil, fmt.Errorf("cannot open %s for output: %w", cmd.OutputFile, err)
		}
		files = append(files, f)
		c.Stdout = f
	case background:
		f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			closeAll(files)
			return nil, err
		}
		files = append(files, f)
		c.Stdout = f
	}

	return files, nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}
