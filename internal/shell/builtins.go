package shell

import (
	"fmt"
	"os"
)

// executeBuiltin dispatches built-in commands. Built-ins always run in the
// shell's own process and never honor a background marker.
func (s *Shell) executeBuiltin(args []string) (bool, error) {
	switch args[0] {
	case "exit":
		s.exit()
		return true, nil
	case "cd":
		return true, s.changeDirectory(args[1:])
	case "status":
		return true, s.showStatus(args[1:])
	case "history":
		return true, s.showHistory()
	case "jobs":
		return true, s.listJobs()
	default:
		return false, nil
	}
}

func isBuiltin(name string) bool {
	switch name {
	case "exit", "cd", "status", "history", "jobs":
		return true
	}
	return false
}

// exit kills and reaps every tracked background job, then ends the shell
// with a success code. Arguments are ignored.
func (s *Shell) exit() {
	s.Shutdown()
	os.Exit(0)
}

// Shutdown tears the session down without ending the process: every
// tracked job is killed and reaped, and the history is flushed.
func (s *Shell) Shutdown() {
	s.jobs.KillAll()
	if s.history != nil {
		if err := s.history.Save(); err != nil {
			fmt.Fprintf(s.stderr, "error saving history: %v\n", err)
		}
	}
}

// changeDirectory implements cd: bare cd goes to the home directory, one
// argument names the target (absolute or relative), more is a usage error.
func (s *Shell) changeDirectory(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("cd: too many arguments")
	}

	dir := s.cfg.HomeDir
	if len(args) == 1 {
		dir = args[0]
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

// showStatus prints the last foreground outcome. Reads the status cell
// without changing it, so repeated calls agree.
func (s *Shell) showStatus(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("status: takes no arguments")
	}
	fmt.Fprintf(s.stdout, "%s\n", s.lastStatus)
	return nil
}

func (s *Shell) showHistory() error {
	if s.history == nil {
		return nil
	}
	for i, cmd := range s.history.GetAll() {
		fmt.Fprintf(s.stdout, "%d: %s\n", i+1, cmd)
	}
	return nil
}

func (s *Shell) listJobs() error {
	for _, job := range s.jobs.List() {
		fmt.Fprintf(s.stdout, "[%d] Running\t%s\n", job.PID, job.Command)
	}
	return nil
}
