package shell

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"smallsh/internal/config"
	"smallsh/internal/history"
	"smallsh/internal/parser"
	"smallsh/internal/plugin"
)

// Shell is one interactive session: the prompt loop, the dispatcher, the
// job table, the last-foreground-status cell, and the foreground-only mode
// flag. The flag is the only state shared with the signal path.
type Shell struct {
	cfg     *config.Config
	history *history.History
	plugins map[string]plugin.Plugin
	jobs    *jobTable
	reader  *readline.Instance

	signalChan chan os.Signal
	fgOnly     atomic.Bool
	lastStatus Status
	pid        int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func New(cfg *config.Config) (*Shell, error) {
	hist, err := history.New(cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing history: %w", err)
	}

	plugins, err := plugin.LoadAll(cfg.Plugins)
	if err != nil {
		return nil, fmt.Errorf("error loading plugins: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}

	return &Shell{
		cfg:        cfg,
		history:    hist,
		plugins:    plugins,
		jobs:       newJobTable(cfg.MaxJobs),
		reader:     rl,
		signalChan: make(chan os.Signal, 1),
		pid:        os.Getpid(),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}, nil
}

// Run is the prompt loop: read a line, dispatch it, then make one
// non-blocking reap pass over the job table. The reap pass happens every
// iteration, blank lines and comments included.
func (s *Shell) Run() {
	s.setupSignalHandling()
	defer s.stopSignalHandling()
	defer s.reader.Close()

	for {
		line, err := s.reader.Readline()
		if err == readline.ErrInterrupt {
			// The signal path already acknowledged it; drop the line.
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintf(s.stderr, "read error: %v\n", err)
			break
		}

		if strings.TrimSpace(line) != "" {
			s.history.Add(line)
		}

		if err := s.Execute(line); err != nil {
			fmt.Fprintf(s.stderr, "smallsh: %v\n", err)
		}

		s.jobs.Reap(s.stdout)
	}

	s.Shutdown()
}

// RunOnce executes a single command line, makes one reap pass, and tears
// the session down. Backs the -c flag.
func (s *Shell) RunOnce(line string) error {
	s.setupSignalHandling()
	defer s.stopSignalHandling()

	err := s.Execute(line)
	s.jobs.Reap(s.stdout)
	s.Shutdown()
	return err
}

// Execute parses and dispatches one command line. A parse error discards
// the line and leaves all shell state untouched.
func (s *Shell) Execute(line string) error {
	cmd, err := parser.Parse(line, parser.Limits{
		MaxLineLen: s.cfg.MaxLineLen,
		MaxArgs:    s.cfg.MaxArgs,
	})
	if err != nil {
		return err
	}
	if cmd == nil {
		// Blank line or comment.
		return nil
	}

	cmd.ExpandPID(s.pid)

	// Foreground-only mode and the detach exemptions trump a trailing &.
	if cmd.Background && (s.fgOnly.Load() || s.neverDetached(cmd.Name)) {
		cmd.Background = false
	}

	if ok, err := s.executeBuiltin(cmd.Args); ok {
		return err
	}

	if plug, ok := s.plugins[cmd.Name]; ok {
		return plug.Execute(cmd.Args[1:])
	}

	return s.runExternal(cmd)
}

// neverDetached lists the commands whose background marker is ignored:
// every built-in, every loaded plugin, and echo.
func (s *Shell) neverDetached(name string) bool {
	if name == "echo" || isBuiltin(name) {
		return true
	}
	_, ok := s.plugins[name]
	return ok
}

// LastStatus returns the recorded outcome of the last foreground command.
func (s *Shell) LastStatus() Status {
	return s.lastStatus
}
