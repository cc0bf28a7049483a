package parser

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultMaxLineLen is the longest command line accepted, in bytes.
	DefaultMaxLineLen = 2048
	// DefaultMaxArgs is the maximum number of arguments after the program name.
	DefaultMaxArgs = 512
)

var (
	ErrLineTooLong = errors.New("line exceeds maximum length")
	ErrTooManyArgs = errors.New("too many arguments")
	ErrMissingPath = errors.New("missing path after redirection operator")
)

// Command is one parsed command line. Args always includes the program name
// as its first element.
type Command struct {
	Name       string
	Args       []string
	InputFile  string
	OutputFile string
	Background bool
}

// Limits bounds what Parse will accept. Zero fields fall back to the
// defaults above.
type Limits struct {
	MaxLineLen int
	MaxArgs    int
}

func (l Limits) lineLen() int {
	if l.MaxLineLen > 0 {
		return l.MaxLineLen
	}
	return DefaultMaxLineLen
}

func (l Limits) args() int {
	if l.MaxArgs > 0 {
		return l.MaxArgs
	}
	return DefaultMaxArgs
}

// Parse turns one raw input line into a Command. It returns (nil, nil) for
// blank lines and comments (first token starting with '#'); the caller
// re-prompts.
//
// Grammar: program [arg...] [< input_path] [> output_path] [&]
// Whitespace is the only delimiter; no quoting or escaping is recognized.
// A trailing & requests background execution; anywhere else & is a literal
// argument.
func Parse(line string, lim Limits) (*Command, error) {
	if len(line) > lim.lineLen() {
		return nil, fmt.Errorf("%w (%d > %d)", ErrLineTooLong, len(line), lim.lineLen())
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	if strings.HasPrefix(tokens[0], "#") {
		return nil, nil
	}

	cmd := &Command{}
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "<":
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: %q", ErrMissingPath, "<")
			}
			i++
			cmd.InputFile = tokens[i]
		case ">":
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: %q", ErrMissingPath, ">")
			}
			i++
			cmd.OutputFile = tokens[i]
		case "&":
			if i == len(tokens)-1 {
				cmd.Background = true
			} else {
				cmd.Args = append(cmd.Args, tokens[i])
			}
		default:
			cmd.Args = append(cmd.Args, tokens[i])
		}
	}

	if len(cmd.Args) == 0 {
		// Only redirections or a lone &; nothing to run.
		return nil, nil
	}
	if len(cmd.Args) > lim.args()+1 {
		return nil, fmt.Errorf("%w (%d > %d)", ErrTooManyArgs, len(cmd.Args)-1, lim.args())
	}

	cmd.Name = cmd.Args[0]
	return cmd, nil
}
