package parser

import (
	"strconv"
	"strings"
)

const pidMarker = "$$"

// ExpandPID rewrites every occurrence of $$ in the command's argument
// tokens, the program name included, into the given process ID. Runs once,
// after tokenization and before dispatch, so the substituted text can never
// introduce new redirection or background syntax.
func (c *Command) ExpandPID(pid int) {
	dec := strconv.Itoa(pid)
	for i, arg := range c.Args {
		if strings.Contains(arg, pidMarker) {
			c.Args[i] = strings.ReplaceAll(arg, pidMarker, dec)
		}
	}
	c.Name = c.Args[0]
}
