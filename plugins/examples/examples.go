package main

import (
	"fmt"
	"os"
)

// PidPlugin adds a `session-pid` built-in that reports the shell's own
// process ID. Build with:
//
//	go build -buildmode=plugin -o session-pid.so ./plugins/examples
//
// and list the .so under `plugins:` in the config file.
type PidPlugin struct{}

func (p *PidPlugin) Name() string {
	return "session-pid"
}

func (p *PidPlugin) Execute(args []string) error {
	fmt.Fprintf(os.Stdout, "shell pid %d, args %v\n", os.Getpid(), args)
	return nil
}

var Plugin PidPlugin

// main is never called; it satisfies the compiler when this directory is
// built as a normal package instead of with -buildmode=plugin.
func main() {}
