//go:build unix

// Package nicecli provides the command-line interface for nice: run a command
// with an adjusted niceness.
package nicecli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/dansimau/coreutils/pkg/log"
	"github.com/dansimau/coreutils/pkg/priority"
	"github.com/dansimau/coreutils/pkg/xexec"
	"github.com/jessevdk/go-flags"
)

// Exit codes, as used by GNU nice.
const (
	ExitFailure   = 125
	ExitCannotRun = 126
	ExitNotFound  = 127
)

type Cmd struct {
	Adjustment int  `short:"n" long:"adjustment" default:"10" value-name:"N" description:"Add integer N to the niceness"`
	Verbose    bool `short:"v" long:"verbose" description:"Print the command before running it"`
}

// Run executes the program with the specified arguments and returns the code
// the process should exit with. When a command is given and can be started,
// Run does not return.
func Run(args ...string) (exitCode int) {
	cmd := &Cmd{}

	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.Name = "nice"
	parser.Usage = "[OPTIONS] [COMMAND [ARG]...]"

	command, err := parser.ParseArgs(args)
	if err != nil {
		flagsErr := &flags.Error{}
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}

		fmt.Fprintf(os.Stderr, "nice: %s\n", err)

		return ExitFailure
	}

	return cmd.Execute(command)
}

// Execute adjusts the niceness and replaces the process with command. With no
// command, the current niceness is printed instead.
func (c *Cmd) Execute(command []string) int {
	if c.Verbose {
		if err := log.SetVerbose(true); err != nil {
			fmt.Fprintln(os.Stderr, "nice: failed to enable verbose output")
			return ExitFailure
		}

		if err := os.Setenv("XEXEC_VERBOSE", "1"); err != nil {
			fmt.Fprintln(os.Stderr, "nice: failed to set XEXEC_VERBOSE environment variable")
			return ExitFailure
		}
	}

	// Niceness is per thread on Linux; the exec below must happen on the
	// thread whose niceness was changed.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	niceness, err := priority.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nice: failed to get priority: %v\n", err)
		return ExitFailure
	}

	if len(command) == 0 {
		fmt.Fprintln(os.Stdout, niceness)
		return 0
	}

	niceness = priority.Clamp(niceness + c.Adjustment)

	if err := priority.Set(niceness); err != nil {
		fmt.Fprintf(os.Stderr, "nice: failed to set priority: %v\n", err)
		return ExitFailure
	}

	l := log.Logger()
	l.Debug().Int("niceness", niceness).Strs("command", command).Msg("executing")

	err = xexec.Exec(command...)

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "nice: '%s': %v\n", command[0], errors.Unwrap(err))
		return ExitNotFound
	}

	fmt.Fprintf(os.Stderr, "nice: %v\n", err)

	return ExitCannotRun
}
