// Package xexec runs and execs external commands, echoing them to stderr
// first when XEXEC_VERBOSE is set (similar to sh -x).
package xexec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
	"gopkg.in/alessio/shellescape.v1"
)

const verboseEnvVar = "XEXEC_VERBOSE"

// Cmd is a wrapper for exec.Cmd.
type Cmd struct {
	*exec.Cmd

	// when verbose is true, commands will be printed to os.Stderr before they
	// are executed.
	verbose bool
}

// Command creates a new wrapped exec.Cmd. It runs "interactively" by default,
// connected to the stdin, stdout and stderr of the current process.
func Command(args ...string) *Cmd {
	c := &Cmd{
		Cmd:     exec.Command(args[0], args[1:]...),
		verbose: os.Getenv(verboseEnvVar) != "",
	}

	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	return c
}

// quoteArgs joins args into a single line that can be pasted into a shell.
func quoteArgs(args []string) string {
	quotedArgs := []string{}
	for _, arg := range args {
		quotedArgs = append(quotedArgs, shellescape.Quote(arg))
	}

	return strings.Join(quotedArgs, " ")
}

// debugPrint prints the command args to stderr.
func debugPrint(args []string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "\033[1;30m+ %s\033[0m\n", quoteArgs(args))
	} else {
		fmt.Fprintf(os.Stderr, "+ %s\n", quoteArgs(args))
	}
}

// Run is like exec.Run that always captures stderr output into the returned
// error (exec.ExitError{}.Stderr).
func (c *Cmd) Run() error {
	if c.verbose {
		debugPrint(c.Args)
	}

	var stderr bytes.Buffer

	c.Stderr = createMultiWriter(&stderr, c.Stderr)

	if err := c.Cmd.Run(); err != nil {
		// Store stderr onto the exec error itself so users can access this
		// if needed.
		ee := &exec.ExitError{}
		if errors.As(err, &ee) {
			ee.Stderr = stderr.Bytes()
		}

		return err
	}

	return nil
}

// Output is like exec.Output, except that xexec captures the output in
// addition to writing output to any existing provided c.Stdout.
func (c *Cmd) Output() ([]byte, error) {
	var stdout bytes.Buffer

	c.Stdout = createMultiWriter(&stdout, c.Stdout)

	err := c.Run()

	return stdout.Bytes(), err
}

// createMultiWriter is like io.MultiWriter except that it checks if writers
// are nil before adding them to the output.
func createMultiWriter(writers ...io.Writer) io.Writer {
	allWriters := []io.Writer{}
	for _, w := range writers {
		if w == nil {
			continue
		}

		allWriters = append(allWriters, w)
	}

	return io.MultiWriter(allWriters...)
}
