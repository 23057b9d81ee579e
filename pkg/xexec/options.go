package xexec

import "io"

// These options are designed to be chained for easy reading/writing.

func (c *Cmd) WithStdout(w io.Writer) *Cmd {
	c.Stdout = w
	return c
}

func (c *Cmd) WithStderr(w io.Writer) *Cmd {
	c.Stderr = w
	return c
}

func (c *Cmd) WithWorkingDir(dir string) *Cmd {
	c.Dir = dir
	return c
}
