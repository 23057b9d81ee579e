package xexec

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestQuoteArgs(t *testing.T) {
	assert.Equal(t, quoteArgs([]string{"touch", "-d", "2009-01-03 03:13:00", "it's"}),
		`touch -d '2009-01-03 03:13:00' 'it'"'"'s'`)
}

func TestOutput(t *testing.T) {
	out, err := Command("sh", "-c", "echo hello").WithStderr(nil).Output()
	assert.NilError(t, err)
	assert.Equal(t, string(out), "hello\n")
}

func TestRun_CapturesStderrOnError(t *testing.T) {
	var stderr bytes.Buffer

	err := Command("sh", "-c", "echo oops >&2; exit 3").WithStdout(nil).WithStderr(&stderr).Run()

	ee := &exec.ExitError{}
	assert.Assert(t, errors.As(err, &ee))
	assert.Equal(t, ee.ExitCode(), 3)
	assert.Equal(t, string(ee.Stderr), "oops\n")
	assert.Equal(t, stderr.String(), "oops\n")
}

func TestRun_WorkingDir(t *testing.T) {
	dir := t.TempDir()

	want, err := filepath.EvalSymlinks(dir)
	assert.NilError(t, err)

	out, err := Command("pwd", "-P").WithWorkingDir(dir).WithStderr(nil).Output()
	assert.NilError(t, err)
	assert.Equal(t, strings.TrimSpace(string(out)), want)
}
