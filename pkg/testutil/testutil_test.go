package testutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dansimau/coreutils/pkg/testutil"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestWithEnv(t *testing.T) {
	// Set test environment value
	testEnvName := "TEST_ENV_VAR"
	t.Setenv(testEnvName, "foo")

	_, exists := os.LookupEnv(testEnvName)
	// Check if environment variable exists
	assert.Assert(t, exists)

	// Setup new clean environment
	restoreEnv := testutil.WithEnv()

	// In the clean environment the test environment variable is not expected
	_, exists = os.LookupEnv(testEnvName)
	assert.Assert(t, !exists)

	// Restore environment to original values
	restoreEnv()

	// Check if original var (testEnvVar) is set again
	_, exists = os.LookupEnv(testEnvName)
	assert.Assert(t, exists)
}

func TestCreateFileWithTimes(t *testing.T) {
	atime := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	mtime := time.Date(2002, 2, 2, 0, 0, 0, 0, time.UTC)

	path := testutil.CreateFileWithTimes(t, t.TempDir(), "file", atime, mtime)

	times := testutil.MustReadTimes(t, path, true)
	assert.Assert(t, times.Access.Equal(atime))
	assert.Assert(t, times.Modification.Equal(mtime))
}

func TestExecInDirOrFail(t *testing.T) {
	dir := t.TempDir()

	testutil.ExecInDirOrFail(t, dir, `
		echo hello > greeting
		ln -s greeting link
	`)

	b, err := os.ReadFile(filepath.Join(dir, "link"))
	assert.NilError(t, err)
	assert.Equal(t, string(b), "hello\n")
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr, err := testutil.CaptureOutput(func() {
		os.Stdout.WriteString("out")
		os.Stderr.WriteString("err")
	})

	assert.NilError(t, err)
	assert.Assert(t, cmp.Equal(stdout, "out"))
	assert.Assert(t, cmp.Equal(stderr, "err"))
}
