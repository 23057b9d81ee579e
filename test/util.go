package test

import (
	"os"
	"testing"

	"github.com/dansimau/coreutils/pkg/fsutil"
	"github.com/dansimau/coreutils/pkg/testutil"
	"github.com/dansimau/coreutils/pkg/touchcli"
	"gotest.tools/v3/assert"
)

// mustTouch runs touch with args and fails the test unless it exits with
// wantExitCode. It returns what was written to stderr.
func mustTouch(t *testing.T, wantExitCode int, args ...string) (stderr string) {
	t.Helper()

	_, stderr, err := testutil.CaptureOutput(func() {
		assert.Equal(t, touchcli.Run(args...), wantExitCode)
	})
	assert.NilError(t, err)

	return stderr
}

// mustStatTimes returns the times of path, following symlinks.
func mustStatTimes(t *testing.T, path string) fsutil.Times {
	t.Helper()

	return testutil.MustReadTimes(t, path, true)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
