//go:build unix

package testutil

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// SkipUnlessFilesystemStores skips the test when the filesystem holding dir
// cannot store when as a file time exactly. ext4, for example, clamps file
// times to the years 1901-2446.
func SkipUnlessFilesystemStores(t *testing.T, dir string, when time.Time) {
	t.Helper()

	f, err := os.CreateTemp(dir, ".timecheck-")
	if err != nil {
		t.Fatal(err)
	}

	path := f.Name()
	f.Close()

	defer os.Remove(path)

	ts, err := unix.TimeToTimespec(when)
	if err != nil {
		t.Skipf("%v cannot be represented on this platform: %v", when, err)
	}

	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{ts, ts}, 0); err != nil {
		t.Skipf("filesystem rejects %v: %v", when, err)
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		t.Fatal(err)
	}

	if stored := time.Unix(st.Mtim.Unix()); !stored.Equal(when) {
		t.Skipf("filesystem stores %v as %v", when, stored)
	}
}
