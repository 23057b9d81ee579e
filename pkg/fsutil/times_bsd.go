//go:build unix && !linux

package fsutil

import (
	"time"

	"golang.org/x/sys/unix"
)

// setTimes fills in an untouched axis from the file's current metadata, as
// UTIME_OMIT is not available everywhere outside Linux.
func setTimes(path string, atime, mtime *time.Time, follow bool) error {
	if atime == nil || mtime == nil {
		current, err := readTimes(path, follow)
		if err != nil {
			return err
		}

		if atime == nil {
			atime = &current.Access
		}

		if mtime == nil {
			mtime = &current.Modification
		}
	}

	a, err := timespec(path, *atime)
	if err != nil {
		return err
	}

	m, err := timespec(path, *mtime)
	if err != nil {
		return err
	}

	return utimesNano(path, []unix.Timespec{a, m}, follow)
}
