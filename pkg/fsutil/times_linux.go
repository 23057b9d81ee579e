package fsutil

import (
	"time"

	"golang.org/x/sys/unix"
)

// omitted tells utimensat(2) to keep the current value of that axis.
var omitted = unix.Timespec{Sec: 0, Nsec: unix.UTIME_OMIT}

func setTimes(path string, atime, mtime *time.Time, follow bool) error {
	ts := []unix.Timespec{omitted, omitted}

	for i, t := range []*time.Time{atime, mtime} {
		if t == nil {
			continue
		}

		spec, err := timespec(path, *t)
		if err != nil {
			return err
		}

		ts[i] = spec
	}

	return utimesNano(path, ts, follow)
}
