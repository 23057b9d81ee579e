//go:build unix

package fsutil

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func readTimes(path string, follow bool) (Times, error) {
	var (
		st  unix.Stat_t
		err error
	)

	if follow {
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}

	if err != nil {
		op := "stat"
		if !follow {
			op = "lstat"
		}

		return Times{}, &os.PathError{Op: op, Path: path, Err: err}
	}

	return Times{
		Access:       time.Unix(st.Atim.Unix()),
		Modification: time.Unix(st.Mtim.Unix()),
	}, nil
}

// timespec converts t from its seconds and nanoseconds, so times outside the
// int64 nanosecond range (years before 1678 or after 2262) survive intact.
func timespec(path string, t time.Time) (unix.Timespec, error) {
	ts, err := unix.TimeToTimespec(t)
	if err != nil {
		return unix.Timespec{}, &os.PathError{Op: "utimensat", Path: path, Err: err}
	}

	return ts, nil
}

func utimesNano(path string, ts []unix.Timespec, follow bool) error {
	flags := 0
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}

	if e := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, flags); e != nil {
		return &os.PathError{Op: "utimensat", Path: path, Err: e}
	}

	return nil
}
