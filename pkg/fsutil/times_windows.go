package fsutil

import (
	"errors"
	"math"
	"os"
	"syscall"
	"time"
)

var (
	errNoFollowUnsupported = errors.New("changing symlink times is not supported on this platform")
	errTimeOutOfRange      = errors.New("time out of range")
)

// os.Chtimes goes through UnixNano, so it cannot represent times outside
// these bounds.
var (
	earliest = time.Unix(0, math.MinInt64)
	latest   = time.Unix(0, math.MaxInt64)
)

func readTimes(path string, follow bool) (Times, error) {
	fi, err := Stat(path, follow)
	if err != nil {
		return Times{}, err
	}

	times := Times{Access: fi.ModTime(), Modification: fi.ModTime()}
	if sys, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		times.Access = time.Unix(0, sys.LastAccessTime.Nanoseconds())
	}

	return times, nil
}

func setTimes(path string, atime, mtime *time.Time, follow bool) error {
	if !follow {
		return &os.PathError{Op: "chtimes", Path: path, Err: errNoFollowUnsupported}
	}

	// os.Chtimes leaves a zero time.Time unchanged.
	var a, m time.Time
	if atime != nil {
		a = *atime
	}

	if mtime != nil {
		m = *mtime
	}

	for _, t := range []time.Time{a, m} {
		if !t.IsZero() && (t.Before(earliest) || t.After(latest)) {
			return &os.PathError{Op: "chtimes", Path: path, Err: errTimeOutOfRange}
		}
	}

	return os.Chtimes(path, a, m)
}
