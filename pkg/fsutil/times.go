package fsutil

import (
	"time"
)

// Times holds the access and modification time of a file.
type Times struct {
	Access       time.Time
	Modification time.Time
}

// ReadTimes returns the access and modification times of path with the
// precision the platform provides. When follow is false, the times of a
// symlink itself are returned.
func ReadTimes(path string, follow bool) (Times, error) {
	return readTimes(path, follow)
}

// SetTimes sets the access and modification times of path. A nil time leaves
// that axis with its current value. When follow is false and path is a
// symlink, the times of the link itself are changed.
func SetTimes(path string, atime, mtime *time.Time, follow bool) error {
	if atime == nil && mtime == nil {
		return nil
	}

	return setTimes(path, atime, mtime, follow)
}
