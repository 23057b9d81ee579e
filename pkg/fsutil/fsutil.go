// Package fsutil provides the filesystem primitives used by touch: existence
// checks, symlink-aware stat, file creation and reading/writing of access and
// modification times.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Exists reports whether path names a file. When follow is false a dangling
// symlink counts as existing. A path that cannot name a file, such as one
// below a regular file, is reported as missing rather than as an error.
func Exists(path string, follow bool) (bool, error) {
	_, err := Stat(path, follow)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, err
	}
}

// Stat returns the file info for path. When follow is false and path is a
// symlink, the info describes the link itself rather than its target.
func Stat(path string, follow bool) (os.FileInfo, error) {
	if follow {
		return os.Stat(path)
	}

	return os.Lstat(path)
}
