package touch

import (
	"errors"
	"os"
)

// Errors returned by NewConfig and Resolve. They are fatal for the whole
// invocation: no file is touched when one of them occurs.
var (
	ErrConflictingSources = errors.New("cannot specify times from more than one source")
	ErrInvalidTimestamp   = errors.New("invalid date format")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrReferenceFile      = errors.New("failed to get attributes of reference file")
)

// unwrapPathError strips the operation and path from an *os.PathError so the
// caller can add its own context.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
