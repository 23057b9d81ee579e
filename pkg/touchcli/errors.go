package touchcli

import (
	"errors"
	"os"
)

// Exit codes. ExitFailure means at least one file could not be touched;
// ExitFatal means nothing was touched because the invocation itself was
// invalid.
const (
	ExitFailure = 1
	ExitFatal   = 2
)

// Error is an error thrown by the CLI and it causes the CLI to exit with a
// message, e.g. "touch: invalid date format" and the given exit code. An
// empty message exits without printing anything.
type Error struct {
	msg  string
	code int
}

func NewError(msg string) *Error {
	return &Error{msg: msg, code: ExitFatal}
}

func (e *Error) Error() string {
	return e.msg
}

// errFilesFailed is returned once all files have been processed and at least
// one of them failed. The individual failures have already been reported.
var errFilesFailed = &Error{code: ExitFailure}

// reason returns the underlying cause of a filesystem error without the
// operation and path, which the caller prints itself.
func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
