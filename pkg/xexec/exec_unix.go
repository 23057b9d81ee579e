//go:build unix

package xexec

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with the command named by args[0], found
// in $PATH, keeping the current environment. It only returns on failure; a
// command that cannot be found yields an error matching exec.ErrNotFound.
func Exec(args ...string) error {
	path, err := exec.LookPath(args[0])
	if err != nil {
		return err
	}

	if os.Getenv(verboseEnvVar) != "" {
		debugPrint(args)
	}

	if err := unix.Exec(path, args, os.Environ()); err != nil {
		return &os.PathError{Op: "exec", Path: path, Err: err}
	}

	return nil
}
