package gocmdtester

// Result holds the output and exit code from running a command.
type Result struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
}

// Stdout returns the stdout output from the command.
func (r *Result) Stdout() string {
	return r.stdout
}

// Stderr returns the stderr output from the command.
func (r *Result) Stderr() string {
	return r.stderr
}

// ExitCode returns the exit code from the command, or -1 if it could not be
// started or was killed by a signal.
func (r *Result) ExitCode() int {
	return r.exitCode
}

// Err returns the error from running the command. It is an *exec.ExitError
// when the command ran but exited non-zero.
func (r *Result) Err() error {
	return r.err
}
