//go:build unix

// Package priority reads and changes the scheduling priority (niceness) of
// the current process.
package priority

import (
	"golang.org/x/sys/unix"
)

// Niceness bounds. Values outside are clamped by Set.
const (
	Min = -20
	Max = 19
)

// Get returns the niceness of the current process. On Linux niceness is a
// per-thread attribute, so callers should hold runtime.LockOSThread across Get,
// Set and any exec that should inherit the value.
func Get() (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, 0)
	if err != nil {
		return 0, err
	}

	return fromKernel(prio), nil
}

// Set changes the niceness of the current process to n, clamped to
// [Min, Max]. Lowering the niceness usually requires privileges.
func Set(n int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, Clamp(n))
}

func Clamp(n int) int {
	return max(Min, min(Max, n))
}
