package priority

// fromKernel converts the getpriority(2) system call result, which on Linux
// is 20-nice so it is never negative, to a niceness.
func fromKernel(prio int) int {
	return 20 - prio
}
