//go:build unix && !linux

package priority

func fromKernel(prio int) int {
	return prio
}
