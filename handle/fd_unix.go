//go:build unix

package handle

import (
	"golang.org/x/sys/unix"
)

// Wrap takes ownership of an OS file descriptor handle. Close releases
// it through the platform close primitive.
func Wrap(h Handle) *Owner {
	return WrapFunc(h, closeFD)
}

func closeFD(h Handle) error {
	return unix.Close(int(h))
}
