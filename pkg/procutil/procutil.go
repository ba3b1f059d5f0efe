package procutil

import (
	"errors"
	"os"
	"syscall"
)

// IsProcessGone returns true if the error indicates the target process no
// longer exists: signal delivery hit ESRCH, or its procfs entry vanished.
func IsProcessGone(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	if errors.Is(err, syscall.ESRCH) {
		return true
	}
	return false
}
