package actions

import (
	"strconv"

	"github.com/atotto/clipboard"

	"flashcat.cloud/procpaw/types"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyPID places the exact decimal representation of pid on the system
// clipboard, with no surrounding whitespace.
func CopyPID(pid types.PID) error {
	return writeClipboard(strconv.Itoa(int(pid)))
}
