//go:build windows
// +build windows

package actions

import (
	"fmt"
	"os"

	"flashcat.cloud/procpaw/types"
)

// Windows has no POSIX signals; only unconditional termination maps onto
// something the platform supports.

func interruptProcess(pid types.PID) error { return errUnsupported("interrupt") }
func stopProcess(pid types.PID) error      { return errUnsupported("stop") }
func continueProcess(pid types.PID) error  { return errUnsupported("continue") }

func killProcess(pid types.PID) error {
	proc, err := os.FindProcess(int(pid))
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("kill pid %d failed: %w", pid, err)
	}
	return nil
}

func errUnsupported(op string) error {
	return fmt.Errorf("%s is not supported on windows", op)
}
