//go:build !windows
// +build !windows

package actions

import (
	"fmt"
	"syscall"

	"flashcat.cloud/procpaw/types"
)

// sendSignal is swapped out in tests.
var sendSignal = func(pid types.PID, sig syscall.Signal) error {
	return syscall.Kill(int(pid), sig)
}

func interruptProcess(pid types.PID) error { return deliver(pid, syscall.SIGINT) }
func killProcess(pid types.PID) error      { return deliver(pid, syscall.SIGKILL) }
func stopProcess(pid types.PID) error      { return deliver(pid, syscall.SIGSTOP) }
func continueProcess(pid types.PID) error  { return deliver(pid, syscall.SIGCONT) }

func deliver(pid types.PID, sig syscall.Signal) error {
	if err := sendSignal(pid, sig); err != nil {
		return fmt.Errorf("signal %v to pid %d failed: %w", sig, pid, err)
	}
	return nil
}
