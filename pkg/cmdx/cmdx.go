package cmdx

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimeout is returned when a command is killed for exceeding its deadline.
var ErrTimeout = fmt.Errorf("command timed out")

// WaitTimeout waits for an already-started command, killing it if the
// timeout elapses first. The second return value reports whether the
// command was killed for exceeding the deadline.
func WaitTimeout(cmd *exec.Cmd, timeout time.Duration) (error, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return err, false
	case <-timer.C:
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		<-done
		return ErrTimeout, true
	}
}

// Output runs bin with args (argv style, no shell) and captures stdout and
// stderr. The command is killed if it runs past the timeout.
func Output(bin string, args []string, timeout time.Duration) ([]byte, []byte, error) {
	cmd := exec.Command(bin, args...)

	var (
		out    bytes.Buffer
		stderr bytes.Buffer
	)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start %s: %w", bin, err)
	}

	runError, killed := WaitTimeout(cmd, timeout)
	if killed {
		return nil, nil, fmt.Errorf("exec %s: %w", bin, ErrTimeout)
	}

	return out.Bytes(), stderr.Bytes(), runError
}
