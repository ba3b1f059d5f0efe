package actions

import (
	"time"

	"flashcat.cloud/procpaw/config"
	"flashcat.cloud/procpaw/types"
)

// Signaller delivers POSIX signals to target processes. Delivery failures
// (no such process, permission denied) surface to the caller; they are
// never fatal to the session.
type Signaller struct {
	politeDelay time.Duration
}

func NewSignaller(c config.KillConfig) *Signaller {
	return &Signaller{politeDelay: time.Duration(c.PoliteDelay)}
}

func (s *Signaller) Interrupt(pid types.PID) error { return interruptProcess(pid) }
func (s *Signaller) Kill(pid types.PID) error      { return killProcess(pid) }
func (s *Signaller) Stop(pid types.PID) error      { return stopProcess(pid) }
func (s *Signaller) Continue(pid types.PID) error  { return continueProcess(pid) }

// PoliteKill delivers an interrupt now and schedules an unconditional kill
// after the configured delay. The returned handle exposes Cancel, but the
// baseline contract is fire-and-forget: once scheduled, the kill fires
// whether or not the process still needs killing. Delivery to a PID that
// exited (or was reused) in the meantime is left to the kernel to refuse.
func (s *Signaller) PoliteKill(pid types.PID) (*DeferredKill, error) {
	if err := s.Interrupt(pid); err != nil {
		return nil, err
	}
	return newDeferredKill(pid, s.politeDelay, s.Kill), nil
}
