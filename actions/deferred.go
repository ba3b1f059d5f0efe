package actions

import (
	"time"

	"flashcat.cloud/procpaw/logger"
	"flashcat.cloud/procpaw/types"
)

// DeferredKill is the handle for a scheduled follow-up kill. The default
// flow never cancels it; Cancel exists so a future keybinding can, without
// changing this contract.
type DeferredKill struct {
	PID    types.PID
	FireAt time.Time

	timer *time.Timer
}

func newDeferredKill(pid types.PID, delay time.Duration, kill func(types.PID) error) *DeferredKill {
	d := &DeferredKill{
		PID:    pid,
		FireAt: time.Now().Add(delay),
	}
	d.timer = time.AfterFunc(delay, func() {
		if err := kill(pid); err != nil {
			// the target usually exited after the interrupt; nothing to do
			logger.Logger.Debugw("deferred kill not delivered", "pid", pid, "error", err)
		}
	})
	return d
}

// Cancel stops the pending kill. Returns false if it already fired.
func (d *DeferredKill) Cancel() bool {
	return d.timer.Stop()
}
