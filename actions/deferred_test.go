//go:build !windows
// +build !windows

package actions

import (
	"syscall"
	"testing"
	"time"

	"flashcat.cloud/procpaw/config"
	"flashcat.cloud/procpaw/types"
)

func TestPoliteKill_InterruptThenKill(t *testing.T) {
	rec := captureSignals(t)

	delay := 30 * time.Millisecond
	sig := NewSignaller(config.KillConfig{PoliteDelay: config.Duration(delay)})

	before := time.Now()
	handle, err := sig.PoliteKill(4471)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// interrupt delivered synchronously
	if sent := rec.deliveries(); len(sent) != 1 || sent[0].sig != syscall.SIGINT {
		t.Fatalf("expected immediate SIGINT, got %v", sent)
	}

	if handle.PID != 4471 {
		t.Errorf("handle pid: expected 4471, got %d", handle.PID)
	}
	if fireAt := handle.FireAt; fireAt.Before(before.Add(delay)) {
		t.Errorf("FireAt %v earlier than scheduled %v", fireAt, before.Add(delay))
	}

	time.Sleep(delay + 50*time.Millisecond)

	sent := rec.deliveries()
	if len(sent) != 2 {
		t.Fatalf("expected exactly 2 deliveries, got %d", len(sent))
	}
	if sent[1].pid != 4471 || sent[1].sig != syscall.SIGKILL {
		t.Errorf("expected deferred SIGKILL to pid 4471, got %v to pid %d", sent[1].sig, sent[1].pid)
	}
}

func TestPoliteKill_InterruptFailureSkipsSchedule(t *testing.T) {
	orig := sendSignal
	defer func() { sendSignal = orig }()
	sendSignal = func(pid types.PID, sig syscall.Signal) error {
		return syscall.ESRCH
	}

	sig := NewSignaller(config.KillConfig{PoliteDelay: config.Duration(10 * time.Millisecond)})
	handle, err := sig.PoliteKill(4471)
	if err == nil {
		t.Fatal("expected error when interrupt fails")
	}
	if handle != nil {
		t.Error("no handle expected when nothing was scheduled")
	}
}

func TestDeferredKill_Cancel(t *testing.T) {
	rec := captureSignals(t)

	delay := 50 * time.Millisecond
	sig := NewSignaller(config.KillConfig{PoliteDelay: config.Duration(delay)})

	handle, err := sig.PoliteKill(4471)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !handle.Cancel() {
		t.Fatal("expected Cancel to stop the pending kill")
	}

	time.Sleep(delay + 50*time.Millisecond)

	if sent := rec.deliveries(); len(sent) != 1 {
		t.Errorf("expected only the interrupt after cancel, got %d deliveries", len(sent))
	}
}
