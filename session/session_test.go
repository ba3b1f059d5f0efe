package session

import (
	"errors"
	"strings"
	"testing"

	"flashcat.cloud/procpaw/types"
)

type stubFinder struct {
	pids map[string][]types.PID
	err  error
}

func (f *stubFinder) Search(pattern string) ([]types.PID, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pids[pattern], nil
}

type stubProvider struct {
	attrs map[types.PID]*types.ProcessAttributes
	err   error
}

func (p *stubProvider) Attributes(pid types.PID) (*types.ProcessAttributes, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.attrs[pid], nil
}

func TestList_EndToEnd(t *testing.T) {
	f := &stubFinder{pids: map[string][]types.PID{"sleep123": {4471}}}
	p := &stubProvider{attrs: map[types.PID]*types.ProcessAttributes{
		4471: {
			Name:    "sleep",
			Cmdline: "sleep 300",
			State:   "S",
			Nice:    "0",
			User:    "alice",
			Memory:  "1.2 MiB",
			Elapsed: "5m0s",
		},
	}}

	candidates, err := New(f, p).List("sleep123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	c := candidates[0]
	if c.PID != 4471 {
		t.Errorf("expected pid 4471, got %d", c.PID)
	}

	for _, want := range []string{"sleep", "sleep 300", "S", "0", "alice", "1.2 MiB", "4471"} {
		if !strings.Contains(c.Label, want) {
			t.Errorf("label missing %q:\n%s", want, c.Label)
		}
	}
}

func TestList_ExcludesVanishedProcesses(t *testing.T) {
	f := &stubFinder{pids: map[string][]types.PID{"x": {1, 2, 3}}}
	p := &stubProvider{attrs: map[types.PID]*types.ProcessAttributes{
		1: {Name: "a"},
		3: {Name: "c"},
		// pid 2 exited between lookup and enrichment
	}}

	candidates, err := New(f, p).List("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].PID != 1 || candidates[1].PID != 3 {
		t.Errorf("expected pids [1 3], got [%d %d]", candidates[0].PID, candidates[1].PID)
	}
}

func TestList_LookupFailurePropagates(t *testing.T) {
	wantErr := errors.New("pgrep exploded")
	f := &stubFinder{err: wantErr}
	p := &stubProvider{}

	_, err := New(f, p).List("x")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected lookup failure to propagate, got %v", err)
	}
}

func TestFormat_MissingFieldsStayEmpty(t *testing.T) {
	c := Format(123, &types.ProcessAttributes{})

	if c.PID != 123 {
		t.Errorf("expected pid 123, got %d", c.PID)
	}
	if !strings.Contains(c.Label, "[123]") {
		t.Errorf("label missing pid: %s", c.Label)
	}
	if !strings.Contains(c.Label, "cmd: ") {
		t.Errorf("label missing cmd placeholder: %s", c.Label)
	}
}

func TestFormat_MultiLine(t *testing.T) {
	c := Format(7, &types.ProcessAttributes{Name: "nginx", Cmdline: "nginx -g daemon off;"})

	lines := strings.Split(c.Label, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3-line label, got %d:\n%s", len(lines), c.Label)
	}
	if !strings.HasPrefix(lines[0], "nginx [7]") {
		t.Errorf("unexpected first line: %s", lines[0])
	}
}
