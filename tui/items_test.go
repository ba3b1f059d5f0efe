package tui

import (
	"strings"
	"testing"

	"flashcat.cloud/procpaw/session"
	"flashcat.cloud/procpaw/types"
)

func TestCandidateItem_SplitsLabel(t *testing.T) {
	c := session.Format(4471, &types.ProcessAttributes{
		Name:    "sleep",
		Cmdline: "sleep 300",
		User:    "alice",
		State:   "S",
		Nice:    "0",
		Elapsed: "5m0s",
		Memory:  "1.2 MiB",
	})

	item := candidateItem{candidate: c}

	if item.Title() != "sleep [4471]" {
		t.Errorf("unexpected title: %q", item.Title())
	}

	desc := item.Description()
	for _, want := range []string{"sleep 300", "alice", "1.2 MiB"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q: %q", want, desc)
		}
	}

	if item.FilterValue() != c.Label {
		t.Error("filter value must cover the whole label")
	}
}

func TestCandidateItem_SingleLineLabel(t *testing.T) {
	item := candidateItem{candidate: types.Candidate{Label: "bare [1]", PID: 1}}

	if item.Title() != "bare [1]" {
		t.Errorf("unexpected title: %q", item.Title())
	}
	if item.Description() != "" {
		t.Errorf("expected empty description, got %q", item.Description())
	}
}
