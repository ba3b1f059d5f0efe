package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"flashcat.cloud/procpaw/actions"
	"flashcat.cloud/procpaw/types"
)

// candidateItem adapts a Candidate to the bubbles list component. The
// first label line becomes the title, the remaining lines the description.
type candidateItem struct {
	candidate types.Candidate
}

func (i candidateItem) Title() string {
	label := i.candidate.Label
	if idx := strings.IndexByte(label, '\n'); idx >= 0 {
		return label[:idx]
	}
	return label
}

func (i candidateItem) Description() string {
	label := i.candidate.Label
	idx := strings.IndexByte(label, '\n')
	if idx < 0 {
		return ""
	}
	rest := strings.Split(label[idx+1:], "\n")
	for j := range rest {
		rest[j] = strings.TrimSpace(rest[j])
	}
	return strings.Join(rest, "  ")
}

func (i candidateItem) FilterValue() string { return i.candidate.Label }

func candidateItems(candidates []types.Candidate) []list.Item {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = candidateItem{candidate: c}
	}
	return items
}

// actionItem adapts a registry entry to the bubbles list component.
type actionItem struct {
	entry actions.Entry
}

func (i actionItem) Title() string       { return i.entry.Label }
func (i actionItem) Description() string { return "" }
func (i actionItem) FilterValue() string { return i.entry.Label }

func actionItems(registry *actions.Registry) []list.Item {
	entries := registry.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = actionItem{entry: e}
	}
	return items
}
