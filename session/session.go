package session

import (
	"fmt"

	"flashcat.cloud/procpaw/finder"
	"flashcat.cloud/procpaw/types"
)

// AttributesProvider yields a point-in-time attribute snapshot for a PID.
// A (nil, nil) return means the process no longer exists.
type AttributesProvider interface {
	Attributes(pid types.PID) (*types.ProcessAttributes, error)
}

// Session turns a search pattern into displayable candidates: finder
// resolves PIDs, the provider enriches each one, Format renders the label.
// Every List call is a fresh snapshot; nothing is cached between calls.
type Session struct {
	finder   finder.PIDFinder
	provider AttributesProvider
}

func New(f finder.PIDFinder, p AttributesProvider) *Session {
	return &Session{finder: f, provider: p}
}

// List resolves pattern to candidates. PIDs whose process vanished between
// lookup and enrichment are excluded rather than failing the listing.
func (s *Session) List(pattern string) ([]types.Candidate, error) {
	pids, err := s.finder.Search(pattern)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.Candidate, 0, len(pids))
	for _, pid := range pids {
		attrs, err := s.provider.Attributes(pid)
		if err != nil || attrs == nil {
			continue
		}
		candidates = append(candidates, Format(pid, attrs))
	}

	return candidates, nil
}

// Format renders one candidate. Pure function of its inputs; empty
// attribute fields stay empty in the label instead of aborting.
func Format(pid types.PID, attrs *types.ProcessAttributes) types.Candidate {
	label := fmt.Sprintf("%s [%d]\n  cmd: %s\n  user: %s  state: %s  nice: %s  elapsed: %s  mem: %s",
		attrs.Name, pid, attrs.Cmdline,
		attrs.User, attrs.State, attrs.Nice, attrs.Elapsed, attrs.Memory)

	return types.Candidate{Label: label, PID: pid}
}
