package actions

import "flashcat.cloud/procpaw/types"

// Kind tells the front-end how to dispatch an entry. Plain entries run
// their function directly; procdir and trace entries need display or
// credential handling, so the front-end routes them itself.
type Kind int

const (
	KindSignal Kind = iota
	KindProcDir
	KindCopy
	KindTrace
)

// Entry is one row of the action table: a label plus a one-argument
// operation on a PID. Run is nil for kinds the front-end dispatches.
type Entry struct {
	Label string
	Kind  Kind
	Run   func(pid types.PID) error
}

// Registry is the ordered action table, built once at startup. The order
// is the presentation order; the first entry is the default choice.
type Registry struct {
	entries []Entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(label string, kind Kind, run func(types.PID) error) {
	r.entries = append(r.entries, Entry{Label: label, Kind: kind, Run: run})
}

func (r *Registry) Entries() []Entry {
	return r.entries
}

// Default returns the entry used when no explicit choice is made.
func (r *Registry) Default() Entry {
	return r.entries[0]
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// BuildRegistry assembles the standard action table in presentation order.
func BuildRegistry(sig *Signaller) *Registry {
	r := NewRegistry()
	r.Register("Send SIGINT", KindSignal, sig.Interrupt)
	r.Register("Send SIGKILL", KindSignal, sig.Kill)
	r.Register("Send SIGSTOP", KindSignal, sig.Stop)
	r.Register("Send SIGCONT", KindSignal, sig.Continue)
	r.Register("Polite kill (SIGINT now, SIGKILL later)", KindSignal, func(pid types.PID) error {
		_, err := sig.PoliteKill(pid)
		return err
	})
	r.Register("Open /proc directory", KindProcDir, nil)
	r.Register("Copy PID", KindCopy, CopyPID)
	r.Register("Timed trace", KindTrace, nil)
	return r
}
