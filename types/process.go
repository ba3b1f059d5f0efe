package types

// PID identifies one live OS process. PIDs are reused by the kernel after
// process exit, so a PID is only trusted at the moment it was looked up;
// every action re-resolves failure at delivery time instead of assuming
// the target still exists.
type PID int32

// ProcessAttributes is a point-in-time snapshot of one process. Fields that
// could not be read are left empty rather than failing the whole record.
type ProcessAttributes struct {
	Name    string // executable name, e.g. "sleep"
	Cmdline string // full command line, e.g. "sleep 300"
	Elapsed string // wall time since process start
	State   string // single-letter state code, e.g. "S"
	Nice    string // nice value as decimal string
	User    string // owning user name
	Memory  string // resident set size, humanized, e.g. "1.2 MiB"
}

// Candidate is one selectable row in the picker: a rendered multi-line
// label plus the PID it stands for. Candidates live only for the duration
// of one selection session.
type Candidate struct {
	Label string
	PID   PID
}
