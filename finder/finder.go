package finder

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"flashcat.cloud/procpaw/config"
	"flashcat.cloud/procpaw/pkg/cmdx"
	"flashcat.cloud/procpaw/types"
)

// ErrEmptyPattern is returned when Search is called with an empty pattern.
var ErrEmptyPattern = errors.New("search pattern is empty")

// PIDFinder resolves a text pattern to the set of matching PIDs. The
// pattern is a regular expression matched against full command lines.
// Implementations carry no state between calls; every Search is a fresh
// point-in-time lookup.
type PIDFinder interface {
	Search(pattern string) ([]types.PID, error)
}

// New returns the finder selected by the search config. InitConfig has
// already validated the strategy name.
func New(c config.SearchConfig) PIDFinder {
	if c.Strategy == "native" {
		return NewNativeFinder()
	}
	return NewPgrepFinder(c)
}

// PgrepFinder shells out to pgrep and parses its newline-delimited PID
// output. This is the default strategy.
type PgrepFinder struct {
	bin     string
	timeout time.Duration
}

func NewPgrepFinder(c config.SearchConfig) *PgrepFinder {
	return &PgrepFinder{
		bin:     c.PgrepBin,
		timeout: time.Duration(c.Timeout),
	}
}

// runSearch is swapped out in tests.
var runSearch = cmdx.Output

func (f *PgrepFinder) Search(pattern string) ([]types.PID, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	// pattern goes through argv, never a shell, so no quoting is needed
	out, stderr, err := runSearch(f.bin, []string{"-f", pattern}, f.timeout)
	if err != nil {
		// pgrep exits 1 when nothing matched; that is an empty result,
		// not a lookup failure
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		if len(stderr) > 0 {
			return nil, fmt.Errorf("%s failed: %w: %s", f.bin, err, strings.TrimSpace(string(stderr)))
		}
		return nil, fmt.Errorf("%s failed: %w", f.bin, err)
	}

	return ParsePIDLines(out)
}

// ParsePIDLines parses newline-delimited decimal PIDs. Blank lines are
// skipped; a non-numeric line aborts the whole lookup rather than being
// silently dropped, so a malformed search-utility response never shows up
// as a partial result.
func ParsePIDLines(out []byte) ([]types.PID, error) {
	var pids []types.PID

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		pid, err := strconv.ParseUint(line, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("unparseable pid line %q: %w", line, err)
		}

		pids = append(pids, types.PID(pid))
	}

	return pids, nil
}
