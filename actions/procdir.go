package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"flashcat.cloud/procpaw/types"
)

// procfsRoot is swapped out in tests.
var procfsRoot = "/proc"

// ProcDir renders the per-process procfs directory for inspection: the
// entry listing of /proc/<pid> followed by the content of its status
// file. A missing directory means the process exited; the resulting
// not-found error is surfaced as-is.
func ProcDir(pid types.PID) (string, error) {
	dir := filepath.Join(procfsRoot, strconv.Itoa(int(pid)))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", dir, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", dir)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		fmt.Fprintf(&b, "  %s\n", name)
	}

	statusPath := filepath.Join(dir, "status")
	if status, err := os.ReadFile(statusPath); err == nil {
		fmt.Fprintf(&b, "\n%s\n\n", statusPath)
		b.Write(status)
	}

	return b.String(), nil
}
