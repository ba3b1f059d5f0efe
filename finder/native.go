package finder

import (
	"fmt"
	"os"
	"regexp"

	"github.com/shirou/gopsutil/v3/process"

	"flashcat.cloud/procpaw/types"
)

// NativeFinder walks the process table in-process instead of shelling out.
// Useful where pgrep is unavailable; semantics mirror `pgrep -f`: the
// pattern is a regexp matched against the full command line.
type NativeFinder struct{}

func NewNativeFinder() *NativeFinder {
	return &NativeFinder{}
}

func (f *NativeFinder) Search(pattern string) ([]types.PID, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	procs, err := fastProcessList()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	self := int32(os.Getpid())

	var pids []types.PID
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		cmdline, err := p.Cmdline()
		if err != nil {
			// process vanished mid-walk
			continue
		}
		if cmdline == "" {
			continue
		}
		if re.MatchString(cmdline) {
			pids = append(pids, types.PID(p.Pid))
		}
	}

	return pids, nil
}

// fastProcessList returns lightweight process handles for all running PIDs.
// Each handle only has the PID populated; attributes are fetched lazily on demand.
func fastProcessList() ([]*process.Process, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}

	result := make([]*process.Process, len(pids))
	for i, pid := range pids {
		result[i] = &process.Process{Pid: pid}
	}
	return result, nil
}
