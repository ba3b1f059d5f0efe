package procinfo

import (
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"flashcat.cloud/procpaw/types"
)

// Reader takes point-in-time attribute snapshots from the OS process
// table. Nothing is cached: every call re-reads, so a redraw of the
// candidate list always reflects the current state.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Attributes returns a snapshot for pid, or (nil, nil) when the process no
// longer exists; a PID that vanished between lookup and formatting is an
// expected condition, not an error. Individual attribute reads that fail
// leave the field empty rather than discarding the record.
func (r *Reader) Attributes(pid types.PID) (*types.ProcessAttributes, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, nil
	}

	attrs := &types.ProcessAttributes{}

	if name, err := p.Name(); err == nil {
		attrs.Name = name
	}

	if cmdline, err := p.Cmdline(); err == nil {
		attrs.Cmdline = cmdline
	}

	if created, err := p.CreateTime(); err == nil && created > 0 {
		elapsed := time.Since(time.UnixMilli(created)).Truncate(time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
		attrs.Elapsed = elapsed.String()
	}

	if status, err := p.Status(); err == nil && len(status) > 0 {
		attrs.State = stateCode(status[0])
	}

	if nice, err := p.Nice(); err == nil {
		attrs.Nice = strconv.Itoa(int(nice))
	}

	if user, err := p.Username(); err == nil {
		attrs.User = user
	}

	if mem, err := p.MemoryInfo(); err == nil && mem != nil {
		// kernel counters are in bytes here; HumanizeKiB wants KiB
		attrs.Memory = HumanizeKiB(mem.RSS / 1024)
	}

	return attrs, nil
}

// stateCode maps gopsutil status words to the classic ps single-letter
// codes.
func stateCode(status string) string {
	switch status {
	case process.Running:
		return "R"
	case process.Sleep:
		return "S"
	case process.Stop:
		return "T"
	case process.Idle:
		return "I"
	case process.Zombie:
		return "Z"
	case process.Wait:
		return "D"
	case process.Lock:
		return "L"
	}
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1])
}

// HumanizeKiB renders a resident-set-size counter, given in KiB as the
// kernel reports it, with binary prefixes. Integral values print without a
// decimal part: 1024 KiB is "1 MiB", not "1.0 MiB".
func HumanizeKiB(kb uint64) string {
	if kb == 0 {
		return "0 B"
	}

	units := []string{"KiB", "MiB", "GiB", "TiB"}
	v := float64(kb)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10) + " " + units[i]
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + units[i]
}
