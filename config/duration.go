package config

import (
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration with human-readable TOML parsing.
// Supports: "10s", "1m30s", "300ms", or a bare integer (seconds).
type Duration time.Duration

func (d *Duration) UnmarshalTOML(b []byte) error {
	str := strings.ReplaceAll(string(b), "'", "")
	str = strings.ReplaceAll(str, "\"", "")
	str = strings.TrimSpace(str)

	if str == "" || str == "0" {
		*d = 0
		return nil
	}

	// Pure integer → treat as seconds
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}

	dur, err := time.ParseDuration(str)
	if err != nil {
		return err
	}

	*d = Duration(dur)
	return nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.UnmarshalTOML(text)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
