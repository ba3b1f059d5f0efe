package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig_DefaultsWithoutFile(t *testing.T) {
	c, err := InitConfig(filepath.Join(t.TempDir(), "missing.toml"), "")
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}

	if c.LogConfig.Level != "info" {
		t.Errorf("expected default level info, got %s", c.LogConfig.Level)
	}
	if c.LogConfig.Output != "procpaw.log" {
		t.Errorf("expected file log output by default, got %s", c.LogConfig.Output)
	}
	if c.Search.Strategy != "pgrep" {
		t.Errorf("expected default strategy pgrep, got %s", c.Search.Strategy)
	}
	if c.Search.PgrepBin != "pgrep" {
		t.Errorf("expected pgrep binary default, got %s", c.Search.PgrepBin)
	}
	if time.Duration(c.Kill.PoliteDelay) != 10*time.Second {
		t.Errorf("expected 10s polite delay, got %v", c.Kill.PoliteDelay)
	}
	if c.Trace.TracerBin != "strace" {
		t.Errorf("expected strace default, got %s", c.Trace.TracerBin)
	}
	if c.Trace.SudoBin != "sudo" {
		t.Errorf("expected sudo default, got %s", c.Trace.SudoBin)
	}
	if time.Duration(c.Trace.Duration) != 10*time.Second {
		t.Errorf("expected 10s trace duration, got %v", c.Trace.Duration)
	}
	if c.Trace.SessionName != "procpaw-trace" {
		t.Errorf("expected fixed session name, got %s", c.Trace.SessionName)
	}
	if c.Trace.BufferLines != 2000 {
		t.Errorf("expected 2000 buffer lines, got %d", c.Trace.BufferLines)
	}
}

func TestInitConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "procpaw.toml")
	content := `
[log]
level = "debug"
output = "stderr"

[search]
strategy = "native"
timeout = "2s"

[kill]
polite_delay = "3s"

[trace]
tracer_bin = "ltrace"
duration = "5s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := InitConfig(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.LogConfig.Level != "debug" {
		t.Errorf("expected debug, got %s", c.LogConfig.Level)
	}
	if c.Search.Strategy != "native" {
		t.Errorf("expected native, got %s", c.Search.Strategy)
	}
	if time.Duration(c.Search.Timeout) != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", c.Search.Timeout)
	}
	if time.Duration(c.Kill.PoliteDelay) != 3*time.Second {
		t.Errorf("expected 3s polite delay, got %v", c.Kill.PoliteDelay)
	}
	if c.Trace.TracerBin != "ltrace" {
		t.Errorf("expected ltrace, got %s", c.Trace.TracerBin)
	}
	if time.Duration(c.Trace.Duration) != 5*time.Second {
		t.Errorf("expected 5s, got %v", c.Trace.Duration)
	}
}

func TestInitConfig_LoglevelFlagWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "procpaw.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := InitConfig(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.LogConfig.Level != "debug" {
		t.Errorf("flag must override file, got %s", c.LogConfig.Level)
	}
}

func TestInitConfig_UnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "procpaw.toml")
	if err := os.WriteFile(path, []byte("[search]\nstrategy = \"psql\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := InitConfig(path, ""); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestDuration_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds suffix", input: `"10s"`, want: 10 * time.Second},
		{name: "compound", input: `"1m30s"`, want: 90 * time.Second},
		{name: "milliseconds", input: `"300ms"`, want: 300 * time.Millisecond},
		{name: "bare integer is seconds", input: "7", want: 7 * time.Second},
		{name: "zero", input: "0", want: 0},
		{name: "garbage", input: `"over 9000"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalTOML([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if time.Duration(d) != tt.want {
				t.Errorf("expected %v, got %v", tt.want, time.Duration(d))
			}
		})
	}
}
