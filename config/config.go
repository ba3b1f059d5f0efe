package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/toolkits/pkg/file"
)

type LogConfig struct {
	Level  string                 `toml:"level"`
	Format string                 `toml:"format"`
	Output string                 `toml:"output"`
	Fields map[string]interface{} `toml:"fields"`
}

type SearchConfig struct {
	// Strategy picks the PID lookup implementation: "pgrep" shells out to
	// the pgrep binary, "native" walks the process table in-process.
	Strategy string   `toml:"strategy"`
	PgrepBin string   `toml:"pgrep_bin"`
	Timeout  Duration `toml:"timeout"`
}

type KillConfig struct {
	// PoliteDelay is the gap between the interrupt and the follow-up kill
	// of the polite-kill action.
	PoliteDelay Duration `toml:"polite_delay"`
}

type TraceConfig struct {
	TracerBin   string   `toml:"tracer_bin"`
	SudoBin     string   `toml:"sudo_bin"`
	Duration    Duration `toml:"duration"`
	SessionName string   `toml:"session_name"`
	BufferLines int      `toml:"buffer_lines"`
}

type ConfigType struct {
	ConfigFile string

	LogConfig LogConfig    `toml:"log"`
	Search    SearchConfig `toml:"search"`
	Kill      KillConfig   `toml:"kill"`
	Trace     TraceConfig  `toml:"trace"`
}

// InitConfig loads the optional TOML config file and fills defaults. A
// missing file is not an error: procpaw runs with defaults out of the box.
// loglevel, if non-empty, overrides whatever the file says.
func InitConfig(configFile string, loglevel string) (*ConfigType, error) {
	c := &ConfigType{ConfigFile: configFile}

	if configFile != "" && file.IsExist(configFile) {
		if _, err := toml.DecodeFile(configFile, c); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	if loglevel != "" {
		c.LogConfig.Level = loglevel
	}

	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}

	if c.LogConfig.Format == "" {
		c.LogConfig.Format = "json"
	}

	if len(c.LogConfig.Output) == 0 {
		// The TUI owns the terminal, so logs default to a file.
		c.LogConfig.Output = "procpaw.log"
	}

	if c.LogConfig.Fields == nil {
		c.LogConfig.Fields = make(map[string]interface{})
	}

	if c.Search.Strategy == "" {
		c.Search.Strategy = "pgrep"
	}

	if c.Search.Strategy != "pgrep" && c.Search.Strategy != "native" {
		return nil, fmt.Errorf("unknown search strategy: %q", c.Search.Strategy)
	}

	if c.Search.PgrepBin == "" {
		c.Search.PgrepBin = "pgrep"
	}

	if c.Search.Timeout == 0 {
		c.Search.Timeout = Duration(5 * time.Second)
	}

	if c.Kill.PoliteDelay == 0 {
		c.Kill.PoliteDelay = Duration(10 * time.Second)
	}

	if c.Trace.TracerBin == "" {
		c.Trace.TracerBin = "strace"
	}

	if c.Trace.SudoBin == "" {
		c.Trace.SudoBin = "sudo"
	}

	if c.Trace.Duration == 0 {
		c.Trace.Duration = Duration(10 * time.Second)
	}

	if c.Trace.SessionName == "" {
		c.Trace.SessionName = "procpaw-trace"
	}

	if c.Trace.BufferLines == 0 {
		c.Trace.BufferLines = 2000
	}

	return c, nil
}
