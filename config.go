// config.go: optional host configuration loaded from a simpil.toml file.
package simpil

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// ConfigFileName is the file the CLI looks for in the working directory.
const ConfigFileName = "simpil.toml"

// Config carries the host-tunable settings for the CLI and interpreter.
type Config struct {
	Prompt      string // REPL prompt
	HistoryFile string // REPL history file name (under the home directory)
	Color       bool   // styled diagnostics and results
	StepLimit   int    // statement execution cap, 0 = unlimited
	TraceAST    bool   // dump the parsed program before running
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: ".simpil_history",
		Color:       true,
	}
}

// tomlConfig represents the config file as it is encoded in TOML.
type tomlConfig struct {
	Repl *tomlRepl `toml:"repl"`
	Run  *tomlRun  `toml:"run"`
}

type tomlRepl struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history-file"`
}

type tomlRun struct {
	Color     *bool `toml:"color"`
	StepLimit int   `toml:"step-limit"`
	TraceAST  bool  `toml:"trace-ast"`
}

// LoadConfig reads a TOML config file and merges it over the defaults.
func LoadConfig(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var tc tomlConfig
	if err := tree.Unmarshal(&tc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if tc.Repl != nil {
		if tc.Repl.Prompt != "" {
			cfg.Prompt = tc.Repl.Prompt
		}
		if tc.Repl.HistoryFile != "" {
			cfg.HistoryFile = tc.Repl.HistoryFile
		}
	}
	if tc.Run != nil {
		if tc.Run.Color != nil {
			cfg.Color = *tc.Run.Color
		}
		if tc.Run.StepLimit < 0 {
			return nil, fmt.Errorf("%s: step-limit must not be negative", path)
		}
		cfg.StepLimit = tc.Run.StepLimit
		cfg.TraceAST = tc.Run.TraceAST
	}
	return cfg, nil
}
