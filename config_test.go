// config_test.go
package simpil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	be.Err(t, os.WriteFile(path, []byte(body), 0o644), nil)
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[repl]
prompt = "simpil> "
history-file = ".hist"

[run]
color = false
step-limit = 500
trace-ast = true
`)
	cfg, err := LoadConfig(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Prompt, "simpil> ")
	be.Equal(t, cfg.HistoryFile, ".hist")
	be.Equal(t, cfg.Color, false)
	be.Equal(t, cfg.StepLimit, 500)
	be.Equal(t, cfg.TraceAST, true)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "[run]\nstep-limit = 10\n")
	cfg, err := LoadConfig(path)
	be.Err(t, err, nil)
	// Unset keys keep their defaults.
	be.Equal(t, cfg.Prompt, DefaultConfig().Prompt)
	be.Equal(t, cfg.Color, true)
	be.Equal(t, cfg.StepLimit, 10)
}

func TestLoadConfigRejectsNegativeStepLimit(t *testing.T) {
	path := writeConfig(t, "[run]\nstep-limit = -1\n")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("want error for negative step-limit")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	be.Equal(t, cfg.Prompt, "> ")
	be.Equal(t, cfg.StepLimit, 0)
	be.Equal(t, cfg.Color, true)
}
