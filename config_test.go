package markovrps

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
learning:
  decrease_value: 0.02
  increase_value: 0.2
match:
  max_rounds: 50
  score_limit: 15
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Learning.DecreaseValue != 0.02 || cfg.Learning.IncreaseValue != 0.2 {
		t.Errorf("unexpected learning config: %+v", cfg.Learning)
	}
	if cfg.Match.MaxRounds != 50 || cfg.Match.ScoreLimit != 15 {
		t.Errorf("unexpected match config: %+v", cfg.Match)
	}
}

func TestLoadConfigDefaultsMissingSections(t *testing.T) {
	path := writeConfig(t, `
match:
  max_rounds: 5
  score_limit: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Learning != DefaultConfig() {
		t.Errorf("missing learning section should default, got %+v", cfg.Learning)
	}
	if cfg.Match.MaxRounds != 5 {
		t.Errorf("unexpected match config: %+v", cfg.Match)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
learning:
  decrease_value: 0.5
  increase_value: 0.1
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for decrease_value above increase_value")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
