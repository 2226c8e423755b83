package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Exec.Interpreter != "python3" {
		t.Fatalf("unexpected interpreter: %q", cfg.Exec.Interpreter)
	}
	if cfg.Exec.PassKindArg {
		t.Fatalf("pass_kind_arg must be off by default")
	}
	if cfg.History.Enabled {
		t.Fatalf("history must be off by default")
	}
}

func TestLoadWithoutPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Exec.FetchScript != "python_client/example.py" {
		t.Fatalf("unexpected fetch script: %q", cfg.Exec.FetchScript)
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "exec:\n  interpreter: python3.12\n  pass_kind_arg: true\nhistory:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Exec.Interpreter != "python3.12" || !cfg.Exec.PassKindArg {
		t.Fatalf("yaml overlay not applied: %#v", cfg.Exec)
	}
	if !cfg.History.Enabled {
		t.Fatalf("yaml overlay not applied to history")
	}
	// Незатронутые поля остаются значениями по умолчанию.
	if cfg.Exec.CoachingScript != "python_client/ai_example.py" {
		t.Fatalf("default lost: %q", cfg.Exec.CoachingScript)
	}
}

func TestLoadEnvBeatsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("exec:\n  interpreter: python3.12\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GARMINCOACH_INTERPRETER", "/usr/local/bin/python3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Exec.Interpreter != "/usr/local/bin/python3" {
		t.Fatalf("env override not applied: %q", cfg.Exec.Interpreter)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty config")
	}
}
