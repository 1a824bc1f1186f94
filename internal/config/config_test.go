package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataPath != "habit_data.json" || cfg.Theme != "light" || cfg.Mode != ModeGrid {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Server.Addr != ":8000" || cfg.Render.Weeks != 53 || cfg.Rows.Days != 21 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Rows.Habits) != 5 || cfg.Rows.Habits[0] != "water" {
		t.Fatalf("unexpected default habits: %v", cfg.Rows.Habits)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
data_path: data/habits.json
theme: Dark
mode: rows
rows:
  days: 14
  habits: [" Read ", "Water", ""]
generate:
  daily: true
  time: "06:30"
`)
	t.Setenv("HABITCAL_SERVER_ADDR", ":9090")
	t.Setenv("HABITCAL_GENERATE_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataPath != "data/habits.json" || cfg.Theme != "dark" || cfg.Mode != ModeRows {
		t.Fatalf("unexpected file values: %+v", cfg)
	}
	if cfg.Rows.Days != 14 || strings.Join(cfg.Rows.Habits, ",") != "read,water" {
		t.Fatalf("unexpected rows config: %+v", cfg.Rows)
	}
	if !cfg.Generate.Daily || cfg.Generate.Time != "06:30" || cfg.Generate.Seed != 42 {
		t.Fatalf("unexpected generate config: %+v", cfg.Generate)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("expected env override for addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "theme: blue\nmode: spiral\nrender:\n  weeks: 0\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"theme", "mode", "render.weeks"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLocation(t *testing.T) {
	cfg := Default()
	if cfg.Location() != time.Local {
		t.Fatal("expected local timezone by default")
	}
	cfg.Timezone = "UTC"
	if cfg.Location().String() != "UTC" {
		t.Fatalf("expected UTC, got %s", cfg.Location())
	}
	cfg.Timezone = "Not/AZone"
	if cfg.Location() != time.Local {
		t.Fatal("expected fallback to local for unknown zone")
	}
}
