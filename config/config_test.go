package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
planner:
  horizon_days: 5
  max_blocks_per_day: 4
window:
  timezone: UTC
  default:
    start: "09:00"
    end: "18:00"
lanes:
  - id: deep
    name: Deep Work
    daily_minutes: 240
    block_templates: [60, 90]
  - id: admin
    daily_minutes: 120
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Planner.HorizonDays != 5 {
		t.Errorf("horizon = %d, want 5", cfg.Planner.HorizonDays)
	}
	if cfg.Planner.MinSlotMinutes != 30 {
		t.Errorf("min slot default = %d, want 30", cfg.Planner.MinSlotMinutes)
	}
	if len(cfg.Lanes) != 2 {
		t.Fatalf("lanes = %d, want 2", len(cfg.Lanes))
	}
	ws := cfg.Window.WindowSet()
	if got := ws.Default.Minutes(); got != 540 {
		t.Errorf("window = %d minutes, want 540", got)
	}
	lanes := cfg.LaneModels()
	if lanes[0].Budget.DailyMinutes != 240 {
		t.Errorf("lane budget = %d, want 240", lanes[0].Budget.DailyMinutes)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "planner": {"horizon_days": 3},
  "lanes": [{"id": "deep", "daily_minutes": 300}]
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Default.Start != "10:00" || cfg.Window.Default.End != "20:30" {
		t.Errorf("default window = %s-%s, want 10:00-20:30", cfg.Window.Default.Start, cfg.Window.Default.End)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestValidate_WindowEndBeforeStart(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
window:
  default:
    start: "18:00"
    end: "09:00"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for end before start")
	}
}

func TestValidate_NegativeLaneBudget(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
lanes:
  - id: deep
    daily_minutes: -5
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for negative budget")
	}
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
scoring:
  weights:
    urgency: 0.9
    impact: 0.9
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for weights not summing to 1.0")
	}
}

func TestValidate_BadTimezone(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
window:
  timezone: Mars/Olympus
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestParseClock(t *testing.T) {
	if v, err := parseClock("10:30"); err != nil || v != 630 {
		t.Errorf("parseClock(10:30) = %d, %v", v, err)
	}
	for _, bad := range []string{"", "10", "25:00", "10:61", "ab:cd"} {
		if _, err := parseClock(bad); err == nil {
			t.Errorf("parseClock(%q) should fail", bad)
		}
	}
}
