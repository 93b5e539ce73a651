package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vanguard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadVanguardMergesPartialConfig(t *testing.T) {
	path := writeConfigFile(t, "player:\n  lives: 5\n")

	cfg, err := LoadVanguard(path)
	if err != nil {
		t.Fatalf("partial config should load: %v", err)
	}

	if cfg.Player.Lives != 5 {
		t.Errorf("expected 5 lives from file, got %d", cfg.Player.Lives)
	}

	// Fields the file omits keep their defaults instead of zeroing out
	def := DefaultVanguardConfig()
	if cfg.Pickups.SpawnIntervalFrames != def.Pickups.SpawnIntervalFrames {
		t.Errorf("omitted spawn_interval_frames should stay at default %d, got %d",
			def.Pickups.SpawnIntervalFrames, cfg.Pickups.SpawnIntervalFrames)
	}
	if cfg.Leveling.SpawnIntervalBase != def.Leveling.SpawnIntervalBase {
		t.Errorf("omitted spawn_interval_base should stay at default %d, got %d",
			def.Leveling.SpawnIntervalBase, cfg.Leveling.SpawnIntervalBase)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("merged config must validate: %v", err)
	}
}

func TestLoadVanguardRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "pickups:\n  spawn_interval_frames: 0\n")

	if _, err := LoadVanguard(path); err == nil {
		t.Fatal("config with zero spawn_interval_frames should be rejected at load time")
	}
}

func TestLoadVanguardRejectsMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "player: [not a mapping\n")

	if _, err := LoadVanguard(path); err == nil {
		t.Fatal("malformed YAML should be rejected at load time")
	}
}

func TestLoadVanguardMissingExplicitPath(t *testing.T) {
	if _, err := LoadVanguard(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config path should be an error, not a fallback")
	}
}
