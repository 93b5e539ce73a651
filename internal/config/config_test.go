package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultVanguardConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var parsed VanguardConfig
	if err := yaml.Unmarshal(defaultVanguardYAML, &parsed); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}

	hardcoded := DefaultVanguardConfig()
	if parsed != hardcoded {
		t.Errorf("embedded default diverged from DefaultVanguardConfig:\nyaml: %+v\ncode: %+v", parsed, hardcoded)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VanguardConfig)
	}{
		{"zero playfield", func(c *VanguardConfig) { c.Playfield.Width = 0 }},
		{"negative base speed", func(c *VanguardConfig) { c.Player.BaseSpeed = -1 }},
		{"zero lives", func(c *VanguardConfig) { c.Player.Lives = 0 }},
		{"zero max hp", func(c *VanguardConfig) { c.Player.MaxHP = 0 }},
		{"zero fire cooldown", func(c *VanguardConfig) { c.Player.FireCooldownFrames = 0 }},
		{"drop chance above one", func(c *VanguardConfig) { c.Pickups.DropChance = 1.5 }},
		{"zero spread duration", func(c *VanguardConfig) { c.Powerups.SpreadDuration = 0 }},
		{"negative invuln", func(c *VanguardConfig) { c.Damage.InvulnDuration = -0.5 }},
		{"zero level duration", func(c *VanguardConfig) { c.Leveling.LevelDuration = 0 }},
		{"zero spawn floor", func(c *VanguardConfig) { c.Leveling.SpawnIntervalMin = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultVanguardConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestClassicPresetCollapsesHPModel(t *testing.T) {
	cfg := DefaultVanguardConfig()
	ApplyVanguardPreset(&cfg, DifficultyClassic)

	if cfg.Damage.EnemyCollide != cfg.Player.MaxHP {
		t.Errorf("classic collide damage = %d, expected max hp %d", cfg.Damage.EnemyCollide, cfg.Player.MaxHP)
	}
	if cfg.Damage.EnemyBullet != cfg.Player.MaxHP {
		t.Errorf("classic bullet damage = %d, expected max hp %d", cfg.Damage.EnemyBullet, cfg.Player.MaxHP)
	}
	if cfg.Pickups.DropWeightHealth != 0 || cfg.Pickups.AmbientWeightHealth != 0 {
		t.Error("classic preset must not drop health pickups")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic preset config must still validate: %v", err)
	}
}

func TestPresetAdjustsLives(t *testing.T) {
	easy := DefaultVanguardConfig()
	ApplyVanguardPreset(&easy, DifficultyEasy)
	hard := DefaultVanguardConfig()
	ApplyVanguardPreset(&hard, DifficultyHard)

	if easy.Player.Lives <= hard.Player.Lives {
		t.Errorf("easy lives (%d) should exceed hard lives (%d)", easy.Player.Lives, hard.Player.Lives)
	}
}
