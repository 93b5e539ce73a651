// Package config provides YAML-based gameplay configuration loading and
// difficulty presets.
package config

import "fmt"

// VanguardConfig contains all tuning for the Vertical Vanguard game.
// Every gameplay constant lives here so the simulation core carries no
// hidden globals; a config is validated once at startup, never per frame.
type VanguardConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Pickups   PickupConfig    `yaml:"pickups"`
	Powerups  PowerupConfig   `yaml:"powerups"`
	Damage    DamageConfig    `yaml:"damage"`
	Particles ParticleConfig  `yaml:"particles"`
	Leveling  LevelingConfig  `yaml:"leveling"`
}

// PlayfieldConfig defines the logical playfield dimensions.
// All entity coordinates live in this space; display scaling is the
// platform's business.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship and its resource capacities.
type PlayerConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	BaseSpeed          float64 `yaml:"base_speed"`           // Units per frame at full fuel
	FireCooldownFrames int     `yaml:"fire_cooldown_frames"` // Frames between shots
	Lives              int     `yaml:"lives"`
	MaxHP              int     `yaml:"max_hp"`
	MaxFuel            float64 `yaml:"max_fuel"`
	MaxAmmo            int     `yaml:"max_ammo"`
	FuelPerSecond      float64 `yaml:"fuel_per_second"` // Passive fuel drain
}

// BulletConfig defines player projectile parameters.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Upward units per frame
}

// EnemyConfig defines enemy movement and shooting behavior.
type EnemyConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	BaseSpeed          float64 `yaml:"base_speed"`           // Descent units per frame at level 0
	WigglePeriodFrames int     `yaml:"wiggle_period_frames"` // Horizontal step every Nth frame
	WiggleTurnChance   float64 `yaml:"wiggle_turn_chance"`   // Chance to re-roll wiggle direction
	ShootStartTime     float64 `yaml:"shoot_start_time"`     // Seconds before enemies fire back
	FireRate           float64 `yaml:"fire_rate"`            // Shots per second per enemy
	FireRatePerLevel   float64 `yaml:"fire_rate_per_level"`  // Linear fire rate scale per level
	BulletSpeed        float64 `yaml:"bullet_speed"`         // Downward units per frame
	AimFactor          float64 `yaml:"aim_factor"`           // Horizontal homing bias toward player
	AimJitter          float64 `yaml:"aim_jitter"`           // Random spread on aimed shots
}

// PickupConfig defines pickup spawning, falling, and refill amounts.
type PickupConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	SpawnIntervalFrames int     `yaml:"spawn_interval_frames"` // Ambient pickup cadence
	FallSpeed           float64 `yaml:"fall_speed"`
	FallSpeedScale      float64 `yaml:"fall_speed_scale"` // Fraction of enemy speed added
	FuelAmount          float64 `yaml:"fuel_amount"`
	AmmoAmount          int     `yaml:"ammo_amount"`
	HealthAmount        int     `yaml:"health_amount"`
	DropChance          float64 `yaml:"drop_chance"` // Chance a kill drops a pickup

	// Relative weights for drop-on-kill selection.
	DropWeightFuel   float64 `yaml:"drop_weight_fuel"`
	DropWeightAmmo   float64 `yaml:"drop_weight_ammo"`
	DropWeightSpread float64 `yaml:"drop_weight_spread"`
	DropWeightHealth float64 `yaml:"drop_weight_health"`

	// Relative weights for ambient spawns (independent of kills).
	AmbientWeightFuel   float64 `yaml:"ambient_weight_fuel"`
	AmbientWeightAmmo   float64 `yaml:"ambient_weight_ammo"`
	AmbientWeightHealth float64 `yaml:"ambient_weight_health"`
}

// PowerupConfig defines the temporary powerup effects.
// Collecting a pickup restarts its timer at the full duration; timers never
// stack.
type PowerupConfig struct {
	SpeedBoostMult     float64 `yaml:"speed_boost_mult"`
	SpeedBoostDuration float64 `yaml:"speed_boost_duration"` // Seconds
	RapidFireFactor    float64 `yaml:"rapid_fire_factor"`    // Cooldown multiplier while active
	RapidFireDuration  float64 `yaml:"rapid_fire_duration"`  // Seconds
	SpreadDuration     float64 `yaml:"spread_duration"`      // Seconds
	SpreadSideSpeed    float64 `yaml:"spread_side_speed"`    // Horizontal vx of angled bullets
}

// DamageConfig defines damage amounts and invulnerability windows.
type DamageConfig struct {
	EnemyCollide   int     `yaml:"enemy_collide"`
	EnemyBullet    int     `yaml:"enemy_bullet"`
	InvulnDuration float64 `yaml:"invuln_duration"`  // Seconds, after losing a life
	ShortHitInvuln float64 `yaml:"short_hit_invuln"` // Seconds, after a single hit
}

// ParticleConfig defines cosmetic particle effects.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"` // Particles per explosion
	BurstTTL   float64 `yaml:"burst_ttl"`   // Seconds
	BurstSpeed float64 `yaml:"burst_speed"` // Max initial velocity magnitude
	Gravity    float64 `yaml:"gravity"`     // Downward accel per frame
	BlinkTTL   float64 `yaml:"blink_ttl"`   // Pickup collection blink, seconds
}

// LevelingConfig defines the time-based difficulty progression.
type LevelingConfig struct {
	LevelDuration         float64 `yaml:"level_duration"`           // Seconds per level
	EnemySpeedPerLevel    float64 `yaml:"enemy_speed_per_level"`    // Descent speed gain per level
	SpawnIntervalBase     int     `yaml:"spawn_interval_base"`      // Frames between spawns at level 0
	SpawnIntervalPerLevel int     `yaml:"spawn_interval_per_level"` // Interval reduction per level
	SpawnIntervalRamp     float64 `yaml:"spawn_interval_ramp"`      // Extra reduction across a level
	SpawnIntervalMin      int     `yaml:"spawn_interval_min"`       // Floor, frames
}

// Validate checks the configuration for values the simulation cannot run
// with. Called once before the game loop begins; a failure here is a startup
// error, never a per-frame one.
func (c *VanguardConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield dimensions must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player dimensions must be positive"},
		{c.Player.BaseSpeed > 0, "player base_speed must be positive"},
		{c.Player.FireCooldownFrames > 0, "player fire_cooldown_frames must be positive"},
		{c.Player.Lives > 0, "player lives must be positive"},
		{c.Player.MaxHP > 0, "player max_hp must be positive"},
		{c.Player.MaxFuel > 0, "player max_fuel must be positive"},
		{c.Player.MaxAmmo > 0, "player max_ammo must be positive"},
		{c.Player.FuelPerSecond >= 0, "player fuel_per_second must not be negative"},
		{c.Bullets.Speed > 0, "bullet speed must be positive"},
		{c.Enemies.BaseSpeed > 0, "enemy base_speed must be positive"},
		{c.Enemies.WigglePeriodFrames > 0, "enemy wiggle_period_frames must be positive"},
		{c.Enemies.BulletSpeed > 0, "enemy bullet_speed must be positive"},
		{c.Pickups.SpawnIntervalFrames > 0, "pickup spawn_interval_frames must be positive"},
		{c.Pickups.DropChance >= 0 && c.Pickups.DropChance <= 1, "pickup drop_chance must be in [0, 1]"},
		{c.Powerups.SpeedBoostDuration > 0, "speed_boost_duration must be positive"},
		{c.Powerups.RapidFireDuration > 0, "rapid_fire_duration must be positive"},
		{c.Powerups.SpreadDuration > 0, "spread_duration must be positive"},
		{c.Damage.InvulnDuration > 0, "invuln_duration must be positive"},
		{c.Damage.ShortHitInvuln > 0, "short_hit_invuln must be positive"},
		{c.Particles.BurstTTL > 0, "particle burst_ttl must be positive"},
		{c.Leveling.LevelDuration > 0, "level_duration must be positive"},
		{c.Leveling.SpawnIntervalBase > 0, "spawn_interval_base must be positive"},
		{c.Leveling.SpawnIntervalMin > 0, "spawn_interval_min must be positive"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s", chk.what)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyClassic reproduces the reduced game variant: no hull
	// stability, any hit costs a life, no health or spread drops.
	DifficultyClassic DifficultyPreset = "classic"
)

// ApplyVanguardPreset modifies the config based on a difficulty preset.
func ApplyVanguardPreset(cfg *VanguardConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Pickups.DropChance = 0.60
		cfg.Enemies.FireRate = 0.05

	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Pickups.DropChance = 0.30
		cfg.Enemies.FireRate = 0.12
		cfg.Enemies.ShootStartTime = 10.0

	case DifficultyClassic:
		// One hit, one life: collapse the hp model by making every
		// damage source lethal, and retire the pickups that only make
		// sense with partial damage.
		cfg.Damage.EnemyCollide = cfg.Player.MaxHP
		cfg.Damage.EnemyBullet = cfg.Player.MaxHP
		cfg.Pickups.DropWeightFuel = 0.50
		cfg.Pickups.DropWeightAmmo = 0.50
		cfg.Pickups.DropWeightSpread = 0
		cfg.Pickups.DropWeightHealth = 0
		cfg.Pickups.AmbientWeightFuel = 0.50
		cfg.Pickups.AmbientWeightAmmo = 0.50
		cfg.Pickups.AmbientWeightHealth = 0
	}
}
