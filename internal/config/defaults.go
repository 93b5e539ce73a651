package config

import (
	_ "embed"
)

//go:embed defaults/vanguard.yaml
var defaultVanguardYAML []byte

// DefaultVanguardConfig returns the default Vertical Vanguard configuration.
// Values are the reference tuning the game was balanced against.
func DefaultVanguardConfig() VanguardConfig {
	return VanguardConfig{
		Playfield: PlayfieldConfig{
			Width:  64,
			Height: 64,
		},
		Player: PlayerConfig{
			Width:              3,
			Height:             3,
			BaseSpeed:          1.0,
			FireCooldownFrames: 6,
			Lives:              3,
			MaxHP:              100,
			MaxFuel:            160.0,
			MaxAmmo:            35,
			FuelPerSecond:      1.8,
		},
		Bullets: BulletConfig{
			Width:  1,
			Height: 2,
			Speed:  2.5,
		},
		Enemies: EnemyConfig{
			Width:              3,
			Height:             3,
			BaseSpeed:          0.12,
			WigglePeriodFrames: 10,
			WiggleTurnChance:   0.2,
			ShootStartTime:     20.0,
			FireRate:           0.08,
			FireRatePerLevel:   0.12,
			BulletSpeed:        0.9,
			AimFactor:          0.05,
			AimJitter:          0.2,
		},
		Pickups: PickupConfig{
			Width:               2,
			Height:              2,
			SpawnIntervalFrames: 240,
			FallSpeed:           0.4,
			FallSpeedScale:      0.2,
			FuelAmount:          60,
			AmmoAmount:          12,
			HealthAmount:        40,
			DropChance:          0.45,
			DropWeightFuel:      0.40,
			DropWeightAmmo:      0.40,
			DropWeightSpread:    0.10,
			DropWeightHealth:    0.10,
			AmbientWeightFuel:   0.40,
			AmbientWeightAmmo:   0.40,
			AmbientWeightHealth: 0.20,
		},
		Powerups: PowerupConfig{
			SpeedBoostMult:     1.6,
			SpeedBoostDuration: 4.0,
			RapidFireFactor:    0.5,
			RapidFireDuration:  5.0,
			SpreadDuration:     60.0,
			SpreadSideSpeed:    0.6,
		},
		Damage: DamageConfig{
			EnemyCollide:   48,
			EnemyBullet:    28,
			InvulnDuration: 1.2,
			ShortHitInvuln: 0.18,
		},
		Particles: ParticleConfig{
			BurstCount: 10,
			BurstTTL:   0.6,
			BurstSpeed: 1.2,
			Gravity:    0.02,
			BlinkTTL:   0.12,
		},
		Leveling: LevelingConfig{
			LevelDuration:         120.0,
			EnemySpeedPerLevel:    0.06,
			SpawnIntervalBase:     56,
			SpawnIntervalPerLevel: 4,
			SpawnIntervalRamp:     2.0,
			SpawnIntervalMin:      20,
		},
	}
}
