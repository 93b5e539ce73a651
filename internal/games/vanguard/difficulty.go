package vanguard

import (
	"math"

	"github.com/vovakirdan/vanguard/internal/config"
)

// Difficulty is derived each frame from cumulative session time; it is a
// pure function of elapsed seconds and the leveling config, never stored.
type Difficulty struct {
	Level         int     // Completed level count
	EnemySpeed    float64 // Descent units per frame
	SpawnInterval int     // Frames between enemy spawns
}

// difficultyAt computes the difficulty parameters for a point in time.
// Enemy speed ramps smoothly: the per-level step plus a within-level
// interpolation of the next step, so there is no discontinuity beyond the
// configured increment at level boundaries.
func difficultyAt(timeS, baseEnemySpeed float64, lv config.LevelingConfig) Difficulty {
	level := int(timeS / lv.LevelDuration)
	frac := (timeS - float64(level)*lv.LevelDuration) / lv.LevelDuration

	interval := int(math.Round(float64(lv.SpawnIntervalBase) -
		float64(level*lv.SpawnIntervalPerLevel) -
		frac*lv.SpawnIntervalRamp))
	if interval < lv.SpawnIntervalMin {
		interval = lv.SpawnIntervalMin
	}

	return Difficulty{
		Level:         level,
		EnemySpeed:    baseEnemySpeed + float64(level)*lv.EnemySpeedPerLevel + frac*lv.EnemySpeedPerLevel,
		SpawnInterval: interval,
	}
}

// fireProbability returns the chance that a single enemy fires this frame.
// Scaling by dt keeps the firing frequency frame-rate independent.
func fireProbability(level int, dt float64, en config.EnemyConfig) float64 {
	return en.FireRate * (1 + float64(level)*en.FireRatePerLevel) * dt
}
