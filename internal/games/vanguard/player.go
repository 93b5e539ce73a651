package vanguard

import "github.com/vovakirdan/vanguard/internal/core"

// Player is the player-controlled ship. All counters saturate at their
// bounds; none of them ever goes negative or exceeds its maximum.
type Player struct {
	X, Y         float64
	FireCooldown int // Frames until the next shot is allowed
	Lives        int
	HP           int
	Fuel         float64
	Ammo         int

	// Independent countdown timers, in seconds. Each decays toward zero
	// and has no effect once expired; collecting the matching pickup
	// restarts it at full duration rather than stacking.
	InvulnTime     float64
	SpeedBoostTime float64
	RapidFireTime  float64
	SpreadTime     float64
}

// fuelRatio returns remaining fuel as a fraction of capacity, clamped to
// [0, 1].
func (p *Player) fuelRatio(maxFuel float64) float64 {
	return core.ClampF(p.Fuel/maxFuel, 0, 1)
}

// invulnerable reports whether damage checks are currently suppressed.
func (p *Player) invulnerable() bool {
	return p.InvulnTime > 0
}

// moveSpeed computes the effective movement speed for this frame.
// Running dry caps speed at 40% of base; it never immobilizes the ship.
func (p *Player) moveSpeed(baseSpeed, maxFuel, boostMult float64) float64 {
	speed := baseSpeed * (0.4 + 0.6*p.fuelRatio(maxFuel))
	if p.SpeedBoostTime > 0 {
		speed *= boostMult
	}
	return speed
}

// decayTimers advances every countdown by the elapsed real seconds.
// Timers only tick while positive and floor at zero.
func (p *Player) decayTimers(dt float64) {
	if p.RapidFireTime > 0 {
		p.RapidFireTime = max(0, p.RapidFireTime-dt)
	}
	if p.SpeedBoostTime > 0 {
		p.SpeedBoostTime = max(0, p.SpeedBoostTime-dt)
	}
	if p.SpreadTime > 0 {
		p.SpreadTime = max(0, p.SpreadTime-dt)
	}
	if p.InvulnTime > 0 {
		p.InvulnTime = max(0, p.InvulnTime-dt)
	}
}
