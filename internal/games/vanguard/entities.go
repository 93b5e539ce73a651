package vanguard

import "github.com/vovakirdan/vanguard/internal/core"

// Bullet is a projectile, player-fired or enemy-fired. Player bullets travel
// upward (negative VY); enemy bullets travel downward with an optional
// homing-biased horizontal velocity.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	dead   bool
}

// Enemy is a descending ship with a horizontal wiggle direction.
type Enemy struct {
	X, Y float64
	DX   int // Wiggle direction, -1, 0, or 1
	dead bool
}

// PickupKind identifies what a pickup grants on collection.
type PickupKind int

const (
	PickupFuel PickupKind = iota
	PickupAmmo
	PickupSpread
	PickupHealth
)

// String returns the name of the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupFuel:
		return "fuel"
	case PickupAmmo:
		return "ammo"
	case PickupSpread:
		return "spread"
	case PickupHealth:
		return "health"
	default:
		return "?"
	}
}

// Color returns the display color associated with the pickup kind.
// Resource HUD bars use the same colors so pickups read at a glance.
func (k PickupKind) Color() core.Color {
	switch k {
	case PickupFuel:
		return core.ColorOrange
	case PickupAmmo:
		return core.ColorBrightGreen
	case PickupSpread:
		return core.ColorBrightYellow
	case PickupHealth:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// Pickup is a falling collectible granting a resource refill or a timed
// powerup.
type Pickup struct {
	X, Y float64
	Kind PickupKind
	dead bool
}

// Particle is purely cosmetic: it drifts with its velocity, gains a little
// downward acceleration each frame, and expires when its TTL runs out.
// Particles never affect gameplay.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
	TTL    float64 // Seconds remaining
	MaxTTL float64 // Initial TTL, kept for render-side fading
}
