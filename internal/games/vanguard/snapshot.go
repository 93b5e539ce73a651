package vanguard

import "github.com/vovakirdan/vanguard/internal/core"

// PlayerSnapshot is the read-only view of the player ship.
type PlayerSnapshot struct {
	X, Y float64
	W, H float64

	Lives   int
	HP      int
	MaxHP   int
	Fuel    float64
	MaxFuel float64
	Ammo    int
	MaxAmmo int

	InvulnTime     float64
	SpeedBoostTime float64
	RapidFireTime  float64
	SpreadTime     float64

	// Visible is false on the off-phase of the invulnerability flicker;
	// renderers skip drawing the ship those frames.
	Visible bool
}

// BulletSnapshot is the read-only view of a projectile.
type BulletSnapshot struct {
	X, Y float64
	W, H float64
}

// EnemySnapshot is the read-only view of an enemy ship.
type EnemySnapshot struct {
	X, Y float64
	W, H float64
}

// PickupSnapshot is the read-only view of a falling pickup.
type PickupSnapshot struct {
	X, Y  float64
	W, H  float64
	Kind  PickupKind
	Color core.Color
}

// ParticleSnapshot is the read-only view of a cosmetic particle.
// Fade is remaining TTL over initial TTL, in [0, 1].
type ParticleSnapshot struct {
	X, Y  float64
	Color core.Color
	Fade  float64
}

// Snapshot captures the complete observable game state: the render contract
// for platforms and the comparison unit for determinism tests.
type Snapshot struct {
	Frame    int
	TimeS    float64
	Score    int
	Level    int
	GameOver bool

	Player       PlayerSnapshot
	Bullets      []BulletSnapshot
	Enemies      []EnemySnapshot
	EnemyBullets []BulletSnapshot
	Pickups      []PickupSnapshot
	Particles    []ParticleSnapshot
}

// Snapshot returns the current observable state. The returned value shares
// nothing with the game; callers may hold it across frames.
func (g *Game) Snapshot() Snapshot {
	visible := true
	if g.player.invulnerable() && int(g.timeS*10)%2 == 0 {
		visible = false
	}

	snap := Snapshot{
		Frame:    g.frame,
		TimeS:    g.timeS,
		Score:    g.score,
		Level:    difficultyAt(g.timeS, g.cfg.Enemies.BaseSpeed, g.cfg.Leveling).Level,
		GameOver: g.gameOver,
		Player: PlayerSnapshot{
			X: g.player.X, Y: g.player.Y,
			W: g.cfg.Player.Width, H: g.cfg.Player.Height,
			Lives:          g.player.Lives,
			HP:             g.player.HP,
			MaxHP:          g.cfg.Player.MaxHP,
			Fuel:           g.player.Fuel,
			MaxFuel:        g.cfg.Player.MaxFuel,
			Ammo:           g.player.Ammo,
			MaxAmmo:        g.cfg.Player.MaxAmmo,
			InvulnTime:     g.player.InvulnTime,
			SpeedBoostTime: g.player.SpeedBoostTime,
			RapidFireTime:  g.player.RapidFireTime,
			SpreadTime:     g.player.SpreadTime,
			Visible:        visible,
		},
	}

	for _, b := range g.bullets {
		snap.Bullets = append(snap.Bullets, BulletSnapshot{
			X: b.X, Y: b.Y, W: g.cfg.Bullets.Width, H: g.cfg.Bullets.Height,
		})
	}
	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			X: e.X, Y: e.Y, W: g.cfg.Enemies.Width, H: g.cfg.Enemies.Height,
		})
	}
	for _, b := range g.enemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, BulletSnapshot{
			X: b.X, Y: b.Y, W: 1, H: 1,
		})
	}
	for _, p := range g.pickups {
		snap.Pickups = append(snap.Pickups, PickupSnapshot{
			X: p.X, Y: p.Y,
			W: g.cfg.Pickups.Width, H: g.cfg.Pickups.Height,
			Kind: p.Kind, Color: p.Kind.Color(),
		})
	}
	for _, p := range g.particles {
		snap.Particles = append(snap.Particles, ParticleSnapshot{
			X: p.X, Y: p.Y, Color: p.Color,
			Fade: core.ClampF(p.TTL/p.MaxTTL, 0, 1),
		})
	}

	return snap
}
