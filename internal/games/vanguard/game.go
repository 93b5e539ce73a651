// Package vanguard implements Vertical Vanguard, a 64x64 vertical scrolling
// shooter. The player ship fights descending enemies while managing fuel,
// ammo, hull stability, and lives; pickups refill resources and grant timed
// powerups. The simulation is a pure fixed-timestep state machine: all
// randomness flows through one seeded source, so identical seeds and inputs
// produce identical runs.
package vanguard

import (
	"math/rand"

	"github.com/vovakirdan/vanguard/internal/config"
	"github.com/vovakirdan/vanguard/internal/core"
	"github.com/vovakirdan/vanguard/internal/registry"
)

// Events reports what happened during a single frame as plain data.
// Gameplay outcomes are never errors; the platform reads these for
// feedback (storage, logging) without touching game internals.
type Events struct {
	Kills     int          // Enemies destroyed this frame
	Collected []PickupKind // Pickups collected this frame
	Damage    int          // Total hp lost this frame
	LifeLost  bool         // A life was lost this frame
	GameOver  bool         // The run ended (now, or on an earlier frame)
}

// Game implements the Vertical Vanguard game logic.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset // Fixed preset for the variant, if any

	runtime core.RuntimeConfig
	cfg     config.VanguardConfig
	rng     *rand.Rand

	player       Player
	bullets      []Bullet
	enemies      []Enemy
	enemyBullets []Bullet
	pickups      []Pickup
	particles    []Particle

	score    int
	frame    int
	timeS    float64 // Cumulative session time, seconds
	gameOver bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// CheckConfig resolves and validates the gameplay configuration without
// starting a game. Commands call it once so a broken or invalid config is
// reported before the loop begins.
func CheckConfig() error {
	_, err := config.LoadVanguard(configPath)
	return err
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "classic":
		difficultyPreset = config.DifficultyClassic
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates the full game: hull stability, invulnerability windows,
// health and spread drops all enabled.
func New() *Game {
	return &Game{id: "vanguard", title: "Vertical Vanguard"}
}

// NewClassic creates the reduced variant: any hit costs a life, and only
// fuel and ammo pickups drop.
func NewClassic() *Game {
	return &Game{
		id:     "vanguard_classic",
		title:  "Vertical Vanguard Classic",
		preset: config.DifficultyClassic,
	}
}

func init() {
	registry.Register("vanguard", func() registry.Game { return New() })
	registry.Register("vanguard_classic", func() registry.Game { return NewClassic() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadVanguard(configPath)
	if err != nil {
		cfg = config.DefaultVanguardConfig()
	}

	if difficultyPreset != "" {
		config.ApplyVanguardPreset(&cfg, difficultyPreset)
	}
	if g.preset != "" {
		config.ApplyVanguardPreset(&cfg, g.preset)
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.player = Player{
		X:     cfg.Playfield.Width/2 - 1,
		Y:     cfg.Playfield.Height - 10,
		Lives: cfg.Player.Lives,
		HP:    cfg.Player.MaxHP,
		Fuel:  cfg.Player.MaxFuel,
		Ammo:  cfg.Player.MaxAmmo,
	}

	g.bullets = nil
	g.enemies = nil
	g.enemyBullets = nil
	g.pickups = nil
	g.particles = nil
	g.score = 0
	g.frame = 0
	g.timeS = 0
	g.gameOver = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.Advance(in, dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    difficultyAt(g.timeS, g.cfg.Enemies.BaseSpeed, g.cfg.Leveling).Level,
		GameOver: g.gameOver,
	}
}

// Advance runs one complete frame of the simulation: difficulty derivation,
// player movement and firing, spawning, integration, collisions, pickup
// collection, resource drain, timer decay, and cleanup — in that order.
// After game over the state is frozen and Advance becomes a no-op.
func (g *Game) Advance(in core.InputFrame, dt float64) Events {
	var ev Events
	if g.gameOver {
		ev.GameOver = true
		return ev
	}

	g.frame++
	g.timeS += dt

	diff := difficultyAt(g.timeS, g.cfg.Enemies.BaseSpeed, g.cfg.Leveling)

	g.movePlayer(in)
	g.updateFiring(in)
	g.spawnEnemies(diff)
	g.spawnAmbientPickup()
	g.integrate(diff, dt)

	g.resolveBulletHits(&ev)
	g.resolveEnemyContact(&ev)
	g.resolveEnemyBullets(&ev)
	g.collectPickups(&ev)

	g.cleanup()
	g.updateParticles(dt)

	g.player.Fuel = max(0, g.player.Fuel-g.cfg.Player.FuelPerSecond*dt)
	g.player.decayTimers(dt)

	ev.GameOver = g.gameOver
	return ev
}

// movePlayer applies the input axes scaled by the fuel-dependent speed and
// clamps the ship to the playfield.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.player.moveSpeed(g.cfg.Player.BaseSpeed, g.cfg.Player.MaxFuel,
		g.cfg.Powerups.SpeedBoostMult)
	g.player.X = core.ClampF(g.player.X+float64(in.DX)*speed,
		0, g.cfg.Playfield.Width-g.cfg.Player.Width)
	g.player.Y = core.ClampF(g.player.Y+float64(in.DY)*speed,
		0, g.cfg.Playfield.Height-g.cfg.Player.Height)
}

// updateFiring ticks the cooldown and spawns bullets on a fire request.
// Firing with no ammo or during cooldown is a silent no-op. An active
// rapid-fire powerup shortens the cooldown; an active spread powerup turns
// each shot into three bullets fanning outward.
func (g *Game) updateFiring(in core.InputFrame) {
	if g.player.FireCooldown > 0 {
		g.player.FireCooldown--
	}
	if !in.Fire || g.player.FireCooldown != 0 || g.player.Ammo <= 0 {
		return
	}

	cooldown := float64(g.cfg.Player.FireCooldownFrames)
	if g.player.RapidFireTime > 0 {
		cooldown *= g.cfg.Powerups.RapidFireFactor
	}
	g.player.FireCooldown = max(1, int(cooldown))
	g.player.Ammo = max(0, g.player.Ammo-1)

	// Bullets originate one unit in from the ship's left edge, just above
	// its nose.
	bx := g.player.X + 1
	by := g.player.Y - 2
	vy := -g.cfg.Bullets.Speed

	if g.player.SpreadTime > 0 {
		side := g.cfg.Powerups.SpreadSideSpeed
		g.bullets = append(g.bullets,
			Bullet{X: bx, Y: by, VX: 0, VY: vy},
			Bullet{X: bx, Y: by, VX: -side, VY: vy},
			Bullet{X: bx, Y: by, VX: side, VY: vy},
		)
	} else {
		g.bullets = append(g.bullets, Bullet{X: bx, Y: by, VX: 0, VY: vy})
	}
}

// spawnEnemies adds one enemy at the top of the field on the current spawn
// cadence. The interval shrinks with difficulty, so the field grows denser
// over time.
func (g *Game) spawnEnemies(diff Difficulty) {
	if g.frame%diff.SpawnInterval != 0 {
		return
	}
	g.enemies = append(g.enemies, Enemy{
		X:  float64(g.rng.Intn(int(g.cfg.Playfield.Width-g.cfg.Enemies.Width) + 1)),
		Y:  -g.cfg.Enemies.Height,
		DX: g.rng.Intn(3) - 1,
	})
}

// spawnAmbientPickup occasionally drops a pickup independent of kills, to
// keep depleted runs recoverable. Spread never spawns ambiently.
func (g *Game) spawnAmbientPickup() {
	if g.frame%g.cfg.Pickups.SpawnIntervalFrames != 0 {
		return
	}
	kind, ok := rollKind(g.rng, g.ambientTable())
	if !ok {
		return
	}
	g.pickups = append(g.pickups, Pickup{
		X:    float64(g.rng.Intn(int(g.cfg.Playfield.Width-g.cfg.Pickups.Width) + 1)),
		Y:    -g.cfg.Pickups.Height,
		Kind: kind,
	})
}

// integrate moves every entity by its velocity for this frame. Enemies also
// wiggle horizontally on a fixed cadence and, late in a session, fire aimed
// bullets at the player.
func (g *Game) integrate(diff Difficulty, dt float64) {
	for i := range g.bullets {
		g.bullets[i].X += g.bullets[i].VX
		g.bullets[i].Y += g.bullets[i].VY
	}

	shootProb := fireProbability(diff.Level, dt, g.cfg.Enemies)
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Y += diff.EnemySpeed

		if g.frame%g.cfg.Enemies.WigglePeriodFrames == 0 {
			e.X = core.ClampF(e.X+float64(e.DX), 0, g.cfg.Playfield.Width-g.cfg.Enemies.Width)
			if g.rng.Float64() < g.cfg.Enemies.WiggleTurnChance {
				e.DX = g.rng.Intn(3) - 1
			}
		}

		if g.timeS >= g.cfg.Enemies.ShootStartTime && g.rng.Float64() < shootProb {
			// Aim roughly at the player's current x, with jitter so
			// shots occasionally miss.
			ex := e.X + g.cfg.Enemies.Width/2
			ey := e.Y + g.cfg.Enemies.Height
			vx := (g.player.X+g.cfg.Player.Width/2-ex)*g.cfg.Enemies.AimFactor +
				(g.rng.Float64()*2-1)*g.cfg.Enemies.AimJitter
			g.enemyBullets = append(g.enemyBullets, Bullet{
				X: ex, Y: ey, VX: vx, VY: g.cfg.Enemies.BulletSpeed,
			})
		}
	}

	for i := range g.enemyBullets {
		g.enemyBullets[i].X += g.enemyBullets[i].VX
		g.enemyBullets[i].Y += g.enemyBullets[i].VY
	}

	// Pickups fall a little faster as enemies do, so late-game drops stay
	// catchable relative to the action.
	pickupDY := g.cfg.Pickups.FallSpeed + diff.EnemySpeed*g.cfg.Pickups.FallSpeedScale
	for i := range g.pickups {
		g.pickups[i].Y += pickupDY
	}
}

// resolveBulletHits checks every player bullet against every enemy. A hit
// marks both dead, scores a point, bursts an explosion, and may roll a
// pickup drop. Each bullet stops at its first hit; an enemy already marked
// dead this frame still absorbs bullets, matching the all-pairs sweep.
func (g *Game) resolveBulletHits(ev *Events) {
	for bi := range g.bullets {
		b := &g.bullets[bi]
		bRect := core.NewRect(b.X, b.Y, g.cfg.Bullets.Width, g.cfg.Bullets.Height)
		for ei := range g.enemies {
			e := &g.enemies[ei]
			eRect := core.NewRect(e.X, e.Y, g.cfg.Enemies.Width, g.cfg.Enemies.Height)
			if !bRect.Intersects(eRect) {
				continue
			}
			b.dead = true
			e.dead = true
			g.score++
			ev.Kills++
			g.addExplosion(e.X, e.Y)

			if g.rng.Float64() < g.cfg.Pickups.DropChance {
				if kind, ok := rollKind(g.rng, g.dropTable()); ok {
					g.pickups = append(g.pickups, Pickup{X: e.X, Y: e.Y, Kind: kind})
				}
			}
			break
		}
	}
}

// resolveEnemyContact applies collision damage when the player touches an
// enemy. At most one contact registers per frame; the short invulnerability
// window keeps stacked enemies from draining several lives at once.
func (g *Game) resolveEnemyContact(ev *Events) {
	pRect := g.playerRect()
	for ei := range g.enemies {
		if g.player.invulnerable() {
			continue
		}
		e := &g.enemies[ei]
		eRect := core.NewRect(e.X, e.Y, g.cfg.Enemies.Width, g.cfg.Enemies.Height)
		if !pRect.Intersects(eRect) {
			continue
		}
		e.dead = true
		g.damagePlayer(g.cfg.Damage.EnemyCollide, ev)
		break
	}
}

// resolveEnemyBullets applies bullet damage. Enemy bullets collide as 1x1
// points; the invulnerability check runs per bullet, so the first hit
// shields the player from the rest of the volley.
func (g *Game) resolveEnemyBullets(ev *Events) {
	pRect := g.playerRect()
	for bi := range g.enemyBullets {
		if g.player.invulnerable() {
			continue
		}
		b := &g.enemyBullets[bi]
		if !pRect.Intersects(core.NewRect(b.X, b.Y, 1, 1)) {
			continue
		}
		b.dead = true
		g.damagePlayer(g.cfg.Damage.EnemyBullet, ev)
	}
}

// damagePlayer reduces hp, saturating at zero. Depleting hp costs a life,
// restores full hp, respawns the ship at the start position, and grants the
// longer invulnerability window; running out of lives ends the run.
func (g *Game) damagePlayer(amount int, ev *Events) {
	g.player.HP = max(0, g.player.HP-amount)
	g.player.InvulnTime = g.cfg.Damage.ShortHitInvuln
	ev.Damage += amount

	if g.player.HP <= 0 {
		g.player.Lives--
		g.player.HP = g.cfg.Player.MaxHP
		g.player.X = g.cfg.Playfield.Width/2 - 1
		g.player.Y = g.cfg.Playfield.Height - 10
		g.player.InvulnTime = g.cfg.Damage.InvulnDuration
		ev.LifeLost = true
		if g.player.Lives <= 0 {
			g.gameOver = true
		}
	}
}

// collectPickups applies the effect of every pickup overlapping the player:
// fuel refills and grants the speed boost, ammo refills and grants rapid
// fire, spread arms the fan shot, health restores hull. Collecting a pickup
// restarts its powerup timer at full duration; timers never stack.
func (g *Game) collectPickups(ev *Events) {
	pRect := g.playerRect()
	for i := range g.pickups {
		p := &g.pickups[i]
		if p.dead {
			continue
		}
		if !pRect.Intersects(core.NewRect(p.X, p.Y, g.cfg.Pickups.Width, g.cfg.Pickups.Height)) {
			continue
		}
		p.dead = true
		ev.Collected = append(ev.Collected, p.Kind)
		g.addBlink(p.X, p.Y)

		switch p.Kind {
		case PickupFuel:
			g.player.Fuel = min(g.cfg.Player.MaxFuel, g.player.Fuel+g.cfg.Pickups.FuelAmount)
			g.player.SpeedBoostTime = g.cfg.Powerups.SpeedBoostDuration
		case PickupAmmo:
			g.player.Ammo = min(g.cfg.Player.MaxAmmo, g.player.Ammo+g.cfg.Pickups.AmmoAmount)
			g.player.RapidFireTime = g.cfg.Powerups.RapidFireDuration
		case PickupSpread:
			g.player.SpreadTime = g.cfg.Powerups.SpreadDuration
		case PickupHealth:
			g.player.HP = min(g.cfg.Player.MaxHP, g.player.HP+g.cfg.Pickups.HealthAmount)
		}
	}
}

// cleanup drops dead and offscreen entities. Filters are idempotent: a
// second pass over an already-clean list changes nothing.
func (g *Game) cleanup() {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.dead && b.Y > -g.cfg.Bullets.Height {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.dead && e.Y < g.cfg.Playfield.Height+g.cfg.Enemies.Height {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	enemyBullets := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		if !b.dead && b.Y < g.cfg.Playfield.Height+2 {
			enemyBullets = append(enemyBullets, b)
		}
	}
	g.enemyBullets = enemyBullets

	pickups := g.pickups[:0]
	for _, p := range g.pickups {
		if !p.dead && p.Y < g.cfg.Playfield.Height+2 {
			pickups = append(pickups, p)
		}
	}
	g.pickups = pickups
}

// updateParticles drifts particles by their velocity with a slight downward
// pull and expires them by TTL. Purely cosmetic.
func (g *Game) updateParticles(dt float64) {
	particles := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += g.cfg.Particles.Gravity
		p.TTL -= dt
		if p.TTL > 0 {
			particles = append(particles, p)
		}
	}
	g.particles = particles
}

// addExplosion bursts particles at an enemy's death position.
func (g *Game) addExplosion(x, y float64) {
	spd := g.cfg.Particles.BurstSpeed
	for i := 0; i < g.cfg.Particles.BurstCount; i++ {
		g.particles = append(g.particles, Particle{
			X: x, Y: y,
			VX:     (g.rng.Float64()*2 - 1) * spd,
			VY:     (g.rng.Float64()*2 - 1) * spd,
			Color:  core.ColorBrightRed,
			TTL:    g.cfg.Particles.BurstTTL,
			MaxTTL: g.cfg.Particles.BurstTTL,
		})
	}
}

// addBlink places a single stationary flash where a pickup was collected.
func (g *Game) addBlink(x, y float64) {
	g.particles = append(g.particles, Particle{
		X: x, Y: y,
		Color:  core.ColorWhite,
		TTL:    g.cfg.Particles.BlinkTTL,
		MaxTTL: g.cfg.Particles.BlinkTTL,
	})
}

func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.player.X, g.player.Y, g.cfg.Player.Width, g.cfg.Player.Height)
}
