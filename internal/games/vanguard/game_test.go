package vanguard

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/vanguard/internal/core"
)

const testDT = 1.0 / 60.0

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce bit-identical runs.
	cfg := testConfig(12345)

	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		inputSequence[i].DX = i%3 - 1
		inputSequence[i].DY = (i/7)%3 - 1
		inputSequence[i].Fire = i%3 == 0
	}

	run := func() (Snapshot, core.GameState) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in, testDT)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return g.Snapshot(), state
	}

	snap1, state1 := run()
	snap2, state2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		in.Fire = i%4 == 0
		g.Step(in, testDT)
	}

	g.Reset(testConfig(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.frame != 0 {
		t.Errorf("Reset should clear frame counter, got %d", g.frame)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if len(g.bullets) != 0 || len(g.enemies) != 0 || len(g.pickups) != 0 {
		t.Error("Reset should clear entity lists")
	}
	if g.player.Lives != g.cfg.Player.Lives || g.player.HP != g.cfg.Player.MaxHP {
		t.Errorf("Reset should restore lives and hp, got lives=%d hp=%d", g.player.Lives, g.player.HP)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vanguard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestPartialConfigFileRuns(t *testing.T) {
	// A file that only overrides some fields merges over the defaults;
	// everything it omits keeps a runnable value.
	SetConfigPath(writeConfigFile(t, "player:\n  lives: 5\n"))
	defer SetConfigPath("")

	if err := CheckConfig(); err != nil {
		t.Fatalf("partial config should pass the startup check: %v", err)
	}

	g := New()
	g.Reset(testConfig(3))

	if g.player.Lives != 5 {
		t.Errorf("expected 5 lives from config file, got %d", g.player.Lives)
	}
	if g.cfg.Pickups.SpawnIntervalFrames == 0 || g.cfg.Leveling.SpawnIntervalBase == 0 {
		t.Fatal("omitted fields must keep defaults, not zero out")
	}

	// Run past both spawn cadences to exercise the frame-modulo paths.
	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}
	if g.frame != 600 {
		t.Errorf("expected 600 frames simulated, got %d", g.frame)
	}
}

func TestCheckConfigRejectsBrokenFile(t *testing.T) {
	SetConfigPath(writeConfigFile(t, "pickups:\n  spawn_interval_frames: 0\n"))
	defer SetConfigPath("")

	if err := CheckConfig(); err == nil {
		t.Fatal("config with zero spawn_interval_frames should fail the startup check")
	}
}

func TestFiringConsumesAmmo(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.Ammo = 1

	fire := core.InputFrame{Fire: true}
	g.Advance(fire, testDT)

	if len(g.bullets) != 1 {
		t.Fatalf("expected 1 bullet after firing, got %d", len(g.bullets))
	}
	if g.player.Ammo != 0 {
		t.Errorf("expected ammo 0 after last shot, got %d", g.player.Ammo)
	}

	// Dry firing: cooldown expires but there is no ammo left.
	for i := 0; i < 20; i++ {
		g.Advance(fire, testDT)
	}
	if got := len(g.bullets); got > 1 {
		t.Errorf("firing with no ammo should be a no-op, got %d bullets", got)
	}
}

func TestFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	fire := core.InputFrame{Fire: true}
	g.Advance(fire, testDT)
	g.Advance(fire, testDT)

	if len(g.bullets) != 1 {
		t.Errorf("second shot during cooldown should not fire, got %d bullets", len(g.bullets))
	}
	if g.player.Ammo != g.cfg.Player.MaxAmmo-1 {
		t.Errorf("cooldown shot should not consume ammo, got %d", g.player.Ammo)
	}
}

func TestSpreadShotFiresThree(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.SpreadTime = 10

	g.Advance(core.InputFrame{Fire: true}, testDT)

	if len(g.bullets) != 3 {
		t.Fatalf("spread shot should fire 3 bullets, got %d", len(g.bullets))
	}
	if g.player.Ammo != g.cfg.Player.MaxAmmo-1 {
		t.Errorf("spread shot should consume a single round, got %d", g.player.Ammo)
	}

	// One straight, one angled left, one angled right.
	vxs := []float64{g.bullets[0].VX, g.bullets[1].VX, g.bullets[2].VX}
	if vxs[0] != 0 || vxs[1] != -g.cfg.Powerups.SpreadSideSpeed || vxs[2] != g.cfg.Powerups.SpreadSideSpeed {
		t.Errorf("unexpected spread velocities: %v", vxs)
	}
}

func TestBulletTravelsUpward(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.Advance(core.InputFrame{Fire: true}, testDT)
	y1 := g.bullets[0].Y
	g.Advance(core.InputFrame{}, testDT)
	y2 := g.bullets[0].Y

	if diff := y1 - y2; math.Abs(diff-g.cfg.Bullets.Speed) > 1e-9 {
		t.Errorf("bullet should climb by its speed per frame, moved %f", diff)
	}

	// Eventually the bullet leaves the field and is removed.
	for i := 0; i < 60 && len(g.bullets) > 0; i++ {
		g.Advance(core.InputFrame{}, testDT)
	}
	if len(g.bullets) != 0 {
		t.Error("offscreen bullet should be cleaned up")
	}
}

func TestInvulnerabilityBlocksDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.InvulnTime = 1.0
	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y})

	g.Advance(core.InputFrame{}, testDT)

	if g.player.HP != g.cfg.Player.MaxHP {
		t.Errorf("invulnerable player should take no damage, hp=%d", g.player.HP)
	}
	if g.player.Lives != g.cfg.Player.Lives {
		t.Errorf("invulnerable player should not lose lives, lives=%d", g.player.Lives)
	}
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y})

	ev := g.Advance(core.InputFrame{}, testDT)

	want := g.cfg.Player.MaxHP - g.cfg.Damage.EnemyCollide
	if g.player.HP != want {
		t.Errorf("expected hp %d after collision, got %d", want, g.player.HP)
	}
	if ev.Damage != g.cfg.Damage.EnemyCollide {
		t.Errorf("expected damage event %d, got %d", g.cfg.Damage.EnemyCollide, ev.Damage)
	}
	if g.player.Lives != g.cfg.Player.Lives {
		t.Errorf("partial damage should not cost a life, lives=%d", g.player.Lives)
	}
	if !g.player.invulnerable() {
		t.Error("hit should grant a short invulnerability window")
	}
	if len(g.enemies) != 0 {
		t.Error("colliding enemy should be destroyed")
	}
}

func TestHPDepletionCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.HP = 10
	g.player.X, g.player.Y = 5, 5
	g.enemies = append(g.enemies, Enemy{X: 5, Y: 5})

	ev := g.Advance(core.InputFrame{}, testDT)

	if !ev.LifeLost {
		t.Error("depleting hp should report a lost life")
	}
	if g.player.Lives != g.cfg.Player.Lives-1 {
		t.Errorf("expected %d lives, got %d", g.cfg.Player.Lives-1, g.player.Lives)
	}
	if g.player.HP != g.cfg.Player.MaxHP {
		t.Errorf("hp should be restored after losing a life, got %d", g.player.HP)
	}
	wantX := g.cfg.Playfield.Width/2 - 1
	wantY := g.cfg.Playfield.Height - 10
	if g.player.X != wantX || g.player.Y != wantY {
		t.Errorf("player should respawn at start position, got (%f, %f)", g.player.X, g.player.Y)
	}
	if g.player.InvulnTime < g.cfg.Damage.ShortHitInvuln {
		t.Errorf("life loss should grant the long invulnerability window, got %f", g.player.InvulnTime)
	}
	if g.gameOver {
		t.Error("losing one life with lives remaining should not end the game")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.Lives = 1
	g.player.HP = 1
	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y})

	ev := g.Advance(core.InputFrame{}, testDT)
	if !ev.GameOver {
		t.Fatal("expected game over after last life")
	}

	frame := g.frame
	score := g.score
	g.Advance(core.InputFrame{Fire: true, DX: 1}, testDT)

	if g.frame != frame || g.score != score {
		t.Error("state should be frozen after game over")
	}
}

func TestFuelAffectsSpeed(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.player.Fuel = 0
	x0 := g.player.X
	g.Advance(core.InputFrame{DX: 1}, testDT)
	slow := g.player.X - x0

	want := g.cfg.Player.BaseSpeed * 0.4
	if math.Abs(slow-want) > 1e-9 {
		t.Errorf("empty tank should cap speed at %f, moved %f", want, slow)
	}

	g.Reset(testConfig(1))
	x0 = g.player.X
	g.Advance(core.InputFrame{DX: 1}, testDT)
	full := g.player.X - x0
	if math.Abs(full-g.cfg.Player.BaseSpeed) > 1e-6 {
		t.Errorf("full tank should move at base speed, moved %f", full)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 200; i++ {
		g.Advance(core.InputFrame{DX: 1, DY: 1}, testDT)
	}

	maxX := g.cfg.Playfield.Width - g.cfg.Player.Width
	maxY := g.cfg.Playfield.Height - g.cfg.Player.Height
	if g.player.X != maxX || g.player.Y != maxY {
		t.Errorf("player should clamp to field edge, got (%f, %f)", g.player.X, g.player.Y)
	}
}

func TestBulletKillScoresAndBursts(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.enemies = append(g.enemies, Enemy{X: 10, Y: 10})
	g.bullets = append(g.bullets, Bullet{X: 11, Y: 11})

	ev := g.Advance(core.InputFrame{}, testDT)

	if ev.Kills != 1 {
		t.Errorf("expected 1 kill, got %d", ev.Kills)
	}
	if g.score != 1 {
		t.Errorf("expected score 1, got %d", g.score)
	}
	if len(g.enemies) != 0 {
		t.Error("killed enemy should be removed")
	}
	if len(g.bullets) != 0 {
		t.Error("spent bullet should be removed")
	}
	if len(g.particles) < g.cfg.Particles.BurstCount {
		t.Errorf("kill should burst %d particles, got %d", g.cfg.Particles.BurstCount, len(g.particles))
	}
}

func TestPickupCollection(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.Ammo = 0
	g.pickups = append(g.pickups, Pickup{X: g.player.X, Y: g.player.Y, Kind: PickupAmmo})

	ev := g.Advance(core.InputFrame{}, testDT)

	if len(ev.Collected) != 1 || ev.Collected[0] != PickupAmmo {
		t.Fatalf("expected ammo pickup collected, got %v", ev.Collected)
	}
	if g.player.Ammo != g.cfg.Pickups.AmmoAmount {
		t.Errorf("expected ammo %d, got %d", g.cfg.Pickups.AmmoAmount, g.player.Ammo)
	}
	if g.player.RapidFireTime <= 0 {
		t.Error("ammo pickup should arm rapid fire")
	}
	if len(g.pickups) != 0 {
		t.Error("collected pickup should be removed")
	}
}

func TestResourcesSaturate(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Refilling at capacity stays at capacity.
	g.pickups = append(g.pickups,
		Pickup{X: g.player.X, Y: g.player.Y, Kind: PickupFuel},
		Pickup{X: g.player.X, Y: g.player.Y, Kind: PickupHealth},
	)
	g.Advance(core.InputFrame{}, testDT)

	if g.player.Fuel > g.cfg.Player.MaxFuel {
		t.Errorf("fuel should saturate at %f, got %f", g.cfg.Player.MaxFuel, g.player.Fuel)
	}
	if g.player.HP > g.cfg.Player.MaxHP {
		t.Errorf("hp should saturate at %d, got %d", g.cfg.Player.MaxHP, g.player.HP)
	}
	if g.player.SpeedBoostTime <= 0 {
		t.Error("fuel pickup should arm the speed boost")
	}
}

func TestPowerupTimersDecayIndependently(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.player.RapidFireTime = 1.0
	g.player.SpreadTime = 2.0

	g.Advance(core.InputFrame{}, testDT)

	if math.Abs(g.player.RapidFireTime-(1.0-testDT)) > 1e-9 {
		t.Errorf("rapid fire timer should decay by dt, got %f", g.player.RapidFireTime)
	}
	if math.Abs(g.player.SpreadTime-(2.0-testDT)) > 1e-9 {
		t.Errorf("spread timer should decay by dt, got %f", g.player.SpreadTime)
	}
	if g.player.SpeedBoostTime != 0 {
		t.Errorf("inactive timer should stay at zero, got %f", g.player.SpeedBoostTime)
	}
}

func TestWeightedDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Full weight always selects.
	table := []weightedKind{{PickupFuel, 1.0}}
	for i := 0; i < 100; i++ {
		kind, ok := rollKind(rng, table)
		if !ok || kind != PickupFuel {
			t.Fatalf("full-weight table should always select fuel, got %v %v", kind, ok)
		}
	}

	// Zeroed table never selects.
	zero := []weightedKind{{PickupSpread, 0}, {PickupHealth, 0}}
	for i := 0; i < 100; i++ {
		if _, ok := rollKind(rng, zero); ok {
			t.Fatal("zero-weight table should never select")
		}
	}

	// A fixed seed over fixed cumulative weights reproduces the same
	// sequence of kinds every time.
	mixed := []weightedKind{
		{PickupFuel, 0.4},
		{PickupAmmo, 0.4},
		{PickupHealth, 0.2},
	}
	want := []PickupKind{
		PickupAmmo, PickupHealth, PickupAmmo, PickupAmmo, PickupAmmo,
		PickupAmmo, PickupFuel, PickupFuel, PickupFuel, PickupFuel,
	}
	seeded := rand.New(rand.NewSource(1))
	for i, wantKind := range want {
		kind, ok := rollKind(seeded, mixed)
		if !ok {
			t.Fatalf("draw %d: full-coverage table should always select", i)
		}
		if kind != wantKind {
			t.Errorf("draw %d: expected %v, got %v", i, wantKind, kind)
		}
	}
}

func TestClassicVariantLethalHit(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig(1))
	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y})

	ev := g.Advance(core.InputFrame{}, testDT)

	if !ev.LifeLost {
		t.Error("any hit should cost a life in the classic variant")
	}
	if g.player.Lives != g.cfg.Player.Lives-1 {
		t.Errorf("expected %d lives, got %d", g.cfg.Player.Lives-1, g.player.Lives)
	}
}

func TestClassicVariantDropsOnlyFuelAndAmmo(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig(9))

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		kind, ok := rollKind(rng, g.dropTable())
		if !ok {
			continue
		}
		if kind == PickupSpread || kind == PickupHealth {
			t.Fatalf("classic variant should never drop %v", kind)
		}
	}
}

func TestCleanupIdempotent(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.bullets = append(g.bullets, Bullet{X: 5, Y: 5}, Bullet{X: 6, Y: -50, dead: true})
	g.enemies = append(g.enemies, Enemy{X: 5, Y: 5}, Enemy{X: 6, Y: 200})
	g.pickups = append(g.pickups, Pickup{X: 5, Y: 5}, Pickup{X: 6, Y: 6, dead: true})

	g.cleanup()
	b, e, p := len(g.bullets), len(g.enemies), len(g.pickups)
	if b != 1 || e != 1 || p != 1 {
		t.Fatalf("cleanup should drop dead and offscreen entities, got %d/%d/%d", b, e, p)
	}

	g.cleanup()
	if len(g.bullets) != b || len(g.enemies) != e || len(g.pickups) != p {
		t.Error("second cleanup pass should change nothing")
	}
}

func TestAmbientPickupCadence(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	seen := false
	for i := 0; i < g.cfg.Pickups.SpawnIntervalFrames+1; i++ {
		g.Advance(core.InputFrame{}, testDT)
		if len(g.pickups) > 0 {
			seen = true
		}
	}
	if !seen {
		t.Error("an ambient pickup should spawn within one spawn interval")
	}
}

func TestInvulnFlickerHidesPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.player.InvulnTime = 5
	g.timeS = 0.25 // even tenth: off phase
	if snap := g.Snapshot(); snap.Player.Visible {
		t.Error("player should be hidden on the off phase of the flicker")
	}

	g.timeS = 0.35 // odd tenth: on phase
	if snap := g.Snapshot(); !snap.Player.Visible {
		t.Error("player should be visible on the on phase of the flicker")
	}

	g.player.InvulnTime = 0
	g.timeS = 0.25
	if snap := g.Snapshot(); !snap.Player.Visible {
		t.Error("player should always be visible when not invulnerable")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	for i := 0; i < 60; i++ {
		g.Advance(core.InputFrame{Fire: i%6 == 0}, testDT)
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score:") {
		t.Error("render should include the HUD")
	}
	if !strings.ContainsRune(out, PlayerChar) && g.Snapshot().Player.Visible {
		t.Error("render should draw the player ship")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	screen := core.NewScreen(50, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("undersized window should show the resize overlay")
	}
}
