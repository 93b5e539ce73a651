package vanguard

import "math/rand"

// weightedKind holds one entry of a cumulative-weight drop table.
type weightedKind struct {
	kind   PickupKind
	weight float64
}

// rollKind draws a pickup kind from the table by cumulative weight.
// A single Float64 drives the draw, so sequences are reproducible under a
// seeded source. If weights do not cover the roll (e.g. a kind zeroed out by
// a preset and weights summing below 1), no kind is selected.
func rollKind(rng *rand.Rand, table []weightedKind) (PickupKind, bool) {
	r := rng.Float64()
	cum := 0.0
	for _, w := range table {
		cum += w.weight
		if r < cum {
			return w.kind, true
		}
	}
	return 0, false
}

// dropTable is the weighted selection for drops on enemy kills.
func (g *Game) dropTable() []weightedKind {
	return []weightedKind{
		{PickupFuel, g.cfg.Pickups.DropWeightFuel},
		{PickupAmmo, g.cfg.Pickups.DropWeightAmmo},
		{PickupSpread, g.cfg.Pickups.DropWeightSpread},
		{PickupHealth, g.cfg.Pickups.DropWeightHealth},
	}
}

// ambientTable is the weighted selection for ambient pickup spawns.
// Ambient spawns never include spread; that powerup only drops from kills.
func (g *Game) ambientTable() []weightedKind {
	return []weightedKind{
		{PickupFuel, g.cfg.Pickups.AmbientWeightFuel},
		{PickupAmmo, g.cfg.Pickups.AmbientWeightAmmo},
		{PickupHealth, g.cfg.Pickups.AmbientWeightHealth},
	}
}
