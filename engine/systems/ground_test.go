package systems

import (
	"testing"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

func frostSnap(t *testing.T, cards ...compose.CardID) compose.Snapshot[weapons.Frost] {
	t.Helper()
	var picks []compose.SlotItem
	for _, id := range cards {
		picks = append(picks, mustCard(t, id))
	}
	return compose.Compose(weapons.FrostRecipe, picks)
}

func TestFootprint_Arc(t *testing.T) {
	f := weapons.FrostRecipe.Base()
	f.Spread = &weapons.Spread{Points: 2}
	main, spread := Footprint(f, core.Vec2{}, 0, 90)
	if len(main) != f.Points || len(spread) != 4 {
		t.Fatalf("got %d main and %d spread points", len(main), len(spread))
	}
	for _, p := range append(main, spread...) {
		if !near(p.Len(), 90) {
			t.Errorf("arc point %+v not at radius 90", p)
		}
	}
	if mid := main[len(main)/2]; !near(mid.X, 90) || !near(mid.Y, 0) {
		t.Errorf("arc not centered on its direction: %+v", mid)
	}
}

func TestFootprint_Ring(t *testing.T) {
	f := weapons.FrostRecipe.Base()
	f.Shape = weapons.ShapeRing
	main, spread := Footprint(f, core.Vec2{}, 0, 90)
	center := core.Vec2{X: 90}
	if len(spread) != 0 {
		t.Errorf("unexpected spread points: %d", len(spread))
	}
	for _, p := range main {
		if !near(p.DistanceTo(center), f.RingRadius) {
			t.Errorf("ring point %+v off the ring", p)
		}
	}
}

func TestResonance_Threshold(t *testing.T) {
	snap := frostSnap(t, "frost.resonance")
	f := snap.Instances[0]
	for hits := 1; hits <= 4; hits++ {
		w := newArena(testMode)
		origin := w.Player.Pos
		main, _ := Footprint(f, origin, 0, snap.Range)
		// center sample first so it decides the aim
		order := []int{2, 1, 3, 0, 4}
		for _, k := range order[:hits] {
			enemyAt(w, main[k].X, main[k].Y, 1000)
		}

		fireFrost(w, origin, snap)

		want := 0
		if hits >= f.Resonance.MinHits {
			want = 1
		}
		if len(w.Waves) != want {
			t.Errorf("%d enemies hit: %d waves, want %d", hits, len(w.Waves), want)
		}
		if len(w.Zones) != 1 {
			t.Fatalf("%d enemies: %d zones", hits, len(w.Zones))
		}
		if got := len(w.Zones[0].Hit); got != hits {
			t.Errorf("%d enemies: zone hit %d", hits, got)
		}
		for _, e := range w.Enemies {
			if e.HP != 1000-f.Damage || !e.Status.Slowed(w.Time) {
				t.Errorf("%d enemies: enemy %d hp %f slowed %v", hits, e.ID, e.HP, e.Status.Slowed(w.Time))
			}
		}
	}
}

func TestResonance_WaveDedup(t *testing.T) {
	w := newArena(testMode, &GroundSystem{})
	e := enemyAt(w, 460, 300, 1000)
	w.Waves = append(w.Waves, &core.ResonanceWave{
		Center: w.Player.Pos, MaxRadius: 120, Speed: 240, Damage: 8, Hit: core.HitSet{},
	})
	run(w, 20, 0.05)
	if e.HP != 992 {
		t.Errorf("wave hit %f, want a single 8", 1000-e.HP)
	}
	if len(w.Waves) != 0 {
		t.Error("finished wave kept")
	}
}

func TestMine_OrderDecidesSpread(t *testing.T) {
	w := newArena(testMode)
	snap := frostSnap(t, "frost.spread", "frost.mine")
	fireFrost(w, w.Player.Pos, snap)
	if len(w.Mines) != 5+4 || len(w.Zones) != 0 {
		t.Errorf("spread then mine: %d mines, %d zones", len(w.Mines), len(w.Zones))
	}

	w = newArena(testMode)
	snap = frostSnap(t, "frost.mine", "frost.spread")
	fireFrost(w, w.Player.Pos, snap)
	if len(w.Mines) != 5 || len(w.Zones) != 1 || len(w.Zones[0].Points) != 4 {
		t.Errorf("mine then spread: %d mines, %d zones", len(w.Mines), len(w.Zones))
	}
}

func TestMine_TriggersOnOverlap(t *testing.T) {
	w := newArena(testMode, &GroundSystem{})
	f := frostSnap(t, "frost.mine").Instances[0]
	layMines(w, f, []core.Vec2{{X: 500, Y: 300}})

	w.Tick(0.1)
	if w.Mines[0].Triggered {
		t.Fatal("mine triggered with nothing near")
	}
	e := enemyAt(w, 530, 300, 100)
	w.Tick(0.1)
	if !w.Mines[0].Triggered || e.HP != 100-f.Damage || !e.Status.Slowed(w.Time) {
		t.Fatalf("mine did not resolve: hp %f", e.HP)
	}
	run(w, 5, 0.1)
	if len(w.Mines) != 0 || e.HP != 100-f.Damage {
		t.Errorf("mine not settled: %d mines, hp %f", len(w.Mines), e.HP)
	}
}

func TestMine_ExpiresUntouched(t *testing.T) {
	w := newArena(testMode, &GroundSystem{})
	f := frostSnap(t, "frost.mine").Instances[0]
	layMines(w, f, []core.Vec2{{X: 500, Y: 300}})
	run(w, int(f.Mine.Lifetime/0.5)+1, 0.5)
	if len(w.Mines) != 0 {
		t.Error("mine outlived its lifetime")
	}
}

func TestPermafrost(t *testing.T) {
	w := newArena(testMode)
	e := enemyAt(w, 100, 100, 1000)
	pf := &weapons.Permafrost{FreezeDuration: 1.2, DamageMult: 1.5}

	frostHit(w, e, 10, 1, pf)
	if !e.Status.Slowed(w.Time) || e.Status.Frozen(w.Time) {
		t.Fatal("first hit should only slow")
	}
	frostHit(w, e, 10, 1, pf)
	if !e.Status.Frozen(w.Time) || e.Status.Slowed(w.Time) {
		t.Fatal("hit on a slowed enemy should freeze it")
	}
	frostHit(w, e, 10, 1, pf)
	if e.HP != 1000-10-10-15 {
		t.Errorf("frozen bonus missing: hp %f", e.HP)
	}
}

func TestDoubleHit(t *testing.T) {
	w := newArena(testMode, &GroundSystem{})
	snap := frostSnap(t, "frost.echo")
	f := snap.Instances[0]
	main, _ := Footprint(f, w.Player.Pos, 0, snap.Range)
	e := enemyAt(w, main[2].X, main[2].Y, 1000)

	fireFrost(w, w.Player.Pos, snap)
	if e.HP != 1000-f.Damage {
		t.Fatalf("first strike: hp %f", e.HP)
	}
	run(w, 10, 0.1)
	want := 1000 - f.Damage - f.Damage*f.DoubleHit.Ratio
	if !near(e.HP, want) {
		t.Errorf("hp %f, want %f", e.HP, want)
	}
	if len(w.Zones) != 0 {
		t.Error("zone not cleaned up")
	}
}
