package systems

import (
	"math"
	"testing"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

func beamAt(w *core.World, spec weapons.Beam, target core.EntityID) *core.BeamEffect {
	b := &core.BeamEffect{
		ID:        w.NewID(),
		Origin:    w.Player.Pos,
		Range:     260,
		Spec:      spec,
		Target:    target,
		CreatedAt: w.Time,
		NextPulse: w.Time,
		Focus:     make(map[core.EntityID]float64),
	}
	w.Beams = append(w.Beams, b)
	return b
}

func refractions(b *core.BeamEffect) []core.BeamSegment {
	var out []core.BeamSegment
	for _, s := range b.Segments {
		if !s.Prism {
			out = append(out, s)
		}
	}
	return out
}

func TestBeam_RefractionHopCap(t *testing.T) {
	for _, hops := range []int{2, 5} {
		w := newArena(testMode, &BeamSystem{})
		line := []*core.Entity{
			enemyAt(w, 500, 300, 1000),
			enemyAt(w, 560, 300, 1000),
			enemyAt(w, 620, 300, 1000),
			enemyAt(w, 680, 300, 1000),
		}
		spec := weapons.BeamRecipe.Base()
		spec.Mode = weapons.BeamPulsed
		spec.Refraction = &weapons.Refraction{Hops: hops, Radius: 120, Falloff: 0.7}
		b := beamAt(w, spec, 0)

		w.Tick(0.01)

		segs := refractions(b)
		if len(segs) != MaxRefractionHops {
			t.Fatalf("hops %d: %d child segments, want %d", hops, len(segs), MaxRefractionHops)
		}
		if segs[0].Source != line[0].ID || segs[1].Source != line[1].ID {
			t.Errorf("hops %d: wrong hop chain", hops)
		}
		if !near(segs[0].Ratio, 0.7) || !near(segs[1].Ratio, 0.49) {
			t.Errorf("hops %d: ratios %f %f", hops, segs[0].Ratio, segs[1].Ratio)
		}
		if line[3].HP != 1000 {
			t.Errorf("hops %d: fourth enemy was hit", hops)
		}
	}
}

func TestBeam_PulseKnockback(t *testing.T) {
	w := newArena(testMode, &BeamSystem{})
	e := enemyAt(w, 500, 300, 1000)
	spec := weapons.BeamRecipe.Base()
	spec.Mode = weapons.BeamPulsed
	beamAt(w, spec, 0)

	w.Tick(0.01)
	if e.HP != 1000-spec.PulseDamage || !near(e.Pos.X, 500+spec.Knockback) {
		t.Fatalf("pulse: hp %f x %f", e.HP, e.Pos.X)
	}
	w.Tick(0.01)
	if e.HP != 1000-spec.PulseDamage {
		t.Error("pulsed again before the interval")
	}
	run(w, 30, 0.01)
	if e.HP != 1000-2*spec.PulseDamage {
		t.Errorf("expected a second pulse, hp %f", e.HP)
	}
}

func TestBeam_PrismBonus(t *testing.T) {
	w := newArena(testMode, &BeamSystem{})
	first := enemyAt(w, 500, 300, 1000)
	under := enemyAt(w, 515, 300, 1000)
	spec := weapons.BeamRecipe.Base()
	spec.Prism = &weapons.Prism{Angle: 0.5, Length: 140, Ratio: 0.5, Bonus: 1.5}
	b := beamAt(w, spec, first.ID)

	w.Tick(0.1)

	prisms := 0
	for _, s := range b.Segments {
		if s.Prism {
			prisms++
		}
	}
	if prisms != 3 {
		t.Fatalf("prism children: %d", prisms)
	}
	base := spec.DPS * 0.1
	if !near(first.HP, 1000-base) {
		t.Errorf("first hit took child damage: %f", 1000-first.HP)
	}
	if want := 1000 - base - 3*base*0.5*1.5; !near(under.HP, want) {
		t.Errorf("enemy under all three children: hp %f, want %f", under.HP, want)
	}
}

func TestBeam_FocusRampsAndResets(t *testing.T) {
	w := newArena(testMode, &BeamSystem{})
	e := enemyAt(w, 500, 300, 1000)
	spec := weapons.BeamRecipe.Base()
	spec.Focus = &weapons.Focus{RatePerSec: 0.5, Max: 1}
	b := beamAt(w, spec, 0)

	w.Tick(0.1)
	w.Tick(0.1)
	if want := 1000 - 4*1.05 - 4*1.1; !near(e.HP, want) {
		t.Errorf("focus ramp: hp %f, want %f", e.HP, want)
	}
	e.Pos = core.Vec2{X: 400, Y: 100}
	w.Tick(0.1)
	if len(b.Focus) != 0 {
		t.Error("focus kept for an enemy outside the beam")
	}
}

func TestBeam_Overload(t *testing.T) {
	spec := weapons.BeamRecipe.Base()
	spec.Overload = &weapons.Overload{Window: 0.4, DamageMult: 2, WidthMult: 1.8}
	b := &core.BeamEffect{Spec: spec}
	if b.Overloaded(0.5) || b.Width(0.5) != spec.Width || b.DamageMult(0.5) != 1 {
		t.Error("overload active too early")
	}
	if !b.Overloaded(0.9) || !near(b.Width(0.9), spec.Width*1.8) || b.DamageMult(0.9) != 2 {
		t.Error("overload missing in the final window")
	}
}

func TestBeam_TrailOnExpiry(t *testing.T) {
	w := newArena(testMode, &BeamSystem{})
	spec := weapons.BeamRecipe.Base()
	spec.Trail = &weapons.Trail{Duration: 1.5, Ratio: 0.3}
	beamAt(w, spec, 0)
	run(w, int(spec.Duration/0.1)+2, 0.1)
	if len(w.Beams) != 0 {
		t.Fatal("beam outlived its duration")
	}
	if len(w.Hazards) != 1 || w.Hazards[0].Kind != core.HazardTrail || !near(w.Hazards[0].DPS, spec.DPS*0.3) {
		t.Errorf("trail: %+v", w.Hazards)
	}
}

func TestFireBeams_Claims(t *testing.T) {
	w := newArena(testMode)
	a := enemyAt(w, 450, 300, 1000)
	b := enemyAt(w, 400, 200, 1000)
	snap := compose.Compose(weapons.BeamRecipe, []compose.SlotItem{compose.Buff(compose.BuffCount), compose.Buff(compose.BuffCount)})
	fireBeams(w, w.Player.Pos, snap)
	if len(w.Beams) != 3 {
		t.Fatalf("beams: %d", len(w.Beams))
	}
	got := []core.EntityID{w.Beams[0].Target, w.Beams[1].Target, w.Beams[2].Target}
	want := []core.EntityID{a.ID, b.ID, a.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("beam %d targets %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFireBeams_FallbackSpread(t *testing.T) {
	w := newArena(testMode)
	snap := compose.Compose(weapons.BeamRecipe, []compose.SlotItem{compose.Buff(compose.BuffCount)})
	fireBeams(w, w.Player.Pos, snap)
	if len(w.Beams) != 2 || w.Beams[0].Angle != 0 || !near(w.Beams[1].Angle, math.Pi) {
		t.Errorf("fallback angles: %+v", w.Beams)
	}
}
