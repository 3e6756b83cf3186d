package systems

import (
	"math"
	"testing"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

func shoot(w *core.World, from core.Vec2, vel core.Vec2, damage float64) *core.Projectile {
	p := &core.Projectile{
		ID:        w.NewID(),
		Weapon:    weapons.ArrowID,
		Pos:       from,
		Vel:       vel,
		Radius:    4,
		Damage:    damage,
		Hit:       core.HitSet{},
		Alive:     true,
		CreatedAt: w.Time,
		Lifetime:  10,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func run(w *core.World, steps int, dt float64) {
	for i := 0; i < steps; i++ {
		w.Tick(dt)
	}
}

func TestProjectile_PierceBudget(t *testing.T) {
	for pierce := 0; pierce <= 3; pierce++ {
		w := newArena(testMode, &ProjectileSystem{})
		var line []*core.Entity
		for i := 0; i < 6; i++ {
			line = append(line, enemyAt(w, 100+float64(i)*40, 300, 1000))
		}
		p := shoot(w, core.Vec2{X: 60, Y: 300}, core.Vec2{X: 200}, 10)
		p.Pierce = pierce

		run(w, 200, 0.01)

		hit := 0
		for _, e := range line {
			switch e.HP {
			case 1000:
			case 990:
				hit++
			default:
				t.Fatalf("pierce %d: enemy %d hit more than once (hp %f)", pierce, e.ID, e.HP)
			}
		}
		if hit != pierce+1 {
			t.Errorf("pierce %d: hit %d enemies, want %d", pierce, hit, pierce+1)
		}
		if len(w.Projectiles) != 0 {
			t.Errorf("pierce %d: projectile still alive", pierce)
		}
	}
}

func TestProjectile_ChainDepthBounded(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			enemyAt(w, 200+float64(x)*16, 150+float64(y)*16, 1)
		}
	}
	p := shoot(w, core.Vec2{X: 190, Y: 150}, core.Vec2{X: 200}, 100)
	p.Chain = &weapons.Chain{Count: 3, DamageRatio: 1}

	seen := map[core.EntityID]int{p.ID: 0}
	for i := 0; i < 500 && len(w.Projectiles) > 0; i++ {
		w.Tick(0.01)
		for _, q := range w.Projectiles {
			if q.ChainDepth > MaxChainDepth {
				t.Fatalf("depth %d exceeds cap", q.ChainDepth)
			}
			if q.ChainDepth > 0 && !q.Fragment {
				t.Fatalf("deep projectile %d is not a fragment", q.ID)
			}
			seen[q.ID] = q.ChainDepth
		}
	}
	if len(w.Projectiles) != 0 {
		t.Fatal("chain reaction did not terminate")
	}
	// 1 + 3 + 9 + 27
	if len(seen) > 40 {
		t.Errorf("%d projectiles spawned, bound is 40", len(seen))
	}
	if len(seen) < 4 {
		t.Errorf("expected fragments from the first kill, saw %d projectiles", len(seen))
	}
}

func TestProjectile_SplitFansChildren(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	enemyAt(w, 100, 300, 1000)
	p := shoot(w, core.Vec2{X: 85, Y: 300}, core.Vec2{X: 200}, 20)
	p.Split = &weapons.Split{Count: 2, DamageRatio: 0.5, SpeedRatio: 0.7, Angle: 0.4}
	p.Homing = &weapons.Homing{TurnSpeed: 3}

	w.Tick(0.01)

	if len(w.Projectiles) != 2 {
		t.Fatalf("expected 2 children, got %d", len(w.Projectiles))
	}
	var angles []float64
	for _, c := range w.Projectiles {
		if !c.Fragment || c.Split != nil || c.Homing != nil {
			t.Errorf("child can still split or home: %+v", c)
		}
		if c.Damage != 10 || !near(c.Vel.Len(), 140) {
			t.Errorf("child damage %f speed %f", c.Damage, c.Vel.Len())
		}
		angles = append(angles, math.Atan2(c.Vel.Y, c.Vel.X))
	}
	if !near(angles[0], -0.2) || !near(angles[1], 0.2) {
		t.Errorf("children not symmetric: %v", angles)
	}
}

func TestProjectile_SplitOnlyOnNonKill(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	enemyAt(w, 100, 300, 5)
	p := shoot(w, core.Vec2{X: 85, Y: 300}, core.Vec2{X: 200}, 20)
	p.Split = &weapons.Split{Count: 2, DamageRatio: 0.5, SpeedRatio: 0.7, Angle: 0.4}
	w.Tick(0.01)
	if len(w.Projectiles) != 0 {
		t.Errorf("kill should not split, got %d projectiles", len(w.Projectiles))
	}
}

func TestProjectile_HomingTurnLimit(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	enemyAt(w, 100, 500, 100)
	p := shoot(w, core.Vec2{X: 100, Y: 100}, core.Vec2{X: 100}, 1)
	p.Homing = &weapons.Homing{TurnSpeed: 2}
	w.Tick(0.1)
	if got := math.Atan2(p.Vel.Y, p.Vel.X); !near(got, 0.2) {
		t.Errorf("turned %f rad, limit is 0.2", got)
	}
	if !near(p.Vel.Len(), 100) {
		t.Errorf("homing changed speed to %f", p.Vel.Len())
	}
}

func TestProjectile_CulledOffscreen(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	shoot(w, core.Vec2{X: 790, Y: 300}, core.Vec2{X: 1000}, 1)
	run(w, 10, 0.01)
	if len(w.Projectiles) != 0 {
		t.Error("projectile outside the arena was kept")
	}
}

func TestProjectile_Residual(t *testing.T) {
	w := newArena(testMode, &ProjectileSystem{})
	e := enemyAt(w, 100, 300, 1000)
	p := shoot(w, core.Vec2{X: 85, Y: 300}, core.Vec2{X: 200}, 20)
	p.Residual = &weapons.Residual{Radius: 20, DPS: 8, Duration: 1}
	w.Tick(0.01)
	if len(w.Hazards) != 1 || w.Hazards[0].Kind != core.HazardResidual || w.Hazards[0].Pos != e.Pos {
		t.Errorf("expected a residual hazard at the hit point, got %+v", w.Hazards)
	}
}

func TestConvergence_FreezeAndBurst(t *testing.T) {
	w := newArena(testMode)
	e := enemyAt(w, 100, 100, 1000)
	c := &weapons.Convergence{Hits: 3, Window: 1.3, FreezeDuration: 1, BurstRatio: 0.5, BurstDelay: 0.3}

	converge(w, c, e, 10)
	w.Time = 0.4
	converge(w, c, e, 10)
	w.Time = 1.5 // first hit left the window
	converge(w, c, e, 10)
	if e.Status.Frozen(w.Time) || len(w.Bursts) != 0 {
		t.Fatal("triggered with a hit outside the window")
	}
	w.Time = 1.6
	converge(w, c, e, 20)
	if !e.Status.Frozen(w.Time) {
		t.Fatal("three hits in the window should freeze")
	}
	if _, ok := w.Convergence[e.ID]; ok {
		t.Error("tracker not cleared on trigger")
	}
	if len(w.Bursts) != 1 || w.Bursts[0].Amount != 20 || !near(w.Bursts[0].At, 1.9) {
		t.Fatalf("bursts: %+v", w.Bursts)
	}

	hp := e.HP
	w.Time = 1.8
	resolveBursts(w)
	if e.HP != hp {
		t.Error("burst landed early")
	}
	w.Time = 2.0
	resolveBursts(w)
	if e.HP != hp-20 || len(w.Bursts) != 0 {
		t.Errorf("burst not applied: hp %f", e.HP)
	}
}

func TestFireArrows_LiteralOrder(t *testing.T) {
	w := newArena(core.SandboxMode())
	Install(w)
	if _, err := Equip(w, weapons.ArrowID); err != nil {
		t.Fatal(err)
	}
	w.SetPicks(weapons.ArrowID, []compose.SlotItem{
		mustCard(t, "arrow.pierce"),
		compose.Buff(compose.BuffCount),
		mustCard(t, "arrow.split"),
	})
	enemyAt(w, 700, 300, 1e6)

	w.Tick(0.001)

	if len(w.Projectiles) != 4 {
		t.Fatalf("expected 4 arrows, got %d", len(w.Projectiles))
	}
	for i, p := range w.Projectiles {
		wantSplit := i < 3
		if p.Pierce != 1 || (p.Split != nil) != wantSplit {
			t.Errorf("arrow %d: pierce %d split %v", i+1, p.Pierce, p.Split != nil)
		}
	}
	if slot := w.Slot(weapons.ArrowID); slot.Shots != 1 || slot.Remaining(w.Time) == 0 {
		t.Errorf("slot not on cooldown: %+v", slot)
	}
}

func TestConvergence_BurstDroppedWhenTargetDies(t *testing.T) {
	w := newArena(core.SandboxMode())
	e := enemyAt(w, 100, 100, 100)
	c := &weapons.Convergence{Hits: 3, Window: 1, FreezeDuration: 1, BurstRatio: 0.5, BurstDelay: 0.3}
	for i := 0; i < 3; i++ {
		converge(w, c, e, 10)
	}
	if len(w.Bursts) != 1 {
		t.Fatalf("bursts: %+v", w.Bursts)
	}

	ApplyDamage(w, e, 500)
	w.Tick(0.01)
	if e.HP != 100 || len(w.Bursts) != 0 {
		t.Fatalf("after reset: hp %f, bursts %+v", e.HP, w.Bursts)
	}
	w.Time = 1
	resolveBursts(w)
	if e.HP != 100 {
		t.Errorf("burst from the previous life landed: hp %f", e.HP)
	}
}

func TestFireArrows_DamageScaleReachesResidual(t *testing.T) {
	w := newArena(testMode)
	residual := &weapons.Residual{Radius: 20, DPS: 8, Duration: 1}
	fireArrows(w, core.Vec2{X: 400, Y: 300}, compose.Snapshot[weapons.Arrow]{
		Weapon:      weapons.ArrowID,
		Range:       300,
		DamageScale: 1.5,
		Instances:   []weapons.Arrow{{Damage: 20, Speed: 200, Residual: residual}},
	})
	if len(w.Projectiles) != 1 {
		t.Fatalf("projectiles: %d", len(w.Projectiles))
	}
	p := w.Projectiles[0]
	if p.Damage != 30 || p.Residual.DPS != 12 {
		t.Errorf("damage %f residual dps %f, want 30 and 12", p.Damage, p.Residual.DPS)
	}
	if residual.DPS != 8 {
		t.Errorf("snapshot residual changed to %f", residual.DPS)
	}
}
