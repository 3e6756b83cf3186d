package systems

import (
	"testing"

	"github.com/1siamBot/stackfire/engine/core"
)

func TestMovement_FrozenStays(t *testing.T) {
	w := newArena(core.ScoredMode(), &MovementSystem{})
	e := enemyAt(w, 100, 100, 50)
	e.Speed = 40
	e.Status.Freeze(0, 1)
	run(w, 5, 0.1)
	if e.Pos != (core.Vec2{X: 100, Y: 100}) {
		t.Errorf("frozen enemy moved to %+v", e.Pos)
	}
	run(w, 10, 0.1)
	if e.Pos == (core.Vec2{X: 100, Y: 100}) {
		t.Error("enemy still stuck after the freeze ended")
	}
}

func TestMovement_PatrolBounces(t *testing.T) {
	w := newArena(testMode, &MovementSystem{})
	e := enemyAt(w, 200, 100, 50)
	e.Speed = 100
	e.Patrol = &core.Patrol{Center: e.Pos, HalfRange: 20, Speed: 100, Dir: 1}

	w.Tick(0.3)
	if e.Pos.X != 220 || e.Patrol.Dir != -1 {
		t.Fatalf("patrol did not turn at the edge: x %f dir %f", e.Pos.X, e.Patrol.Dir)
	}
	w.Tick(0.1)
	if !near(e.Pos.X, 210) {
		t.Errorf("patrol heading back: x %f", e.Pos.X)
	}
}

func TestMovement_SlowHalvesPatrol(t *testing.T) {
	w := newArena(testMode, &MovementSystem{})
	e := enemyAt(w, 200, 100, 50)
	e.Speed = 100
	e.Patrol = &core.Patrol{Center: e.Pos, HalfRange: 80, Speed: 100, Dir: 1}
	e.Status.Slow(0, 5)
	w.Tick(0.1)
	if !near(e.Pos.X, 200+10*core.SlowFactor) {
		t.Errorf("slowed patrol: x %f", e.Pos.X)
	}
}

func TestMovement_ChaseAndContact(t *testing.T) {
	w := newArena(core.ScoredMode(), &MovementSystem{})
	e := enemyAt(w, 300, 300, 50)
	e.Speed = 100
	var hits int
	w.Bus.On(core.EvtPlayerHit, func(core.Event) { hits++ })

	w.Tick(0.1)
	if !near(e.Pos.X, 310) || !near(e.Pos.Y, 300) {
		t.Fatalf("chase step: %+v", e.Pos)
	}

	e.Pos = core.Vec2{X: w.Player.Pos.X + 20, Y: w.Player.Pos.Y}
	e.Speed = 0
	w.Tick(0.5)
	w.Bus.Dispatch()
	if !near(w.Player.HP, 100-w.Mode.ContactDPS*0.5) || hits != 1 {
		t.Errorf("contact: player hp %f, hits %d", w.Player.HP, hits)
	}
}

func TestMovement_NoContactInSandbox(t *testing.T) {
	w := newArena(core.SandboxMode(), &MovementSystem{})
	enemyAt(w, w.Player.Pos.X, w.Player.Pos.Y, 50)
	run(w, 10, 0.1)
	if w.Player.HP != 100 {
		t.Errorf("sandbox player took damage: %f", w.Player.HP)
	}
}

func TestMovement_ClampedToArena(t *testing.T) {
	w := newArena(testMode, &MovementSystem{})
	e := enemyAt(w, 795, 100, 50)
	e.Speed = 100
	e.Patrol = &core.Patrol{Center: e.Pos, HalfRange: 200, Speed: 100, Dir: 1}
	w.Tick(0.1)
	if e.Pos.X != 800-e.Radius {
		t.Errorf("enemy left the arena: x %f", e.Pos.X)
	}
}
