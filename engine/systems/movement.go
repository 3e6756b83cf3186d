package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/pathfind"
)

// separationRange is how close another enemy must be to push back
const separationRange = 48

// MovementSystem moves enemies: chasing the player when the mode asks for it,
// patrolling otherwise. Frozen enemies do not move.
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		factor := e.Status.SpeedFactor(w.Time)
		if factor == 0 {
			continue
		}
		speed := e.Speed * factor

		switch {
		case w.Mode.Chase:
			s.chase(w, e, speed, dt)
		case e.Patrol != nil:
			patrol(e, speed, dt)
		}
		clampToBounds(w, e)
	}

	if w.Mode.ContactDamage {
		s.contact(w, dt)
	}
}

func (s *MovementSystem) chase(w *core.World, e *core.Entity, speed, dt float64) {
	others := pathfind.Neighbors(e, w.Enemies, separationRange)
	v := pathfind.Seek(pathfind.Body{Pos: e.Pos, Radius: e.Radius}, w.Player.Pos, speed, others)
	e.Pos = e.Pos.Add(v.Scale(dt))
}

func patrol(e *core.Entity, speed, dt float64) {
	pt := e.Patrol
	if pt.Dir == 0 {
		pt.Dir = 1
	}
	e.Pos.X += pt.Dir * speed * dt
	if off := e.Pos.X - pt.Center.X; math.Abs(off) >= pt.HalfRange {
		e.Pos.X = pt.Center.X + math.Copysign(pt.HalfRange, off)
		pt.Dir = -pt.Dir
	}
}

func (s *MovementSystem) contact(w *core.World, dt float64) {
	pl := w.Player
	for _, e := range w.Enemies {
		if !e.Alive() || !CircleOverlap(pl.Pos, pl.Radius, e.Pos, e.Radius) {
			continue
		}
		amt := w.Mode.ContactDPS * dt
		pl.HP = math.Max(pl.HP-amt, 0)
		w.Bus.Emit(core.Event{Type: core.EvtPlayerHit, Tick: w.TickCount, Time: w.Time, Entity: e.ID, Amount: amt, Pos: pl.Pos})
	}
}

func clampToBounds(w *core.World, e *core.Entity) {
	e.Pos.X = math.Max(e.Radius, math.Min(w.Bounds.X-e.Radius, e.Pos.X))
	e.Pos.Y = math.Max(e.Radius, math.Min(w.Bounds.Y-e.Radius, e.Pos.Y))
}
