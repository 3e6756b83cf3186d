package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/core"
)

const (
	MaxChainDepth = 3  // fragments deeper than this are never spawned
	CullMargin    = 40 // projectiles this far outside the arena are dropped
)

// ApplyDamage subtracts amount from an alive enemy and reports whether this
// hit killed it. The damage event carries only the HP actually removed; the
// floating number shows the full hit. Dead enemies are ignored until the end-of-step flush, so a
// death is reported once.
func ApplyDamage(w *core.World, e *core.Entity, amount float64) bool {
	if !e.Alive() || amount <= 0 {
		return false
	}
	dealt := math.Min(amount, e.HP)
	e.HP -= amount
	w.AddDamageNumber(e, amount)
	w.Bus.Emit(core.Event{Type: core.EvtEnemyDamaged, Tick: w.TickCount, Time: w.Time, Entity: e.ID, Amount: dealt, Pos: e.Pos})
	if e.HP > 0 {
		return false
	}
	return w.MarkDead(e)
}

// FindNearest returns the closest alive enemy to p, skipping any for which
// skip returns true. Ties go to the first enemy found.
func FindNearest(w *core.World, p core.Vec2, skip func(*core.Entity) bool) *core.Entity {
	return FindNearestWithin(w, p, math.Inf(1), skip)
}

// FindNearestWithin is FindNearest limited to enemies closer than maxDist
func FindNearestWithin(w *core.World, p core.Vec2, maxDist float64, skip func(*core.Entity) bool) *core.Entity {
	var best *core.Entity
	bestDist := maxDist
	for _, e := range w.Enemies {
		if !e.Alive() || (skip != nil && skip(e)) {
			continue
		}
		if d := p.DistanceTo(e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// EnemiesInRadius collects alive enemies whose circle touches the circle at p
func EnemiesInRadius(w *core.World, p core.Vec2, r float64) []*core.Entity {
	var out []*core.Entity
	for _, e := range w.Enemies {
		if e.Alive() && CircleOverlap(p, r, e.Pos, e.Radius) {
			out = append(out, e)
		}
	}
	return out
}

// CircleOverlap tests two circles for contact
func CircleOverlap(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	r := ra + rb
	return dx*dx+dy*dy <= r*r
}

// PointInRect tests p against the rectangle that starts at origin, extends
// length along angle and is width wide
func PointInRect(p, origin core.Vec2, angle, length, width float64) bool {
	along, across := local(p, origin, angle)
	return along >= 0 && along <= length && math.Abs(across) <= width/2
}

// SegmentHit tests a circle against a segment's rectangle
func SegmentHit(s core.Segment, p core.Vec2, r float64) bool {
	length := s.From.DistanceTo(s.To)
	angle := s.From.AngleTo(s.To)
	along, across := local(p, s.From, angle)
	return along >= -r && along <= length+r && math.Abs(across) <= s.Width/2+r
}

// Along returns how far p lies along the segment's direction
func Along(s core.Segment, p core.Vec2) float64 {
	along, _ := local(p, s.From, s.From.AngleTo(s.To))
	return along
}

func local(p, origin core.Vec2, angle float64) (along, across float64) {
	d := p.Sub(origin)
	c, s := math.Cos(angle), math.Sin(angle)
	return d.X*c + d.Y*s, -d.X*s + d.Y*c
}

// aim returns the angle from origin toward the nearest enemy, or fallback
func aim(w *core.World, origin core.Vec2, fallback float64) (float64, *core.Entity) {
	t := FindNearest(w, origin, nil)
	if t == nil {
		return fallback, nil
	}
	return origin.AngleTo(t.Pos), t
}

// fan returns the offset of unit i of n spread evenly around 0
func fan(i, n int, step float64) float64 {
	return (float64(i) - float64(n-1)/2) * step
}
