package pathfind

import "github.com/1siamBot/stackfire/engine/core"

// ArriveDistance is how close a body must get before it stops seeking
const ArriveDistance = 0.01

// separationWeight scales the push from overlapping neighbours relative to speed
const separationWeight = 0.5

// Body is a moving circle: the mover itself or a neighbour to keep clear of
type Body struct {
	Pos    core.Vec2
	Radius float64
}

// Neighbors collects the bodies of live enemies within reach of self,
// excluding self
func Neighbors(self *core.Entity, enemies []*core.Entity, reach float64) []Body {
	var out []Body
	for _, o := range enemies {
		if o == self || !o.Alive() {
			continue
		}
		if self.Pos.DistanceTo(o.Pos) < reach {
			out = append(out, Body{Pos: o.Pos, Radius: o.Radius})
		}
	}
	return out
}

// Seek returns the velocity that moves self toward target at speed while
// pushing away from overlapping neighbours. The result never exceeds speed.
func Seek(self Body, target core.Vec2, speed float64, others []Body) core.Vec2 {
	to := target.Sub(self.Pos)
	dist := to.Len()
	if dist < ArriveDistance {
		return core.Vec2{}
	}
	v := to.Scale(speed / dist)

	for _, o := range others {
		away := self.Pos.Sub(o.Pos)
		d := away.Len()
		gap := o.Radius + self.Radius
		if d >= gap || d <= 0.001 {
			continue
		}
		overlap := (gap - d) / gap
		v = v.Add(away.Scale(overlap * speed * separationWeight / d))
	}

	if l := v.Len(); l > speed {
		v = v.Scale(speed / l)
	}
	return v
}
