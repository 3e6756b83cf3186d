package core

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// EntityView is a read-only copy of an entity for drawing
type EntityView struct {
	ID      EntityID
	Pos     Vec2
	Radius  float64
	HP      float64 // never negative
	MaxHP   float64
	Health  float64 // HP as a fraction of MaxHP
	Frozen  bool
	Slowed  bool
	Burning bool
	Player  bool
}

// ShotView is a projectile or fireball in flight
type ShotView struct {
	Weapon   compose.WeaponID
	Pos      Vec2
	Radius   float64
	Fragment bool
	Meteor   bool
	Target   Vec2
}

// CircleView is any round effect: zone sample points, mines, waves,
// explosions, hazards, orbs
type CircleView struct {
	Kind   string
	Pos    Vec2
	Radius float64
	Armed  bool
}

// SegmentView is a beam, beam child or trail piece
type SegmentView struct {
	Segment
	Kind string
}

// NumberView is a floating damage number
type NumberView struct {
	Pos    Vec2
	Amount float64
	Age    float64
}

// SlotView reports one weapon slot's state
type SlotView struct {
	Weapon    compose.WeaponID
	Picks     int
	Remaining float64
	Cooldown  float64
	Shots     uint64
}

// Frame is everything a renderer needs for one frame. It shares no memory
// with the World, so it may be kept or read while the world keeps running.
type Frame struct {
	Time     float64
	Tick     uint64
	Bounds   Vec2
	Player   EntityView
	Enemies  []EntityView
	Shots    []ShotView
	Circles  []CircleView
	Segments []SegmentView
	Numbers  []NumberView
	Slots    []SlotView
}

// Frame copies the drawable state of the world
func (w *World) Frame() Frame {
	f := Frame{
		Time:   w.Time,
		Tick:   w.TickCount,
		Bounds: w.Bounds,
		Player: w.view(w.Player),
	}
	f.Enemies = make([]EntityView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		f.Enemies = append(f.Enemies, w.view(e))
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			f.Shots = append(f.Shots, ShotView{Weapon: p.Weapon, Pos: p.Pos, Radius: p.Radius, Fragment: p.Fragment})
		}
	}
	for _, fb := range w.Fireballs {
		if fb.Alive {
			f.Shots = append(f.Shots, ShotView{Weapon: weapons.FireballID, Pos: fb.Pos, Radius: fb.Spec.Radius / 4, Meteor: fb.Meteor, Target: fb.Target})
		}
	}
	for _, z := range w.Zones {
		for _, p := range z.Points {
			f.Circles = append(f.Circles, CircleView{Kind: "zone", Pos: p, Radius: z.Radius})
		}
	}
	for _, m := range w.Mines {
		f.Circles = append(f.Circles, CircleView{Kind: "mine", Pos: m.Pos, Radius: m.DetectRadius, Armed: !m.Triggered})
	}
	for _, rw := range w.Waves {
		f.Circles = append(f.Circles, CircleView{Kind: "wave", Pos: rw.Center, Radius: rw.Radius})
	}
	for _, ex := range w.Explosions {
		f.Circles = append(f.Circles, CircleView{Kind: "explosion", Pos: ex.Pos, Radius: ex.Radius})
	}
	for _, h := range w.Hazards {
		if h.Kind == HazardTrail {
			for _, s := range h.Segments {
				f.Segments = append(f.Segments, SegmentView{Segment: s, Kind: "trail"})
			}
			continue
		}
		f.Circles = append(f.Circles, CircleView{Kind: hazardNames[h.Kind], Pos: h.Pos, Radius: h.Radius, Armed: !h.Detonated})
	}
	for _, o := range w.Orbs {
		f.Circles = append(f.Circles, CircleView{Kind: "orb", Pos: o.Pos, Radius: o.Spec.Size})
	}
	for _, b := range w.Beams {
		main := Segment{From: b.Origin, To: b.Origin.Add(FromAngle(b.Angle, b.Range)), Width: b.Width(w.Time)}
		f.Segments = append(f.Segments, SegmentView{Segment: main, Kind: "beam"})
		for _, s := range b.Segments {
			kind := "refraction"
			if s.Prism {
				kind = "prism"
			}
			f.Segments = append(f.Segments, SegmentView{Segment: s.Segment, Kind: kind})
		}
	}
	for _, n := range w.Numbers {
		f.Numbers = append(f.Numbers, NumberView{Pos: n.Pos, Amount: n.Amount, Age: w.Time - n.CreatedAt})
	}
	for _, s := range w.Slots {
		f.Slots = append(f.Slots, SlotView{
			Weapon:    s.Weapon.ID(),
			Picks:     len(s.Picks),
			Remaining: s.Remaining(w.Time),
			Cooldown:  s.Weapon.Cooldown(),
			Shots:     s.Shots,
		})
	}
	return f
}

var hazardNames = map[HazardKind]string{
	HazardResidual: "residual",
	HazardLava:     "lava",
	HazardCorpse:   "corpse",
	HazardTrail:    "trail",
}

func (w *World) view(e *Entity) EntityView {
	return EntityView{
		ID:      e.ID,
		Pos:     e.Pos,
		Radius:  e.Radius,
		HP:      math.Max(e.HP, 0),
		MaxHP:   e.MaxHP,
		Health:  e.Ratio(),
		Frozen:  e.Status.Frozen(w.Time),
		Slowed:  e.Status.Slowed(w.Time),
		Burning: e.Status.Burning(w.Time),
		Player:  e.Player,
	}
}
