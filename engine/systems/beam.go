package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// MaxRefractionHops caps how many times a beam can bounce between enemies
const MaxRefractionHops = 2

// fireBeams starts one beam per instance. Each claims the nearest enemy no
// sibling has claimed yet; claims start over once every enemy is taken. With
// no enemies the beams spread evenly around the caster.
func fireBeams(w *core.World, origin core.Vec2, snap compose.Snapshot[weapons.Beam]) {
	n := len(snap.Instances)
	alive := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			alive++
		}
	}
	claimed := make(map[core.EntityID]bool)
	for i, b := range snap.Instances {
		b.DPS *= snap.DamageScale
		b.PulseDamage *= snap.DamageScale

		if alive > 0 && len(claimed) >= alive {
			clear(claimed)
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		var target core.EntityID
		if t := FindNearest(w, origin, func(e *core.Entity) bool { return claimed[e.ID] }); t != nil {
			claimed[t.ID] = true
			target = t.ID
			angle = origin.AngleTo(t.Pos)
		}
		w.Beams = append(w.Beams, &core.BeamEffect{
			ID:        w.NewID(),
			Origin:    origin,
			Angle:     angle,
			Range:     snap.Range,
			Spec:      b,
			Target:    target,
			CreatedAt: w.Time,
			NextPulse: w.Time,
			Focus:     make(map[core.EntityID]float64),
		})
	}
}

// BeamSystem aims beams, recomputes their child segments and applies damage
type BeamSystem struct{}

func (s *BeamSystem) Priority() int { return 26 }

func (s *BeamSystem) Update(w *core.World, dt float64) {
	now := w.Time
	beams := w.Beams[:0]
	for _, b := range w.Beams {
		if core.Expired(now, b.CreatedAt, b.Spec.Duration) {
			leaveTrail(w, b)
			continue
		}
		b.Origin = w.Player.Pos
		if b.Spec.Mode == weapons.BeamPulsed {
			s.pulsed(w, b)
		} else {
			s.continuous(w, b, dt)
		}
		beams = append(beams, b)
	}
	clear(w.Beams[len(beams):])
	w.Beams = beams
}

func (s *BeamSystem) continuous(w *core.World, b *core.BeamEffect, dt float64) {
	if t := w.Enemy(b.Target); t.Alive() {
		b.Angle = b.Origin.AngleTo(t.Pos)
	}
	main := MainSegment(w, b)
	inside := enemiesOn(w, main)
	first := firstAlong(main, inside)
	b.Segments = Children(w, b, main, first)

	base := b.Spec.DPS * dt * b.DamageMult(w.Time)
	in := make(map[core.EntityID]bool, len(inside))
	for _, e := range inside {
		in[e.ID] = true
		mult := 1.0
		if fc := b.Spec.Focus; fc != nil {
			b.Focus[e.ID] += dt
			mult += math.Min(b.Focus[e.ID]*fc.RatePerSec, fc.Max)
		}
		ApplyDamage(w, e, base*mult)
	}
	for id := range b.Focus {
		if !in[id] {
			delete(b.Focus, id)
		}
	}
	damageChildren(w, b, base)
}

func (s *BeamSystem) pulsed(w *core.World, b *core.BeamEffect) {
	pulse := w.Time >= b.NextPulse
	if pulse {
		b.Angle, _ = aim(w, b.Origin, b.Angle)
		b.NextPulse += b.Spec.PulseInterval
		if b.NextPulse <= w.Time {
			b.NextPulse = w.Time + b.Spec.PulseInterval
		}
	}
	main := MainSegment(w, b)
	inside := enemiesOn(w, main)
	first := firstAlong(main, inside)
	b.Segments = Children(w, b, main, first)
	if !pulse {
		return
	}

	amount := b.Spec.PulseDamage * b.DamageMult(w.Time)
	push := core.FromAngle(b.Angle, b.Spec.Knockback)
	for _, e := range inside {
		if !ApplyDamage(w, e, amount) {
			e.Pos = e.Pos.Add(push)
		}
	}
	damageChildren(w, b, amount)
}

// MainSegment is the beam's own rectangle at the current time
func MainSegment(w *core.World, b *core.BeamEffect) core.Segment {
	return core.Segment{
		From:  b.Origin,
		To:    b.Origin.Add(core.FromAngle(b.Angle, b.Range)),
		Width: b.Width(w.Time),
	}
}

// Children computes refraction hops and prism splits from the first enemy
// the main segment hits
func Children(w *core.World, b *core.BeamEffect, main core.Segment, first *core.Entity) []core.BeamSegment {
	if first == nil {
		return nil
	}
	var out []core.BeamSegment

	if r := b.Spec.Refraction; r != nil {
		hops := min(r.Hops, MaxRefractionHops)
		used := map[core.EntityID]bool{first.ID: true}
		prev, ratio := first, 1.0
		for h := 0; h < hops; h++ {
			next := FindNearestWithin(w, prev.Pos, r.Radius, func(e *core.Entity) bool { return used[e.ID] })
			if next == nil {
				break
			}
			ratio *= r.Falloff
			out = append(out, core.BeamSegment{
				Segment: core.Segment{From: prev.Pos, To: next.Pos, Width: main.Width},
				Ratio:   ratio,
				Source:  prev.ID,
			})
			used[next.ID] = true
			prev = next
		}
	}

	if p := b.Spec.Prism; p != nil {
		for k := -1; k <= 1; k++ {
			a := b.Angle + float64(k)*p.Angle
			out = append(out, core.BeamSegment{
				Segment: core.Segment{From: first.Pos, To: first.Pos.Add(core.FromAngle(a, p.Length)), Width: main.Width},
				Ratio:   p.Ratio,
				Source:  first.ID,
				Prism:   true,
			})
		}
	}
	return out
}

// damageChildren applies base scaled by each child's ratio. An enemy under
// all three prism children takes the prism bonus on each of them.
func damageChildren(w *core.World, b *core.BeamEffect, base float64) {
	if len(b.Segments) == 0 {
		return
	}
	prismHits := make(map[core.EntityID]int)
	for _, seg := range b.Segments {
		if !seg.Prism {
			continue
		}
		for _, e := range enemiesOn(w, seg.Segment) {
			prismHits[e.ID]++
		}
	}
	for _, seg := range b.Segments {
		for _, e := range enemiesOn(w, seg.Segment) {
			if e.ID == seg.Source {
				continue
			}
			amt := base * seg.Ratio
			if seg.Prism && prismHits[e.ID] >= 3 {
				amt *= b.Spec.Prism.Bonus
			}
			ApplyDamage(w, e, amt)
		}
	}
}

// leaveTrail turns an expiring beam's last geometry into a trail hazard
func leaveTrail(w *core.World, b *core.BeamEffect) {
	tr := b.Spec.Trail
	if tr == nil {
		return
	}
	segs := []core.Segment{MainSegment(w, b)}
	for _, s := range b.Segments {
		segs = append(segs, s.Segment)
	}
	dps := b.Spec.DPS
	if b.Spec.Mode == weapons.BeamPulsed && b.Spec.PulseInterval > 0 {
		dps = b.Spec.PulseDamage / b.Spec.PulseInterval
	}
	w.Hazards = append(w.Hazards, &core.Hazard{
		ID:        w.NewID(),
		Kind:      core.HazardTrail,
		DPS:       dps * tr.Ratio,
		Segments:  segs,
		CreatedAt: w.Time,
		Duration:  tr.Duration,
	})
}

func enemiesOn(w *core.World, s core.Segment) []*core.Entity {
	var out []*core.Entity
	for _, e := range w.Enemies {
		if e.Alive() && SegmentHit(s, e.Pos, e.Radius) {
			out = append(out, e)
		}
	}
	return out
}

// firstAlong picks the enemy closest to the segment's start
func firstAlong(s core.Segment, es []*core.Entity) *core.Entity {
	var best *core.Entity
	bestAlong := math.Inf(1)
	for _, e := range es {
		if a := Along(s, e.Pos); a < bestAlong {
			best, bestAlong = e, a
		}
	}
	return best
}
