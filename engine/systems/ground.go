package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

const (
	mineSettle        = 0.3 // a triggered mine stays visible this long
	ringSpreadFactor  = 2.0 // spread ring radius relative to the main ring
	zoneSecondPadding = 0.05
)

// Footprint returns the main and spread sample points of one ground cast
// facing dir from origin. reach is the arc radius or the ring's offset.
func Footprint(f weapons.Frost, origin core.Vec2, dir, reach float64) (main, spread []core.Vec2) {
	pts := f.Points
	if pts < 1 {
		pts = 1
	}
	extra := 0
	if f.Spread != nil {
		extra = f.Spread.Points
	}

	if f.Shape == weapons.ShapeRing {
		center := origin.Add(core.FromAngle(dir, reach))
		for k := 0; k < pts; k++ {
			main = append(main, center.Add(core.FromAngle(2*math.Pi*float64(k)/float64(pts), f.RingRadius)))
		}
		if extra > 0 {
			m := 2 * extra
			for k := 0; k < m; k++ {
				spread = append(spread, center.Add(core.FromAngle(2*math.Pi*(float64(k)+0.5)/float64(m), f.RingRadius*ringSpreadFactor)))
			}
		}
		return main, spread
	}

	step := 0.0
	if pts > 1 {
		step = f.ArcAngle / float64(pts-1)
	}
	first := dir - f.ArcAngle/2
	if pts == 1 {
		first = dir
	}
	for k := 0; k < pts; k++ {
		main = append(main, origin.Add(core.FromAngle(first+float64(k)*step, reach)))
	}
	if step == 0 {
		step = f.ArcAngle / 4
	}
	last := first + float64(pts-1)*step
	for k := 1; k <= extra; k++ {
		spread = append(spread,
			origin.Add(core.FromAngle(first-float64(k)*step, reach)),
			origin.Add(core.FromAngle(last+float64(k)*step, reach)),
		)
	}
	return main, spread
}

// fireFrost casts one footprint per instance. Mined footprints become
// dormant mines; the rest strike at once.
func fireFrost(w *core.World, origin core.Vec2, snap compose.Snapshot[weapons.Frost]) {
	base, _ := aim(w, origin, 0)
	n := len(snap.Instances)
	for i, f := range snap.Instances {
		f.Damage *= snap.DamageScale
		dir := base + fan(i, n, snap.Spread)
		main, spread := Footprint(f, origin, dir, snap.Range)

		var strike []core.Vec2
		if f.Mine != nil {
			layMines(w, f, main)
		} else {
			strike = append(strike, main...)
		}
		if f.Mine != nil && f.Spread != nil && f.Spread.Mined {
			layMines(w, f, spread)
		} else {
			strike = append(strike, spread...)
		}
		if len(strike) == 0 {
			continue
		}

		z := &core.GroundZone{
			ID:           w.NewID(),
			Origin:       origin,
			Dir:          dir,
			Points:       strike,
			Radius:       f.HitRadius,
			Damage:       f.Damage,
			SlowDuration: f.SlowDuration,
			Permafrost:   f.Permafrost,
			Hit:          core.HitSet{},
			CreatedAt:    w.Time,
			Duration:     f.Duration,
		}
		if f.DoubleHit != nil {
			z.SecondAt = w.Time + f.DoubleHit.Delay
			z.SecondRatio = f.DoubleHit.Ratio
			z.Duration = math.Max(z.Duration, f.DoubleHit.Delay+zoneSecondPadding)
		}
		w.Zones = append(w.Zones, z)

		hits := strikeZone(w, z, z.Damage, z.Hit)
		if f.Resonance != nil && len(z.Hit) >= f.Resonance.MinHits {
			w.Waves = append(w.Waves, &core.ResonanceWave{
				ID:        w.NewID(),
				Center:    centroid(hits),
				MaxRadius: f.Resonance.MaxRadius,
				Speed:     f.Resonance.Speed,
				Damage:    z.Damage * f.Resonance.Ratio,
				Hit:       core.HitSet{},
				CreatedAt: w.Time,
			})
		}
	}
}

func layMines(w *core.World, f weapons.Frost, pts []core.Vec2) {
	for _, p := range pts {
		w.Mines = append(w.Mines, &core.Mine{
			ID:           w.NewID(),
			Pos:          p,
			DetectRadius: f.Mine.DetectRadius,
			Damage:       f.Damage,
			SlowDuration: f.SlowDuration,
			Permafrost:   f.Permafrost,
			CreatedAt:    w.Time,
			Lifetime:     f.Mine.Lifetime,
		})
	}
}

// strikeZone damages each enemy touching any sample point once, recording
// it in hit. It returns the sample points that touched something.
func strikeZone(w *core.World, z *core.GroundZone, damage float64, hit core.HitSet) []core.Vec2 {
	var hitting []core.Vec2
	touched := make([]bool, len(z.Points))
	for _, e := range w.Enemies {
		if !e.Alive() || hit.Has(e.ID) {
			continue
		}
		found := false
		for k, p := range z.Points {
			if CircleOverlap(p, z.Radius, e.Pos, e.Radius) {
				touched[k] = true
				found = true
			}
		}
		if !found {
			continue
		}
		hit.Add(e.ID)
		frostHit(w, e, damage, z.SlowDuration, z.Permafrost)
	}
	for k, t := range touched {
		if t {
			hitting = append(hitting, z.Points[k])
		}
	}
	return hitting
}

// frostHit applies ground damage and chill. Permafrost turns an existing
// slow into a freeze and hits frozen enemies harder.
func frostHit(w *core.World, e *core.Entity, damage, slow float64, pf *weapons.Permafrost) {
	now := w.Time
	if pf != nil && e.Status.Frozen(now) {
		damage *= pf.DamageMult
	}
	wasSlowed := e.Status.Slowed(now)
	if ApplyDamage(w, e, damage) {
		return
	}
	if pf != nil && wasSlowed {
		e.Status.ClearSlow()
		e.Status.Freeze(now, pf.FreezeDuration)
		return
	}
	e.Status.Slow(now, slow)
}

func centroid(pts []core.Vec2) core.Vec2 {
	if len(pts) == 0 {
		return core.Vec2{}
	}
	var c core.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}

// GroundSystem runs second strikes, arms and triggers mines, grows resonance
// waves and drops whatever has expired
type GroundSystem struct{}

func (s *GroundSystem) Priority() int { return 32 }

func (s *GroundSystem) Update(w *core.World, dt float64) {
	now := w.Time

	zones := w.Zones[:0]
	for _, z := range w.Zones {
		if z.SecondAt > 0 && !z.SecondDone && now >= z.SecondAt {
			z.SecondDone = true
			strikeZone(w, z, z.Damage*z.SecondRatio, core.HitSet{})
		}
		if !core.Expired(now, z.CreatedAt, z.Duration) {
			zones = append(zones, z)
		}
	}
	clear(w.Zones[len(zones):])
	w.Zones = zones

	mines := w.Mines[:0]
	for _, m := range w.Mines {
		if m.Triggered {
			if now-m.TriggeredAt < mineSettle {
				mines = append(mines, m)
			}
			continue
		}
		if core.Expired(now, m.CreatedAt, m.Lifetime) {
			continue
		}
		if victims := EnemiesInRadius(w, m.Pos, m.DetectRadius); len(victims) > 0 {
			m.Triggered = true
			m.TriggeredAt = now
			for _, e := range victims {
				frostHit(w, e, m.Damage, m.SlowDuration, m.Permafrost)
			}
		}
		mines = append(mines, m)
	}
	clear(w.Mines[len(mines):])
	w.Mines = mines

	waves := w.Waves[:0]
	for _, rw := range w.Waves {
		rw.Radius = math.Min(rw.Radius+rw.Speed*dt, rw.MaxRadius)
		for _, e := range w.Enemies {
			if !e.Alive() || rw.Hit.Has(e.ID) {
				continue
			}
			if rw.Center.DistanceTo(e.Pos) <= rw.Radius+e.Radius {
				rw.Hit.Add(e.ID)
				ApplyDamage(w, e, rw.Damage)
			}
		}
		if !rw.Done() {
			waves = append(waves, rw)
		}
	}
	clear(w.Waves[len(waves):])
	w.Waves = waves
}
