package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

const (
	arrowRadius      = 4
	fragmentLifetime = 0.8
)

// fireArrows launches one projectile per instance, fanned around the
// direction of the nearest enemy
func fireArrows(w *core.World, origin core.Vec2, snap compose.Snapshot[weapons.Arrow]) {
	base, _ := aim(w, origin, 0)
	n := len(snap.Instances)
	for i, a := range snap.Instances {
		if a.Residual != nil {
			r := *a.Residual
			r.DPS *= snap.DamageScale
			a.Residual = &r
		}
		angle := base + fan(i, n, snap.Spread)
		lifetime := math.Inf(1)
		if a.Speed > 0 {
			lifetime = snap.Range / a.Speed
		}
		w.Projectiles = append(w.Projectiles, &core.Projectile{
			ID:          w.NewID(),
			Weapon:      snap.Weapon,
			Pos:         origin,
			Vel:         core.FromAngle(angle, a.Speed),
			Radius:      arrowRadius,
			Damage:      a.Damage * snap.DamageScale,
			Pierce:      a.Pierce,
			Homing:      a.Homing,
			Split:       a.Split,
			Chain:       a.Chain,
			Convergence: a.Convergence,
			Residual:    a.Residual,
			Hit:         core.HitSet{},
			Alive:       true,
			CreatedAt:   w.Time,
			Lifetime:    lifetime,
		})
	}
}

// ProjectileSystem moves point projectiles and resolves their hits
type ProjectileSystem struct{}

func (s *ProjectileSystem) Priority() int { return 25 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	// Children spawned this step start moving next step
	n := len(w.Projectiles)
	for i := 0; i < n; i++ {
		p := w.Projectiles[i]
		if !p.Alive {
			continue
		}
		if p.Homing != nil && !p.Fragment {
			steerToward(w, p, dt)
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		if outside(w, p.Pos) || core.Expired(w.Time, p.CreatedAt, p.Lifetime) {
			p.Alive = false
			continue
		}

		for _, e := range w.Enemies {
			if !e.Alive() || p.Hit.Has(e.ID) {
				continue
			}
			if !CircleOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
				continue
			}
			s.hit(w, p, e)
			if !p.Alive {
				break
			}
		}
	}

	resolveBursts(w)

	alive := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	clear(w.Projectiles[len(alive):])
	w.Projectiles = alive
}

func (s *ProjectileSystem) hit(w *core.World, p *core.Projectile, e *core.Entity) {
	p.Hit.Add(e.ID)
	at := e.Pos
	killed := ApplyDamage(w, e, p.Damage)

	if p.Convergence != nil && !killed {
		converge(w, p.Convergence, e, p.Damage)
	}
	if p.Residual != nil {
		w.Hazards = append(w.Hazards, &core.Hazard{
			ID:        w.NewID(),
			Kind:      core.HazardResidual,
			Pos:       at,
			Radius:    p.Residual.Radius,
			DPS:       p.Residual.DPS,
			CreatedAt: w.Time,
			Duration:  p.Residual.Duration,
		})
	}
	if killed && p.Chain != nil {
		spawnChain(w, p, at)
	}
	if !killed && p.Split != nil && !p.Fragment {
		spawnSplit(w, p)
	}

	if p.Pierce > 0 {
		p.Pierce--
	} else {
		p.Alive = false
	}
}

// steerToward turns the velocity toward the nearest enemy by at most
// TurnSpeed*dt radians
func steerToward(w *core.World, p *core.Projectile, dt float64) {
	t := FindNearest(w, p.Pos, func(e *core.Entity) bool { return p.Hit.Has(e.ID) })
	if t == nil {
		return
	}
	cur := math.Atan2(p.Vel.Y, p.Vel.X)
	want := p.Pos.AngleTo(t.Pos)
	diff := math.Remainder(want-cur, 2*math.Pi)
	limit := p.Homing.TurnSpeed * dt
	if diff > limit {
		diff = limit
	} else if diff < -limit {
		diff = -limit
	}
	p.Vel = core.FromAngle(cur+diff, p.Vel.Len())
}

// spawnChain launches chain fragments in random directions from a kill.
// Fragments past MaxChainDepth are dropped.
func spawnChain(w *core.World, p *core.Projectile, at core.Vec2) {
	depth := p.ChainDepth + 1
	if depth > MaxChainDepth {
		return
	}
	speed := p.Vel.Len()
	for i := 0; i < p.Chain.Count; i++ {
		w.Projectiles = append(w.Projectiles, fragment(w, p, at, w.RNG.Angle(), speed, p.Damage*p.Chain.DamageRatio, depth, core.HitSet{}))
	}
}

// spawnSplit fans children symmetrically around the parent's heading
func spawnSplit(w *core.World, p *core.Projectile) {
	depth := p.ChainDepth + 1
	if depth > MaxChainDepth {
		return
	}
	sp := p.Split
	heading := math.Atan2(p.Vel.Y, p.Vel.X)
	speed := p.Vel.Len() * sp.SpeedRatio
	for i := 0; i < sp.Count; i++ {
		angle := heading + fan(i, sp.Count, sp.Angle)
		w.Projectiles = append(w.Projectiles, fragment(w, p, p.Pos, angle, speed, p.Damage*sp.DamageRatio, depth, p.Hit.Clone()))
	}
}

// fragment builds a child that can neither split nor home
func fragment(w *core.World, parent *core.Projectile, at core.Vec2, angle, speed, damage float64, depth int, hit core.HitSet) *core.Projectile {
	return &core.Projectile{
		ID:         w.NewID(),
		Weapon:     parent.Weapon,
		Pos:        at,
		Vel:        core.FromAngle(angle, speed),
		Radius:     parent.Radius * 0.75,
		Damage:     damage,
		Chain:      parent.Chain,
		Hit:        hit,
		Alive:      true,
		ChainDepth: depth,
		Fragment:   true,
		CreatedAt:  w.Time,
		Lifetime:   fragmentLifetime,
	}
}

// converge records a hit and, once enough land inside the window, freezes
// the enemy and schedules a burst of the accumulated damage
func converge(w *core.World, c *weapons.Convergence, e *core.Entity, damage float64) {
	tr := w.Convergence[e.ID]
	if tr == nil {
		tr = &core.ConvergenceTrack{}
		w.Convergence[e.ID] = tr
	}
	// Drop hits that fell out of the window
	keep := 0
	for i, t := range tr.Times {
		if w.Time-t <= c.Window {
			tr.Times[keep] = t
			tr.Damage[keep] = tr.Damage[i]
			keep++
		}
	}
	tr.Times = append(tr.Times[:keep], w.Time)
	tr.Damage = append(tr.Damage[:keep], damage)

	if len(tr.Times) < c.Hits {
		return
	}
	total := 0.0
	for _, d := range tr.Damage {
		total += d
	}
	delete(w.Convergence, e.ID)
	e.Status.Freeze(w.Time, c.FreezeDuration)
	w.Bursts = append(w.Bursts, core.PendingBurst{Target: e.ID, At: w.Time + c.BurstDelay, Amount: total * c.BurstRatio})
}

// resolveBursts applies delayed convergence damage that is due
func resolveBursts(w *core.World) {
	pending := w.Bursts[:0]
	for _, b := range w.Bursts {
		if w.Time < b.At {
			pending = append(pending, b)
			continue
		}
		if e := w.Enemy(b.Target); e != nil {
			ApplyDamage(w, e, b.Amount)
		}
	}
	w.Bursts = pending
}

func outside(w *core.World, p core.Vec2) bool {
	return p.X < -CullMargin || p.Y < -CullMargin ||
		p.X > w.Bounds.X+CullMargin || p.Y > w.Bounds.Y+CullMargin
}
