package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

const (
	explosionDuration = 0.3
	shrapnelRadius    = 3
	shrapnelLifetime  = 0.6
	shotContactRadius = 6
)

// fireFireballs throws one explosive per instance at the nearest enemy inside
// the throw range, or straight ahead to full range when there is none
func fireFireballs(w *core.World, origin core.Vec2, snap compose.Snapshot[weapons.Fireball]) {
	base, t := aim(w, origin, 0)
	dist := snap.Range
	if t != nil {
		dist = math.Min(origin.DistanceTo(t.Pos), snap.Range)
	}
	n := len(snap.Instances)
	for i, f := range snap.Instances {
		f = scaleFireball(f, snap.DamageScale)
		angle := base + fan(i, n, snap.Spread)
		target := origin.Add(core.FromAngle(angle, dist))
		w.Fireballs = append(w.Fireballs, launch(w, origin, target, f))
	}
}

// scaleFireball multiplies every absolute damage figure of f by k. Sub-structs
// are copied since they are shared with the snapshot.
func scaleFireball(f weapons.Fireball, k float64) weapons.Fireball {
	f.Damage *= k
	if f.Ignite != nil {
		ig := *f.Ignite
		ig.DPS *= k
		f.Ignite = &ig
	}
	if f.Lava != nil {
		lv := *f.Lava
		lv.DPS *= k
		f.Lava = &lv
	}
	if f.Wildfire != nil {
		wf := *f.Wildfire
		wf.CorpseDPS *= k
		wf.DetonateDamage *= k
		f.Wildfire = &wf
	}
	return f
}

// launch builds a flying shot, or a countdown at a scattered landing point
// for meteors
func launch(w *core.World, from, target core.Vec2, f weapons.Fireball) *core.FireballShot {
	shot := &core.FireballShot{
		ID:        w.NewID(),
		Pos:       from,
		Target:    target,
		Spec:      f,
		Alive:     true,
		CreatedAt: w.Time,
	}
	if f.Meteor != nil {
		landing := target.Add(core.FromAngle(w.RNG.Angle(), w.RNG.Range(0, f.Meteor.Scatter)))
		shot.Pos = landing
		shot.Target = landing
		shot.Meteor = true
		shot.DetonateAt = w.Time + f.Meteor.Delay
		return shot
	}
	shot.Vel = core.FromAngle(from.AngleTo(target), f.Speed)
	return shot
}

// ExplosiveSystem flies fireballs, counts meteors down and detonates them
type ExplosiveSystem struct{}

func (s *ExplosiveSystem) Priority() int { return 30 }

func (s *ExplosiveSystem) Update(w *core.World, dt float64) {
	n := len(w.Fireballs)
	for i := 0; i < n; i++ {
		shot := w.Fireballs[i]
		if !shot.Alive {
			continue
		}
		if shot.Meteor {
			if w.Time >= shot.DetonateAt {
				Detonate(w, shot)
			}
			continue
		}
		step := shot.Spec.Speed * dt
		if shot.Pos.DistanceTo(shot.Target) <= step {
			shot.Pos = shot.Target
			Detonate(w, shot)
			continue
		}
		shot.Pos = shot.Pos.Add(shot.Vel.Scale(dt))
		if len(EnemiesInRadius(w, shot.Pos, shotContactRadius)) > 0 || outside(w, shot.Pos) {
			Detonate(w, shot)
		}
	}

	alive := w.Fireballs[:0]
	for _, shot := range w.Fireballs {
		if shot.Alive {
			alive = append(alive, shot)
		}
	}
	clear(w.Fireballs[len(alive):])
	w.Fireballs = alive
}

// Detonate resolves a fireball at its current position. Burning enemies in
// the blast are cashed in by a chain explosion before the blast itself.
func Detonate(w *core.World, shot *core.FireballShot) {
	shot.Alive = false
	pos, f := shot.Pos, shot.Spec
	now := w.Time

	// Only corpses lying here before this blast detonate
	var corpses []*core.Hazard
	if f.Wildfire != nil {
		for _, h := range w.Hazards {
			if h.Kind == core.HazardCorpse && !h.Detonated && !core.Expired(now, h.CreatedAt, h.Duration) &&
				CircleOverlap(pos, f.Radius, h.Pos, h.Radius) {
				corpses = append(corpses, h)
			}
		}
	}

	if f.ChainExplosion != nil {
		for _, e := range EnemiesInRadius(w, pos, f.Radius) {
			if !e.Status.Burning(now) {
				continue
			}
			at := e.Pos
			burst := e.Status.RemainingBurn(now) * f.ChainExplosion.Multiplier
			e.Status.ClearBurn()
			if ApplyDamage(w, e, burst) {
				leaveCorpse(w, f, at)
			}
		}
	}

	for _, e := range EnemiesInRadius(w, pos, f.Radius) {
		at := e.Pos
		killed := ApplyDamage(w, e, f.Damage)
		if !killed && f.Ignite != nil {
			e.Status.Burn(now, f.Ignite.Duration, f.Ignite.DPS)
		}
		if killed {
			leaveCorpse(w, f, at)
		}
	}
	w.Explosions = append(w.Explosions, &core.Explosion{Pos: pos, Radius: f.Radius, CreatedAt: now, Duration: explosionDuration})

	for _, h := range corpses {
		h.Detonated = true
		h.Duration = now - h.CreatedAt
		for _, e := range EnemiesInRadius(w, h.Pos, f.Wildfire.DetonateRadius) {
			ApplyDamage(w, e, f.Wildfire.DetonateDamage)
		}
		w.Explosions = append(w.Explosions, &core.Explosion{Pos: h.Pos, Radius: f.Wildfire.DetonateRadius, CreatedAt: now, Duration: explosionDuration})
	}

	if f.Lava != nil {
		w.Hazards = append(w.Hazards, &core.Hazard{
			ID:        w.NewID(),
			Kind:      core.HazardLava,
			Pos:       pos,
			Radius:    f.Lava.Radius,
			DPS:       f.Lava.DPS,
			CreatedAt: now,
			Duration:  f.Lava.Duration,
		})
	}

	if f.Shrapnel != nil {
		sh := f.Shrapnel
		for i := 0; i < sh.Count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(sh.Count)
			w.Projectiles = append(w.Projectiles, &core.Projectile{
				ID:        w.NewID(),
				Weapon:    weapons.FireballID,
				Pos:       pos.Add(core.FromAngle(angle, f.Radius)),
				Vel:       core.FromAngle(angle, sh.Speed),
				Radius:    shrapnelRadius,
				Damage:    f.Damage * sh.DamageRatio,
				Hit:       core.HitSet{},
				Alive:     true,
				Fragment:  true,
				CreatedAt: now,
				Lifetime:  shrapnelLifetime,
			})
		}
	}

	if f.Bounce != nil {
		dir := heading(w, shot)
		next := f
		next.Damage = f.Damage * f.Bounce.DamageRatio
		next.Bounce = nil
		next.Meteor = nil
		target := pos.Add(core.FromAngle(dir, f.Bounce.Distance))
		w.Fireballs = append(w.Fireballs, launch(w, pos, target, next))
	}
}

// heading is the direction a shot was travelling; meteors count as thrown
// from the player
func heading(w *core.World, shot *core.FireballShot) float64 {
	if shot.Vel.Len() > 0 {
		return math.Atan2(shot.Vel.Y, shot.Vel.X)
	}
	return w.Player.Pos.AngleTo(shot.Pos)
}

// leaveCorpse drops a burning corpse where a detonation killed an enemy
func leaveCorpse(w *core.World, f weapons.Fireball, at core.Vec2) {
	if f.Wildfire == nil {
		return
	}
	w.Hazards = append(w.Hazards, &core.Hazard{
		ID:        w.NewID(),
		Kind:      core.HazardCorpse,
		Pos:       at,
		Radius:    f.Wildfire.CorpseRadius,
		DPS:       f.Wildfire.CorpseDPS,
		CreatedAt: w.Time,
		Duration:  f.Wildfire.CorpseDuration,
	})
}
