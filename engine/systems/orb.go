package systems

import (
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// fireOrbs replaces the current orbit set with one unit per instance,
// spaced evenly around the player
func fireOrbs(w *core.World, origin core.Vec2, snap compose.Snapshot[weapons.Orb]) {
	clear(w.Orbs)
	w.Orbs = w.Orbs[:0]
	n := len(snap.Instances)
	for i, o := range snap.Instances {
		o.Damage *= snap.DamageScale
		if o.Scorch != nil {
			sc := *o.Scorch
			sc.DPS *= snap.DamageScale
			o.Scorch = &sc
		}
		phase := 2 * math.Pi * float64(i) / float64(n)
		orbit := snap.Range + o.RadiusOffset
		w.Orbs = append(w.Orbs, &core.OrbUnit{
			ID:        w.NewID(),
			Spec:      o,
			Orbit:     orbit,
			Phase:     phase,
			Pos:       origin.Add(core.FromAngle(phase, orbit)),
			CreatedAt: w.Time,
			LastHit:   make(map[core.EntityID]float64),
		})
	}
}

// OrbSystem moves orbs around the player and applies contact damage, at
// most once per HitInterval for each enemy
type OrbSystem struct{}

func (s *OrbSystem) Priority() int { return 27 }

func (s *OrbSystem) Update(w *core.World, _ float64) {
	now := w.Time
	orbs := w.Orbs[:0]
	for _, o := range w.Orbs {
		if core.Expired(now, o.CreatedAt, weapons.OrbDuration) {
			continue
		}
		angle := o.Phase + o.Spec.AngularSpeed*(now-o.CreatedAt)
		o.Pos = w.Player.Pos.Add(core.FromAngle(angle, o.Orbit))

		for _, e := range EnemiesInRadius(w, o.Pos, o.Spec.Size) {
			if last, ok := o.LastHit[e.ID]; ok && now-last < o.Spec.HitInterval {
				continue
			}
			o.LastHit[e.ID] = now
			if ApplyDamage(w, e, o.Spec.Damage) {
				continue
			}
			if c := o.Spec.Chill; c != nil {
				e.Status.Slow(now, c.Duration)
			}
			if sc := o.Spec.Scorch; sc != nil {
				e.Status.Burn(now, sc.Duration, sc.DPS)
			}
		}
		orbs = append(orbs, o)
	}
	clear(w.Orbs[len(orbs):])
	w.Orbs = orbs
}
