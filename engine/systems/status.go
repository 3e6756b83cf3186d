package systems

import "github.com/1siamBot/stackfire/engine/core"

// StatusSystem deals burn damage over time. Freeze and slow need no ticking;
// readers compare their expiry against the current time.
type StatusSystem struct{}

func (s *StatusSystem) Priority() int { return 12 }

func (s *StatusSystem) Update(w *core.World, dt float64) {
	for _, e := range w.Enemies {
		if !e.Alive() || !e.Status.Burning(w.Time) {
			continue
		}
		ApplyDamage(w, e, e.Status.BurnRate*dt)
	}
}
