package systems

import "github.com/1siamBot/stackfire/engine/core"

// NumberLifetime is how long a floating damage number is shown
const NumberLifetime = 0.8

// EffectSystem ages out visual feedback: damage numbers and explosions
type EffectSystem struct{}

func (s *EffectSystem) Priority() int { return 60 }

func (s *EffectSystem) Update(w *core.World, _ float64) {
	now := w.Time

	nums := w.Numbers[:0]
	for _, n := range w.Numbers {
		if core.Expired(now, n.CreatedAt, NumberLifetime) {
			w.ForgetNumber(n)
			continue
		}
		nums = append(nums, n)
	}
	clear(w.Numbers[len(nums):])
	w.Numbers = nums

	exps := w.Explosions[:0]
	for _, e := range w.Explosions {
		if !core.Expired(now, e.CreatedAt, e.Duration) {
			exps = append(exps, e)
		}
	}
	clear(w.Explosions[len(exps):])
	w.Explosions = exps
}
