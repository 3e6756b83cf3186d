package systems

import "github.com/1siamBot/stackfire/engine/core"

// HazardSystem deals damage over time from residual zones, lava, burning
// corpses and beam trails, then drops the expired ones
type HazardSystem struct{}

func (s *HazardSystem) Priority() int { return 35 }

func (s *HazardSystem) Update(w *core.World, dt float64) {
	now := w.Time
	kept := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Detonated || core.Expired(now, h.CreatedAt, h.Duration) {
			continue
		}
		amt := h.DPS * dt
		for _, e := range w.Enemies {
			if e.Alive() && inHazard(h, e) {
				ApplyDamage(w, e, amt)
			}
		}
		kept = append(kept, h)
	}
	clear(w.Hazards[len(kept):])
	w.Hazards = kept
}

func inHazard(h *core.Hazard, e *core.Entity) bool {
	if h.Kind == core.HazardTrail {
		for _, s := range h.Segments {
			if SegmentHit(s, e.Pos, e.Radius) {
				return true
			}
		}
		return false
	}
	return CircleOverlap(h.Pos, h.Radius, e.Pos, e.Radius)
}
