package core

// SlowFactor is the movement multiplier while slowed
const SlowFactor = 0.5

// Status holds transient effects as absolute expiry times in simulation
// seconds. Zero means never applied. Nothing ticks these down; every reader
// compares against the current time.
type Status struct {
	FrozenUntil float64
	SlowUntil   float64
	BurnUntil   float64
	BurnRate    float64 // damage per second while burning
}

func (s *Status) Frozen(now float64) bool { return s.FrozenUntil > 0 && now < s.FrozenUntil }
func (s *Status) Slowed(now float64) bool { return s.SlowUntil > 0 && now < s.SlowUntil }
func (s *Status) Burning(now float64) bool { return s.BurnUntil > 0 && now < s.BurnUntil }

// Freeze keeps whichever freeze window ends later
func (s *Status) Freeze(now, d float64) {
	s.FrozenUntil = later(s.FrozenUntil, now+d)
}

// Slow keeps whichever slow window ends later
func (s *Status) Slow(now, d float64) {
	s.SlowUntil = later(s.SlowUntil, now+d)
}

// Burn keeps whichever burn window ends later. While already burning the
// stronger rate wins; otherwise the new rate replaces the stale one.
func (s *Status) Burn(now, d, rate float64) {
	if s.Burning(now) {
		if rate > s.BurnRate {
			s.BurnRate = rate
		}
	} else {
		s.BurnRate = rate
	}
	s.BurnUntil = later(s.BurnUntil, now+d)
}

// RemainingBurn is the damage the current burn would still deal
func (s *Status) RemainingBurn(now float64) float64 {
	if !s.Burning(now) {
		return 0
	}
	return s.BurnRate * (s.BurnUntil - now)
}

// ClearBurn ends any burn
func (s *Status) ClearBurn() {
	s.BurnUntil = 0
	s.BurnRate = 0
}

// ClearSlow ends any slow
func (s *Status) ClearSlow() {
	s.SlowUntil = 0
}

// Clear resets every field, used on death and respawn
func (s *Status) Clear() {
	*s = Status{}
}

// SpeedFactor is the movement multiplier at time now
func (s *Status) SpeedFactor(now float64) float64 {
	if s.Frozen(now) {
		return 0
	}
	if s.Slowed(now) {
		return SlowFactor
	}
	return 1
}

func later(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
