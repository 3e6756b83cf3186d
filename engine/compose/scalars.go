package compose

const (
	CooldownFactor = 0.88 // per cooldown buff
	RangeFactor    = 1.15 // per range buff
	DamageFactor   = 1.15 // per damage buff

	MinCooldown    = 0.2 // seconds, global floor
	MinRangeFactor = 0.5 // range never drops below half its base
)

// Scalars are the running multipliers collected from non-count buffs
type Scalars struct {
	Cooldown float64
	Range    float64
	Damage   float64
}

// Identity returns multipliers that change nothing
func Identity() Scalars {
	return Scalars{Cooldown: 1, Range: 1, Damage: 1}
}

// Apply folds one buff into the multipliers
func (s Scalars) Apply(b BuffType) Scalars {
	switch b {
	case BuffCooldown:
		s.Cooldown *= CooldownFactor
	case BuffRange:
		s.Range *= RangeFactor
	case BuffDamage:
		s.Damage *= DamageFactor
	}
	return s
}

// ResolveCooldown scales base and clamps it to [MinCooldown, base]
func (s Scalars) ResolveCooldown(base float64) float64 {
	cd := base * s.Cooldown
	if cd > base {
		cd = base
	}
	if cd < MinCooldown {
		cd = MinCooldown
	}
	if base < MinCooldown {
		cd = base
	}
	return cd
}

// ResolveRange scales base and clamps it to the range floor
func (s Scalars) ResolveRange(base float64) float64 {
	r := base * s.Range
	if floor := base * MinRangeFactor; r < floor {
		r = floor
	}
	return r
}
