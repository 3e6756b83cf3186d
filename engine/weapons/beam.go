package weapons

import "github.com/1siamBot/stackfire/engine/compose"

const BeamID compose.WeaponID = "beam"

// BeamMode selects between continuous damage and repeating pulses
type BeamMode uint8

const (
	BeamContinuous BeamMode = iota
	BeamPulsed
)

// Focus ramps damage on enemies that stay inside the beam
type Focus struct {
	RatePerSec float64
	Max        float64
}

// Refraction hops from hit enemy to hit enemy
type Refraction struct {
	Hops    int
	Radius  float64
	Falloff float64
}

// Prism splits the beam into three fixed-angle children at the first hit
type Prism struct {
	Angle  float64
	Length float64
	Ratio  float64
	Bonus  float64
}

// Overload boosts the final window of a beam's life
type Overload struct {
	Window     float64
	DamageMult float64
	WidthMult  float64
}

// Trail leaves the beam's final geometry behind as a hazard
type Trail struct {
	Duration float64
	Ratio    float64
}

// Beam is one directional effect per activation; the snapshot Range is its length
type Beam struct {
	Mode          BeamMode
	DPS           float64
	PulseDamage   float64
	PulseInterval float64
	Knockback     float64
	Width         float64
	Duration      float64
	Focus         *Focus
	Refraction    *Refraction
	Prism         *Prism
	Overload      *Overload
	Trail         *Trail
}

func baseBeam() Beam {
	return Beam{
		Mode:          BeamContinuous,
		DPS:           40,
		PulseDamage:   18,
		PulseInterval: 0.3,
		Knockback:     12,
		Width:         14,
		Duration:      1.2,
	}
}

// BeamRecipe builds the beam family
var BeamRecipe = compose.Recipe[Beam]{
	Weapon:    BeamID,
	BaseCount: 1,
	Base:      baseBeam,
	Cooldown:  2.0,
	Range:     260,
	Cards: map[compose.CardID]compose.Effect[Beam]{
		"beam.pulse": func(b Beam) Beam {
			b.Mode = BeamPulsed
			return b
		},
		"beam.widen": func(b Beam) Beam {
			b.Width *= 1.3
			return b
		},
		"beam.intensity": func(b Beam) Beam {
			b.DPS *= 1.2
			b.PulseDamage *= 1.2
			return b
		},
		"beam.focus": func(b Beam) Beam {
			if b.Focus == nil {
				b.Focus = &Focus{RatePerSec: 0.5, Max: 1.0}
				return b
			}
			f := *b.Focus
			f.Max += 0.5
			b.Focus = &f
			return b
		},
		"beam.refraction": func(b Beam) Beam {
			b.Refraction = &Refraction{Hops: 2, Radius: 120, Falloff: 0.7}
			return b
		},
		"beam.prism": func(b Beam) Beam {
			b.Prism = &Prism{Angle: 0.5, Length: 140, Ratio: 0.5, Bonus: 1.5}
			return b
		},
		"beam.overload": func(b Beam) Beam {
			b.Overload = &Overload{Window: 0.4, DamageMult: 2, WidthMult: 1.8}
			return b
		},
		"beam.afterglow": func(b Beam) Beam {
			if b.Trail == nil {
				b.Trail = &Trail{Duration: 1.5, Ratio: 0.3}
				return b
			}
			t := *b.Trail
			t.Duration += 0.5
			b.Trail = &t
			return b
		},
	},
}
