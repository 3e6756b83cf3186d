package weapons

import "github.com/1siamBot/stackfire/engine/compose"

const OrbID compose.WeaponID = "orb"

// OrbDuration is how long one activation's orbit set lives
const OrbDuration = 3.5

// Chill slows enemies an orb touches
type Chill struct {
	Duration float64
}

// Scorch sets enemies an orb touches on fire
type Scorch struct {
	DPS      float64
	Duration float64
}

// Orb is one unit circling the player; the snapshot Range is the orbit radius
type Orb struct {
	Damage       float64
	Size         float64
	AngularSpeed float64
	HitInterval  float64
	RadiusOffset float64
	Chill        *Chill
	Scorch       *Scorch
}

func baseOrb() Orb {
	return Orb{Damage: 12, Size: 10, AngularSpeed: 3.0, HitInterval: 0.5}
}

// OrbRecipe builds the orbiting family
var OrbRecipe = compose.Recipe[Orb]{
	Weapon:    OrbID,
	BaseCount: 2,
	Base:      baseOrb,
	Cooldown:  4.0,
	Range:     70,
	Cards: map[compose.CardID]compose.Effect[Orb]{
		"orb.heavy": func(o Orb) Orb {
			o.Damage += 5
			return o
		},
		"orb.wide": func(o Orb) Orb {
			o.RadiusOffset += 20
			return o
		},
		"orb.spin": func(o Orb) Orb {
			o.AngularSpeed *= 1.25
			return o
		},
		"orb.chill": func(o Orb) Orb {
			o.Chill = &Chill{Duration: 1.0}
			return o
		},
		"orb.scorch": func(o Orb) Orb {
			if o.Scorch == nil {
				o.Scorch = &Scorch{DPS: 5, Duration: 2}
				return o
			}
			s := *o.Scorch
			s.DPS += 3
			o.Scorch = &s
			return o
		},
		"orb.halo": func(o Orb) Orb {
			o.Size *= 1.5
			o.Damage *= 1.25
			return o
		},
	},
}
