package weapons

import "github.com/1siamBot/stackfire/engine/compose"

const ArrowID compose.WeaponID = "arrow"

// Homing re-aims a projectile toward the nearest enemy
type Homing struct {
	TurnSpeed float64 // radians per second
}

// Split fans child fragments out of a non-lethal hit
type Split struct {
	Count       int
	DamageRatio float64
	SpeedRatio  float64
	Angle       float64 // radians between neighbouring children
}

// Chain launches fragments from the point of a kill
type Chain struct {
	Count       int
	DamageRatio float64
}

// Convergence freezes and bursts an enemy hit often enough in a short window
type Convergence struct {
	Hits           int
	Window         float64
	FreezeDuration float64
	BurstRatio     float64
	BurstDelay     float64
}

// Residual leaves a damaging zone where a projectile hits
type Residual struct {
	Radius   float64
	DPS      float64
	Duration float64
}

// Arrow is one projectile fired per activation
type Arrow struct {
	Damage      float64
	Speed       float64
	Pierce      int
	Homing      *Homing
	Split       *Split
	Chain       *Chain
	Convergence *Convergence
	Residual    *Residual
}

func baseArrow() Arrow {
	return Arrow{Damage: 20, Speed: 220}
}

// ArrowRecipe builds the arrow family: three arrows fanned over Spread
var ArrowRecipe = compose.Recipe[Arrow]{
	Weapon:    ArrowID,
	BaseCount: 3,
	Base:      baseArrow,
	Cooldown:  1.0,
	Range:     320,
	Spread:    0.22,
	Cards: map[compose.CardID]compose.Effect[Arrow]{
		"arrow.pierce": func(a Arrow) Arrow {
			a.Pierce++
			return a
		},
		"arrow.sharpen": func(a Arrow) Arrow {
			a.Damage += 6
			return a
		},
		"arrow.fletching": func(a Arrow) Arrow {
			a.Speed *= 1.25
			return a
		},
		"arrow.split": func(a Arrow) Arrow {
			if a.Split == nil {
				a.Split = &Split{Count: 2, DamageRatio: 0.5, SpeedRatio: 0.7, Angle: 0.35}
				return a
			}
			s := *a.Split
			s.Count++
			a.Split = &s
			return a
		},
		"arrow.tracking": func(a Arrow) Arrow {
			if a.Homing == nil {
				a.Homing = &Homing{TurnSpeed: 3.0}
				return a
			}
			h := *a.Homing
			h.TurnSpeed += 1.5
			a.Homing = &h
			return a
		},
		"arrow.barbed": func(a Arrow) Arrow {
			if a.Residual == nil {
				a.Residual = &Residual{Radius: 26, DPS: 8, Duration: 1.5}
				return a
			}
			r := *a.Residual
			r.DPS += 4
			a.Residual = &r
			return a
		},
		"arrow.chain": func(a Arrow) Arrow {
			if a.Chain == nil {
				a.Chain = &Chain{Count: 3, DamageRatio: 0.5}
				return a
			}
			c := *a.Chain
			c.Count++
			a.Chain = &c
			return a
		},
		"arrow.convergence": func(a Arrow) Arrow {
			a.Convergence = &Convergence{
				Hits:           3,
				Window:         1.5,
				FreezeDuration: 1.0,
				BurstRatio:     0.5,
				BurstDelay:     0.3,
			}
			return a
		},
		"arrow.ballista": func(a Arrow) Arrow {
			a.Damage *= 1.3
			return a
		},
	},
}
