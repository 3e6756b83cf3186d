package weapons

import "github.com/1siamBot/stackfire/engine/compose"

const FireballID compose.WeaponID = "fireball"

// Ignite sets enemies hit by the blast on fire
type Ignite struct {
	DPS      float64
	Duration float64
}

// ChainExplosion cashes in the remaining burn of enemies caught in a blast
type ChainExplosion struct {
	Multiplier float64
}

// Wildfire turns kills into burning corpses that detonate in later blasts
type Wildfire struct {
	CorpseRadius   float64
	CorpseDPS      float64
	CorpseDuration float64
	DetonateDamage float64
	DetonateRadius float64
}

// Lava leaves a damage-over-time pool at the blast center
type Lava struct {
	Radius   float64
	DPS      float64
	Duration float64
}

// Shrapnel emits small projectiles radially from the blast edge
type Shrapnel struct {
	Count       int
	DamageRatio float64
	Speed       float64
}

// Bounce spawns one forward-travelling follow-up shot
type Bounce struct {
	DamageRatio float64
	Distance    float64
}

// Meteor replaces the flight with a countdown at a scattered landing point
type Meteor struct {
	Delay   float64
	Scatter float64
}

// Fireball is one explosive shot fired per activation
type Fireball struct {
	Damage         float64
	Radius         float64
	Speed          float64
	Ignite         *Ignite
	ChainExplosion *ChainExplosion
	Wildfire       *Wildfire
	Lava           *Lava
	Shrapnel       *Shrapnel
	Bounce         *Bounce
	Meteor         *Meteor
}

func baseFireball() Fireball {
	return Fireball{Damage: 35, Radius: 48, Speed: 260}
}

// FireballRecipe builds the explosive family; Range is the throw distance
var FireballRecipe = compose.Recipe[Fireball]{
	Weapon:    FireballID,
	BaseCount: 1,
	Base:      baseFireball,
	Cooldown:  1.6,
	Range:     260,
	Spread:    0.3,
	Cards: map[compose.CardID]compose.Effect[Fireball]{
		"fireball.heavy": func(f Fireball) Fireball {
			f.Damage += 10
			return f
		},
		"fireball.blast": func(f Fireball) Fireball {
			f.Radius *= 1.2
			return f
		},
		"fireball.ignite": func(f Fireball) Fireball {
			if f.Ignite == nil {
				f.Ignite = &Ignite{DPS: 6, Duration: 3}
				return f
			}
			ig := *f.Ignite
			ig.DPS += 4
			f.Ignite = &ig
			return f
		},
		"fireball.wildfire": func(f Fireball) Fireball {
			f.Wildfire = &Wildfire{
				CorpseRadius:   20,
				CorpseDPS:      10,
				CorpseDuration: 4,
				DetonateDamage: 25,
				DetonateRadius: 36,
			}
			return f
		},
		"fireball.lava": func(f Fireball) Fireball {
			if f.Lava == nil {
				f.Lava = &Lava{Radius: 36, DPS: 12, Duration: 2.5}
				return f
			}
			l := *f.Lava
			l.Duration += 1
			f.Lava = &l
			return f
		},
		"fireball.shrapnel": func(f Fireball) Fireball {
			if f.Shrapnel == nil {
				f.Shrapnel = &Shrapnel{Count: 6, DamageRatio: 0.3, Speed: 240}
				return f
			}
			s := *f.Shrapnel
			s.Count += 2
			f.Shrapnel = &s
			return f
		},
		"fireball.bounce": func(f Fireball) Fireball {
			f.Bounce = &Bounce{DamageRatio: 0.6, Distance: 110}
			return f
		},
		"fireball.chain_explosion": func(f Fireball) Fireball {
			f.ChainExplosion = &ChainExplosion{Multiplier: 1.5}
			return f
		},
		"fireball.meteor": func(f Fireball) Fireball {
			f.Meteor = &Meteor{Delay: 0.8, Scatter: 18}
			return f
		},
	},
}
