package weapons

import "github.com/1siamBot/stackfire/engine/compose"

const FrostID compose.WeaponID = "frost"

// FootprintShape is the geometry of a ground cast
type FootprintShape uint8

const (
	ShapeArc FootprintShape = iota
	ShapeRing
)

// Spread extends the footprint past its edges. Mined is set when the mine
// card was taken after the spread card.
type Spread struct {
	Points int
	Mined  bool
}

// Mine turns footprints into dormant triggers
type Mine struct {
	DetectRadius float64
	Lifetime     float64
}

// Permafrost converts slow into freeze and rewards hitting frozen enemies
type Permafrost struct {
	FreezeDuration float64
	DamageMult     float64
}

// Resonance releases an expanding wave when a cast hits enough enemies
type Resonance struct {
	MinHits   int
	Ratio     float64
	MaxRadius float64
	Speed     float64
}

// DoubleHit makes the zone strike a second time
type DoubleHit struct {
	Delay float64
	Ratio float64
}

// Frost is one ground footprint cast per activation. The snapshot Range is the
// arc radius or the ring's offset from the caster.
type Frost struct {
	Damage       float64
	Shape        FootprintShape
	Points       int
	ArcAngle     float64
	RingRadius   float64
	HitRadius    float64
	SlowDuration float64
	Duration     float64
	Spread       *Spread
	Mine         *Mine
	Permafrost   *Permafrost
	Resonance    *Resonance
	DoubleHit    *DoubleHit
}

func baseFrost() Frost {
	return Frost{
		Damage:       16,
		Shape:        ShapeArc,
		Points:       5,
		ArcAngle:     1.2,
		RingRadius:   40,
		HitRadius:    22,
		SlowDuration: 1.5,
		Duration:     0.45,
	}
}

// FrostRecipe builds the ground-zone family
var FrostRecipe = compose.Recipe[Frost]{
	Weapon:    FrostID,
	BaseCount: 1,
	Base:      baseFrost,
	Cooldown:  1.4,
	Range:     90,
	Spread:    0.8,
	Cards: map[compose.CardID]compose.Effect[Frost]{
		"frost.ring": func(f Frost) Frost {
			f.Shape = ShapeRing
			return f
		},
		"frost.sharp": func(f Frost) Frost {
			f.Damage += 6
			return f
		},
		"frost.density": func(f Frost) Frost {
			f.Points += 2
			return f
		},
		"frost.spread": func(f Frost) Frost {
			if f.Spread == nil {
				f.Spread = &Spread{Points: 2}
				return f
			}
			s := *f.Spread
			s.Points++
			f.Spread = &s
			return f
		},
		"frost.mine": func(f Frost) Frost {
			f.Mine = &Mine{DetectRadius: 26, Lifetime: 6}
			if f.Spread != nil {
				s := *f.Spread
				s.Mined = true
				f.Spread = &s
			}
			return f
		},
		"frost.echo": func(f Frost) Frost {
			f.DoubleHit = &DoubleHit{Delay: 0.35, Ratio: 0.6}
			return f
		},
		"frost.permafrost": func(f Frost) Frost {
			f.Permafrost = &Permafrost{FreezeDuration: 1.2, DamageMult: 1.5}
			return f
		},
		"frost.resonance": func(f Frost) Frost {
			f.Resonance = &Resonance{MinHits: 3, Ratio: 0.5, MaxRadius: 120, Speed: 240}
			return f
		},
	},
}
