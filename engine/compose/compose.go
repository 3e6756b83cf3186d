// Package compose folds an ordered pick sequence into a weapon Snapshot.
//
// The order of picks is significant. Bronze and silver cards are sequential:
// they change the units that exist when the card is taken and the hidden
// template that seeds units added later by count buffs. A clone is sealed when
// it is created, so a sequential card taken after a count buff does not reach
// the unit that buff added. Gold cards are global: every unit, earlier or
// later, ends up with every gold effect.
package compose

// WeaponID identifies a weapon family ("arrow", "fireball", ...)
type WeaponID string

// CardID identifies a card definition
type CardID string

// Rarity decides whether a card is sequential or global
type Rarity uint8

const (
	Bronze Rarity = iota
	Silver
	Gold
)

// Global reports whether cards of this rarity apply to every unit
func (r Rarity) Global() bool { return r == Gold }

func (r Rarity) String() string {
	switch r {
	case Bronze:
		return "bronze"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	default:
		return "unknown"
	}
}

// CardDefinition is the static description of a card
type CardDefinition struct {
	ID       CardID   `json:"id"`
	Weapon   WeaponID `json:"weapon"`
	Rarity   Rarity   `json:"-"`
	Name     string   `json:"name"`
	MaxStack int      `json:"max_stack"`
}

// BuffType is a numeric upgrade that is not a card
type BuffType uint8

const (
	BuffCooldown BuffType = iota
	BuffRange
	BuffCount
	BuffDamage
)

// ItemKind discriminates SlotItem
type ItemKind uint8

const (
	KindCard ItemKind = iota
	KindBuff
)

// SlotItem is one pick in a weapon slot. Card is set for KindCard, Buff for KindBuff.
type SlotItem struct {
	Kind ItemKind
	Card *CardDefinition
	Buff BuffType
}

// Card wraps a card definition as a slot item
func Card(def *CardDefinition) SlotItem {
	return SlotItem{Kind: KindCard, Card: def}
}

// Buff wraps a buff as a slot item
func Buff(t BuffType) SlotItem {
	return SlotItem{Kind: KindBuff, Buff: t}
}

// CanAppend reports whether def may be added to picks without exceeding its
// stacking limit. The fold itself never checks limits; callers do, before
// appending.
func CanAppend(picks []SlotItem, def *CardDefinition) bool {
	if def == nil {
		return false
	}
	if def.MaxStack <= 0 {
		return true
	}
	n := 0
	for _, it := range picks {
		if it.Kind == KindCard && it.Card != nil && it.Card.ID == def.ID {
			n++
		}
	}
	return n < def.MaxStack
}

// Effect is a card's transformation of one weapon instance. Effects must
// return a new value and never write through pointers shared with their input.
type Effect[I any] func(I) I

// Recipe describes how to build a weapon family from scratch
type Recipe[I any] struct {
	Weapon    WeaponID
	BaseCount int
	Base      func() I
	Cooldown  float64
	Range     float64
	Spread    float64
	Cards     map[CardID]Effect[I]
}

// Snapshot is the fully resolved behavior of a weapon family
type Snapshot[I any] struct {
	Weapon      WeaponID
	Cooldown    float64
	Range       float64
	Spread      float64
	DamageScale float64
	Instances   []I
}

// composition is the fold accumulator. Every step returns a new value.
type composition[I any] struct {
	base     []I
	template I
	added    []I
	global   []Effect[I]
	scalars  Scalars
}

// Compose reduces picks into a Snapshot. It is pure: equal inputs give equal outputs.
func Compose[I any](r Recipe[I], picks []SlotItem) Snapshot[I] {
	c := start(r)
	for _, it := range picks {
		c = c.step(r, it)
	}
	return c.finish(r)
}

func start[I any](r Recipe[I]) composition[I] {
	n := r.BaseCount
	if n < 1 {
		n = 1
	}
	base := make([]I, n)
	for i := range base {
		base[i] = r.Base()
	}
	return composition[I]{
		base:     base,
		template: r.Base(),
		scalars:  Identity(),
	}
}

func (c composition[I]) step(r Recipe[I], it SlotItem) composition[I] {
	switch it.Kind {
	case KindCard:
		if it.Card == nil || (it.Card.Weapon != "" && it.Card.Weapon != r.Weapon) {
			return c
		}
		fx, ok := r.Cards[it.Card.ID]
		if !ok {
			return c
		}
		if it.Card.Rarity.Global() {
			c.global = append(clip(c.global), fx)
			return c
		}
		c.base = mapAll(c.base, fx)
		c.template = fx(c.template)
		return c
	case KindBuff:
		if it.Buff == BuffCount {
			c.added = append(clip(c.added), c.template)
			return c
		}
		c.scalars = c.scalars.Apply(it.Buff)
		return c
	}
	return c
}

func (c composition[I]) finish(r Recipe[I]) Snapshot[I] {
	units := make([]I, 0, len(c.base)+len(c.added))
	units = append(units, c.base...)
	units = append(units, c.added...)
	for _, fx := range c.global {
		units = mapAll(units, fx)
	}
	return Snapshot[I]{
		Weapon:      r.Weapon,
		Cooldown:    c.scalars.ResolveCooldown(r.Cooldown),
		Range:       c.scalars.ResolveRange(r.Range),
		Spread:      r.Spread,
		DamageScale: c.scalars.Damage,
		Instances:   units,
	}
}

func mapAll[I any](in []I, fx Effect[I]) []I {
	out := make([]I, len(in))
	for i, v := range in {
		out[i] = fx(v)
	}
	return out
}

// clip forces the next append to copy instead of sharing a backing array
// with an earlier composition value.
func clip[T any](s []T) []T {
	return s[:len(s):len(s)]
}
