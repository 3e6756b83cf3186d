package systems

import (
	"fmt"
	"sort"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// FireFunc launches one activation of a composed weapon from origin
type FireFunc[I any] func(w *core.World, origin core.Vec2, snap compose.Snapshot[I])

// Family is a weapon built from a recipe: it recomposes on every pick change
// and fires its current snapshot
type Family[I any] struct {
	recipe compose.Recipe[I]
	fire   FireFunc[I]
	snap   compose.Snapshot[I]
	built  bool
}

// NewFamily pairs a recipe with the function that fires it
func NewFamily[I any](r compose.Recipe[I], fire FireFunc[I]) *Family[I] {
	return &Family[I]{recipe: r, fire: fire}
}

func (f *Family[I]) ID() compose.WeaponID { return f.recipe.Weapon }

func (f *Family[I]) Rebuild(picks []compose.SlotItem) {
	f.snap = compose.Compose(f.recipe, picks)
	f.built = true
}

// Ready reports whether a snapshot exists and fires at least one unit
func (f *Family[I]) Ready() bool { return f.built && len(f.snap.Instances) > 0 }

func (f *Family[I]) Cooldown() float64 { return f.snap.Cooldown }

func (f *Family[I]) Fire(w *core.World, origin core.Vec2) { f.fire(w, origin, f.snap) }

// Snapshot returns the current composed snapshot
func (f *Family[I]) Snapshot() compose.Snapshot[I] { return f.snap }

// ---- Behavior registry ----

// Constructor builds a fresh weapon of one family
type Constructor func() core.Weapon

var behaviors = map[compose.WeaponID]Constructor{
	weapons.ArrowID:    func() core.Weapon { return NewFamily(weapons.ArrowRecipe, fireArrows) },
	weapons.FireballID: func() core.Weapon { return NewFamily(weapons.FireballRecipe, fireFireballs) },
	weapons.BeamID:     func() core.Weapon { return NewFamily(weapons.BeamRecipe, fireBeams) },
	weapons.OrbID:      func() core.Weapon { return NewFamily(weapons.OrbRecipe, fireOrbs) },
	weapons.FrostID:    func() core.Weapon { return NewFamily(weapons.FrostRecipe, fireFrost) },
}

// RegisterBehavior adds or replaces the constructor for a weapon family
func RegisterBehavior(id compose.WeaponID, c Constructor) {
	behaviors[id] = c
}

// NewWeapon builds a weapon by family id
func NewWeapon(id compose.WeaponID) (core.Weapon, error) {
	c, ok := behaviors[id]
	if !ok {
		return nil, fmt.Errorf("unknown weapon %q", id)
	}
	return c(), nil
}

// Registered lists the known weapon families in id order
func Registered() []compose.WeaponID {
	ids := make([]compose.WeaponID, 0, len(behaviors))
	for id := range behaviors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Equip builds the named weapon and adds it to the world
func Equip(w *core.World, id compose.WeaponID) (*core.WeaponSlot, error) {
	wp, err := NewWeapon(id)
	if err != nil {
		return nil, fmt.Errorf("equip: %w", err)
	}
	return w.Equip(wp), nil
}

// WeaponSystem fires every slot whose cooldown has elapsed
type WeaponSystem struct{}

func (s *WeaponSystem) Priority() int { return 15 }

func (s *WeaponSystem) Update(w *core.World, _ float64) {
	for _, slot := range w.Slots {
		wp := slot.Weapon
		if !wp.Ready() {
			continue
		}
		if w.Time < slot.NextFire {
			continue
		}
		if !w.Mode.Fires(wp.ID()) && !slot.Trigger {
			continue
		}
		wp.Fire(w, w.Player.Pos)
		slot.NextFire = w.Time + wp.Cooldown()
		slot.Trigger = false
		slot.Shots++
		w.Bus.Emit(core.Event{Type: core.EvtWeaponFired, Tick: w.TickCount, Time: w.Time, Weapon: wp.ID(), Pos: w.Player.Pos})
	}
}

// Install registers every simulation system on w in tick order
func Install(w *core.World) {
	w.AddSystem(&MovementSystem{})
	w.AddSystem(&StatusSystem{})
	w.AddSystem(&WeaponSystem{})
	w.AddSystem(&ProjectileSystem{})
	w.AddSystem(&BeamSystem{})
	w.AddSystem(&OrbSystem{})
	w.AddSystem(&ExplosiveSystem{})
	w.AddSystem(&GroundSystem{})
	w.AddSystem(&HazardSystem{})
	w.AddSystem(&EffectSystem{})
}
