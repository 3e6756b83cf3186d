package core

import (
	"io"
	"log"
	"math"

	"github.com/1siamBot/stackfire/engine/compose"
)

// NumberMergeWindow merges damage numbers on one target within this many seconds
const NumberMergeWindow = 0.25

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// World is the whole simulation state for one run. It is built fresh per run
// and owned by its caller; nothing in the engine keeps global state.
type World struct {
	Time      float64 // simulation seconds, advances only in Tick
	TickCount uint64
	Bounds    Vec2
	Mode      Mode
	Bus       *EventBus
	RNG       *RNG
	Logger    *log.Logger

	Player  *Entity
	Enemies []*Entity

	Projectiles []*Projectile
	Zones       []*GroundZone
	Mines       []*Mine
	Waves       []*ResonanceWave
	Fireballs   []*FireballShot
	Explosions  []*Explosion
	Hazards     []*Hazard
	Beams       []*BeamEffect
	Orbs        []*OrbUnit
	Numbers     []*DamageNumber
	Bursts      []PendingBurst
	Convergence map[EntityID]*ConvergenceTrack

	Slots []*WeaponSlot

	systems    []System
	dead       map[EntityID]struct{}
	nextID     EntityID
	lastNumber map[EntityID]*DamageNumber
}

// NewWorld creates an empty arena of the given size with the player at its center
func NewWorld(width, height float64, mode Mode, seed int64) *World {
	w := &World{
		Bounds:      Vec2{width, height},
		Mode:        mode,
		Bus:         NewEventBus(),
		RNG:         NewRNG(seed),
		Logger:      log.New(io.Discard, "", 0),
		Convergence: make(map[EntityID]*ConvergenceTrack),
		dead:        make(map[EntityID]struct{}),
		lastNumber:  make(map[EntityID]*DamageNumber),
	}
	w.Player = &Entity{
		ID:     w.NewID(),
		Pos:    Vec2{width / 2, height / 2},
		Radius: 14,
		HP:     100,
		MaxHP:  100,
		Speed:  120,
		Player: true,
	}
	return w
}

// NewID hands out the next id for an entity or effect
func (w *World) NewID() EntityID {
	w.nextID++
	return w.nextID
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick advances simulation time by dt and runs every system once, then
// applies deaths recorded during the step
func (w *World) Tick(dt float64) {
	w.Time += dt
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.flushDead()
	w.TickCount++
}

// ---- Entities ----

// AddEnemy inserts an enemy and assigns its id
func (w *World) AddEnemy(e *Entity) *Entity {
	e.ID = w.NewID()
	e.Player = false
	w.Enemies = append(w.Enemies, e)
	w.Bus.Emit(Event{Type: EvtEnemySpawned, Tick: w.TickCount, Time: w.Time, Entity: e.ID, Pos: e.Pos})
	return e
}

// RemoveEnemy drops an enemy immediately. Call it between ticks only.
func (w *World) RemoveEnemy(id EntityID) bool {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			delete(w.Convergence, id)
			delete(w.lastNumber, id)
			return true
		}
	}
	return false
}

// MovePlayer shifts the player by d, kept inside the arena
func (w *World) MovePlayer(d Vec2) {
	p := w.Player
	p.Pos = p.Pos.Add(d)
	p.Pos.X = math.Max(p.Radius, math.Min(w.Bounds.X-p.Radius, p.Pos.X))
	p.Pos.Y = math.Max(p.Radius, math.Min(w.Bounds.Y-p.Radius, p.Pos.Y))
}

// Enemy looks up an enemy by id
func (w *World) Enemy(id EntityID) *Entity {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// SpawnEnemyAtEdge places a new enemy at a random point on the arena border
func (w *World) SpawnEnemyAtEdge(stats EnemyStats) *Entity {
	var pos Vec2
	margin := stats.Radius
	switch w.RNG.Intn(4) {
	case 0:
		pos = Vec2{w.RNG.Range(margin, w.Bounds.X-margin), margin}
	case 1:
		pos = Vec2{w.Bounds.X - margin, w.RNG.Range(margin, w.Bounds.Y-margin)}
	case 2:
		pos = Vec2{w.RNG.Range(margin, w.Bounds.X-margin), w.Bounds.Y - margin}
	default:
		pos = Vec2{margin, w.RNG.Range(margin, w.Bounds.Y-margin)}
	}
	return w.SpawnEnemyAt(stats, pos)
}

// SpawnEnemyAt adds an enemy with the given stats at pos, clamped inside the
// arena. Its patrol span is narrowed so it stays within the walls.
func (w *World) SpawnEnemyAt(stats EnemyStats, pos Vec2) *Entity {
	pos.X = math.Max(stats.Radius, math.Min(w.Bounds.X-stats.Radius, pos.X))
	pos.Y = math.Max(stats.Radius, math.Min(w.Bounds.Y-stats.Radius, pos.Y))
	e := &Entity{
		Pos:    pos,
		Radius: stats.Radius,
		HP:     stats.HP,
		MaxHP:  stats.HP,
		Speed:  stats.Speed,
	}
	if stats.Patrol > 0 {
		half := math.Min(stats.Patrol, math.Min(pos.X, w.Bounds.X-pos.X))
		e.Patrol = &Patrol{Center: pos, HalfRange: half, Speed: stats.Speed, Dir: 1}
	}
	return w.AddEnemy(e)
}

// MarkDead records that e died this step. It returns false when e was
// already marked, so the death hook runs once.
func (w *World) MarkDead(e *Entity) bool {
	if _, ok := w.dead[e.ID]; ok {
		return false
	}
	w.dead[e.ID] = struct{}{}
	deathHooks[w.Mode.Death](w, e)
	return true
}

// IsMarkedDead reports whether e died during the current step
func (w *World) IsMarkedDead(id EntityID) bool {
	_, ok := w.dead[id]
	return ok
}

// flushDead applies deaths once every system has run
func (w *World) flushDead() {
	if len(w.dead) == 0 {
		return
	}
	switch w.Mode.Death {
	case DeathRemove:
		kept := w.Enemies[:0]
		for _, e := range w.Enemies {
			if _, ok := w.dead[e.ID]; !ok {
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(w.Enemies); i++ {
			w.Enemies[i] = nil
		}
		w.Enemies = kept
	default:
		for _, e := range w.Enemies {
			if _, ok := w.dead[e.ID]; ok {
				e.HP = e.MaxHP
				e.Status.Clear()
			}
		}
	}
	bursts := w.Bursts[:0]
	for _, b := range w.Bursts {
		if _, ok := w.dead[b.Target]; !ok {
			bursts = append(bursts, b)
		}
	}
	clear(w.Bursts[len(bursts):])
	w.Bursts = bursts
	for id := range w.dead {
		delete(w.Convergence, id)
		delete(w.lastNumber, id)
		delete(w.dead, id)
	}
}

// ---- Feedback ----

// AddDamageNumber records a floating number, merging into a recent one on
// the same target
func (w *World) AddDamageNumber(e *Entity, amount float64) {
	if n, ok := w.lastNumber[e.ID]; ok && w.Time-n.CreatedAt < NumberMergeWindow {
		n.Amount += amount
		n.Pos = e.Pos
		return
	}
	n := &DamageNumber{Target: e.ID, Pos: e.Pos, Amount: amount, CreatedAt: w.Time}
	w.Numbers = append(w.Numbers, n)
	w.lastNumber[e.ID] = n
}

// ForgetNumber stops merging into a number that is about to be dropped
func (w *World) ForgetNumber(n *DamageNumber) {
	if cur, ok := w.lastNumber[n.Target]; ok && cur == n {
		delete(w.lastNumber, n.Target)
	}
}

// ---- Weapons ----

// Equip adds a weapon slot, or returns the existing one for the same family
func (w *World) Equip(wp Weapon) *WeaponSlot {
	if s := w.Slot(wp.ID()); s != nil {
		return s
	}
	s := &WeaponSlot{Weapon: wp}
	wp.Rebuild(nil)
	w.Slots = append(w.Slots, s)
	return s
}

// Slot finds the slot of a weapon family
func (w *World) Slot(id compose.WeaponID) *WeaponSlot {
	for _, s := range w.Slots {
		if s.Weapon.ID() == id {
			return s
		}
	}
	return nil
}

// SetPicks replaces a slot's pick sequence and recomposes its snapshot. It
// reports false when no such weapon is equipped.
func (w *World) SetPicks(id compose.WeaponID, picks []compose.SlotItem) bool {
	s := w.Slot(id)
	if s == nil {
		w.Logger.Printf("set picks: weapon %s not equipped", id)
		return false
	}
	s.Picks = append([]compose.SlotItem(nil), picks...)
	s.Weapon.Rebuild(s.Picks)
	w.Logger.Printf("weapon %s recomposed from %d picks", id, len(s.Picks))
	w.Bus.Emit(Event{Type: EvtPicksChanged, Tick: w.TickCount, Time: w.Time, Weapon: id})
	return true
}

// AppendPick adds one pick to a slot
func (w *World) AppendPick(id compose.WeaponID, item compose.SlotItem) bool {
	s := w.Slot(id)
	if s == nil {
		return false
	}
	if item.Kind == compose.KindCard && !compose.CanAppend(s.Picks, item.Card) {
		return false
	}
	return w.SetPicks(id, append(append([]compose.SlotItem(nil), s.Picks...), item))
}
