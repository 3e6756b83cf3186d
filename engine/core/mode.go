package core

import "github.com/1siamBot/stackfire/engine/compose"

// DeathPolicy chooses what happens to an enemy whose HP reaches zero
type DeathPolicy uint8

const (
	DeathReset  DeathPolicy = iota // sandbox: back to full HP at end of step
	DeathRemove                    // scored: removed at end of step and reported
)

// Mode configures how a run treats enemies and weapons
type Mode struct {
	Name          string
	Death         DeathPolicy
	Chase         bool
	ContactDamage bool
	ContactDPS    float64
	AutoFire      map[compose.WeaponID]bool // nil means every weapon fires on its own
}

// SandboxMode keeps targets standing so builds can be compared
func SandboxMode() Mode {
	return Mode{Name: "sandbox", Death: DeathReset}
}

// ScoredMode removes dead enemies, lets them chase and hurt the player
func ScoredMode() Mode {
	return Mode{
		Name:          "scored",
		Death:         DeathRemove,
		Chase:         true,
		ContactDamage: true,
		ContactDPS:    10,
	}
}

// Fires reports whether a weapon activates automatically
func (m Mode) Fires(id compose.WeaponID) bool {
	if m.AutoFire == nil {
		return true
	}
	return m.AutoFire[id]
}

var deathHooks = map[DeathPolicy]func(w *World, e *Entity){
	DeathReset: func(w *World, e *Entity) {
		w.Bus.Emit(Event{Type: EvtEnemyReset, Tick: w.TickCount, Time: w.Time, Entity: e.ID, Pos: e.Pos})
	},
	DeathRemove: func(w *World, e *Entity) {
		w.Bus.Emit(Event{Type: EvtEnemyKilled, Tick: w.TickCount, Time: w.Time, Entity: e.ID, Pos: e.Pos})
	},
}
