package core

import "github.com/1siamBot/stackfire/engine/compose"

// Weapon is one equipped weapon family. Implementations hold the composed
// snapshot and know how to fire it; they live in engine/systems.
type Weapon interface {
	ID() compose.WeaponID
	Rebuild(picks []compose.SlotItem)
	Ready() bool
	Cooldown() float64
	Fire(w *World, origin Vec2)
}

// WeaponSlot pairs a weapon with its picks and its cooldown timer
type WeaponSlot struct {
	Weapon   Weapon
	Picks    []compose.SlotItem
	NextFire float64 // simulation time of the next allowed activation
	Shots    uint64
	Trigger  bool // manual fire requested for weapons that do not auto fire
}

// Remaining returns the cooldown left at time now
func (s *WeaponSlot) Remaining(now float64) float64 {
	if s.NextFire <= now {
		return 0
	}
	return s.NextFire - now
}
