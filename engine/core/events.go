package core

import (
	"fmt"

	"github.com/1siamBot/stackfire/engine/compose"
)

// Event represents a simulation event
type Event struct {
	Type   EventType
	Tick   uint64
	Time   float64
	Entity EntityID
	Weapon compose.WeaponID
	Amount float64 // damage: HP actually removed, overkill excluded
	Pos    Vec2
}

type EventType uint16

const (
	EvtEnemySpawned EventType = iota
	EvtEnemyDamaged
	EvtEnemyKilled
	EvtEnemyReset
	EvtWeaponFired
	EvtPlayerHit
	EvtPicksChanged
)

var eventNames = [...]string{
	EvtEnemySpawned: "enemy_spawned",
	EvtEnemyDamaged: "enemy_damaged",
	EvtEnemyKilled:  "enemy_killed",
	EvtEnemyReset:   "enemy_reset",
	EvtWeaponFired:  "weapon_fired",
	EvtPlayerHit:    "player_hit",
	EvtPicksChanged: "picks_changed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", uint16(t))
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
	spare     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch delivers queued events in emission order. Events emitted by a
// handler are delivered in the same call, after the ones already queued.
func (eb *EventBus) Dispatch() {
	for len(eb.queue) > 0 {
		batch := eb.queue
		eb.queue = eb.spare[:0]
		for _, e := range batch {
			for _, h := range eb.listeners[e.Type] {
				h(e)
			}
		}
		eb.spare = batch[:0]
	}
}
