package core

import "math"

// ---- Vectors ----

// Vec2 is a position or velocity in arena pixels
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) DistanceTo(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// AngleTo returns the angle from this point to another
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// FromAngle returns a vector of length l pointing along angle a
func FromAngle(a, l float64) Vec2 {
	return Vec2{math.Cos(a) * l, math.Sin(a) * l}
}

// ---- Entities ----

// EntityID is a unique identifier for entities and effects within one World
type EntityID uint64

// Patrol moves an enemy back and forth along x when enemies do not chase
type Patrol struct {
	Center    Vec2
	HalfRange float64
	Speed     float64
	Dir       float64 // +1 or -1
}

// Entity is the player or an enemy
type Entity struct {
	ID     EntityID
	Pos    Vec2
	Radius float64
	HP     float64 // may be <= 0 until the end-of-step flush
	MaxHP  float64
	Speed  float64
	Status Status
	Patrol *Patrol
	Player bool
}

// Alive reports whether the entity still takes part in queries this step
func (e *Entity) Alive() bool { return e != nil && e.HP > 0 }

// Ratio returns remaining health as a fraction
func (e *Entity) Ratio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return math.Max(e.HP, 0) / e.MaxHP
}

// EnemyStats describes an enemy to spawn
type EnemyStats struct {
	HP     float64
	Speed  float64
	Radius float64
	Patrol float64 // patrol half-range; 0 disables patrol
}

// DefaultEnemy is the stat block used when a caller has no wave tables
var DefaultEnemy = EnemyStats{HP: 120, Speed: 40, Radius: 12, Patrol: 60}
