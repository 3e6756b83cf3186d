package core

import (
	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// HitSet records which enemies an effect activation already damaged
type HitSet map[EntityID]struct{}

func (h HitSet) Has(id EntityID) bool {
	_, ok := h[id]
	return ok
}

func (h HitSet) Add(id EntityID) { h[id] = struct{}{} }

// Clone copies the set so children do not share it with their parent
func (h HitSet) Clone() HitSet {
	out := make(HitSet, len(h))
	for id := range h {
		out[id] = struct{}{}
	}
	return out
}

// ---- Projectiles ----

// Projectile is a point shot. Capability pointers are copied from the weapon
// instance at fire time and never written through.
type Projectile struct {
	ID          EntityID
	Weapon      compose.WeaponID
	Pos         Vec2
	Vel         Vec2
	Radius      float64
	Damage      float64
	Pierce      int
	Homing      *weapons.Homing
	Split       *weapons.Split
	Chain       *weapons.Chain
	Convergence *weapons.Convergence
	Residual    *weapons.Residual
	Hit         HitSet
	Alive       bool
	ChainDepth  int
	Fragment    bool
	CreatedAt   float64
	Lifetime    float64
}

// ConvergenceTrack collects recent hits on one enemy
type ConvergenceTrack struct {
	Times  []float64
	Damage []float64
}

// PendingBurst is delayed damage scheduled by convergence
type PendingBurst struct {
	Target EntityID
	At     float64
	Amount float64
}

// ---- Ground family ----

// GroundZone is an immediate ground cast, kept alive for its visual and an
// optional second strike
type GroundZone struct {
	ID           EntityID
	Origin       Vec2
	Dir          float64
	Points       []Vec2 // every non-mine sample point, main then spread
	Radius       float64
	Damage       float64
	SlowDuration float64
	Permafrost   *weapons.Permafrost
	Hit          HitSet
	CreatedAt    float64
	Duration     float64
	SecondAt     float64 // 0 when the zone strikes only once
	SecondRatio  float64
	SecondDone   bool
}

// Mine is a dormant footprint sample that fires on overlap
type Mine struct {
	ID           EntityID
	Pos          Vec2
	DetectRadius float64
	Damage       float64
	SlowDuration float64
	Permafrost   *weapons.Permafrost
	CreatedAt    float64
	Lifetime     float64
	Triggered    bool
	TriggeredAt  float64
}

// ResonanceWave is an expanding ring of damage
type ResonanceWave struct {
	ID        EntityID
	Center    Vec2
	Radius    float64
	MaxRadius float64
	Speed     float64
	Damage    float64
	Hit       HitSet
	CreatedAt float64
}

// Done reports whether the wave reached its full size
func (rw *ResonanceWave) Done() bool { return rw.Radius >= rw.MaxRadius }

// ---- Explosive family ----

// FireballShot is an explosive in flight or, for meteors, counting down
type FireballShot struct {
	ID         EntityID
	Pos        Vec2
	Vel        Vec2
	Target     Vec2
	Spec       weapons.Fireball // damage already scaled
	Meteor     bool
	DetonateAt float64
	Alive      bool
	CreatedAt  float64
}

// Explosion is the visual left by a detonation
type Explosion struct {
	Pos       Vec2
	Radius    float64
	CreatedAt float64
	Duration  float64
}

// HazardKind distinguishes damage-over-time areas
type HazardKind uint8

const (
	HazardResidual HazardKind = iota
	HazardLava
	HazardCorpse
	HazardTrail
)

// Hazard is a lingering damage-over-time area. Trails use Segments instead
// of Pos/Radius.
type Hazard struct {
	ID        EntityID
	Kind      HazardKind
	Pos       Vec2
	Radius    float64
	DPS       float64
	Segments  []Segment
	CreatedAt float64
	Duration  float64
	Detonated bool
}

// ---- Beams ----

// Segment is an oriented rectangle from From to To
type Segment struct {
	From  Vec2
	To    Vec2
	Width float64
}

// BeamSegment is a derived child beam
type BeamSegment struct {
	Segment
	Ratio  float64  // damage relative to the parent
	Source EntityID // enemy the child starts from; it takes no child damage
	Prism  bool
}

// BeamEffect is one fired beam
type BeamEffect struct {
	ID        EntityID
	Origin    Vec2
	Angle     float64
	Range     float64
	Spec      weapons.Beam // damage already scaled
	Target    EntityID
	CreatedAt float64
	NextPulse float64
	Focus     map[EntityID]float64 // seconds of continuous contact
	Segments  []BeamSegment
}

// Overloaded reports whether the beam is inside its final overload window
func (b *BeamEffect) Overloaded(now float64) bool {
	o := b.Spec.Overload
	return o != nil && now >= b.CreatedAt+b.Spec.Duration-o.Window
}

// Width is the beam width at time now
func (b *BeamEffect) Width(now float64) float64 {
	if b.Overloaded(now) {
		return b.Spec.Width * b.Spec.Overload.WidthMult
	}
	return b.Spec.Width
}

// DamageMult is the overload damage multiplier at time now
func (b *BeamEffect) DamageMult(now float64) float64 {
	if b.Overloaded(now) {
		return b.Spec.Overload.DamageMult
	}
	return 1
}

// ---- Orbs ----

// OrbUnit circles the player
type OrbUnit struct {
	ID        EntityID
	Spec      weapons.Orb // damage already scaled
	Orbit     float64
	Phase     float64
	Pos       Vec2
	CreatedAt float64
	LastHit   map[EntityID]float64
}

// ---- Feedback ----

// DamageNumber is the floating number side effect of damage
type DamageNumber struct {
	Target    EntityID
	Pos       Vec2
	Amount    float64
	CreatedAt float64
}

// Expired reports whether something created at createdAt with the given
// duration is over at now
func Expired(now, createdAt, duration float64) bool {
	return now-createdAt >= duration
}
