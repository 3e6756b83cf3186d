package systems

import (
	"testing"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

func TestOrbs_HitIntervalAndExpiry(t *testing.T) {
	w := newArena(testMode, &OrbSystem{})
	snap := compose.Compose(weapons.OrbRecipe, []compose.SlotItem{mustCard(t, "orb.chill")})
	e := enemyAt(w, w.Player.Pos.X+snap.Range, w.Player.Pos.Y, 1000)

	fireOrbs(w, w.Player.Pos, snap)
	fireOrbs(w, w.Player.Pos, snap)
	if len(w.Orbs) != 2 {
		t.Fatalf("a new activation should replace the set, got %d orbs", len(w.Orbs))
	}

	w.Tick(0.01)
	w.Tick(0.01)
	if e.HP != 1000-snap.Instances[0].Damage {
		t.Errorf("orb hit %f, want one hit", 1000-e.HP)
	}
	if !e.Status.Slowed(w.Time) {
		t.Error("chill not applied")
	}
	for _, o := range w.Orbs {
		if !near(o.Pos.DistanceTo(w.Player.Pos), snap.Range) {
			t.Errorf("orb off its orbit: %+v", o.Pos)
		}
	}

	run(w, int(weapons.OrbDuration/0.1)+1, 0.1)
	if len(w.Orbs) != 0 {
		t.Error("orbs outlived their duration")
	}
}

func TestOrbs_FollowPlayer(t *testing.T) {
	w := newArena(testMode, &OrbSystem{})
	fireOrbs(w, w.Player.Pos, compose.Compose(weapons.OrbRecipe, nil))
	w.Player.Pos = core.Vec2{X: 100, Y: 100}
	w.Tick(0.01)
	for _, o := range w.Orbs {
		if !near(o.Pos.DistanceTo(w.Player.Pos), o.Orbit) {
			t.Errorf("orb did not follow the player: %+v", o.Pos)
		}
	}
}
