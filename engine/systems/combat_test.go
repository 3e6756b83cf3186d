package systems

import (
	"math"
	"testing"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
)

// testMode removes the dead but keeps enemies still
var testMode = core.Mode{Name: "test", Death: core.DeathRemove}

func newArena(mode core.Mode, sys ...core.System) *core.World {
	w := core.NewWorld(800, 600, mode, 1)
	for _, s := range sys {
		w.AddSystem(s)
	}
	return w
}

func enemyAt(w *core.World, x, y, hp float64) *core.Entity {
	return w.AddEnemy(&core.Entity{Pos: core.Vec2{X: x, Y: y}, Radius: 10, HP: hp, MaxHP: hp})
}

func mustCard(t *testing.T, id compose.CardID) compose.SlotItem {
	t.Helper()
	cat, err := weapons.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	def, ok := cat.Card(id)
	if !ok {
		t.Fatalf("card %s missing", id)
	}
	return compose.Card(def)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestApplyDamage_KillsOnce(t *testing.T) {
	w := newArena(testMode)
	e := enemyAt(w, 100, 100, 10)
	var kills int
	w.Bus.On(core.EvtEnemyKilled, func(core.Event) { kills++ })

	if ApplyDamage(w, e, 4) {
		t.Fatal("non-lethal hit reported a kill")
	}
	if !ApplyDamage(w, e, 15) {
		t.Fatal("lethal hit not reported")
	}
	if e.HP >= 0 {
		t.Errorf("hp should be negative until the flush, got %f", e.HP)
	}
	if ApplyDamage(w, e, 5) {
		t.Error("dead enemy killed twice")
	}
	if e.HP != -9 {
		t.Errorf("dead enemy kept taking damage: %f", e.HP)
	}
	w.Bus.Dispatch()
	if kills != 1 {
		t.Errorf("kill events = %d", kills)
	}
	if len(w.Numbers) != 1 || w.Numbers[0].Amount != 19 {
		t.Errorf("damage numbers: %d", len(w.Numbers))
	}
}

func TestFindNearest(t *testing.T) {
	w := newArena(testMode)
	a := enemyAt(w, 110, 100, 10)
	b := enemyAt(w, 90, 100, 10)
	dead := enemyAt(w, 101, 100, 10)
	dead.HP = 0
	p := core.Vec2{X: 100, Y: 100}

	if got := FindNearest(w, p, nil); got != a {
		t.Errorf("tie should go to the first enemy, got %d", got.ID)
	}
	if got := FindNearest(w, p, func(e *core.Entity) bool { return e == a }); got != b {
		t.Errorf("skip ignored, got %d", got.ID)
	}
	if got := FindNearestWithin(w, p, 5, nil); got != nil {
		t.Errorf("found %d outside max distance", got.ID)
	}
}

func TestHitTests(t *testing.T) {
	o := core.Vec2{}
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"circles touch", CircleOverlap(o, 5, core.Vec2{X: 10}, 5), true},
		{"circles apart", CircleOverlap(o, 5, core.Vec2{X: 10.5}, 5), false},
		{"point in rect", PointInRect(core.Vec2{X: 50, Y: 4}, o, 0, 100, 10), true},
		{"point beside rect", PointInRect(core.Vec2{X: 50, Y: 6}, o, 0, 100, 10), false},
		{"point behind rect", PointInRect(core.Vec2{X: -1}, o, 0, 100, 10), false},
		{"rotated rect", PointInRect(core.Vec2{Y: 80}, o, math.Pi/2, 100, 10), true},
		{"circle grazes segment", SegmentHit(core.Segment{To: core.Vec2{X: 100}, Width: 10}, core.Vec2{X: 50, Y: 12}, 8), true},
		{"circle past segment end", SegmentHit(core.Segment{To: core.Vec2{X: 100}, Width: 10}, core.Vec2{X: 120}, 8), false},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestFan(t *testing.T) {
	if fan(0, 1, 0.5) != 0 {
		t.Error("single unit should not be offset")
	}
	if !near(fan(0, 3, 0.2), -0.2) || fan(1, 3, 0.2) != 0 || !near(fan(2, 3, 0.2), 0.2) {
		t.Error("three units should fan symmetrically")
	}
}

func TestApplyDamage_EventExcludesOverkill(t *testing.T) {
	w := newArena(testMode)
	e := enemyAt(w, 100, 100, 10)
	var dealt []float64
	w.Bus.On(core.EvtEnemyDamaged, func(ev core.Event) { dealt = append(dealt, ev.Amount) })

	ApplyDamage(w, e, 4)
	ApplyDamage(w, e, 15)
	w.Bus.Dispatch()
	if len(dealt) != 2 || dealt[0] != 4 || dealt[1] != 6 {
		t.Errorf("damage events %v, want [4 6]", dealt)
	}
	if w.Numbers[0].Amount != 19 {
		t.Errorf("floating number %f, want the full 19", w.Numbers[0].Amount)
	}
}
