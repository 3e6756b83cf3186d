package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAxis(t *testing.T) {
	cases := []struct {
		name   string
		keys   []ebiten.Key
		dx, dy float64
	}{
		{"idle", nil, 0, 0},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, 1, -1},
		{"arrows", []ebiten.Key{ebiten.KeyLeft, ebiten.KeyDown}, -1, 1},
		{"opposed", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 0, 0},
		{"doubled", []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, -1, 0},
	}
	for _, c := range cases {
		keys := make(map[ebiten.Key]bool)
		for _, k := range c.keys {
			keys[k] = true
		}
		dx, dy := Axis(keys)
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.name, dx, dy, c.dx, c.dy)
		}
	}
}

func TestDrag_Threshold(t *testing.T) {
	var d Drag
	if dx, dy := d.Step(100, 100, true, true); dx != 0 || dy != 0 || d.Active {
		t.Fatalf("press: (%d, %d) active %v", dx, dy, d.Active)
	}
	// Inside the threshold the button is still a click
	if dx, dy := d.Step(103, 102, true, false); dx != 0 || dy != 0 || d.Active {
		t.Fatalf("jitter: (%d, %d) active %v", dx, dy, d.Active)
	}
	if dx, dy := d.Step(110, 102, true, false); dx != 7 || dy != 0 || !d.Active {
		t.Fatalf("drag start: (%d, %d) active %v", dx, dy, d.Active)
	}
	if dx, dy := d.Step(110, 90, true, false); dx != 0 || dy != -12 {
		t.Errorf("drag: (%d, %d)", dx, dy)
	}
	if d.Step(200, 200, false, false); d.Active {
		t.Error("still dragging after release")
	}
}
