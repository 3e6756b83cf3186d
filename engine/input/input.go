package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DragThreshold is how far in pixels the right button must travel before a
// press becomes a pan
const DragThreshold = 5

// Drag follows a held mouse button and decides when it turns into a drag
type Drag struct {
	startX, startY int
	lastX, lastY   int
	Active         bool
}

// Step feeds one frame of pointer state and returns the movement since the
// previous frame while dragging
func (d *Drag) Step(x, y int, down, justDown bool) (dx, dy int) {
	if justDown {
		d.startX, d.startY = x, y
		d.lastX, d.lastY = x, y
		d.Active = false
	}
	if !down {
		d.Active = false
		d.lastX, d.lastY = x, y
		return 0, 0
	}
	if !d.Active {
		ox, oy := x-d.startX, y-d.startY
		if ox*ox+oy*oy > DragThreshold*DragThreshold {
			d.Active = true
		}
	}
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	if !d.Active {
		return 0, 0
	}
	return dx, dy
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	MouseX, MouseY int
	ScrollY        float64
	Clicked        bool // left button pressed this frame

	pan          Drag
	panDX, panDY int

	held map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{held: make(map[ebiten.Key]bool)}
}

var moveKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	_, s.ScrollY = ebiten.Wheel()
	s.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	s.panDX, s.panDY = s.pan.Step(s.MouseX, s.MouseY,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight))

	for _, k := range moveKeys {
		s.held[k] = ebiten.IsKeyPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// MoveAxis returns the held movement direction, each component in -1..1
func (s *InputState) MoveAxis() (dx, dy float64) {
	return Axis(s.held)
}

// Axis folds WASD and arrow keys into a direction
func Axis(keys map[ebiten.Key]bool) (dx, dy float64) {
	if keys[ebiten.KeyA] || keys[ebiten.KeyLeft] {
		dx--
	}
	if keys[ebiten.KeyD] || keys[ebiten.KeyRight] {
		dx++
	}
	if keys[ebiten.KeyW] || keys[ebiten.KeyUp] {
		dy--
	}
	if keys[ebiten.KeyS] || keys[ebiten.KeyDown] {
		dy++
	}
	return dx, dy
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// JustPressedDigit returns 1-9 for a number key pressed this frame, 0 otherwise
func (s *InputState) JustPressedDigit() int {
	return firstJustPressed(digitKeys)
}

var functionKeys = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4}

// JustPressedFunction returns 1-4 for F1-F4 pressed this frame, 0 otherwise
func (s *InputState) JustPressedFunction() int {
	return firstJustPressed(functionKeys)
}

func firstJustPressed(keys []ebiten.Key) int {
	for i, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}

// DragDelta returns the pan delta while right-dragging
func (s *InputState) DragDelta() (dx, dy int, active bool) {
	if !s.pan.Active {
		return 0, 0, false
	}
	return s.panDX, s.panDY, true
}
