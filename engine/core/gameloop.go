package core

import "time"

// MaxFrameDelta bounds one step so a frame hitch cannot tunnel effects
const MaxFrameDelta = 0.05

// LoopState is the run state of a GameLoop
type LoopState uint8

const (
	StateRunning LoopState = iota
	StatePaused
	StateStopped
)

func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// GameLoop turns wall-clock frames into simulation steps. Each Update runs
// exactly one World.Tick with the elapsed wall time clamped to MaxFrameDelta.
// Time spent paused is never handed to the world.
type GameLoop struct {
	World    *World
	State    LoopState
	clock    TimeProvider
	lastTime time.Time
}

// NewGameLoop creates a running loop over w. A nil clock uses the system clock.
func NewGameLoop(w *World, clock TimeProvider) *GameLoop {
	if clock == nil {
		clock = MonotonicTimeProvider{}
	}
	return &GameLoop{
		World:    w,
		clock:    clock,
		lastTime: clock.Now(),
	}
}

// Update should be called every render frame. It returns the dt that was
// simulated, 0 when paused or stopped.
func (gl *GameLoop) Update() float64 {
	now := gl.clock.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	if gl.State != StateRunning {
		return 0
	}
	if frameTime <= 0 {
		return 0
	}
	// Cap frame time so one hitch cannot skip through collisions
	if frameTime > MaxFrameDelta {
		frameTime = MaxFrameDelta
	}
	gl.Step(frameTime)
	return frameTime
}

// Step runs one tick of exactly dt seconds and dispatches its events. It is
// a no-op unless the loop is running.
func (gl *GameLoop) Step(dt float64) {
	if gl.State != StateRunning || dt <= 0 {
		return
	}
	gl.World.Tick(dt)
	gl.World.Bus.Dispatch()
}

// Pause freezes simulation time
func (gl *GameLoop) Pause() {
	if gl.State == StateRunning {
		gl.State = StatePaused
	}
}

// Resume continues after Pause and re-anchors the wall clock, so the time
// spent paused is dropped
func (gl *GameLoop) Resume() {
	if gl.State != StatePaused {
		return
	}
	gl.State = StateRunning
	gl.lastTime = gl.clock.Now()
}

// Stop halts the loop for good
func (gl *GameLoop) Stop() {
	gl.State = StateStopped
}

// Paused reports whether the loop is paused
func (gl *GameLoop) Paused() bool { return gl.State == StatePaused }
