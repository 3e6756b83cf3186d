package render

import "math"

// Camera maps arena coordinates to screen pixels
type Camera struct {
	X, Y    float64 // arena point at the screen center
	Zoom    float64 // 1.0 = one arena unit per pixel
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int
	Speed   float64 // pan speed (pixels per second)

	// Arena bounds for clamping
	ArenaW float64
	ArenaH float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 3.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// SetArenaBounds sets the arena size for camera clamping
func (c *Camera) SetArenaBounds(w, h float64) {
	c.ArenaW = w
	c.ArenaH = h
	c.clamp()
}

// Pan moves the camera by pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	// Keep the point under the cursor stationary
	c.X += wx - wx2
	c.Y += wy - wy2
	c.clamp()
}

// CenterOn centers the camera on an arena position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X = wx
	c.Y = wy
	c.clamp()
}

// Fit zooms so the whole arena is visible and centers on it
func (c *Camera) Fit() {
	if c.ArenaW <= 0 || c.ArenaH <= 0 {
		return
	}
	c.SetZoom(math.Min(float64(c.ScreenW)/c.ArenaW, float64(c.ScreenH)/c.ArenaH))
	c.CenterOn(c.ArenaW/2, c.ArenaH/2)
}

// WorldToScreen converts an arena position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float32, float32) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return float32(sx), float32(sy)
}

// ScreenToWorld converts screen pixels to an arena position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// Scale converts an arena length to pixels
func (c *Camera) Scale(l float64) float32 { return float32(l * c.Zoom) }

// clamp keeps the camera center inside the arena
func (c *Camera) clamp() {
	if c.ArenaW <= 0 || c.ArenaH <= 0 {
		return
	}
	c.X = math.Max(0, math.Min(c.ArenaW, c.X))
	c.Y = math.Max(0, math.Min(c.ArenaH, c.Y))
}
