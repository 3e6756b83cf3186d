package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/1siamBot/stackfire/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{18, 18, 26, 255}
	arenaColor      = color.RGBA{28, 30, 40, 255}
	borderColor     = color.RGBA{70, 70, 100, 255}
	playerColor     = color.RGBA{60, 140, 255, 255}
	enemyColor      = color.RGBA{200, 60, 60, 255}
	frozenColor     = color.RGBA{150, 220, 255, 255}
	burnColor       = color.RGBA{255, 140, 30, 255}
	numberColor     = color.RGBA{255, 240, 200, 255}
)

// effectColors maps a frame view kind to its draw color
var effectColors = map[string]color.RGBA{
	"arrow":      {230, 230, 160, 255},
	"fireball":   {255, 120, 40, 255},
	"zone":       {120, 200, 255, 90},
	"mine":       {120, 200, 255, 200},
	"wave":       {180, 230, 255, 160},
	"explosion":  {255, 160, 60, 140},
	"residual":   {170, 120, 255, 90},
	"lava":       {255, 80, 20, 110},
	"corpse":     {140, 60, 40, 160},
	"orb":        {200, 120, 255, 255},
	"beam":       {255, 255, 180, 200},
	"refraction": {200, 255, 200, 170},
	"prism":      {255, 180, 255, 170},
	"trail":      {255, 220, 120, 80},
}

// KindColor returns the draw color for a view kind, white when unknown
func KindColor(kind string) color.RGBA {
	if c, ok := effectColors[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// Renderer draws a core.Frame
type Renderer struct {
	Camera         *Camera
	NumberLifetime float64

	face *text.GoXFace
}

// NewRenderer creates a renderer for the given screen size
func NewRenderer(screenW, screenH int) *Renderer {
	return &Renderer{
		Camera:         NewCamera(screenW, screenH),
		NumberLifetime: 0.8,
		face:           text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, f core.Frame) {
	screen.Fill(backgroundColor)
	r.drawArena(screen, f.Bounds)

	for _, c := range f.Circles {
		r.drawCircle(screen, c)
	}
	for _, s := range f.Segments {
		r.drawSegment(screen, s)
	}
	for _, e := range f.Enemies {
		r.drawEntity(screen, e)
	}
	r.drawEntity(screen, f.Player)
	for _, s := range f.Shots {
		r.drawShot(screen, s)
	}
	for _, n := range f.Numbers {
		r.drawNumber(screen, n)
	}
}

func (r *Renderer) drawArena(screen *ebiten.Image, bounds core.Vec2) {
	x0, y0 := r.Camera.WorldToScreen(0, 0)
	w, h := r.Camera.Scale(bounds.X), r.Camera.Scale(bounds.Y)
	vector.DrawFilledRect(screen, x0, y0, w, h, arenaColor, false)
	vector.StrokeRect(screen, x0, y0, w, h, 2, borderColor, false)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e core.EntityView) {
	x, y := r.Camera.WorldToScreen(e.Pos.X, e.Pos.Y)
	rad := r.Camera.Scale(e.Radius)
	clr := enemyColor
	switch {
	case e.Player:
		clr = playerColor
	case e.Frozen:
		clr = frozenColor
	}
	vector.DrawFilledCircle(screen, x, y, rad, clr, true)
	if e.Burning {
		vector.StrokeCircle(screen, x, y, rad+2, 2, burnColor, true)
	}
	if e.Slowed && !e.Frozen {
		vector.StrokeCircle(screen, x, y, rad+4, 1, frozenColor, true)
	}

	// HP bar
	ratio := float32(e.Health)
	barW := rad * 2
	barColor := color.RGBA{0, 200, 0, 255}
	if ratio < 0.5 {
		barColor = color.RGBA{255, 200, 0, 255}
	}
	if ratio < 0.25 {
		barColor = color.RGBA{255, 0, 0, 255}
	}
	vector.DrawFilledRect(screen, x-rad, y-rad-6, barW, 3, color.RGBA{0, 0, 0, 180}, false)
	vector.DrawFilledRect(screen, x-rad, y-rad-6, barW*ratio, 3, barColor, false)
}

func (r *Renderer) drawShot(screen *ebiten.Image, s core.ShotView) {
	x, y := r.Camera.WorldToScreen(s.Pos.X, s.Pos.Y)
	clr := KindColor(string(s.Weapon))
	if s.Meteor {
		// Meteors fall on a fixed point; mark it
		tx, ty := r.Camera.WorldToScreen(s.Target.X, s.Target.Y)
		vector.StrokeCircle(screen, tx, ty, r.Camera.Scale(s.Radius*4), 1, clr, true)
	}
	rad := r.Camera.Scale(math.Max(s.Radius, 2))
	if s.Fragment {
		rad *= 0.7
	}
	vector.DrawFilledCircle(screen, x, y, rad, clr, true)
}

func (r *Renderer) drawCircle(screen *ebiten.Image, c core.CircleView) {
	x, y := r.Camera.WorldToScreen(c.Pos.X, c.Pos.Y)
	rad := r.Camera.Scale(c.Radius)
	clr := KindColor(c.Kind)
	switch c.Kind {
	case "wave", "mine":
		vector.StrokeCircle(screen, x, y, rad, 2, clr, true)
		if c.Kind == "mine" && c.Armed {
			vector.DrawFilledCircle(screen, x, y, 3, clr, true)
		}
	default:
		vector.DrawFilledCircle(screen, x, y, rad, clr, true)
	}
}

func (r *Renderer) drawSegment(screen *ebiten.Image, s core.SegmentView) {
	x0, y0 := r.Camera.WorldToScreen(s.From.X, s.From.Y)
	x1, y1 := r.Camera.WorldToScreen(s.To.X, s.To.Y)
	vector.StrokeLine(screen, x0, y0, x1, y1, r.Camera.Scale(s.Width), KindColor(s.Kind), true)
}

func (r *Renderer) drawNumber(screen *ebiten.Image, n core.NumberView) {
	alpha := NumberAlpha(n.Age, r.NumberLifetime)
	if alpha <= 0 {
		return
	}
	x, y := r.Camera.WorldToScreen(n.Pos.X, n.Pos.Y)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-20-n.Age*30)
	op.ColorScale.ScaleWithColor(numberColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("%.0f", math.Ceil(n.Amount)), r.face, op)
}

// NumberAlpha fades a damage number out over its lifetime
func NumberAlpha(age, lifetime float64) float64 {
	if lifetime <= 0 || age >= lifetime {
		return 0
	}
	return 1 - math.Max(age, 0)/lifetime
}
