package main

import (
	"log"
	"math"
	"os"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/input"
	"github.com/1siamBot/stackfire/engine/render"
	"github.com/1siamBot/stackfire/engine/systems"
	"github.com/1siamBot/stackfire/engine/ui"
	"github.com/1siamBot/stackfire/engine/weapons"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	playerSpeed  = 160.0
)

// Game implements ebiten.Game interface
type Game struct {
	cfg      Config
	world    *core.World
	gameLoop *core.GameLoop
	renderer *render.Renderer
	hud      *ui.HUD
	input    *input.InputState
	frame    core.Frame
}

func NewGame(cfg Config, cat *weapons.Catalog) (*Game, error) {
	w := core.NewWorld(cfg.Width, cfg.Height, cfg.GameMode(), cfg.Seed)
	if cfg.Debug {
		w.Logger = log.New(os.Stderr, "[sim] ", log.Ltime|log.Lmicroseconds)
	}
	systems.Install(w)
	for _, id := range cfg.Weapons {
		if _, err := systems.Equip(w, compose.WeaponID(id)); err != nil {
			return nil, err
		}
	}
	for _, s := range cfg.Builds {
		b, err := cat.ParseBuild(s)
		if err != nil {
			return nil, err
		}
		if _, err := systems.Equip(w, b.Weapon); err != nil {
			return nil, err
		}
		w.SetPicks(b.Weapon, b.Picks)
	}

	g := &Game{
		cfg:      cfg,
		world:    w,
		gameLoop: core.NewGameLoop(w, nil),
		renderer: render.NewRenderer(ScreenWidth, ScreenHeight),
		hud:      ui.NewHUD(ScreenWidth, ScreenHeight, cat),
		input:    input.NewInputState(),
	}
	g.renderer.NumberLifetime = systems.NumberLifetime
	g.renderer.Camera.ScreenW = ScreenWidth - g.hud.SidebarWidth
	g.renderer.Camera.SetArenaBounds(cfg.Width, cfg.Height)
	g.renderer.Camera.Fit()

	// Keep the arena populated in scored runs
	w.Bus.On(core.EvtEnemyKilled, func(e core.Event) {
		log.Printf("enemy %d killed at %.1fs", e.Entity, e.Time)
		g.world.SpawnEnemyAtEdge(core.DefaultEnemy)
	})
	w.Bus.On(core.EvtPlayerHit, func(core.Event) {
		if g.world.Player.HP <= 0 && g.gameLoop.State == core.StateRunning {
			log.Printf("player defeated after %.1fs", g.world.Time)
			g.gameLoop.Stop()
		}
	})
	for i := 0; i < cfg.Enemies; i++ {
		w.SpawnEnemyAtEdge(core.DefaultEnemy)
	}
	w.Bus.Dispatch()

	g.frame = w.Frame()
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	g.handleCamera()
	g.handleCommands()

	dt := g.gameLoop.Update()
	if dt > 0 {
		dx, dy := g.input.MoveAxis()
		if dx != 0 || dy != 0 {
			l := math.Hypot(dx, dy)
			g.world.MovePlayer(core.Vec2{X: dx / l * playerSpeed * dt, Y: dy / l * playerSpeed * dt})
		}
	}
	g.frame = g.world.Frame()
	return nil
}

func (g *Game) handleCamera() {
	cam := g.renderer.Camera
	if g.input.ScrollY != 0 && !g.hud.IsInSidebar(g.input.MouseX, g.input.MouseY) {
		cam.ZoomAt(g.input.ScrollY*0.1, g.input.MouseX, g.input.MouseY)
	}
	if dx, dy, ok := g.input.DragDelta(); ok {
		cam.Pan(float64(-dx), float64(-dy))
	}
	if g.input.IsKeyJustPressed(ebiten.KeyHome) {
		cam.Fit()
	}
}

func (g *Game) handleCommands() {
	w := g.world
	if g.input.IsKeyJustPressed(ebiten.KeySpace) {
		if g.gameLoop.Paused() {
			g.gameLoop.Resume()
		} else {
			g.gameLoop.Pause()
		}
	}
	if g.input.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud.Cycle(len(w.Slots))
	}
	if g.input.IsKeyJustPressed(ebiten.KeyE) {
		w.SpawnEnemyAtEdge(core.DefaultEnemy)
	}
	if g.input.Clicked && !g.hud.IsInSidebar(g.input.MouseX, g.input.MouseY) && g.input.MouseY > g.hud.TopBarHeight {
		x, y := g.renderer.Camera.ScreenToWorld(g.input.MouseX, g.input.MouseY)
		if x >= 0 && y >= 0 && x <= w.Bounds.X && y <= w.Bounds.Y {
			w.SpawnEnemyAt(core.DefaultEnemy, core.Vec2{X: x, Y: y})
		}
	}

	id, ok := g.hud.SelectedWeapon(g.frame)
	if !ok {
		return
	}
	if n := g.input.JustPressedDigit(); n > 0 {
		if card, ok := g.hud.Choice(id, n); ok && !w.AppendPick(id, compose.Card(card)) {
			log.Printf("%s: %s is at its stack limit", id, card.Name)
		}
	}
	if n := g.input.JustPressedFunction(); n > 0 {
		w.AppendPick(id, compose.Buff(ui.BuffKeys[n-1]))
	}
	if g.input.IsKeyJustPressed(ebiten.KeyBackspace) {
		if s := w.Slot(id); s != nil && len(s.Picks) > 0 {
			w.SetPicks(id, s.Picks[:len(s.Picks)-1])
		}
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEnter) {
		if s := w.Slot(id); s != nil {
			s.Trigger = true
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.frame)
	g.hud.Draw(screen, g.frame, ui.Status{
		Mode:   g.world.Mode.Name,
		Paused: g.gameLoop.Paused(),
		Seed:   g.cfg.Seed,
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	cfg, err := LoadConfig(nil)
	if err != nil {
		log.Fatal(err)
	}
	cat, err := weapons.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	game, err := NewGame(cfg, cat)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stackfire %s run, seed %d, %d weapons", cfg.Mode, cfg.Seed, len(cfg.Weapons))

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("stackfire sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
