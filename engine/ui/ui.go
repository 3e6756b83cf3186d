package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/weapons"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MaxChoices is how many cards the sidebar offers, one per number key
const MaxChoices = 9

// BuffKeys maps F1-F4 to the numeric buffs
var BuffKeys = [4]compose.BuffType{
	compose.BuffCooldown,
	compose.BuffRange,
	compose.BuffCount,
	compose.BuffDamage,
}

var buffNames = map[compose.BuffType]string{
	compose.BuffCooldown: "cooldown",
	compose.BuffRange:    "range",
	compose.BuffCount:    "count",
	compose.BuffDamage:   "damage",
}

// Status is run state the frame does not carry
type Status struct {
	Mode   string
	Paused bool
	Seed   int64
}

// HUD is the sandbox heads-up display
type HUD struct {
	ScreenW, ScreenH int
	SidebarWidth     int
	TopBarHeight     int

	// Selected weapon slot, an index into the frame's slots
	Selected int
	Catalog  *weapons.Catalog
}

func NewHUD(sw, sh int, cat *weapons.Catalog) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		SidebarWidth: 240,
		TopBarHeight: 30,
		Catalog:      cat,
	}
}

// Cycle moves the slot selection, wrapping around n slots
func (h *HUD) Cycle(n int) {
	if n <= 0 {
		h.Selected = 0
		return
	}
	h.Selected = (h.Selected + 1) % n
}

// SelectedWeapon returns the weapon of the selected slot
func (h *HUD) SelectedWeapon(f core.Frame) (compose.WeaponID, bool) {
	if h.Selected < 0 || h.Selected >= len(f.Slots) {
		return "", false
	}
	return f.Slots[h.Selected].Weapon, true
}

// Choices lists the cards offered for a weapon, at most MaxChoices
func (h *HUD) Choices(w compose.WeaponID) []*compose.CardDefinition {
	if h.Catalog == nil {
		return nil
	}
	cards := h.Catalog.ForWeapon(w)
	if len(cards) > MaxChoices {
		cards = cards[:MaxChoices]
	}
	return cards
}

// Choice returns the card bound to number key n (1-based)
func (h *HUD) Choice(w compose.WeaponID, n int) (*compose.CardDefinition, bool) {
	cards := h.Choices(w)
	if n < 1 || n > len(cards) {
		return nil, false
	}
	return cards[n-1], true
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, f core.Frame, st Status) {
	h.drawTopBar(screen, f, st)
	h.drawSidebar(screen, f)
	if st.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (space)", h.ScreenW/2-50, h.ScreenH/2)
	}
	if f.Player.HP <= 0 {
		ebitenutil.DebugPrintAt(screen, "DEFEATED", h.ScreenW/2-30, h.ScreenH/2+20)
	}
}

func (h *HUD) drawTopBar(screen *ebiten.Image, f core.Frame, st Status) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 180}, false)
	info := fmt.Sprintf("%s | seed %d | t %.1fs | tick %d | HP %.0f/%.0f | enemies %d",
		st.Mode, st.Seed, f.Time, f.Tick, f.Player.HP, f.Player.MaxHP, len(f.Enemies))
	ebitenutil.DebugPrintAt(screen, info, 10, 8)
}

func (h *HUD) drawSidebar(screen *ebiten.Image, f core.Frame) {
	sx := float32(h.ScreenW - h.SidebarWidth)
	vector.DrawFilledRect(screen, sx, float32(h.TopBarHeight), float32(h.SidebarWidth), float32(h.ScreenH-h.TopBarHeight), color.RGBA{20, 20, 40, 220}, false)

	y := h.TopBarHeight + 10
	ebitenutil.DebugPrintAt(screen, "=== WEAPONS (tab) ===", int(sx)+10, y)
	y += 20

	for i, s := range f.Slots {
		btnColor := color.RGBA{60, 60, 100, 255}
		if i == h.Selected {
			btnColor = color.RGBA{100, 100, 200, 255}
		}
		vector.DrawFilledRect(screen, sx+10, float32(y), float32(h.SidebarWidth-20), 24, btnColor, false)
		vector.StrokeRect(screen, sx+10, float32(y), float32(h.SidebarWidth-20), 24, 1, color.RGBA{100, 100, 160, 255}, false)
		// Cooldown bar along the bottom of the button
		ready := float32(1)
		if s.Cooldown > 0 {
			ready = float32(1 - s.Remaining/s.Cooldown)
		}
		vector.DrawFilledRect(screen, sx+10, float32(y+21), float32(h.SidebarWidth-20)*ready, 3, color.RGBA{0, 200, 0, 255}, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  picks %d  cd %.2f", s.Weapon, s.Picks, s.Cooldown), int(sx)+15, y+4)
		y += 28
	}

	id, ok := h.SelectedWeapon(f)
	if !ok {
		return
	}
	y += 10
	ebitenutil.DebugPrintAt(screen, "=== CARDS (1-9) ===", int(sx)+10, y)
	y += 20
	for i, c := range h.Choices(id) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s [%s]", i+1, c.Name, c.Rarity), int(sx)+15, y)
		y += 16
	}

	y += 10
	ebitenutil.DebugPrintAt(screen, "=== BUFFS ===", int(sx)+10, y)
	y += 20
	for i, b := range BuffKeys {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("F%d %s", i+1, buffNames[b]), int(sx)+15, y)
		y += 16
	}
	y += 10
	ebitenutil.DebugPrintAt(screen, "bksp undo | enter fire | E/click spawn", int(sx)+10, y)
}

// IsInSidebar returns true if the mouse position is over the sidebar
func (h *HUD) IsInSidebar(mx, _ int) bool {
	return mx >= h.ScreenW-h.SidebarWidth
}
