package weapons

import (
	"fmt"
	"strings"

	"github.com/1siamBot/stackfire/engine/compose"
)

// Build is a weapon family with an ordered pick sequence
type Build struct {
	Weapon compose.WeaponID
	Picks  []compose.SlotItem
}

// String renders the build back in ParseBuild's format
func (b Build) String() string {
	parts := make([]string, 0, len(b.Picks))
	for _, it := range b.Picks {
		if it.Kind == compose.KindBuff {
			parts = append(parts, "+"+buffName(it.Buff))
			continue
		}
		parts = append(parts, string(it.Card.ID))
	}
	if len(parts) == 0 {
		return string(b.Weapon)
	}
	return string(b.Weapon) + ":" + strings.Join(parts, ",")
}

func buffName(t compose.BuffType) string {
	switch t {
	case compose.BuffCooldown:
		return "cooldown"
	case compose.BuffRange:
		return "range"
	case compose.BuffCount:
		return "count"
	default:
		return "damage"
	}
}

// ParseBuild reads "weapon:pick,pick,..." where a pick is a card id or a
// buff written "+count", "+damage", "+range" or "+cooldown". Cards must
// belong to the weapon and respect their stack limit.
func (c *Catalog) ParseBuild(s string) (Build, error) {
	name, list, _ := strings.Cut(strings.TrimSpace(s), ":")
	b := Build{Weapon: compose.WeaponID(name)}
	if _, ok := recipeCards[b.Weapon]; !ok {
		return Build{}, fmt.Errorf("build %q: unknown weapon %q", s, name)
	}
	if list == "" {
		return b, nil
	}
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if buff, ok := strings.CutPrefix(tok, "+"); ok {
			t, err := compose.ParseBuff(buff)
			if err != nil {
				return Build{}, fmt.Errorf("build %q: %w", s, err)
			}
			b.Picks = append(b.Picks, compose.Buff(t))
			continue
		}
		def, ok := c.Card(compose.CardID(tok))
		if !ok {
			return Build{}, fmt.Errorf("build %q: unknown card %q", s, tok)
		}
		if def.Weapon != b.Weapon {
			return Build{}, fmt.Errorf("build %q: card %s belongs to %s", s, def.ID, def.Weapon)
		}
		if !compose.CanAppend(b.Picks, def) {
			return Build{}, fmt.Errorf("build %q: card %s over its stack limit of %d", s, def.ID, def.MaxStack)
		}
		b.Picks = append(b.Picks, compose.Card(def))
	}
	return b, nil
}
