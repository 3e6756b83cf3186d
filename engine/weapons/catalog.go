package weapons

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/1siamBot/stackfire/engine/compose"
)

//go:embed cards.json
var cardsJSON []byte

// Catalog holds every card definition, keyed by id
type Catalog struct {
	cards map[compose.CardID]*compose.CardDefinition
}

// LoadCatalog parses the embedded card definitions
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(cardsJSON)
}

// ParseCatalog parses card definitions and checks that each one has an effect
// registered for its weapon
func ParseCatalog(data []byte) (*Catalog, error) {
	var defs []compose.CardDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card definitions: %w", err)
	}

	c := &Catalog{cards: make(map[compose.CardID]*compose.CardDefinition, len(defs))}
	for i := range defs {
		def := &defs[i]
		if _, dup := c.cards[def.ID]; dup {
			return nil, fmt.Errorf("duplicate card %s", def.ID)
		}
		if !HasEffect(def.Weapon, def.ID) {
			return nil, fmt.Errorf("card %s has no effect for weapon %s", def.ID, def.Weapon)
		}
		c.cards[def.ID] = def
	}
	return c, nil
}

// Card returns the definition for id
func (c *Catalog) Card(id compose.CardID) (*compose.CardDefinition, bool) {
	def, ok := c.cards[id]
	return def, ok
}

// ForWeapon lists a weapon's cards sorted by rarity then id
func (c *Catalog) ForWeapon(w compose.WeaponID) []*compose.CardDefinition {
	var out []*compose.CardDefinition
	for _, def := range c.cards {
		if def.Weapon == w {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rarity != out[j].Rarity {
			return out[i].Rarity < out[j].Rarity
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of cards
func (c *Catalog) Len() int { return len(c.cards) }

// HasEffect reports whether the weapon's recipe knows the card
func HasEffect(w compose.WeaponID, id compose.CardID) bool {
	known, ok := recipeCards[w]
	return ok && known(id)
}

var recipeCards = map[compose.WeaponID]func(compose.CardID) bool{
	ArrowID:    knows(ArrowRecipe),
	FireballID: knows(FireballRecipe),
	BeamID:     knows(BeamRecipe),
	OrbID:      knows(OrbRecipe),
	FrostID:    knows(FrostRecipe),
}

func knows[I any](r compose.Recipe[I]) func(compose.CardID) bool {
	return func(id compose.CardID) bool {
		_, ok := r.Cards[id]
		return ok
	}
}

// All lists every weapon family id
func All() []compose.WeaponID {
	return []compose.WeaponID{ArrowID, FireballID, BeamID, OrbID, FrostID}
}
