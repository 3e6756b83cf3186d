package compose

import (
	"encoding/json"
	"fmt"
)

// ParseRarity maps a catalog string to a Rarity
func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "bronze":
		return Bronze, nil
	case "silver":
		return Silver, nil
	case "gold":
		return Gold, nil
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

var buffNames = map[string]BuffType{
	"cooldown": BuffCooldown,
	"range":    BuffRange,
	"count":    BuffCount,
	"damage":   BuffDamage,
}

// ParseBuff maps a buff name to a BuffType
func ParseBuff(s string) (BuffType, error) {
	if b, ok := buffNames[s]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown buff %q", s)
}

// UnmarshalJSON decodes a card with its rarity given as a string
func (d *CardDefinition) UnmarshalJSON(data []byte) error {
	type plain CardDefinition
	var raw struct {
		plain
		Rarity string `json:"rarity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r, err := ParseRarity(raw.Rarity)
	if err != nil {
		return fmt.Errorf("card %s: %w", raw.ID, err)
	}
	*d = CardDefinition(raw.plain)
	d.Rarity = r
	return nil
}
