package config

import "fmt"

// HazardRule decides when touching a hazard kills the player.
type HazardRule int

const (
	// HazardNotRising kills only while the player is not moving upward, so
	// jumping up through a hazard's top edge is forgiven.
	HazardNotRising HazardRule = iota
	// HazardAny kills on any contact.
	HazardAny
	// HazardNever disables hazard deaths.
	HazardNever
)

var hazardRuleNames = map[HazardRule]string{
	HazardNotRising: "not_rising",
	HazardAny:       "any",
	HazardNever:     "never",
}

func (h HazardRule) String() string {
	if s, ok := hazardRuleNames[h]; ok {
		return s
	}
	return fmt.Sprintf("HazardRule(%d)", int(h))
}

func (h HazardRule) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HazardRule) UnmarshalText(text []byte) error {
	for rule, name := range hazardRuleNames {
		if name == string(text) {
			*h = rule
			return nil
		}
	}
	return fmt.Errorf("unknown hazard rule %q", text)
}

// DeathPolicy selects what kills the player.
type DeathPolicy struct {
	Hazard    HazardRule `toml:"hazard"`
	FallLimit float64    `toml:"fall_limit"` // world y below which the player dies; 0 disables
}

// KillsOnHazard reports whether a hazard touch at vertical speed vy is fatal.
func (d DeathPolicy) KillsOnHazard(vy float64) bool {
	switch d.Hazard {
	case HazardAny:
		return true
	case HazardNotRising:
		return vy >= 0
	}
	return false
}

// KillsAtY reports whether a player whose top edge is at y has fallen out.
func (d DeathPolicy) KillsAtY(y float64) bool {
	return d.FallLimit > 0 && y > d.FallLimit
}
