package config

import "fmt"

// Preset represents a named tier layout.
type Preset string

const (
	PresetQuantum Preset = "quantum" // 90/80/70/60, two of each
	PresetClassic Preset = "classic" // certain pieces: plain Othello
	PresetChaos   Preset = "chaos"   // coin flips and worse
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetQuantum, PresetClassic, PresetChaos}
}

// ParsePreset validates a preset name. An empty name yields PresetQuantum.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetQuantum, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want quantum, classic or chaos)", name)
}

// Description returns a one-line summary for menus and help text.
func (p Preset) Description() string {
	switch p {
	case PresetQuantum:
		return "configured tiers, by default 2 pieces each at 90%, 80%, 70%, 60%"
	case PresetClassic:
		return "32 certain pieces, standard Othello"
	case PresetChaos:
		return "4 pieces each at 60% and 50%"
	default:
		return ""
	}
}

// ApplyPreset replaces the tier layout with the preset's. PresetQuantum
// keeps configured tiers and only fills them in when none are set. The pass
// policy is left as configured.
func ApplyPreset(cfg *MatchConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Tiers = []TierConfig{{Percent: 100, Count: 32}}
	case PresetChaos:
		cfg.Tiers = []TierConfig{
			{Percent: 60, Count: 4},
			{Percent: 50, Count: 4},
		}
	default:
		if len(cfg.Tiers) == 0 {
			cfg.Tiers = DefaultMatchConfig().Tiers
		}
	}
}
