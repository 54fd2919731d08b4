package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the canonical configuration: two pieces at each
// of 90%, 80%, 70% and 60% per player, passes only when forced.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Tiers: []TierConfig{
			{Percent: 90, Count: 2},
			{Percent: 80, Count: 2},
			{Percent: 70, Count: 2},
			{Percent: 60, Count: 2},
		},
		PassPolicy: PassForced,
	}
}
