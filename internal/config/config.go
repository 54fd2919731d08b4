// Package config provides YAML-based match configuration loading and the
// named presets for quantum Othello.
package config

import (
	"fmt"

	"github.com/vovakirdan/quantum-othello/internal/othello"
)

// MatchConfig contains all configuration for a quantum Othello match.
type MatchConfig struct {
	Tiers      []TierConfig `yaml:"tiers"`
	PassPolicy PassPolicy   `yaml:"pass_policy"`
}

// TierConfig is the starting stock of one probability tier.
type TierConfig struct {
	Percent int `yaml:"percent"` // success probability, 0..100
	Count   int `yaml:"count"`   // pieces per player
}

// PassPolicy decides when the UI offers the pass action.
type PassPolicy string

const (
	PassForced PassPolicy = "forced" // only when no piece can be placed
	PassFree   PassPolicy = "free"   // at any time
)

// Validate reports the first problem with the configuration.
func (c MatchConfig) Validate() error {
	switch c.PassPolicy {
	case PassForced, PassFree, "":
	default:
		return fmt.Errorf("config: unknown pass_policy %q", c.PassPolicy)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Rules converts the configuration into engine settings.
func (c MatchConfig) Rules() othello.Config {
	stock := make([]othello.Stock, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		stock = append(stock, othello.Stock{Tier: othello.Tier(t.Percent), Count: t.Count})
	}
	return othello.Config{Stock: stock}
}

// FreePass reports whether voluntary passes are allowed.
func (c MatchConfig) FreePass() bool {
	return c.PassPolicy == PassFree
}

// PiecesPerPlayer returns the total starting stock of one player.
func (c MatchConfig) PiecesPerPlayer() int {
	total := 0
	for _, t := range c.Tiers {
		total += t.Count
	}
	return total
}
