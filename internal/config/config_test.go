package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-othello/internal/othello"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMatchEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMatch("")
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatchConfig()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultMatchConfig())
	}
}

func TestLoadMatchUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".qothello", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "tiers:\n  - percent: 75\n    count: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "match.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch("")
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0] != (TierConfig{Percent: 75, Count: 3}) {
		t.Errorf("tiers = %+v", cfg.Tiers)
	}
}

func TestLoadMatchCustomPath(t *testing.T) {
	path := writeConfig(t, `
tiers:
  - percent: 95
    count: 1
  - percent: 55
    count: 5
pass_policy: free
`)

	cfg, err := LoadMatch(path)
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}

	want := []TierConfig{{Percent: 95, Count: 1}, {Percent: 55, Count: 5}}
	if !reflect.DeepEqual(cfg.Tiers, want) {
		t.Errorf("tiers = %+v, want %+v", cfg.Tiers, want)
	}
	if !cfg.FreePass() {
		t.Error("pass_policy free not applied")
	}
	if cfg.PiecesPerPlayer() != 6 {
		t.Errorf("PiecesPerPlayer() = %d, want 6", cfg.PiecesPerPlayer())
	}
}

func TestLoadMatchFillsOmittedFields(t *testing.T) {
	path := writeConfig(t, "pass_policy: free\n")

	cfg, err := LoadMatch(path)
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}
	if !reflect.DeepEqual(cfg.Tiers, DefaultMatchConfig().Tiers) {
		t.Errorf("omitted tiers should default, got %+v", cfg.Tiers)
	}
}

func TestLoadMatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "tiers: [", "failed to parse"},
		{"tier out of range", "tiers:\n  - percent: 120\n    count: 1\n", "out of range"},
		{"negative count", "tiers:\n  - percent: 50\n    count: -2\n", "negative count"},
		{"duplicate tier", "tiers:\n  - percent: 50\n    count: 1\n  - percent: 50\n    count: 1\n", "duplicate"},
		{"unknown pass policy", "pass_policy: sometimes\n", "pass_policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMatch(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadMatch error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadMatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		pieces int
		tiers  int
	}{
		{PresetQuantum, 8, 4},
		{PresetClassic, 32, 1},
		{PresetChaos, 8, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := MatchConfig{PassPolicy: PassFree}
			ApplyPreset(&cfg, tt.preset)

			if cfg.PiecesPerPlayer() != tt.pieces || len(cfg.Tiers) != tt.tiers {
				t.Errorf("preset %s gave %+v", tt.preset, cfg.Tiers)
			}
			if cfg.PassPolicy != PassFree {
				t.Error("preset must keep the pass policy")
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s invalid: %v", tt.preset, err)
			}
			if tt.preset.Description() == "" {
				t.Error("preset needs a description")
			}
		})
	}
}

func TestQuantumPresetKeepsConfiguredTiers(t *testing.T) {
	cfg := MatchConfig{Tiers: []TierConfig{{Percent: 75, Count: 5}}}
	ApplyPreset(&cfg, PresetQuantum)

	if len(cfg.Tiers) != 1 || cfg.Tiers[0].Percent != 75 {
		t.Errorf("quantum preset changed configured tiers: %+v", cfg.Tiers)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetQuantum {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if p, err := ParsePreset("chaos"); err != nil || p != PresetChaos {
		t.Errorf("chaos preset = %q, %v", p, err)
	}
	if _, err := ParsePreset("nope"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadWithPreset(t *testing.T) {
	path := writeConfig(t, "pass_policy: free\n")

	cfg, err := Load(path, "classic")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0].Percent != 100 || !cfg.FreePass() {
		t.Errorf("Load = %+v", cfg)
	}

	if _, err := Load(path, "bogus"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestRulesConversion(t *testing.T) {
	rules := DefaultMatchConfig().Rules()
	if !reflect.DeepEqual(rules, othello.DefaultConfig()) {
		t.Errorf("Rules() = %+v, want engine defaults", rules)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultMatchConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := LoadMatch(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatchConfig()) {
		t.Errorf("round trip = %+v", cfg)
	}
}
