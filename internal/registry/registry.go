// Package registry provides a global registry of playable variants.
// Variants register themselves in init() functions, allowing the CLI and
// the menu to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/othello"
)

// Game is the interface the platform drives. Implementations keep the rules
// in the othello package and contain no Bubble Tea code.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "quantum").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary of the variant.
	Description() string

	// Reset starts a new match. The RuntimeConfig provides screen
	// dimensions and the resolver seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the platform summary of the match.
	State() core.GameState

	// Match returns the engine state, for history views and logging.
	Match() othello.Match
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new variant by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
