package registry

import (
	"testing"

	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/othello"
)

type stubGame struct {
	id string
}

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Description() string { return "stub variant" }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }
func (s stubGame) Match() othello.Match { return othello.Match{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zeta", func() Game { return stubGame{id: "zeta"} })
	Register("alpha", func() Game { return stubGame{id: "alpha"} })

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d entries", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "alpha" {
			found = true
			if info.Title != "Stub alpha" || info.Description != "stub variant" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("alpha missing from List()")
	}

	g, err := Create("zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zeta" {
		t.Errorf("Create returned %q", g.ID())
	}

	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists reported wrong membership")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown variants")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Game { return stubGame{id: "dup"} })
}
