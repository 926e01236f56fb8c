package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string { return g.id }
func (g fakeGame) Title() string { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig) {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen) {}
func (g fakeGame) State() core.GameState { return core.GameState{} }

// withEmptyRegistry swaps in a fresh registry for the test.
func withEmptyRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]entry)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func TestRegisterAndList(t *testing.T) {
	withEmptyRegistry(t)

	Register(GameInfo{ID: "zeta", Description: "last"}, func() Game { return fakeGame{"zeta"} })
	Register(GameInfo{ID: "alpha", Title: "Alpha"}, func() Game { return fakeGame{"alpha"} })

	list := List()
	if len(list) != 2 || list[0].ID != "alpha" || list[1].ID != "zeta" {
		t.Fatalf("List() = %v, want alpha then zeta", list)
	}
	if list[0].Title != "Alpha" {
		t.Errorf("explicit title replaced: %q", list[0].Title)
	}
	if list[1].Title != "Fake zeta" {
		t.Errorf("title not taken from the game: %q", list[1].Title)
	}

	info, ok := Lookup("zeta")
	if !ok || info.Description != "last" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
}

func TestCreate(t *testing.T) {
	withEmptyRegistry(t)
	Register(GameInfo{ID: "alpha"}, func() Game { return fakeGame{"alpha"} })

	g, err := Create("alpha")
	if err != nil || g.ID() != "alpha" {
		t.Fatalf("Create() = %v, %v", g, err)
	}
	if !Exists("alpha") || Exists("beta") {
		t.Error("Exists() wrong")
	}

	if _, err := Create("beta"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(beta) error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withEmptyRegistry(t)
	Register(GameInfo{ID: "alpha"}, func() Game { return fakeGame{"alpha"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(GameInfo{ID: "alpha"}, func() Game { return fakeGame{"alpha"} })
}
