package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-explorer/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                        { return g.id }
func (g stubGame) Title() string                                     { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) error                    { return nil }
func (g stubGame) Step([]core.Intent, time.Duration) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                               {}
func (g stubGame) State() core.GameState                             { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-stub" && info.Title == "Stub zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("registered mode missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
