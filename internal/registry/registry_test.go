package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ title string }

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", func() Game { return &stubGame{title: "Stub"} })

	if !Exists("test-stub") {
		t.Fatal("Exists(test-stub) = false, expected true")
	}

	g, err := Create("test-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, expected Stub", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("List() title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not contain test-stub")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID did not panic")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create(no-such-game) returned nil error")
	}
	if Exists("no-such-game") {
		t.Error("Exists(no-such-game) = true, expected false")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Game { return &stubGame{} })
	Register("test-a", func() Game { return &stubGame{} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
