package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/gridcade/internal/core"
	"github.com/vovakirdan/gridcade/internal/loop"
)

type stubGame struct {
	id string
}

func (g *stubGame) Reset(int64) {}
func (g *stubGame) Step() loop.Outcome { return loop.Outcome{} }
func (g *stubGame) Handle(core.Command) loop.Outcome { return loop.Outcome{} }
func (g *stubGame) Interval() time.Duration { return time.Second }
func (g *stubGame) Frame() loop.Frame { return loop.Frame{} }
func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }

func TestRegistry(t *testing.T) {
	Register("zz_stub", "Stub", func(opts Options) (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})
	Register("aa_broken", "Broken", func(opts Options) (Game, error) {
		return nil, errors.New("bad config")
	})

	if !Exists("zz_stub") {
		t.Fatal("expected zz_stub to be registered")
	}
	if Exists("nope") {
		t.Error("unexpected game registered")
	}

	g, err := Create("zz_stub", Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	if _, err := Create("aa_broken", Options{}); err == nil {
		t.Error("expected factory error to propagate")
	}
	if _, err := Create("nope", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(nope) error = %v, want ErrUnknownGame", err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_stub", "Again", nil)
}
