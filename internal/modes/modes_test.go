package modes

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/engine"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

func testOptions() registry.Options {
	cfg := engine.DefaultConfig()
	cfg.Seed = 42
	return registry.Options{Config: cfg}
}

func TestAllModesRegistered(t *testing.T) {
	for _, id := range []string{"marathon", "sprint", "ultra", "master", "zen", "puzzle"} {
		if !registry.Exists(id) {
			t.Errorf("Mode %q is not registered", id)
		}
	}
}

func TestAllModesCreate(t *testing.T) {
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID, testOptions())
		if err != nil {
			t.Errorf("Create(%q) failed: %v", info.ID, err)
			continue
		}
		if g.Ended() {
			t.Errorf("Mode %q starts already ended", info.ID)
		}
	}
}

func TestSprintHonorsStartLevel(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 5
	g, err := registry.Create("sprint", opts)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.State().Level != 5 {
		t.Errorf("Sprint start level = %d, want 5", g.State().Level)
	}
	if lim := g.Mode().Limits.Lines; lim == nil || lim.At != 40 || !lim.Win {
		t.Errorf("Unexpected sprint line limit %+v", g.Mode().Limits.Lines)
	}
}

func TestPuzzleLoadsFirstStage(t *testing.T) {
	g, err := registry.Create("puzzle", testOptions())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	fb, err := g.Update(nil, time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// The first stage deals an I piece onto a painted board.
	if p := g.State().ActivePiece; p == nil || p.Shape != engine.TetI {
		t.Fatalf("Expected an I piece in play, got %+v", g.State().ActivePiece)
	}
	if g.State().Board.IsEmpty() {
		t.Error("Puzzle board was not painted")
	}
	// Bottom row of the first stage is "OOOO    OO".
	if b := &g.State().Board; b[0][0] != engine.TileGarbage || b[0][4] != 0 || b[0][9] != engine.TileGarbage {
		t.Errorf("Unexpected bottom row %v", b[0])
	}

	found := false
	for _, ev := range fb {
		if ev.Feedback.Kind == engine.FeedbackMessage {
			found = true
		}
	}
	if !found {
		t.Error("No stage announcement message emitted")
	}
}

func TestPuzzleStagesAreWellFormed(t *testing.T) {
	stages := puzzleStages()
	if len(stages) == 0 {
		t.Fatal("No puzzle stages defined")
	}
	for i, s := range stages {
		if s.name == "" {
			t.Errorf("Stage %d has no name", i)
		}
		if len(s.pieces) == 0 {
			t.Errorf("Stage %q deals no pieces", s.name)
		}
		if len(s.rows) == 0 || len(s.rows) >= engine.Skyline {
			t.Errorf("Stage %q has %d rows", s.name, len(s.rows))
		}
		for _, row := range s.rows {
			if len(row) != engine.Width {
				t.Errorf("Stage %q has a row of width %d", s.name, len(row))
			}
		}
	}
}
