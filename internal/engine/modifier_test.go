package engine

import (
	"testing"
	"time"
)

type funcModifier func(t *Trusted, point ModifierPoint, event Event)

func (f funcModifier) Modify(t *Trusted, point ModifierPoint, event Event) {
	f(t, point, event)
}

func TestModifierControlsSpawnQueue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11
	g := mustGame(t, ModeZen(), cfg)
	g.AttachModifier(funcModifier(func(tr *Trusted, point ModifierPoint, event Event) {
		if point == BeforeEvent && event.Kind == EventSpawn {
			tr.SetQueue([]Tetromino{TetO})
		}
	}))

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p := g.State().ActivePiece; p == nil || p.Shape != TetO {
		t.Errorf("Expected a forced O piece, got %+v", g.State().ActivePiece)
	}
}

func TestModifierEndsGameOnLock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11
	g := mustGame(t, ModeZen(), cfg)
	g.AttachModifier(funcModifier(func(tr *Trusted, point ModifierPoint, event Event) {
		if point == AfterEvent && event.Kind == EventLock {
			tr.Emit(Feedback{Kind: FeedbackMessage, Message: "done"})
			tr.EndGame(true)
		}
	}))

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fb, err := g.Update(press(ButtonDropHard), 2*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fb2, err := g.Update(nil, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fb = append(fb, fb2...)

	if end := g.State().End; end == nil || !end.Win {
		t.Fatalf("Expected modifier win, got %+v", g.State().End)
	}
	found := false
	for _, ev := range fb {
		if ev.Feedback.Kind == FeedbackMessage && ev.Feedback.Message == "done" {
			found = true
		}
	}
	if !found {
		t.Error("Modifier message feedback was not returned")
	}
}
