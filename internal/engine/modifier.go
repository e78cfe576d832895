package engine

// ModifierPoint is the place in the update loop a modifier is invoked at.
type ModifierPoint uint8

const (
	// BeforeEvent runs right before an internal event is handled, with
	// the event that is about to fire.
	BeforeEvent ModifierPoint = iota
	// AfterEvent runs right after an internal event was handled.
	AfterEvent
	// BeforeButtonChange runs before a changed button state is applied.
	BeforeButtonChange
	// AfterButtonChange runs after a changed button state was applied.
	AfterButtonChange
)

// Modifier is a gameplay mutator attached to a game. It observes update
// loop checkpoints and may rewrite state through the Trusted handle. The
// zero Event is passed at button-change points.
type Modifier interface {
	Modify(t *Trusted, point ModifierPoint, event Event)
}

// Trusted is the capability handed to modifiers. It exposes the narrow set
// of mutations modes legitimately need while keeping them off the raw
// internals.
type Trusted struct {
	g *Game
}

// Time returns the current game time.
func (t *Trusted) Time() GameTime { return t.g.state.Time }

// PiecesPlayed returns how many pieces have locked so far.
func (t *Trusted) PiecesPlayed() int {
	n := 0
	for _, c := range t.g.state.PiecesPlayed {
		n += c
	}
	return n
}

// LinesCleared returns the total cleared line count.
func (t *Trusted) LinesCleared() int { return t.g.state.LinesCleared }

// Ended reports whether the game has finished.
func (t *Trusted) Ended() bool { return t.g.state.End != nil }

// BoardEmpty reports whether the stack holds no tiles.
func (t *Trusted) BoardEmpty() bool { return t.g.state.Board.IsEmpty() }

// SetRow overwrites one board row.
func (t *Trusted) SetRow(y int, row Line) {
	if y >= 0 && y < Height {
		t.g.state.Board[y] = row
	}
}

// ClearBoard wipes the stack.
func (t *Trusted) ClearBoard() {
	t.g.state.Board = Board{}
}

// SetQueue replaces the upcoming piece queue. The game refills from its
// generator only when the queue runs short of the preview count, so a mode
// that keeps the queue stocked controls every deal.
func (t *Trusted) SetQueue(pieces []Tetromino) {
	t.g.state.NextPieces = append(t.g.state.NextPieces[:0], pieces...)
}

// QueueLen returns how many queued pieces remain.
func (t *Trusted) QueueLen() int { return len(t.g.state.NextPieces) }

// SetLevel sets the gravity level. Levels below 1 are clamped.
func (t *Trusted) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	t.g.state.Level = level
}

// SetPreviewCount changes how many upcoming pieces are revealed.
func (t *Trusted) SetPreviewCount(n int) {
	if n < 0 {
		n = 0
	}
	t.g.config.PreviewCount = n
}

// EndGame finishes the game at the current time with the given verdict.
func (t *Trusted) EndGame(win bool) {
	if t.g.state.End == nil {
		end := Ending{Win: win}
		if !win {
			end.Reason = GameOverModeLimit
		}
		t.g.state.End = &end
	}
}

// RemovePiece takes the active piece out of play without locking it.
func (t *Trusted) RemovePiece() {
	t.g.state.ActivePiece = nil
}

// FilterFeedback drops pending feedback entries the keep function rejects.
func (t *Trusted) FilterFeedback(keep func(Feedback) bool) {
	kept := t.g.feedback[:0]
	for _, ev := range t.g.feedback {
		if keep(ev.Feedback) {
			kept = append(kept, ev)
		}
	}
	t.g.feedback = kept
}

// Emit queues a feedback event for the frontend, stamped with game time.
func (t *Trusted) Emit(f Feedback) {
	t.g.feedback = append(t.g.feedback, FeedbackEvent{Time: t.g.state.Time, Feedback: f})
}

// AttachModifier registers a modifier on the game. Modifiers run in
// attachment order at every checkpoint.
func (g *Game) AttachModifier(m Modifier) {
	g.modifiers = append(g.modifiers, m)
}

func (g *Game) applyModifiers(point ModifierPoint, event Event) {
	if len(g.modifiers) == 0 {
		return
	}
	t := &Trusted{g: g}
	for _, m := range g.modifiers {
		m.Modify(t, point, event)
	}
}
