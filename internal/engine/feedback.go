package engine

import "time"

// FeedbackKind discriminates feedback entries.
type FeedbackKind uint8

const (
	// FeedbackPieceLocked reports the final configuration a piece locked in.
	FeedbackPieceLocked FeedbackKind = iota
	// FeedbackLineClears reports rows about to be cleared and the clear
	// delay they will animate over.
	FeedbackLineClears
	// FeedbackHardDrop reports a piece slammed from one placement to
	// another.
	FeedbackHardDrop
	// FeedbackAccolade reports the scoring breakdown of a clearing lock.
	FeedbackAccolade
	// FeedbackMessage is generic text, used by modes (puzzle stage names).
	FeedbackMessage
)

// Accolade is the scoring context of a clearing lock, everything a renderer
// needs to celebrate it.
type Accolade struct {
	ScoreBonus   int
	Shape        Tetromino
	Spin         bool
	LineClears   int
	PerfectClear bool
	Combo        int
	BackToBack   int
}

// Feedback is a single renderer-facing event. Which fields are meaningful
// depends on Kind; the set of kinds is closed.
type Feedback struct {
	Kind FeedbackKind

	// Piece is the locked piece (PieceLocked) or the pre-drop piece
	// (HardDrop).
	Piece ActivePiece
	// DroppedPiece is the post-drop placement of a HardDrop.
	DroppedPiece ActivePiece
	// Rows are the full row indices of a LineClears, highest first.
	Rows []int
	// ClearDelay is the line clear delay configured at emission time.
	ClearDelay time.Duration
	// Accolade is set for FeedbackAccolade.
	Accolade *Accolade
	// Message is set for FeedbackMessage.
	Message string
}

// FeedbackEvent is a Feedback stamped with the game time it occurred at.
// Update returns these in emission order.
type FeedbackEvent struct {
	Time     GameTime
	Feedback Feedback
}
