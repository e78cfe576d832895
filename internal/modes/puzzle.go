package modes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetra/internal/engine"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

const (
	maxStageAttempts = 4
	// puzzleSpeedLevel is the gravity level puzzle pieces fall at,
	// regardless of the displayed stage number.
	puzzleSpeedLevel = 3
)

// stage is one handcrafted puzzle: a painted board, the exact pieces dealt
// for it, and a name shown to the player. Rows are written top-down, ten
// cells wide, any non-space cell becoming a garbage tile.
type stage struct {
	name   string
	rows   []string
	pieces []engine.Tetromino
}

// puzzleMode drives the puzzle gamemode through the engine's modifier
// hooks: it paints each stage, deals its fixed pieces, and advances or
// retries once they have all been played.
type puzzleMode struct {
	stages      []stage
	idx         int
	attempt     int
	pieceLimit  int
	initialized bool
}

func newPuzzleGame(opts registry.Options) (*engine.Game, error) {
	cfg := opts.Config
	cfg.PreviewCount = 0
	mode := engine.GameMode{
		Name:       "Puzzle",
		StartLevel: puzzleSpeedLevel,
	}
	g, err := engine.NewWithConfig(mode, cfg)
	if err != nil {
		return nil, err
	}
	g.AttachModifier(&puzzleMode{stages: puzzleStages(), attempt: 1})
	return g, nil
}

func (p *puzzleMode) Modify(tr *engine.Trusted, point engine.ModifierPoint, event engine.Event) {
	played := tr.PiecesPlayed()
	if !p.initialized {
		p.loadStage(tr)
		p.pieceLimit = played + len(p.stages[p.idx].pieces)
		p.initialized = true
	} else if point == engine.BeforeEvent && event.Kind == engine.EventSpawn && played == p.pieceLimit {
		// All of the stage's pieces are down; settle the stage before the
		// next piece would enter play.
		solved := tr.BoardEmpty()
		switch {
		case !solved && p.attempt == maxStageAttempts:
			tr.EndGame(false)
		default:
			if solved {
				p.idx++
				p.attempt = 1
			} else {
				p.attempt++
			}
			if p.idx == len(p.stages) {
				tr.EndGame(true)
			} else {
				p.loadStage(tr)
				p.pieceLimit = played + len(p.stages[p.idx].pieces)
			}
		}
	}

	switch point {
	case engine.BeforeEvent, engine.BeforeButtonChange:
		// Pieces fall at a fixed pace however deep into the stages the
		// player is, and the spawn handler must never deal beyond the
		// stage's fixed queue.
		tr.SetPreviewCount(0)
		tr.SetLevel(puzzleSpeedLevel)
	default:
		tr.SetPreviewCount(tr.QueueLen())
		tr.SetLevel(p.idx + 1)
		// Scores are meaningless in puzzles.
		tr.FilterFeedback(func(f engine.Feedback) bool {
			return f.Kind != engine.FeedbackAccolade
		})
	}

	// A spawn that slipped through while ending the game leaves a stray
	// piece on screen.
	if point == engine.AfterEvent && event.Kind == engine.EventSpawn && tr.Ended() {
		tr.RemovePiece()
	}
}

func (p *puzzleMode) loadStage(tr *engine.Trusted) {
	s := p.stages[p.idx]
	if p.attempt == 1 {
		tr.Emit(engine.Feedback{
			Kind:    engine.FeedbackMessage,
			Message: fmt.Sprintf("Stage %d: %s", p.idx+1, strings.ToUpper(s.name)),
		})
	} else {
		tr.Emit(engine.Feedback{
			Kind:    engine.FeedbackMessage,
			Message: fmt.Sprintf("%d. try (%s)", p.attempt, strings.ToUpper(s.name)),
		})
	}
	tr.ClearBoard()
	for i := 0; i < len(s.rows); i++ {
		var line engine.Line
		for x, c := range s.rows[len(s.rows)-1-i] {
			if x >= engine.Width {
				break
			}
			if c != ' ' {
				line[x] = engine.TileGarbage
			}
		}
		tr.SetRow(i, line)
	}
	tr.SetQueue(s.pieces)
}

func puzzleStages() []stage {
	T := func(ts ...engine.Tetromino) []engine.Tetromino { return ts }
	const (
		tetO = engine.TetO
		tetI = engine.TetI
		tetS = engine.TetS
		tetZ = engine.TetZ
		tetT = engine.TetT
		tetL = engine.TetL
		tetJ = engine.TetJ
	)
	return []stage{
		{"I-spin", []string{
			"OOOOO OOOO",
			"OOOOO OOOO",
			"OOOOO OOOO",
			"OOOOO OOOO",
			"OOOO    OO",
		}, T(tetI, tetI)},
		{"I-spin", []string{
			"OOOOO  OOO",
			"OOOOO OOOO",
			"OOOOO OOOO",
			"OO    OOOO",
		}, T(tetI, tetJ)},
		{"I-spin Triple", []string{
			"OO  O   OO",
			"OO    OOOO",
			"OOOO OOOOO",
			"OOOO OOOOO",
			"OOOO OOOOO",
		}, T(tetI, tetL, tetO)},
		{"I-spin trial", []string{
			"OOOOO  OOO",
			"OOO OO OOO",
			"OOO OO OOO",
			"OOO     OO",
			"OOO OOOOOO",
		}, T(tetI, tetI, tetL)},
		{"S-spin", []string{
			"OOOO  OOOO",
			"OOO  OOOOO",
		}, T(tetS)},
		{"S-spins", []string{
			"OOOO    OO",
			"OOO    OOO",
			"OOOOO  OOO",
			"OOOO  OOOO",
		}, T(tetS, tetS, tetS)},
		{"Z-spin galore", []string{
			"O  OOOOOOO",
			"OO  OOOOOO",
			"OOO  OOOOO",
			"OOOO  OOOO",
			"OOOOO  OOO",
			"OOOOOO  OO",
			"OOOOOOO  O",
			"OOOOOOOO  ",
		}, T(tetZ, tetZ, tetZ, tetZ)},
		{"SuZ-spins", []string{
			"OOOO  OOOO",
			"OOO  OOOOO",
			"OO    OOOO",
			"OO    OOOO",
			"OOO    OOO",
			"OO  OO  OO",
		}, T(tetS, tetS, tetI, tetI, tetZ)},
		{"J-spin", []string{
			"OO     OOO",
			"OOOOOO OOO",
			"OOOOO  OOO",
		}, T(tetJ, tetI)},
		{"L_J-spin", []string{
			"OO      OO",
			"OO OOOO OO",
			"OO  OO  OO",
		}, T(tetJ, tetL, tetI)},
		{"L-spin", []string{
			"OOOOO OOOO",
			"OOO   OOOO",
		}, T(tetL)},
		{"L/J-spins", []string{
			"O   OO   O",
			"O O OO O O",
			"O   OO   O",
		}, T(tetJ, tetL, tetJ, tetL)},
		{"77", []string{
			"OOOO  OOOO",
			"OOOOO OOOO",
			"OOO   OOOO",
			"OOOO OOOOO",
			"OOOO OOOOO",
		}, T(tetL, tetL)},
		{"7-turn", []string{
			"OOOOO  OOO",
			"OOO    OOO",
			"OOOO OOOOO",
			"OOOO OOOOO",
		}, T(tetL, tetO)},
		{"L-turn", []string{
			"OOOO  OOOO",
			"OOOO  OOOO",
			"OOOO   OOO",
			"OOOO OOOOO",
		}, T(tetL, tetO)},
		{"L-turn trial", []string{
			"OOOO  OOOO",
			"OOOO  OOOO",
			"OO     OOO",
			"OOO  OOOOO",
			"OOO OOOOOO",
		}, T(tetL, tetL, tetO)},
		{"T-spin", []string{
			"OOOO    OO",
			"OOO   OOOO",
			"OOOO OOOOO",
		}, T(tetT, tetI)},
		{"T-spin pt.2", []string{
			"OOOO    OO",
			"OOO   OOOO",
			"OOOO OOOOO",
		}, T(tetT, tetL)},
		{"T-tuck", []string{
			"OO   OOOOO",
			"OOO  OOOOO",
			"OOO   OOOO",
		}, T(tetT, tetT)},
		{"T-go-round", []string{
			"OOO  OOOOO",
			"OOO   OOOO",
			"OOOOO  OOO",
			"OOOOO OOOO",
		}, T(tetT, tetO)},
		{"T T-spin Setup", []string{
			"OOOOO  OOO",
			"OOOOO  OOO",
			"OOO   OOOO",
			"OOOO OOOOO",
		}, T(tetT, tetO)},
		{"T T-spin Triple", []string{
			"OOOO   OOO",
			"OOOOO  OOO",
			"OOO   OOOO",
			"OOOO OOOOO",
			"OOO  OOOOO",
			"OOOO OOOOO",
		}, T(tetT, tetL, tetJ)},
		{"T-insert", []string{
			"OOOO  OOOO",
			"OOOO  OOOO",
			"OOOOO OOOO",
			"OOOO   OOO",
		}, T(tetT, tetO)},
		{"~ Finale ~", []string{
			"OOOO  OOOO",
			"O  O  OOOO",
			"  OOO OOOO",
			"OOO    OOO",
			"OOOOOO   O",
			"  O    OOO",
			"OOOOO OOOO",
			"O  O  OOOO",
			"OOOOO OOOO",
		}, T(tetT, tetL, tetO, tetS, tetI, tetJ, tetZ)},
	}
}
