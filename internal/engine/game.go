package engine

import (
	"errors"
	"math/rand"
	"time"
)

// Button is one of the game's abstract input buttons. The engine only sees
// button states; mapping physical keys is the platform layer's job.
type Button uint8

const (
	ButtonMoveLeft Button = iota
	ButtonMoveRight
	ButtonRotateLeft
	ButtonRotateRight
	ButtonRotateAround
	ButtonDropSoft
	ButtonDropHard
	ButtonDropSonic

	// NumButtons is the number of distinct buttons.
	NumButtons = 8
)

// ButtonsPressed is a full button state snapshot. Updates receive whole
// snapshots rather than deltas so dropped frames cannot wedge a button.
type ButtonsPressed [NumButtons]bool

// GameOver is the reason a lost game ended.
type GameOver uint8

const (
	// GameOverLockOut is a piece locking entirely at or above the skyline.
	GameOverLockOut GameOver = iota
	// GameOverBlockOut is a new piece failing to spawn into a free spot.
	GameOverBlockOut
	// GameOverModeLimit is a gamemode limit reached losing.
	GameOverModeLimit
	// GameOverForfeit is the player giving up.
	GameOverForfeit
)

func (o GameOver) String() string {
	switch o {
	case GameOverLockOut:
		return "lock out"
	case GameOverBlockOut:
		return "block out"
	case GameOverModeLimit:
		return "mode limit"
	case GameOverForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Ending is the outcome of a finished game. Reason is only meaningful for
// losses.
type Ending struct {
	Win    bool
	Reason GameOver
}

// ErrInvalidTimestamp is returned by Update when the requested update time
// lies before the game's current time.
var ErrInvalidTimestamp = errors.New("engine: update time precedes current game time")

// GameState is the observable state of a running game. It is owned by the
// Game and mutated only through Update; callers treat it as read-only.
type GameState struct {
	// Seed is the effective RNG seed, recorded so a game can be replayed.
	Seed int64
	// Time is how far the game's internal clock has advanced.
	Time GameTime
	// End is non-nil once the game has finished, one way or the other.
	End *Ending
	// ButtonsPressed is the last button snapshot applied.
	ButtonsPressed ButtonsPressed
	// Board is the stack of locked tiles.
	Board Board
	// ActivePiece is the piece in play, nil between lock and respawn.
	ActivePiece *ActivePiece
	// NextPieces is the upcoming piece queue, front first.
	NextPieces []Tetromino
	// PiecesPlayed counts locked pieces per shape.
	PiecesPlayed [NumTetrominos]int
	LinesCleared int
	Level        int
	Score        int
	// Combo is the number of consecutive piece locks that cleared lines.
	Combo int
	// BackToBack is the running streak of special clears (quadruple, spin
	// or perfect clear).
	BackToBack int
}

// Game is a single round of play. It is a pure simulation: the caller
// supplies timestamps and button snapshots through Update and renders from
// State; the game never blocks, sleeps or reads a clock after construction.
// A Game is not safe for concurrent use.
type Game struct {
	mode      GameMode
	config    GameConfig
	state     GameState
	events    eventQueue
	locking   lockingData
	rng       *rand.Rand
	modifiers []Modifier
	feedback  []FeedbackEvent
}

// New starts a game of the given mode with the default configuration.
func New(mode GameMode) (*Game, error) {
	return NewWithConfig(mode, DefaultConfig())
}

// NewWithConfig starts a game of the given mode and configuration. The
// game clock begins at zero with the first piece about to spawn.
func NewWithConfig(mode GameMode, config GameConfig) (*Game, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		mode:   mode,
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		events: eventQueue{},
		state: GameState{
			Seed:  seed,
			Level: mode.StartLevel,
		},
	}
	g.events.schedule(EventSpawn, 0)
	return g, nil
}

// Mode returns the gamemode the game was started with.
func (g *Game) Mode() *GameMode { return &g.mode }

// Config returns the game's configuration.
func (g *Game) Config() *GameConfig { return &g.config }

// State returns the game's observable state. The returned value stays
// owned by the game and is only valid to read between Update calls.
func (g *Game) State() *GameState { return &g.state }

// Ended reports whether the game has finished.
func (g *Game) Ended() bool { return g.state.End != nil }

// Forfeit ends the game immediately as a loss.
func (g *Game) Forfeit() {
	if g.state.End == nil {
		g.state.End = &Ending{Reason: GameOverForfeit}
	}
}

// Update advances the simulation to now, processing every scheduled event
// due up to and including that instant. A non-nil buttons snapshot is
// applied at now, after all earlier events, and may itself trigger more
// events at that instant. Feedback caused by the update is returned in
// chronological order.
//
// Updating an already ended game is a no-op. Update fails only with
// ErrInvalidTimestamp, when now lies before the game's current time.
func (g *Game) Update(buttons *ButtonsPressed, now GameTime) ([]FeedbackEvent, error) {
	if now < g.state.Time {
		return nil, ErrInvalidTimestamp
	}
	if g.Ended() {
		return nil, nil
	}
	g.feedback = nil
	for {
		ev, at, ok := g.events.next()
		// Due event, handle it before advancing further.
		if ok && at <= now {
			g.applyModifiers(BeforeEvent, ev)
			delete(g.events, ev)
			g.handleEvent(ev, at)
			g.state.Time = at
			g.applyModifiers(AfterEvent, ev)
			g.updateEnd()
			if g.Ended() {
				break
			}
			continue
		}
		// Update time reached; apply the button change, then drain any
		// events it scheduled for this same instant.
		g.state.Time = now
		if buttons != nil {
			if g.state.ActivePiece != nil {
				g.applyModifiers(BeforeButtonChange, Event{})
				g.addInputEvents(*buttons, now)
				g.applyModifiers(AfterButtonChange, Event{})
			}
			g.state.ButtonsPressed = *buttons
			buttons = nil
			continue
		}
		g.updateEnd()
		break
	}
	out := g.feedback
	g.feedback = nil
	return out, nil
}

func (g *Game) emit(at GameTime, f Feedback) {
	g.feedback = append(g.feedback, FeedbackEvent{Time: at, Feedback: f})
}

// updateEnd checks the gamemode limits against the current state and ends
// the game if one has been reached. Limits are checked in a fixed order so
// simultaneous limits resolve deterministically.
func (g *Game) updateEnd() {
	if g.state.End != nil {
		return
	}
	finish := func(win bool) {
		end := Ending{Win: win}
		if !win {
			end.Reason = GameOverModeLimit
		}
		g.state.End = &end
	}
	lim := g.mode.Limits
	if l := lim.Time; l != nil && g.state.Time >= l.After {
		finish(l.Win)
		return
	}
	if l := lim.Pieces; l != nil {
		total := 0
		for _, n := range g.state.PiecesPlayed {
			total += n
		}
		if total >= l.At {
			finish(l.Win)
			return
		}
	}
	if l := lim.Lines; l != nil && g.state.LinesCleared >= l.At {
		finish(l.Win)
		return
	}
	if l := lim.Level; l != nil && g.state.Level >= l.At {
		finish(l.Win)
		return
	}
	if l := lim.Score; l != nil && g.state.Score >= l.At {
		finish(l.Win)
	}
}

// addInputEvents translates a button state change into scheduled events.
// Only edges matter: a bit that kept its value schedules nothing.
func (g *Game) addInputEvents(next ButtonsPressed, now GameTime) {
	prev := g.state.ButtonsPressed
	mL0, mR0 := prev[ButtonMoveLeft], prev[ButtonMoveRight]
	mL1, mR1 := next[ButtonMoveLeft], next[ButtonMoveRight]
	switch {
	// No move held, one pressed: initial step, DAS follows.
	case !mL0 && !mR0 && mL1 != mR1:
		g.events.schedule(EventMoveSlow, now)
	// Direction switched (or one of two released): restart at ARR speed.
	case (mL0 && !mL1 && mR1) || (mR0 && mL1 && !mR1):
		g.events.schedule(EventMoveFast, now)
	// One held, now none or both: stop repeating.
	case mL0 != mR0 && mL1 == mR1:
		g.events.cancel(EventMoveFast)
	}

	// Rotation edges stack into one event; opposing taps cancel out while
	// a 180 always rotates.
	turns := 0
	if !prev[ButtonRotateRight] && next[ButtonRotateRight] {
		turns++
	}
	if !prev[ButtonRotateAround] && next[ButtonRotateAround] {
		turns += 2
	}
	if !prev[ButtonRotateLeft] && next[ButtonRotateLeft] {
		turns--
	}
	if turns != 0 {
		g.events.scheduleRotate(turns, now)
	}

	if !prev[ButtonDropSoft] && next[ButtonDropSoft] {
		g.events.schedule(EventSoftDrop, now)
	} else if prev[ButtonDropSoft] && !next[ButtonDropSoft] {
		// Releasing soft drop resets the fall timer to normal gravity.
		g.events.schedule(EventFall, now+dropDelay(g.state.Level, 0))
	}
	if !prev[ButtonDropSonic] && next[ButtonDropSonic] {
		g.events.schedule(EventSonicDrop, now)
	}
	if !prev[ButtonDropHard] && next[ButtonDropHard] {
		g.events.schedule(EventHardDrop, now)
	}
}

// heldSoftDropFactor is the soft drop factor to apply to gravity right now,
// zero when the button is up.
func (g *Game) heldSoftDropFactor() float64 {
	if g.state.ButtonsPressed[ButtonDropSoft] {
		return g.config.SoftDropFactor
	}
	return 0
}

// handleEvent executes one due event at its scheduled time, mutating state
// and scheduling follow-up events.
func (g *Game) handleEvent(ev Event, now GameTime) {
	hadPiece := g.state.ActivePiece != nil
	var prev ActivePiece
	if hadPiece {
		prev = *g.state.ActivePiece
	}
	prevLocking := g.locking
	var next ActivePiece
	havePiece := false

	switch ev.Kind {
	case EventSpawn:
		if len(g.state.NextPieces) == 0 {
			g.state.NextPieces = append(g.state.NextPieces, g.config.Generator.Next(g.rng))
		}
		shape := g.state.NextPieces[0]
		g.state.NextPieces = g.state.NextPieces[1:]
		for len(g.state.NextPieces) < g.config.PreviewCount {
			g.state.NextPieces = append(g.state.NextPieces, g.config.Generator.Next(g.rng))
		}
		next = spawnPiece(shape)
		if !next.Fits(&g.state.Board) {
			g.state.End = &Ending{Reason: GameOverBlockOut}
			return
		}
		// Initial rotation: rotate buttons held at spawn apply right away.
		turns := 0
		if g.state.ButtonsPressed[ButtonRotateRight] {
			turns++
		}
		if g.state.ButtonsPressed[ButtonRotateAround] {
			turns += 2
		}
		if g.state.ButtonsPressed[ButtonRotateLeft] {
			turns--
		}
		if turns != 0 {
			g.events.scheduleRotate(turns, now)
		}
		g.events.schedule(EventFall, now)
		havePiece = true

	case EventRotate:
		if rotated, ok := g.config.RotationSystem.Rotate(prev, &g.state.Board, ev.Turns); ok {
			next = rotated
		} else {
			next = prev
		}
		havePiece = true

	case EventMoveSlow, EventMoveFast:
		dx := 0
		if g.state.ButtonsPressed[ButtonMoveLeft] {
			dx--
		}
		if g.state.ButtonsPressed[ButtonMoveRight] {
			dx++
		}
		if moved, ok := prev.FitsAt(&g.state.Board, dx, 0); ok {
			delay := g.config.AutoRepeatRate
			if ev.Kind == EventMoveSlow {
				delay = g.config.DelayedAutoShift
			}
			// Repeats must outpace the lock timer or a held direction
			// could never slide a grounded piece before it locks.
			if limit := lockDelay(g.state.Level) - time.Millisecond; delay > limit {
				delay = limit
			}
			g.events.schedule(EventMoveFast, now+delay)
			next = moved
		} else {
			next = prev
		}
		havePiece = true

	case EventFall:
		if dropped, ok := prev.FitsAt(&g.state.Board, 0, -1); ok {
			g.events.schedule(EventFall, now+dropDelay(g.state.Level, g.heldSoftDropFactor()))
			next = dropped
		} else {
			next = prev
		}
		havePiece = true

	case EventSoftDrop:
		if dropped, ok := prev.FitsAt(&g.state.Board, 0, -1); ok {
			g.events.schedule(EventFall, now+dropDelay(g.state.Level, g.heldSoftDropFactor()))
			next = dropped
		} else {
			// Grounded soft drop locks immediately unless disabled.
			if !g.config.NoSoftDropLock {
				g.events.schedule(EventLock, now)
			}
			next = prev
		}
		havePiece = true

	case EventSonicDrop:
		next = prev.WellPiece(&g.state.Board)
		havePiece = true

	case EventHardDrop:
		next = prev.WellPiece(&g.state.Board)
		g.emit(now, Feedback{Kind: FeedbackHardDrop, Piece: prev, DroppedPiece: next})
		g.events.schedule(EventLockTimer, now+g.config.HardDropDelay)
		havePiece = true

	case EventLockTimer:
		g.events.schedule(EventLock, now)
		if hadPiece {
			next = prev
			havePiece = true
		}

	case EventLock:
		g.lockPiece(prev, now)
		return

	case EventLineClear:
		for y := Height - 1; y >= 0; y-- {
			if g.state.Board[y].Full() {
				g.state.Board.removeRow(y)
				g.state.LinesCleared++
				if g.mode.IncrementLevel && g.state.LinesCleared%10 == 0 {
					g.state.Level++
				}
			}
		}
		g.events.schedule(EventSpawn, now+g.config.AppearanceDelay)
	}

	if !havePiece {
		g.state.ActivePiece = nil
		return
	}
	// The piece changed: make sure held inputs and gravity keep acting on
	// its new configuration.
	if !hadPiece || prev != next {
		if !g.events.pending(EventMoveSlow) && !g.events.pending(EventMoveFast) &&
			g.state.ButtonsPressed[ButtonMoveLeft] != g.state.ButtonsPressed[ButtonMoveRight] {
			g.events.schedule(EventMoveFast, now)
		}
		if !g.events.pending(EventFall) {
			g.events.schedule(EventFall, now+dropDelay(g.state.Level, g.heldSoftDropFactor()))
		}
	}
	g.state.ActivePiece = &next
	g.locking = g.calcLockingData(ev, now, hadPiece, prev, prevLocking, next, next.touchesGround(&g.state.Board))
}

// lockPiece commits the active piece onto the board, scores any resulting
// line clears and schedules what comes next. All other pending events are
// void once a piece locks.
func (g *Game) lockPiece(piece ActivePiece, now GameTime) {
	g.emit(now, Feedback{Kind: FeedbackPieceLocked, Piece: piece})
	// Locking fully above the skyline ends the game.
	lockOut := true
	for _, c := range piece.Tiles() {
		if c.Y < Skyline {
			lockOut = false
			break
		}
	}
	if lockOut {
		g.state.End = &Ending{Reason: GameOverLockOut}
		return
	}
	g.state.PiecesPlayed[piece.Shape]++
	// A spin is a piece locked where it could not have moved up.
	_, roomAbove := piece.FitsAt(&g.state.Board, 0, 1)
	spin := !roomAbove
	for _, c := range piece.Tiles() {
		g.state.Board[c.Y][c.X] = piece.Shape.TileID()
	}
	rows := g.state.Board.fullRows()
	if n := len(rows); n > 0 {
		perfect := g.state.Board.clearedEmpty()
		g.state.Combo++
		if n >= 4 || spin || perfect {
			g.state.BackToBack++
		} else {
			g.state.BackToBack = 0
		}
		bonus := ScoreBonus(n, spin, perfect, g.state.Combo, g.state.BackToBack)
		g.state.Score += bonus
		g.emit(now, Feedback{Kind: FeedbackAccolade, Accolade: &Accolade{
			ScoreBonus:   bonus,
			Shape:        piece.Shape,
			Spin:         spin,
			LineClears:   n,
			PerfectClear: perfect,
			Combo:        g.state.Combo,
			BackToBack:   g.state.BackToBack,
		}})
		g.emit(now, Feedback{Kind: FeedbackLineClears, Rows: rows, ClearDelay: g.config.LineClearDelay})
	} else {
		g.state.Combo = 0
	}
	for ev := range g.events {
		delete(g.events, ev)
	}
	if len(rows) > 0 {
		g.events.schedule(EventLineClear, now+g.config.LineClearDelay)
	} else {
		g.events.schedule(EventSpawn, now+g.config.AppearanceDelay)
	}
	g.state.ActivePiece = nil
}

// calcLockingData rebuilds the ground-contact bookkeeping of the active
// piece after an event, arming or disarming the lock timer as needed.
func (g *Game) calcLockingData(ev Event, now GameTime, hadPiece bool, prev ActivePiece, prevLD lockingData, next ActivePiece, onGround bool) lockingData {
	switch {
	// Newly spawned piece hanging in the air.
	case !hadPiece && !onGround:
		return lockingData{
			lastLiftoff:    now,
			hasLiftoff:     true,
			groundTimeLeft: g.config.GroundTimeMax,
			lowestY:        next.Pos.Y,
		}

	// Piece lifted off the ground; the pending lock attempt is off.
	case hadPiece && !onGround && prevLD.touchingGround:
		g.events.cancel(EventLockTimer)
		ld := prevLD
		ld.touchingGround = false
		ld.lastLiftoff = now
		ld.hasLiftoff = true
		return ld

	// Piece is on the ground now.
	case onGround:
		var ld lockingData
		if hadPiece && next.Pos.Y >= prevLD.lowestY {
			if prevLD.touchingGround {
				ld = prevLD
			} else if prevLD.hasTouchdown {
				// Re-landed after a liftoff. A brief hop (within two
				// gravity steps) continues the old touchdown so wiggling
				// on the ground cannot refresh the budget; a longer
				// flight charges the ground time spent so far and starts
				// a fresh touchdown.
				if satSub(now, prevLD.lastLiftoff) <= 2*dropDelay(g.state.Level, 0) {
					ld = lockingData{
						touchingGround: true,
						lastTouchdown:  prevLD.lastTouchdown,
						hasTouchdown:   true,
						groundTimeLeft: prevLD.groundTimeLeft,
						lowestY:        prevLD.lowestY,
					}
				} else {
					elapsed := satSub(prevLD.lastLiftoff, prevLD.lastTouchdown)
					ld = lockingData{
						touchingGround: true,
						lastTouchdown:  now,
						hasTouchdown:   true,
						groundTimeLeft: satSub(prevLD.groundTimeLeft, elapsed),
						lowestY:        prevLD.lowestY,
					}
				}
			} else {
				ld = prevLD
				ld.touchingGround = true
				ld.lastTouchdown = now
				ld.hasTouchdown = true
			}
		} else {
			// First landing, or a new lowest row: the budget resets.
			ld = lockingData{
				touchingGround: true,
				lastTouchdown:  now,
				hasTouchdown:   true,
				groundTimeLeft: g.config.GroundTimeMax,
				lowestY:        next.Pos.Y,
			}
		}
		// Arm the lock timer if absent, or refresh it when the player
		// repositioned the piece. The timer never outlives the remaining
		// ground time budget.
		repositioned := hadPiece && prev != next
		moveRotate := ev.Kind == EventRotate || ev.Kind == EventMoveSlow || ev.Kind == EventMoveFast
		if !g.events.pending(EventLockTimer) || (repositioned && moveRotate) {
			remaining := satSub(ld.groundTimeLeft, satSub(now, ld.lastTouchdown))
			timer := lockDelay(g.state.Level)
			if remaining < timer {
				timer = remaining
			}
			g.events.schedule(EventLockTimer, now+timer)
		}
		return ld

	// Afloat before and after; nothing changes.
	default:
		return prevLD
	}
}
