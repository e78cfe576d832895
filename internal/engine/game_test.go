package engine

import (
	"reflect"
	"testing"
	"time"
)

func mustGame(t *testing.T, mode GameMode, config GameConfig) *Game {
	t.Helper()
	g, err := NewWithConfig(mode, config)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	return g
}

// press returns a snapshot with just the given buttons held.
func press(buttons ...Button) *ButtonsPressed {
	var bp ButtonsPressed
	for _, b := range buttons {
		bp[b] = true
	}
	return &bp
}

func release() *ButtonsPressed {
	return &ButtonsPressed{}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and the same scripted inputs must stay
	// byte-for-byte identical.
	cfg := DefaultConfig()
	cfg.Seed = 12345
	cfg.Generator = NewRecency()

	run := func() (*GameState, []FeedbackEvent) {
		cfg := cfg
		cfg.Generator = NewRecency()
		g := mustGame(t, ModeZen(), cfg)
		var all []FeedbackEvent
		script := []struct {
			at      time.Duration
			buttons *ButtonsPressed
		}{
			{10 * time.Millisecond, press(ButtonMoveLeft)},
			{300 * time.Millisecond, release()},
			{310 * time.Millisecond, press(ButtonRotateRight)},
			{320 * time.Millisecond, release()},
			{330 * time.Millisecond, press(ButtonDropHard)},
			{340 * time.Millisecond, release()},
			{700 * time.Millisecond, press(ButtonMoveRight, ButtonDropSoft)},
			{1500 * time.Millisecond, release()},
			{3 * time.Second, nil},
		}
		for _, step := range script {
			fb, err := g.Update(step.buttons, step.at)
			if err != nil {
				t.Fatalf("Update(%v) failed: %v", step.at, err)
			}
			all = append(all, fb...)
		}
		return g.State(), all
	}

	state1, fb1 := run()
	state2, fb2 := run()

	if !reflect.DeepEqual(state1, state2) {
		t.Errorf("State mismatch:\n%+v\nvs\n%+v", state1, state2)
	}
	if !reflect.DeepEqual(fb1, fb2) {
		t.Errorf("Feedback mismatch: %d events vs %d events", len(fb1), len(fb2))
	}
}

func TestUpdateRejectsPastTimestamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	g := mustGame(t, ModeZen(), cfg)

	if _, err := g.Update(nil, 100*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(nil, 50*time.Millisecond); err != ErrInvalidTimestamp {
		t.Errorf("Expected ErrInvalidTimestamp, got %v", err)
	}
	// The failed call must not have moved the clock backwards.
	if g.State().Time != 100*time.Millisecond {
		t.Errorf("Time moved to %v after rejected update", g.State().Time)
	}
}

func TestUpdateAfterEndIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	g := mustGame(t, ModeZen(), cfg)

	g.Forfeit()
	if !g.Ended() {
		t.Fatal("Forfeit did not end the game")
	}
	if g.State().End.Win || g.State().End.Reason != GameOverForfeit {
		t.Errorf("Expected forfeit loss, got %+v", g.State().End)
	}

	before := *g.State()
	fb, err := g.Update(press(ButtonDropHard), time.Second)
	if err != nil {
		t.Fatalf("Update on ended game errored: %v", err)
	}
	if len(fb) != 0 {
		t.Errorf("Update on ended game produced %d feedback events", len(fb))
	}
	if !reflect.DeepEqual(before, *g.State()) {
		t.Error("Update on ended game changed state")
	}
}

func TestBlockOutEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	g := mustGame(t, ModeZen(), cfg)

	// Occupy the spawn rows completely; the first piece cannot enter.
	for y := Skyline; y < Skyline+2; y++ {
		for x := 0; x < Width; x++ {
			g.state.Board[y][x] = TileGarbage
		}
	}
	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !g.Ended() {
		t.Fatal("Expected block out to end the game")
	}
	if end := g.State().End; end.Win || end.Reason != GameOverBlockOut {
		t.Errorf("Expected block out loss, got %+v", end)
	}
}

func TestLockOutEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	g := mustGame(t, ModeZen(), cfg)

	// Stack reaching the skyline, with column 0 left open so no row is
	// ever full. The first piece rests entirely above the skyline.
	for y := 0; y < Skyline; y++ {
		for x := 1; x < Width; x++ {
			g.state.Board[y][x] = TileGarbage
		}
	}
	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(press(ButtonDropHard), 2*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(nil, 10*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !g.Ended() {
		t.Fatal("Expected lock out to end the game")
	}
	if end := g.State().End; end.Win || end.Reason != GameOverLockOut {
		t.Errorf("Expected lock out loss, got %+v", end)
	}
}

func TestPerfectClearWinsOneLineMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	mode := GameMode{
		Name:       "one-line",
		StartLevel: 1,
		Limits:     Limits{Lines: &CountLimit{Win: true, At: 1}},
	}
	g := mustGame(t, mode, cfg)

	// One row missing exactly the four cells a flat I piece covers from
	// its spawn column.
	for x := 0; x < Width; x++ {
		if x < 3 || x > 6 {
			g.state.Board[0][x] = TileGarbage
		}
	}
	g.state.NextPieces = []Tetromino{TetI}

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p := g.State().ActivePiece; p == nil || p.Shape != TetI {
		t.Fatalf("Expected an I piece in play, got %+v", p)
	}
	fb, err := g.Update(press(ButtonDropHard), 2*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fb2, err := g.Update(nil, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fb = append(fb, fb2...)

	if g.State().LinesCleared != 1 {
		t.Errorf("Expected 1 line cleared, got %d", g.State().LinesCleared)
	}
	// Single line, no spin, perfect clear, first combo: 10 * 1 * 16.
	if g.State().Score != 160 {
		t.Errorf("Expected score 160, got %d", g.State().Score)
	}
	if end := g.State().End; end == nil || !end.Win {
		t.Errorf("Expected a win, got %+v", end)
	}

	var accolade *Accolade
	for _, ev := range fb {
		if ev.Feedback.Kind == FeedbackAccolade {
			accolade = ev.Feedback.Accolade
		}
	}
	if accolade == nil {
		t.Fatal("No accolade feedback emitted")
	}
	if !accolade.PerfectClear || accolade.Spin || accolade.LineClears != 1 {
		t.Errorf("Unexpected accolade %+v", accolade)
	}
}

func TestGroundedPieceLocksAfterLockDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	g := mustGame(t, ModeZen(), cfg)

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// Sonic drop grounds the piece without locking it.
	if _, err := g.Update(press(ButtonDropSonic), 2*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(release(), 3*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	played := func() int {
		total := 0
		for _, n := range g.State().PiecesPlayed {
			total += n
		}
		return total
	}
	if played() != 0 {
		t.Fatal("Piece locked before the lock delay elapsed")
	}
	// Level 1 lock delay is 500ms; well past it the piece must be down.
	if _, err := g.Update(nil, 600*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if played() != 1 {
		t.Errorf("Expected 1 piece played after lock delay, got %d", played())
	}
}

func TestSoftDropLockOnGround(t *testing.T) {
	run := func(noSoftDropLock bool) int {
		cfg := DefaultConfig()
		cfg.Seed = 3
		cfg.NoSoftDropLock = noSoftDropLock
		g := mustGame(t, ModeZen(), cfg)

		if _, err := g.Update(nil, time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if _, err := g.Update(press(ButtonDropSonic), 2*time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		// A soft drop on an already grounded piece.
		if _, err := g.Update(press(ButtonDropSoft), 5*time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if _, err := g.Update(nil, 6*time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		total := 0
		for _, n := range g.State().PiecesPlayed {
			total += n
		}
		return total
	}

	if got := run(false); got != 1 {
		t.Errorf("Expected grounded soft drop to lock immediately, pieces played = %d", got)
	}
	if got := run(true); got != 0 {
		t.Errorf("Expected NoSoftDropLock to suppress the lock, pieces played = %d", got)
	}
}

func TestNewWithConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator = nil
	if _, err := NewWithConfig(ModeZen(), cfg); err == nil {
		t.Error("Expected error for missing generator")
	}

	mode := ModeZen()
	mode.StartLevel = 0
	if _, err := NewWithConfig(mode, DefaultConfig()); err == nil {
		t.Error("Expected error for zero start level")
	}
}

func TestLevelLimitEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	g := mustGame(t, ModeMarathon(), cfg)

	g.state.Level = 20
	g.updateEnd()
	if end := g.State().End; end == nil || !end.Win {
		t.Errorf("Expected marathon win at level 20, got %+v", end)
	}
}

func TestTimeLimitEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	mode := GameMode{
		Name:       "short-trial",
		StartLevel: 1,
		Limits:     Limits{Time: &TimeLimit{Win: true, After: 3 * time.Second}},
	}
	g := mustGame(t, mode, cfg)

	if _, err := g.Update(nil, 3*time.Second); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if end := g.State().End; end == nil || !end.Win {
		t.Errorf("Expected time trial win at the limit, got %+v", end)
	}
}

func TestMoveResetCannotExtendPastGroundTimeCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	g := mustGame(t, ModeZen(), cfg)
	g.state.NextPieces = []Tetromino{TetO}

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// Touch down at t=2ms on the well floor.
	if _, err := g.Update(press(ButtonDropSonic), 2*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(release(), 3*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	played := func() int {
		total := 0
		for _, n := range g.State().PiecesPlayed {
			total += n
		}
		return total
	}

	// Wiggle the grounded piece every 400ms. Each move lands before the
	// 500ms lock delay elapses and restarts it.
	dirs := []Button{ButtonMoveLeft, ButtonMoveRight, ButtonMoveLeft, ButtonMoveRight, ButtonMoveLeft}
	for i, dir := range dirs {
		at := time.Duration(i+1) * 400 * time.Millisecond
		if _, err := g.Update(press(dir), at); err != nil {
			t.Fatalf("Update(%v) failed: %v", at, err)
		}
		if _, err := g.Update(release(), at+10*time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	// Four lock delays worth of wiggling later the piece is still in play.
	if _, err := g.Update(nil, 2100*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if played() != 0 {
		t.Fatal("Move resets did not extend the lock delay")
	}

	// But no amount of wiggling survives the accumulated ground time cap:
	// the piece locks at touchdown + GroundTimeMax, here 2252ms.
	fb, err := g.Update(nil, 2400*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if played() != 1 {
		t.Fatalf("Expected the piece to lock by the ground time cap, played %d", played())
	}
	lockedAt := GameTime(-1)
	for _, ev := range fb {
		if ev.Feedback.Kind == FeedbackPieceLocked {
			lockedAt = ev.Time
		}
	}
	want := 2*time.Millisecond + cfg.GroundTimeMax
	if lockedAt != want {
		t.Errorf("Expected lock at %v, got %v", want, lockedAt)
	}
}

func TestBriefLiftoffKeepsGroundTimeBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	g := mustGame(t, ModeZen(), cfg)
	// A one-cell pedestal under the O spawn column. Sliding two cells to
	// the side leaves the piece briefly airborne.
	g.state.Board[0][4] = TileGarbage
	g.state.NextPieces = []Tetromino{TetO}

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// Touch down at t=2ms on the pedestal, one row up.
	if _, err := g.Update(press(ButtonDropSonic), 2*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(release(), 3*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	tap := func(at time.Duration, dir Button) {
		t.Helper()
		if _, err := g.Update(press(dir), at); err != nil {
			t.Fatalf("Update(%v) failed: %v", at, err)
		}
		if _, err := g.Update(release(), at+10*time.Millisecond); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	// Grounded wiggles on the pedestal, resetting the lock delay.
	tap(400*time.Millisecond, ButtonMoveLeft)
	tap(800*time.Millisecond, ButtonMoveRight)
	tap(1200*time.Millisecond, ButtonMoveLeft)
	tap(1600*time.Millisecond, ButtonMoveRight)
	// Slide off the pedestal: airborne, lock timer cancelled.
	tap(1900*time.Millisecond, ButtonMoveRight)
	// Slide back 100ms later. The hop is short enough that the piece
	// resumes its original ground time budget instead of a fresh one.
	tap(2000*time.Millisecond, ButtonMoveLeft)

	played := func() int {
		total := 0
		for _, n := range g.State().PiecesPlayed {
			total += n
		}
		return total
	}
	if _, err := g.Update(nil, 2200*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if played() != 0 {
		t.Fatal("Piece locked before the resumed budget ran out")
	}
	// With the budget carried across the hop, the cap still lands at the
	// original touchdown + GroundTimeMax. A fresh budget would push the
	// lock out to 2500ms.
	fb, err := g.Update(nil, 2400*time.Millisecond)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if played() != 1 {
		t.Fatalf("Expected the piece locked by the carried-over cap, played %d", played())
	}
	lockedAt := GameTime(-1)
	for _, ev := range fb {
		if ev.Feedback.Kind == FeedbackPieceLocked {
			lockedAt = ev.Time
		}
	}
	want := 2*time.Millisecond + cfg.GroundTimeMax
	if lockedAt != want {
		t.Errorf("Expected lock at %v, got %v", want, lockedAt)
	}
}

func TestLinesLimitCountsAcrossClears(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	mode := GameMode{
		Name:       "two-lines",
		StartLevel: 1,
		Limits:     Limits{Lines: &CountLimit{Win: true, At: 2}},
	}
	g := mustGame(t, mode, cfg)

	// Two rows each missing the four cells a flat I piece covers from its
	// spawn column. The first drop clears the bottom row; the second row
	// shifts down and the next drop clears it too.
	for y := 0; y < 2; y++ {
		for x := 0; x < Width; x++ {
			if x < 3 || x > 6 {
				g.state.Board[y][x] = TileGarbage
			}
		}
	}
	g.state.NextPieces = []Tetromino{TetI, TetI}

	if _, err := g.Update(nil, time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(press(ButtonDropHard), 2*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(release(), 3*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// First clear done, next piece in play, limit not yet reached.
	if _, err := g.Update(nil, 400*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State().LinesCleared != 1 {
		t.Fatalf("Expected 1 line cleared after the first drop, got %d", g.State().LinesCleared)
	}
	if g.State().End != nil {
		t.Fatalf("Game ended one line short of the limit: %+v", g.State().End)
	}
	if p := g.State().ActivePiece; p == nil || p.Shape != TetI {
		t.Fatalf("Expected a second I piece in play, got %+v", p)
	}

	if _, err := g.Update(press(ButtonDropHard), 410*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(release(), 411*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := g.Update(nil, 900*time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.State().LinesCleared != 2 {
		t.Errorf("Expected 2 lines cleared, got %d", g.State().LinesCleared)
	}
	if end := g.State().End; end == nil || !end.Win {
		t.Errorf("Expected a win at the lines limit, got %+v", end)
	}
}
