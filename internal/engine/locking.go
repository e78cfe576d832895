package engine

// lockingData tracks the ground-contact history of the active piece between
// events. It is rebuilt on spawn and updated after every event that may
// have moved the piece.
type lockingData struct {
	// touchingGround is whether the piece was on the stack after the last
	// event.
	touchingGround bool
	// lastTouchdown is when the piece most recently landed.
	lastTouchdown    GameTime
	hasTouchdown     bool
	// lastLiftoff is when the piece most recently left the stack again.
	lastLiftoff GameTime
	hasLiftoff  bool
	// groundTimeLeft is how much of the ground time budget remains.
	groundTimeLeft GameTime
	// lowestY is the lowest row the piece has reached this life; dropping
	// below it refunds the ground time budget.
	lowestY int
}

// satSub is a saturating duration subtraction, clamping at zero.
func satSub(a, b GameTime) GameTime {
	if a <= b {
		return 0
	}
	return a - b
}
