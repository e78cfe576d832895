package engine

// ScoreBonus computes the points awarded for a lock that cleared lines.
// Base is 10 per squared line count; spins quadruple it and perfect clears
// multiply by 16; the running combo multiplies linearly while back-to-back
// multiplies by its square once a streak is going.
func ScoreBonus(lines int, spin, perfect bool, combo, backToBack int) int {
	if lines <= 0 {
		return 0
	}
	bonus := 10 * lines * lines
	if spin {
		bonus *= 4
	}
	if perfect {
		bonus *= 16
	}
	bonus *= combo
	if backToBack > 1 {
		bonus *= backToBack * backToBack
	}
	return bonus
}
