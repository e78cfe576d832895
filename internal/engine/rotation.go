package engine

// RotationSystem selects how rotation attempts are resolved against the
// board. The set is closed; all systems implement the same contract and are
// behaviorally opaque to the rest of the engine.
type RotationSystem uint8

const (
	// RotationOcular is the house rotation system: hand-tuned kick lists
	// with symmetric piece/orientation pairs collapsed onto one canonical
	// table, so visually identical states always kick identically.
	RotationOcular RotationSystem = iota
	// RotationClassic is the right-handed, kick-poor system of the early
	// console era: a single fixed offset per rotation.
	RotationClassic
	// RotationSuper is the modern standard's kick table.
	RotationSuper
)

func (rs RotationSystem) String() string {
	switch rs {
	case RotationOcular:
		return "ocular"
	case RotationClassic:
		return "classic"
	case RotationSuper:
		return "super"
	default:
		return "unknown"
	}
}

// Rotate attempts to turn the piece by rightTurns (negative = left) on the
// board. It returns the first fitting candidate placement, or ok=false if
// every kick is obstructed, leaving the piece unchanged.
func (rs RotationSystem) Rotate(p ActivePiece, b *Board, rightTurns int) (ActivePiece, bool) {
	switch rs {
	case RotationClassic:
		return classicRotate(p, b, rightTurns)
	case RotationSuper:
		return superRotate(p, b, rightTurns)
	default:
		return ocularRotate(p, b, rightTurns)
	}
}

// halfTurnKicks is the shared 180° kick list used by the Ocular and Super
// systems: a nudge toward the side the piece's flat edge faces, then in
// place.
func halfTurnKicks(p ActivePiece) []Offset {
	switch p.Shape {
	case TetO, TetI, TetS, TetZ:
		return []Offset{{0, 0}}
	default: // T, L, J
		switch p.Orientation {
		case North:
			return []Offset{{0, -1}, {0, 0}}
		case East:
			return []Offset{{-1, 0}, {0, 0}}
		case South:
			return []Offset{{0, 1}, {0, 0}}
		default: // West
			return []Offset{{1, 0}, {0, 0}}
		}
	}
}

// dualOrientation mirrors an orientation across the vertical axis.
func dualOrientation(o Orientation) Orientation {
	switch o {
	case East:
		return West
	case West:
		return East
	default:
		return o
	}
}

// ocularRotate resolves rotation using the canonical-case kick tables.
// Mirror-symmetric cases (Z from S, J from L, right turns from left turns
// for I and T) are reduced onto the stored canonical list and the chosen
// kick offsets are mirrored back, which is what guarantees the symmetric
// behavior of visually identical states.
func ocularRotate(p ActivePiece, b *Board, rightTurns int) (ActivePiece, bool) {
	var left bool
	switch ((rightTurns % 4) + 4) % 4 {
	case 0:
		return p, true
	case 1:
		left = false
	case 2:
		return p.firstFit(b, halfTurnKicks(p), 2)
	case 3:
		left = true
	}

	mirror, haveMirror := 0, false
	shape, orientation := p.Shape, p.Orientation
	var kicks []Offset

	for kicks == nil {
		switch shape {
		case TetO:
			kicks = []Offset{{0, 0}}
		case TetI:
			if !left {
				if orientation == North || orientation == South {
					mirror = 3
				} else {
					mirror = -3
				}
				haveMirror, left = true, true
				continue
			}
			if orientation == North || orientation == South {
				kicks = []Offset{{1, -1}, {1, -2}, {1, -3}, {0, -1}, {0, -2}, {2, -1}, {2, -2}, {1, 0}, {0, 0}}
			} else {
				kicks = []Offset{{-2, 1}, {-3, 1}, {-1, 1}, {0, 1}, {-2, 0}, {-3, 0}}
			}
		case TetS:
			if orientation == North || orientation == South {
				if left {
					kicks = []Offset{{0, 0}, {0, -1}, {1, 0}, {-1, -1}}
				} else {
					kicks = []Offset{{1, 0}, {1, -1}, {0, 0}, {0, -1}}
				}
			} else {
				if left {
					kicks = []Offset{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}}
				} else {
					kicks = []Offset{{0, 0}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}}
				}
			}
		case TetZ:
			if orientation == North || orientation == South {
				mirror = 1
			} else {
				mirror = -1
			}
			haveMirror = true
			shape, left = TetS, !left
		case TetT:
			if !left {
				if orientation == North || orientation == South {
					mirror = 1
				} else {
					mirror = -1
				}
				haveMirror = true
				orientation, left = dualOrientation(orientation), true
				continue
			}
			switch orientation {
			case North:
				kicks = []Offset{{0, -1}, {0, 0}, {-1, -1}, {1, -1}, {-1, -2}, {1, 0}}
			case East:
				kicks = []Offset{{-1, 1}, {-1, 0}, {0, 1}, {0, 0}, {-1, -1}}
			case South:
				kicks = []Offset{{1, 0}, {0, 0}, {1, -1}, {0, -1}, {1, -2}}
			default: // West
				kicks = []Offset{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 1}}
			}
		case TetL:
			switch orientation {
			case North:
				if left {
					kicks = []Offset{{0, -1}, {1, -1}, {0, 0}, {0, -2}, {1, 0}}
				} else {
					kicks = []Offset{{1, -1}, {1, 0}, {2, 0}, {0, 0}, {2, -1}}
				}
			case East:
				if left {
					kicks = []Offset{{-1, 1}, {-1, 0}, {0, 1}, {0, 0}, {-2, 0}}
				} else {
					kicks = []Offset{{-1, 0}, {0, 0}, {0, -1}, {0, 1}}
				}
			case South:
				if left {
					kicks = []Offset{{1, 0}, {0, 0}, {1, -1}, {0, -1}}
				} else {
					kicks = []Offset{{0, 0}, {0, -1}, {1, 0}, {1, -1}, {-1, -1}}
				}
			default: // West
				if left {
					kicks = []Offset{{0, 0}, {-1, 0}, {0, 1}, {1, 0}, {-1, 1}}
				} else {
					kicks = []Offset{{0, 1}, {0, 0}, {-1, 1}, {-1, 0}, {1, 1}}
				}
			}
		case TetJ:
			if orientation == North || orientation == South {
				mirror = 1
			} else {
				mirror = -1
			}
			haveMirror = true
			shape, orientation, left = TetL, dualOrientation(orientation), !left
		}
	}

	if haveMirror {
		mirrored := make([]Offset, len(kicks))
		for i, k := range kicks {
			mirrored[i] = Offset{mirror - k.X, k.Y}
		}
		kicks = mirrored
	}
	return p.firstFit(b, kicks, rightTurns)
}

func superRotate(p ActivePiece, b *Board, rightTurns int) (ActivePiece, bool) {
	var left bool
	switch ((rightTurns % 4) + 4) % 4 {
	case 0:
		return p, true
	case 1:
		left = false
	case 2:
		return p.firstFit(b, halfTurnKicks(p), 2)
	case 3:
		left = true
	}

	var kicks []Offset
	switch p.Shape {
	case TetO:
		kicks = []Offset{{0, 0}}
	case TetI:
		switch p.Orientation {
		case North:
			if left {
				kicks = []Offset{{1, -2}, {0, -2}, {3, -2}, {0, 0}, {3, -3}}
			} else {
				kicks = []Offset{{2, -2}, {0, -2}, {3, -2}, {0, -3}, {3, 0}}
			}
		case East:
			if left {
				kicks = []Offset{{-2, 2}, {0, 2}, {-3, 2}, {0, 3}, {-3, 0}}
			} else {
				kicks = []Offset{{2, -1}, {-3, 1}, {0, 1}, {-3, 3}, {0, 0}}
			}
		case South:
			if left {
				kicks = []Offset{{2, -1}, {3, -1}, {0, -1}, {3, -3}, {0, 0}}
			} else {
				kicks = []Offset{{1, -1}, {3, -1}, {0, -1}, {3, 0}, {0, -3}}
			}
		default: // West
			if left {
				kicks = []Offset{{-1, 1}, {-3, 1}, {0, 1}, {-3, 0}, {0, 3}}
			} else {
				kicks = []Offset{{-1, 2}, {0, 2}, {-3, 2}, {0, 0}, {-3, 3}}
			}
		}
	default: // S, Z, T, L, J share one table
		switch p.Orientation {
		case North:
			if left {
				kicks = []Offset{{0, -1}, {1, -1}, {1, 0}, {0, -3}, {1, -3}}
			} else {
				kicks = []Offset{{1, -1}, {0, -1}, {0, 0}, {1, -3}, {0, -3}}
			}
		case East:
			if left {
				kicks = []Offset{{-1, 1}, {0, 1}, {0, 0}, {-1, 3}, {0, 3}}
			} else {
				kicks = []Offset{{-1, 0}, {0, 0}, {0, -1}, {-1, 2}, {0, 2}}
			}
		case South:
			if left {
				kicks = []Offset{{1, 0}, {0, 0}, {-1, 1}, {1, -2}, {0, -2}}
			} else {
				kicks = []Offset{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}
			}
		default: // West
			if left {
				kicks = []Offset{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
			} else {
				kicks = []Offset{{0, 1}, {-1, 1}, {-1, 0}, {0, 3}, {-1, 3}}
			}
		}
	}
	return p.firstFit(b, kicks, rightTurns)
}

func classicRotate(p ActivePiece, b *Board, rightTurns int) (ActivePiece, bool) {
	var left bool
	switch ((rightTurns % 4) + 4) % 4 {
	case 0:
		return p, true
	case 1:
		left = false
	case 2:
		// Classic never defined 180° turns; try it in place.
		if next, ok := p.fitsAtRotated(b, Offset{0, 0}, 2); ok {
			return next, true
		}
		return p, false
	case 3:
		left = true
	}

	var kick Offset
	switch p.Shape {
	case TetO:
		kick = Offset{0, 0}
	case TetI:
		if p.Orientation == North || p.Orientation == South {
			kick = Offset{2, -1}
		} else {
			kick = Offset{-2, 1}
		}
	case TetS, TetZ:
		if p.Orientation == North || p.Orientation == South {
			kick = Offset{1, 0}
		} else {
			kick = Offset{-1, 0}
		}
	default: // T, L, J
		switch p.Orientation {
		case North:
			if left {
				kick = Offset{0, -1}
			} else {
				kick = Offset{1, -1}
			}
		case East:
			if left {
				kick = Offset{-1, 1}
			} else {
				kick = Offset{-1, 0}
			}
		case South:
			if left {
				kick = Offset{1, 0}
			} else {
				kick = Offset{0, 0}
			}
		default: // West
			if left {
				kick = Offset{0, 0}
			} else {
				kick = Offset{0, 1}
			}
		}
	}
	if next, ok := p.fitsAtRotated(b, kick, rightTurns); ok {
		return next, true
	}
	return p, false
}
