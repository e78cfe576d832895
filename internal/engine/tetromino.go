// Package engine implements a deterministic tetromino game simulation.
// The engine is a pure library: it performs no I/O, holds no clock, and is
// advanced exclusively through Game.Update with caller-supplied timestamps.
// The platform layer owns timing, input capture, and rendering.
package engine

// Tetromino is one of the seven playable piece shapes.
type Tetromino uint8

const (
	TetO Tetromino = iota
	TetI
	TetS
	TetZ
	TetT
	TetL
	TetJ

	// NumTetrominos is the number of distinct piece shapes.
	NumTetrominos = 7
)

// String returns the conventional one-letter name of the shape.
func (t Tetromino) String() string {
	switch t {
	case TetO:
		return "O"
	case TetI:
		return "I"
	case TetS:
		return "S"
	case TetZ:
		return "Z"
	case TetT:
		return "T"
	case TetL:
		return "L"
	case TetJ:
		return "J"
	default:
		return "?"
	}
}

// TileID returns the board tile identifier for the shape. Tile IDs start at
// 1 so that 0 can mean an empty cell.
func (t Tetromino) TileID() TileID {
	return TileID(t) + 1
}

// Orientation is one of the four ways an active piece can be turned.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// RotateRight returns the orientation after some number of right turns.
// Negative counts rotate left.
func (o Orientation) RotateRight(turns int) Orientation {
	return Orientation((int(o) + turns%4 + 4) % 4)
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Offset is a translation that can be applied to a board coordinate.
// X grows to the right, Y grows upward.
type Offset struct {
	X, Y int
}

// Minos returns the four cell offsets of the shape in the given orientation,
// relative to the piece position (bottom-left of the bounding region).
func (t Tetromino) Minos(o Orientation) [4]Offset {
	switch t {
	case TetO:
		return [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case TetI:
		if o == North || o == South {
			return [4]Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
		}
		return [4]Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	case TetS:
		if o == North || o == South {
			return [4]Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
		}
		return [4]Offset{{1, 0}, {0, 1}, {1, 1}, {0, 2}}
	case TetZ:
		if o == North || o == South {
			return [4]Offset{{1, 0}, {2, 0}, {0, 1}, {1, 1}}
		}
		return [4]Offset{{0, 0}, {0, 1}, {1, 1}, {1, 2}}
	case TetT:
		switch o {
		case North:
			return [4]Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
		case East:
			return [4]Offset{{0, 0}, {0, 1}, {1, 1}, {0, 2}}
		case South:
			return [4]Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}
		default: // West
			return [4]Offset{{1, 0}, {0, 1}, {1, 1}, {1, 2}}
		}
	case TetL:
		switch o {
		case North:
			return [4]Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
		case East:
			return [4]Offset{{0, 0}, {1, 0}, {0, 1}, {0, 2}}
		case South:
			return [4]Offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}}
		default: // West
			return [4]Offset{{1, 0}, {1, 1}, {0, 2}, {1, 2}}
		}
	default: // TetJ
		switch o {
		case North:
			return [4]Offset{{0, 0}, {1, 0}, {2, 0}, {0, 1}}
		case East:
			return [4]Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}}
		case South:
			return [4]Offset{{2, 0}, {0, 1}, {1, 1}, {2, 1}}
		default: // West
			return [4]Offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}}
		}
	}
}

// spawnPiece returns the initial placement of a freshly generated shape,
// resting on the skyline in the middle of the board.
func spawnPiece(shape Tetromino) ActivePiece {
	pos := Coord{3, Skyline}
	if shape == TetO {
		pos = Coord{4, Skyline}
	}
	return ActivePiece{Shape: shape, Orientation: North, Pos: pos}
}
