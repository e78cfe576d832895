package engine

// ActivePiece is the tetromino currently in play. It exists from spawn to
// lock and is owned exclusively by the Game; locking converts it into board
// tiles. Locking bookkeeping lives separately in lockingData.
type ActivePiece struct {
	Shape       Tetromino
	Orientation Orientation
	Pos         Coord
}

// Tiles returns the four board coordinates the piece covers.
func (p ActivePiece) Tiles() [4]Coord {
	minos := p.Shape.Minos(p.Orientation)
	var tiles [4]Coord
	for i, m := range minos {
		tiles[i] = Coord{p.Pos.X + m.X, p.Pos.Y + m.Y}
	}
	return tiles
}

// Fits reports whether all of the piece's cells are in bounds and vacant.
func (p ActivePiece) Fits(b *Board) bool {
	for _, c := range p.Tiles() {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height || b[c.Y][c.X] != 0 {
			return false
		}
	}
	return true
}

// FitsAt returns the piece translated by (dx, dy) if that placement is
// valid on the board.
func (p ActivePiece) FitsAt(b *Board, dx, dy int) (ActivePiece, bool) {
	moved := p
	moved.Pos.X += dx
	moved.Pos.Y += dy
	return moved, moved.Fits(b)
}

// fitsAtRotated returns the piece translated by the offset and rotated by
// some right turns, if that placement is valid.
func (p ActivePiece) fitsAtRotated(b *Board, off Offset, rightTurns int) (ActivePiece, bool) {
	next := p
	next.Orientation = next.Orientation.RotateRight(rightTurns)
	next.Pos.X += off.X
	next.Pos.Y += off.Y
	return next, next.Fits(b)
}

// firstFit rotates the piece by rightTurns and returns it at the first
// candidate kick offset that fits, in order. ok is false if no kick fits.
func (p ActivePiece) firstFit(b *Board, kicks []Offset, rightTurns int) (ActivePiece, bool) {
	next := p
	next.Orientation = next.Orientation.RotateRight(rightTurns)
	for _, off := range kicks {
		next.Pos = Coord{p.Pos.X + off.X, p.Pos.Y + off.Y}
		if next.Fits(b) {
			return next, true
		}
	}
	return p, false
}

// WellPiece returns the piece dropped straight down as far as it fits.
func (p ActivePiece) WellPiece(b *Board) ActivePiece {
	well := p
	for {
		below, ok := well.FitsAt(b, 0, -1)
		if !ok {
			return well
		}
		well = below
	}
}

// touchesGround reports whether the piece cannot move down one row.
func (p ActivePiece) touchesGround(b *Board) bool {
	_, ok := p.FitsAt(b, 0, -1)
	return !ok
}
