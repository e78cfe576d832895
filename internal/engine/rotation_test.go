package engine

import (
	"sort"
	"testing"
)

func sortedTiles(p ActivePiece) [4]Coord {
	tiles := p.Tiles()
	sort.Slice(tiles[:], func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

func TestRotateZeroTurnsIsIdentity(t *testing.T) {
	var board Board
	piece := ActivePiece{Shape: TetT, Orientation: North, Pos: Coord{4, 10}}
	for _, rs := range []RotationSystem{RotationOcular, RotationClassic, RotationSuper} {
		rotated, ok := rs.Rotate(piece, &board, 0)
		if !ok || rotated != piece {
			t.Errorf("%v: zero turns changed the piece: %+v", rs, rotated)
		}
		rotated, ok = rs.Rotate(piece, &board, 4)
		if !ok || rotated != piece {
			t.Errorf("%v: four right turns changed the piece: %+v", rs, rotated)
		}
	}
}

func TestRotateOnEmptyBoard(t *testing.T) {
	var board Board
	for _, rs := range []RotationSystem{RotationOcular, RotationClassic, RotationSuper} {
		for shape := Tetromino(0); shape < NumTetrominos; shape++ {
			for _, turns := range []int{1, -1, 2} {
				piece := ActivePiece{Shape: shape, Orientation: North, Pos: Coord{4, 10}}
				rotated, ok := rs.Rotate(piece, &board, turns)
				if !ok {
					t.Errorf("%v: %v by %d turns failed on an open board", rs, shape, turns)
					continue
				}
				want := piece.Orientation.RotateRight(turns)
				if rotated.Orientation != want {
					t.Errorf("%v: %v by %d turns landed in %v, want %v", rs, shape, turns, rotated.Orientation, want)
				}
				if !rotated.Fits(&board) {
					t.Errorf("%v: %v by %d turns produced an invalid placement %+v", rs, shape, turns, rotated)
				}
			}
		}
	}
}

func TestOcularMirrorSymmetry(t *testing.T) {
	// An S piece rotated right and its mirror image (a Z piece rotated
	// left) must land in mirrored placements; that is the design goal of
	// the canonical-case kick tables.
	var board Board
	s := ActivePiece{Shape: TetS, Orientation: North, Pos: Coord{4, 10}}
	// The mirror of the S at (4,10) across the vertical board axis.
	z := ActivePiece{Shape: TetZ, Orientation: North, Pos: Coord{3, 10}}

	sRot, okS := RotationOcular.Rotate(s, &board, 1)
	zRot, okZ := RotationOcular.Rotate(z, &board, -1)
	if !okS || !okZ {
		t.Fatalf("Rotation failed on an open board: S ok=%v, Z ok=%v", okS, okZ)
	}

	sTiles := sortedTiles(sRot)
	var mirrored [4]Coord
	for i, c := range sortedTiles(zRot) {
		mirrored[i] = Coord{Width - 1 - c.X, c.Y}
	}
	sort.Slice(mirrored[:], func(i, j int) bool {
		if mirrored[i].Y != mirrored[j].Y {
			return mirrored[i].Y < mirrored[j].Y
		}
		return mirrored[i].X < mirrored[j].X
	})
	if sTiles != mirrored {
		t.Errorf("Mirror symmetry broken: S tiles %v, mirrored Z tiles %v", sTiles, mirrored)
	}
}

func TestRotateBlockedEverywhere(t *testing.T) {
	// Box a T piece in completely; no kick can possibly fit and the piece
	// must be reported unrotatable, unchanged.
	piece := ActivePiece{Shape: TetT, Orientation: North, Pos: Coord{4, 10}}
	var board Board
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			board[y][x] = TileGarbage
		}
	}
	for _, c := range piece.Tiles() {
		board[c.Y][c.X] = 0
	}

	for _, rs := range []RotationSystem{RotationOcular, RotationClassic, RotationSuper} {
		for _, turns := range []int{1, -1, 2} {
			if _, ok := rs.Rotate(piece, &board, turns); ok {
				t.Errorf("%v: rotation by %d succeeded inside a sealed pocket", rs, turns)
			}
		}
	}
}
