package engine

// Board geometry. The playing grid extends well above the visible skyline so
// pieces kicked upward always stay in bounds; a piece locking with all its
// cells at or above the skyline row ends the game with a lock-out.
const (
	// Width is the playing grid width in cells.
	Width = 10
	// Height is the total grid height including hidden rows above the skyline.
	Height = 40
	// Skyline is the first hidden row index. Rows 0..Skyline-1 are the
	// conventionally visible playfield.
	Skyline = 20
)

// TileID identifies what occupies a board cell. 0 means empty; 1..7 are the
// seven tetromino tile types; higher values are free for mode-painted
// garbage tiles.
type TileID uint8

// TileGarbage is the tile id used by modes that paint preset rows onto the
// board (puzzle stages).
const TileGarbage TileID = 254

// Line is one horizontal row of the playing grid.
type Line [Width]TileID

// Full reports whether every cell of the line is occupied.
func (l Line) Full() bool {
	for _, t := range l {
		if t == 0 {
			return false
		}
	}
	return true
}

// Empty reports whether every cell of the line is vacant.
func (l Line) Empty() bool {
	return l == Line{}
}

// Board is the fixed playing grid, indexed [row][column] with row 0 at the
// bottom. Active piece cells are never committed into it except at lock.
type Board [Height]Line

// Coord addresses a board cell; X is the column, Y the row from the bottom.
type Coord struct {
	X, Y int
}

// IsEmpty reports whether the whole board is vacant.
func (b *Board) IsEmpty() bool {
	for y := range b {
		if !b[y].Empty() {
			return false
		}
	}
	return true
}

// fullRows returns the indices of all completely filled rows, highest first,
// matching the order line clears are reported in.
func (b *Board) fullRows() []int {
	var rows []int
	for y := Height - 1; y >= 0; y-- {
		if b[y].Full() {
			rows = append(rows, y)
		}
	}
	return rows
}

// clearedEmpty reports whether removing every full row would leave the
// board entirely vacant (a perfect clear).
func (b *Board) clearedEmpty() bool {
	for y := range b {
		if !b[y].Full() && !b[y].Empty() {
			return false
		}
	}
	return true
}

// removeRow deletes row y, shifting everything above it down one row and
// inserting an empty row at the top.
func (b *Board) removeRow(y int) {
	copy(b[y:], b[y+1:])
	b[Height-1] = Line{}
}
