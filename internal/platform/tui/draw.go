package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetra/internal/engine"
)

// Playfield layout constants.
const (
	boardX      = 2
	boardY      = 1
	visibleRows = engine.Skyline + 1 // one hidden row shown so spawns are visible
	previewMax  = 5
)

// draw renders the full game view into the screen buffer.
func (m GameModel) draw() {
	m.screen.Clear()

	st := m.game.State()

	m.drawBoard(st)
	m.drawHUD(st)
	m.drawMessages()
	m.drawOverlay(st)

	help := "←/→ move  z/x/s rotate  ↓ soft  space hard  enter sonic  p pause  q quit"
	m.screen.DrawColoredText(boardX, boardY+visibleRows+3, help, ColorGray)
}

// cellAt maps a board coordinate to its left screen column. Board rows grow
// upward, screen rows grow downward.
func cellAt(x, y int) (sx, sy int) {
	return boardX + 1 + 2*x, boardY + 1 + (visibleRows - 1 - y)
}

// drawTile paints one board cell as a two-column block.
func (m GameModel) drawTile(x, y int, r rune, c Color) {
	if y < 0 || y >= visibleRows {
		return
	}
	sx, sy := cellAt(x, y)
	m.screen.SetCell(sx, sy, Cell{Rune: r, Color: c})
	m.screen.SetCell(sx+1, sy, Cell{Rune: r, Color: c})
}

// drawBoard renders the well, settled tiles, ghost, and active piece.
func (m GameModel) drawBoard(st *engine.GameState) {
	m.screen.DrawBox(boardX, boardY, engine.Width*2+2, visibleRows+2)

	for y := 0; y < visibleRows; y++ {
		for x := 0; x < engine.Width; x++ {
			if id := st.Board[y][x]; id != 0 {
				m.drawTile(x, y, '█', tileColor(id))
			}
		}
	}

	if st.ActivePiece == nil || st.End != nil {
		return
	}
	piece := *st.ActivePiece
	color := shapeColors[piece.Shape]

	ghost := piece.WellPiece(&st.Board)
	for _, c := range ghost.Tiles() {
		m.drawTile(c.X, c.Y, '░', color)
	}
	for _, c := range piece.Tiles() {
		m.drawTile(c.X, c.Y, '█', color)
	}
}

// drawHUD renders scores, counters, and the piece preview.
func (m GameModel) drawHUD(st *engine.GameState) {
	x := boardX + engine.Width*2 + 5
	y := boardY + 1

	m.screen.DrawText(x, y, m.info.Title)
	y += 2
	m.screen.DrawText(x, y, fmt.Sprintf("Score  %d", st.Score))
	y++
	m.screen.DrawText(x, y, fmt.Sprintf("Level  %d", st.Level))
	y++
	m.screen.DrawText(x, y, fmt.Sprintf("Lines  %d", st.LinesCleared))
	y++
	secs := int(m.played.Seconds())
	m.screen.DrawText(x, y, fmt.Sprintf("Time   %02d:%02d", secs/60, secs%60))
	y++
	if st.Combo > 1 {
		m.screen.DrawText(x, y, fmt.Sprintf("Combo  x%d", st.Combo))
		y++
	}
	if st.BackToBack > 1 {
		m.screen.DrawText(x, y, fmt.Sprintf("B2B    x%d", st.BackToBack))
		y++
	}

	if len(st.NextPieces) == 0 {
		return
	}
	y++
	m.screen.DrawText(x, y, "Next")
	y += 2
	count := min(len(st.NextPieces), previewMax)
	for _, shape := range st.NextPieces[:count] {
		m.drawPreview(x, y, shape)
		y += 3
	}
}

// drawPreview renders one queued piece in its spawn orientation.
func (m GameModel) drawPreview(x, y int, shape engine.Tetromino) {
	color := shapeColors[shape]
	for _, off := range shape.Minos(engine.North) {
		sx := x + 2*off.X
		sy := y + 1 - off.Y
		m.screen.SetCell(sx, sy, Cell{Rune: '█', Color: color})
		m.screen.SetCell(sx+1, sy, Cell{Rune: '█', Color: color})
	}
}

// drawMessages renders active feedback toasts under the HUD column.
func (m GameModel) drawMessages() {
	x := boardX + engine.Width*2 + 5
	y := boardY + visibleRows - len(m.messages)
	for _, t := range m.messages {
		m.screen.DrawText(x, y, t.text)
		y++
	}
}

// drawOverlay renders the pause and game-over banners over the well.
func (m GameModel) drawOverlay(st *engine.GameState) {
	midY := boardY + 1 + visibleRows/2
	centerBoard := func(dy int, text string, c Color) {
		sx := boardX + 1 + (engine.Width*2-len([]rune(text)))/2
		m.screen.DrawColoredText(sx, midY+dy, text, c)
	}

	if m.paused && st.End == nil {
		centerBoard(0, " PAUSED ", ColorBrightYellow)
		return
	}

	if st.End == nil {
		return
	}
	if st.End.Win {
		centerBoard(-1, " YOU WIN! ", ColorBrightGreen)
	} else {
		centerBoard(-1, " GAME OVER ", ColorBrightRed)
		centerBoard(0, " "+st.End.Reason.String()+" ", ColorGray)
	}
	centerBoard(2, " r restart  b menu ", ColorGray)
}
