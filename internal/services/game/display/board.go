// Package display renders draw calls onto a fixed-size text board.
package display

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
)

const (
	emptyCell   = '.'
	unknownCell = '?'
)

// Board is an entity.Display backed by a rune grid. Draws outside the grid
// are ignored; later draws on the same tile win.
type Board struct {
	width  int
	height int
	cells  [][]rune
	frame  lipgloss.Style
}

// NewBoard creates an empty board. Non-positive sizes become 1.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  max(width, 1),
		height: max(height, 1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
	b.Reset()
	return b
}

// Reset clears every tile for the next frame.
func (b *Board) Reset() {
	b.cells = make([][]rune, b.height)
	for y := range b.cells {
		row := make([]rune, b.width)
		for x := range row {
			row[x] = emptyCell
		}
		b.cells[y] = row
	}
}

// DrawObject places the first rune of sprite on pos.
func (b *Board) DrawObject(sprite entity.Sprite, pos entity.Position) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= b.width || pos.Y >= b.height {
		return
	}
	r, _ := utf8.DecodeRuneInString(string(sprite))
	if r == utf8.RuneError {
		r = unknownCell
	}
	b.cells[pos.Y][pos.X] = r
}

// At returns the rune drawn on pos, or 0 outside the board.
func (b *Board) At(pos entity.Position) rune {
	if pos.X < 0 || pos.Y < 0 || pos.X >= b.width || pos.Y >= b.height {
		return 0
	}
	return b.cells[pos.Y][pos.X]
}

// Plain returns the grid rows joined by newlines.
func (b *Board) Plain() string {
	rows := make([]string, len(b.cells))
	for y, row := range b.cells {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

// Render returns the grid framed for a terminal.
func (b *Board) Render() string {
	return b.frame.Render(b.Plain())
}

var _ entity.Display = (*Board)(nil)
