package termhost

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. The second cell of a double-width rune holds
// Rune 0.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a cell with a space and no style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: max(width, 0), height: max(height, 0)}
	b.cells = make([]Cell, b.width*b.height)
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds reports whether x, y lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, or an empty cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set sets the cell at x, y. Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.cells[y*b.width+x] = c
	}
}

// Clear fills the buffer with empty cells.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// SetRune writes r at x, y and returns the number of columns it took. A
// double-width rune that does not fit before the right edge is not written
// and takes 0 columns.
func (b *Buffer) SetRune(x, y int, r rune, style Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if x+w > b.width {
		return 0
	}
	b.Set(x, y, Cell{Rune: r, Style: style})
	if w == 2 {
		b.Set(x+1, y, Cell{Rune: 0, Style: style})
	}
	return w
}

// WriteString writes s from x, y, clipped at the right edge, and returns the
// number of columns written.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		w := b.SetRune(x+written, y, r, style)
		if w == 0 && runewidth.RuneWidth(r) != 0 {
			break
		}
		written += w
	}
	return written
}

// Line returns row y as plain text with trailing spaces trimmed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := range b.width {
		if r := b.cells[y*b.width+x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the contents as plain text, one line per row, with
// trailing spaces and trailing empty rows removed.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range b.height {
		lines[y] = b.Line(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Render returns the contents with styles applied, grouping runs of equally
// styled cells into one lipgloss render each.
func (b *Buffer) Render() string {
	var out strings.Builder
	for y := range b.height {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := b.cells[y*b.width : (y+1)*b.width]
		end := len(row)
		for end > 0 && row[end-1] == EmptyCell() {
			end--
		}

		var run strings.Builder
		style := Style{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style == (Style{}) {
				out.WriteString(run.String())
			} else {
				out.WriteString(style.Lipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row[:end] {
			if c.Rune == 0 {
				continue
			}
			if c.Style != style {
				flush()
				style = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return out.String()
}

// Resize changes the dimensions, keeping the content that still fits.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	next := NewBuffer(width, height)
	for y := range min(height, b.height) {
		copy(next.cells[y*width:y*width+min(width, b.width)], b.cells[y*b.width:])
	}
	*b = *next
}
