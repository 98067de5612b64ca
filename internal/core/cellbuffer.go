package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single character cell with its palette colour.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the content of a cleared cell.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// CellBuffer is a 2D character buffer used by the terminal frontend.
// It decouples rendering from the terminal: screens draw through a CellCanvas
// while the platform handles actual display.
type CellBuffer struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCellBuffer creates a new buffer with the given dimensions.
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{
		width:  width,
		height: height,
	}
	b.allocate()
	b.Fill(blank)
	return b
}

// allocate creates the underlying cell storage.
func (b *CellBuffer) allocate() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
}

// Width returns the buffer width in cells.
func (b *CellBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *CellBuffer) Height() int {
	return b.height
}

// Resize changes the buffer dimensions, preserving content where possible.
func (b *CellBuffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	oldCells := b.cells
	oldW, oldH := b.width, b.height

	b.width = width
	b.height = height
	b.allocate()
	b.Fill(blank)

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(b.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Fill sets every cell to c.
func (b *CellBuffer) Fill(c Cell) {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = c
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (b *CellBuffer) GetCell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blank
	}
	return b.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond the buffer are clipped.
func (b *CellBuffer) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		b.Set(x+i, y, Cell{Rune: r, Color: c})
		i++
	}
}

// String converts the buffer to plain text, one row per line.
func (b *CellBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (b *CellBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return strings.Repeat(" ", b.width)
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Fill runes used by CellCanvas.
const (
	BackgroundRune = ' '
	SolidRune      = '█'
)

// CellCanvas adapts a CellBuffer to the Canvas interface. Each cell covers
// CellW x CellH pixels of the logical viewport.
type CellCanvas struct {
	Buf   *CellBuffer
	CellW float64
	CellH float64
}

// NewCellCanvas wraps buf with the given cell size in pixels.
func NewCellCanvas(buf *CellBuffer, cellW, cellH float64) *CellCanvas {
	return &CellCanvas{Buf: buf, CellW: cellW, CellH: cellH}
}

// Frame returns the pixel viewport covered by the buffer.
func (c *CellCanvas) Frame() Frame {
	return Frame{
		Width:  float64(c.Buf.Width()) * c.CellW,
		Height: float64(c.Buf.Height()) * c.CellH,
	}
}

// Clear fills the buffer with the background colour.
func (c *CellCanvas) Clear(col Color) {
	c.Buf.Fill(Cell{Rune: BackgroundRune, Color: col})
}

// FillPolygon sets every cell whose centre lies inside pts.
func (c *CellCanvas) FillPolygon(pts []Vec2, col Color) {
	if len(pts) < 3 {
		return
	}
	for y := 0; y < c.Buf.Height(); y++ {
		for x := 0; x < c.Buf.Width(); x++ {
			center := Vec2{
				X: (float64(x) + 0.5) * c.CellW,
				Y: (float64(y) + 0.5) * c.CellH,
			}
			if PointInPolygon(center, pts) {
				c.Buf.Set(x, y, Cell{Rune: SolidRune, Color: col})
			}
		}
	}
}

// MeasureText reports one cell per rune.
func (c *CellCanvas) MeasureText(text string, _ TextStyle) Vec2 {
	return Vec2{X: float64(utf8.RuneCountInString(text)) * c.CellW, Y: c.CellH}
}

// DrawText places text in the cell containing pos.
func (c *CellCanvas) DrawText(pos Vec2, text string, style TextStyle) {
	c.Buf.DrawText(int(pos.X/c.CellW), int(pos.Y/c.CellH), text, style.Color)
}
