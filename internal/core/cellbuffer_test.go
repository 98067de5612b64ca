package core

import (
	"strings"
	"testing"
)

func TestNewCellBuffer(t *testing.T) {
	b := NewCellBuffer(80, 24)

	if b.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", b.Width())
	}
	if b.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", b.Height())
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New buffer should be filled with spaces, got %q at (%d, %d)", b.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestCellBufferSetGet(t *testing.T) {
	b := NewCellBuffer(10, 10)

	b.Set(5, 5, Cell{Rune: 'X', Color: ColorRed})
	if got := b.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", got)
	}

	// Out of bounds should be silent
	b.Set(-1, 0, Cell{Rune: 'A'})
	b.Set(100, 0, Cell{Rune: 'A'})

	if b.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestCellBufferDrawText(t *testing.T) {
	b := NewCellBuffer(20, 5)
	b.DrawText(2, 1, "Hello", ColorWhite)

	if row := b.Row(1); !strings.HasPrefix(row, "  Hello") {
		t.Errorf("Row(1) = %q, expected text at column 2", row)
	}

	// Text should be clipped at boundaries
	b.DrawText(18, 0, "Hello", ColorWhite)
	if b.GetCell(18, 0).Rune != 'H' || b.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestCellBufferResize(t *testing.T) {
	b := NewCellBuffer(10, 10)
	b.DrawText(0, 0, "Hello", ColorDefault)

	b.Resize(8, 4)
	if b.Width() != 8 || b.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", b.Width(), b.Height())
	}
	if !strings.HasPrefix(b.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", b.Row(0))
	}

	b.Resize(15, 8)
	if !strings.HasPrefix(b.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", b.Row(0))
	}
}

func TestCellCanvasFillPolygon(t *testing.T) {
	b := NewCellBuffer(10, 10)
	c := NewCellCanvas(b, 10, 10)

	c.Clear(ColorGreen)
	if got := b.GetCell(0, 0); got.Color != ColorGreen || got.Rune != BackgroundRune {
		t.Errorf("Clear() left %+v at origin", got)
	}

	// A 30x30 pixel square starting at (20, 20) covers cells 2..4.
	c.FillPolygon([]Vec2{V(20, 20), V(50, 20), V(50, 50), V(20, 50)}, ColorRed)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x <= 4 && y >= 2 && y <= 4
			got := b.GetCell(x, y)
			if inside && (got.Rune != SolidRune || got.Color != ColorRed) {
				t.Errorf("cell (%d, %d) = %+v, expected filled", x, y, got)
			}
			if !inside && got.Rune == SolidRune {
				t.Errorf("cell (%d, %d) should not be filled", x, y)
			}
		}
	}

	// Degenerate polygons draw nothing.
	c.Clear(ColorGreen)
	c.FillPolygon([]Vec2{V(0, 0), V(100, 100)}, ColorRed)
	if strings.ContainsRune(b.String(), SolidRune) {
		t.Error("FillPolygon with two points should draw nothing")
	}
}

func TestCellCanvasFrame(t *testing.T) {
	c := NewCellCanvas(NewCellBuffer(80, 30), 10, 20)
	f := c.Frame()
	if f.Width != 800 || f.Height != 600 {
		t.Errorf("Frame() = %vx%v, expected 800x600", f.Width, f.Height)
	}
	if got := f.Center(); got != V(400, 300) {
		t.Errorf("Center() = %v, expected (400, 300)", got)
	}
}
