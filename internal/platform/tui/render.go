package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cargobug/internal/core"
)

// terminalColors maps core.Color to ANSI colour codes.
var terminalColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
}

// cellStyle returns the style for one cell. Blank cells paint their colour
// as background so cleared screens show a solid field; other cells paint
// it as foreground.
func cellStyle(c core.Cell) lipgloss.Style {
	col, ok := terminalColors[c.Color]
	if !ok {
		return lipgloss.NewStyle()
	}
	if c.Rune == core.BackgroundRune {
		return lipgloss.NewStyle().Background(col)
	}
	return lipgloss.NewStyle().Foreground(col)
}

// RenderBuffer converts a cell buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderBuffer(b *core.CellBuffer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := range b.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < b.Width() {
			first := b.GetCell(x, y)
			blank := first.Rune == core.BackgroundRune

			// Collect consecutive cells with the same colour and kind
			var run strings.Builder
			for x < b.Width() {
				cell := b.GetCell(x, y)
				if cell.Color != first.Color || (cell.Rune == core.BackgroundRune) != blank {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(first).Render(run.String()))
		}
	}
	return sb.String()
}
