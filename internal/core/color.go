package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a named palette entry. Screens and entities only ever refer to
// palette colours; each frontend maps them to its own colour model.
type Color uint8

// Palette colours.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// RGBA values follow the Tango palette.
var colorRGBA = map[Color]color.RGBA{
	ColorDefault: {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	ColorBlack:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	ColorRed:     {R: 0xcc, G: 0x00, B: 0x00, A: 0xff},
	ColorGreen:   {R: 0x73, G: 0xd2, B: 0x16, A: 0xff},
	ColorYellow:  {R: 0xed, G: 0xd4, B: 0x00, A: 0xff},
	ColorBlue:    {R: 0x34, G: 0x65, B: 0xa4, A: 0xff},
	ColorMagenta: {R: 0x75, G: 0x50, B: 0x7b, A: 0xff},
	ColorCyan:    {R: 0x06, G: 0x98, B: 0x9a, A: 0xff},
	ColorWhite:   {R: 0xee, G: 0xee, B: 0xec, A: 0xff},
	ColorOrange:  {R: 0xf5, G: 0x79, B: 0x00, A: 0xff},
	ColorGray:    {R: 0x88, G: 0x8a, B: 0x85, A: 0xff},
}

// String returns the palette name of the colour.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGBA returns the colour as an image/color value.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorDefault]
}

// ParseColor looks up a palette colour by name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler so colours read naturally in
// YAML configuration.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
