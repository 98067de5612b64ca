package window

import (
	"bytes"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/cargobug/internal/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto the ebiten screen image for one frame.
type Canvas struct {
	dst *ebiten.Image
	log *log.Logger

	builtin  text.Face
	regular  *text.GoTextFaceSource
	sources  map[string]*text.GoTextFaceSource
	badFonts map[string]bool

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas prepares the built-in faces.
func NewCanvas(logger *log.Logger) (*Canvas, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Canvas{
		log:      logger,
		builtin:  text.NewGoXFace(basicfont.Face7x13),
		regular:  regular,
		sources:  make(map[string]*text.GoTextFaceSource),
		badFonts: make(map[string]bool),
	}, nil
}

// Target sets the image drawn to until the next call.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the target with col.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

// FillPolygon fills pts using a vector path.
func (c *Canvas) FillPolygon(pts []core.Vec2, col core.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	rgba := col.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(rgba.R) / 0xff
		c.vertices[i].ColorG = float32(rgba.G) / 0xff
		c.vertices[i].ColorB = float32(rgba.B) / 0xff
		c.vertices[i].ColorA = float32(rgba.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// DrawText draws text with its top-left corner at pos.
func (c *Canvas) DrawText(pos core.Vec2, s string, style core.TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(style.Color.RGBA())
	text.Draw(c.dst, s, c.face(style), op)
}

// MeasureText returns the advance and line height of s in the face
// DrawText would use.
func (c *Canvas) MeasureText(s string, style core.TextStyle) core.Vec2 {
	w, h := text.Measure(s, c.face(style), 0)
	return core.Vec2{X: w, Y: h}
}

// face picks the face for style. Without a size the bitmap face is used;
// a font that fails to parse falls back to Go Regular and is logged once.
func (c *Canvas) face(style core.TextStyle) text.Face {
	if style.Size <= 0 {
		return c.builtin
	}

	src := c.regular
	if style.Font != nil {
		if s := c.source(style.Font); s != nil {
			src = s
		}
	}
	return &text.GoTextFace{Source: src, Size: style.Size}
}

func (c *Canvas) source(f *core.Font) *text.GoTextFaceSource {
	if s, ok := c.sources[f.Name]; ok {
		return s
	}
	if c.badFonts[f.Name] {
		return nil
	}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data))
	if err != nil {
		c.badFonts[f.Name] = true
		c.log.Warn("font unusable, falling back to Go Regular", "font", f.Name, "error", err)
		return nil
	}
	c.sources[f.Name] = s
	return s
}
