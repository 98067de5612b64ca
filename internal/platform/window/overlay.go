package window

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cargobug/internal/screens/menu"
)

// menuOverlay is a clickable Start button shown over the main menu.
// It holds no screen reference between frames; the frontend passes the
// live menu on every update.
type menuOverlay struct {
	ui      *ebitenui.UI
	status  *widget.Text
	current *menu.Menu
}

func newMenuOverlay() *menuOverlay {
	o := &menuOverlay{}

	face := text.Face(text.NewGoXFace(basicfont.Face7x13))
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 220})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 230})

	start := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Start", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.MinSize(120, 28),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if o.current != nil {
				o.current.RequestStart()
			}
		}),
	)

	o.status = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(start)
	panel.AddChild(o.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	o.ui = &ebitenui.UI{Container: root}
	return o
}

// Update processes pointer input for m, the live menu.
func (o *menuOverlay) Update(m *menu.Menu) {
	o.current = m
	o.status.Label = fmt.Sprintf("events %d", m.Events())
	o.ui.Update()
}

// Draw renders the overlay.
func (o *menuOverlay) Draw(dst *ebiten.Image) {
	o.ui.Draw(dst)
}
