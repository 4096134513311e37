package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type menuButton struct {
	label   string
	clicked func()
}

// Menu is a centered overlay panel with a title, an optional detail line
// and a column of buttons.
type Menu struct {
	ui     *ebitenui.UI
	detail *widget.Text
}

// SetDetail replaces the line under the title.
func (m *Menu) SetDetail(s string) {
	if m.detail != nil {
		m.detail.Label = s
	}
}

func (m *Menu) Update() { m.ui.Update() }

func (m *Menu) Draw(screen *ebiten.Image) { m.ui.Draw(screen) }

// newMenu builds the overlay from colored nine-slices and the basic font,
// so no theme assets need to load.
func newMenu(screenW, screenH int, title string, buttons ...menuButton) *Menu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x22, B: 0x22, A: 0xff})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW/2, screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(centered),
	))
	detail := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)
	panel.AddChild(detail)

	for _, b := range buttons {
		clicked := b.clicked
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				clicked()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &Menu{ui: &ebitenui.UI{Container: root}, detail: detail}
}

// NewPauseUI shows Resume and Quit.
func NewPauseUI(g *Game) *Menu {
	return newMenu(g.width, g.height, "Paused",
		menuButton{"Resume", g.resume},
		menuButton{"Quit", g.requestQuit},
	)
}

// NewGameOverUI shows the final score with Restart and Quit.
func NewGameOverUI(g *Game) *Menu {
	return newMenu(g.width, g.height, "Game Over",
		menuButton{"Restart", g.restart},
		menuButton{"Quit", g.requestQuit},
	)
}
