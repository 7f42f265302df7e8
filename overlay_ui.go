package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// overlayStatus holds the text widgets the status panel refreshes each
// frame while visible.
type overlayStatus struct {
	pose     *widget.Text
	recenter *widget.Text
}

func (s *overlayStatus) Refresh(g *Game) {
	if s == nil {
		return
	}
	s.pose.Label = g.hudPose()
	s.recenter.Label = fmt.Sprintf("recenters this session: %d", g.recenterCount())
}

// NewOverlayUI builds the Tab-toggled status panel: key bindings plus live
// pose and recenter counters. Colored nine-slices and the built-in basic
// font keep it free of theme assets.
func NewOverlayUI(g *Game) (*ebitenui.UI, *overlayStatus) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	centered := widget.TextOpts.WidgetOpts(
		widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
	)

	title := widget.NewText(
		widget.TextOpts.Text("roomscale", &face, white),
		centered,
	)
	bindings := widget.NewText(
		widget.TextOpts.Text("Z/X/C/V = a/b/x/y    arrows = look    P = copy pose", &face, white),
		centered,
	)
	status := &overlayStatus{
		pose: widget.NewText(
			widget.TextOpts.Text("", &face, white),
			centered,
		),
		recenter: widget.NewText(
			widget.TextOpts.Text("", &face, white),
			centered,
		),
	}

	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.showOverlay = false
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(bindings)
	panel.AddChild(status.pose)
	panel.AddChild(status.recenter)
	panel.AddChild(closeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, status
}
