package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/okranz/collider/physics"
	"github.com/okranz/collider/prefabs"
)

// matrixLayers is the panel's row/column order: the eight named layer bits.
var matrixLayers = []physics.Layer{
	physics.LayerDefault,
	physics.LayerPlayer,
	physics.LayerEnemy,
	physics.LayerProjectile,
	physics.LayerTerrain,
	physics.LayerTrigger,
	physics.LayerPickup,
	physics.LayerPlatform,
}

// NewMatrixUI builds the layer collision matrix panel: an 8x8 grid of
// toggle buttons over SetLayerCollisionEnabled. The matrix is advisory
// state, so flipping cells changes what IsLayerCollisionEnabled reports
// without hiding any pairs from detection; the panel is how that contract
// gets demonstrated live. Toggling rebuilds the panel so every cell label
// reflects the symmetric update.
func NewMatrixUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 210})
	onImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x5c, B: 0x2a, A: 255})
	offImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x5c, G: 0x2a, B: 0x2a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("layer collision matrix (advisory)", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	// Header row:  one spacer cell, then one label per column.
	header := newMatrixRow()
	header.AddChild(newMatrixLabel(&face, white, ""))
	for _, l := range matrixLayers {
		header.AddChild(newMatrixCellLabel(&face, white, shortLayerName(l)))
	}
	panel.AddChild(header)

	cw := g.world.Collisions()
	for _, rowLayer := range matrixLayers {
		row := newMatrixRow()
		row.AddChild(newMatrixLabel(&face, white, prefabs.LayerName(rowLayer)))
		for _, colLayer := range matrixLayers {
			l1, l2 := rowLayer, colLayer
			enabled := cw.IsLayerCollisionEnabled(l1, l2)
			img, label := offImg, "-"
			if enabled {
				img, label = onImg, "+"
			}
			row.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
				widget.ButtonOpts.Text(label, &face, btnTextColor),
				widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 24)),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					w := g.world.Collisions()
					w.SetLayerCollisionEnabled(l1, l2, !w.IsLayerCollisionEnabled(l1, l2))
					g.matrixUI = NewMatrixUI(g)
				}),
			))
		}
		panel.AddChild(row)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func newMatrixRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
}

func newMatrixLabel(face *ebtext.Face, c color.NRGBA, text string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(84, 24)),
	)
}

func newMatrixCellLabel(face *ebtext.Face, c color.NRGBA, text string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 24)),
	)
}

func shortLayerName(l physics.Layer) string {
	name := prefabs.LayerName(l)
	if len(name) > 2 {
		return name[:2]
	}
	return name
}
