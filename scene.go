package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okranz/collider/anim"
	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/component"
	"github.com/okranz/collider/prefabs"
)

var backgroundColor = color.RGBA{R: 24, G: 26, B: 32, A: 255}

// buildScene spawns every entity in the scene spec and returns the one
// tagged "probe" when present.
func buildScene(w *ecs.World, worldSpec prefabs.WorldSpec, scene prefabs.SceneSpec) (ecs.Entity, bool, error) {
	var probe ecs.Entity
	var haveProbe bool

	for _, spec := range scene.Entities {
		shape, err := spec.Resolve(worldSpec)
		if err != nil {
			return ecs.Entity{}, false, err
		}

		e := w.CreateEntity()

		tr := component.NewTransform(spec.X, spec.Y)
		if spec.ScaleX != 0 {
			tr.ScaleX = spec.ScaleX
		}
		if spec.ScaleY != 0 {
			tr.ScaleY = spec.ScaleY
		}
		w.Transforms().Set(e.ID, tr)
		w.Colliders().Set(e.ID, component.NewCollider(shape))

		if spec.Tag != "" {
			w.Tags().Set(e.ID, &component.Tag{Name: spec.Tag})
			if spec.Tag == "probe" && !haveProbe {
				probe = e
				haveProbe = true
			}
		}

		if spec.Sprite != nil {
			buildSprite(w, e, spec, shape.Width, shape.Height, shape.OffsetX, shape.OffsetY)
		}
	}

	return probe, haveProbe, nil
}

// buildSprite attaches a solid-color quad sized to the entity's collider,
// plus a color-cycling animator when the spec asks for one. The scene is
// asset free: every "texture" is generated.
func buildSprite(w *ecs.World, e ecs.Entity, spec prefabs.EntitySpec, width, height, offsetX, offsetY float64) {
	fw, fh := int(width), int(height)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}

	colors := []color.NRGBA{spec.Sprite.Color.NRGBA}
	var animSpec *prefabs.AnimationSpec
	if spec.Animation != nil && len(spec.Animation.Colors) > 0 {
		animSpec = spec.Animation
		colors = colors[:0]
		for _, c := range animSpec.Colors {
			colors = append(colors, c.NRGBA)
		}
	}

	sheet := makeSheet(colors, fw, fh)
	sprite := &component.Sprite{
		Image:   sheet,
		Source:  image.Rect(0, 0, fw, fh),
		OffsetX: offsetX,
		OffsetY: offsetY,
	}
	w.Sprites().Set(e.ID, sprite)

	if animSpec == nil {
		return
	}

	duration := animSpec.FrameDuration
	if duration <= 0 {
		duration = 0.1
	}
	a := anim.NewBuilder(spec.Name).
		Grid(fw, fh, len(colors)).
		Range(0, len(colors)-1, duration).
		Mode(parseMode(animSpec.Mode)).
		Build()

	ctrl := anim.NewController()
	ctrl.Add(a)
	ctrl.Play(spec.Name)
	w.Animators().Set(e.ID, component.NewAnimator(ctrl))
}

// makeSheet renders one frame per color into a single-row sheet.
func makeSheet(colors []color.NRGBA, fw, fh int) *ebiten.Image {
	sheet := ebiten.NewImage(fw*len(colors), fh)
	for i, c := range colors {
		cell := sheet.SubImage(image.Rect(i*fw, 0, (i+1)*fw, fh)).(*ebiten.Image)
		cell.Fill(c)
	}
	return sheet
}

func parseMode(s string) anim.Mode {
	switch s {
	case "once":
		return anim.Once
	case "pingpong":
		return anim.PingPong
	default:
		return anim.Loop
	}
}
