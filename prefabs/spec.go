package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okranz/collider/physics"
)

// WorldSpec configures a collision world: layer matrix rules plus a set of
// named collider shapes that scenes reference by name.
type WorldSpec struct {
	Rules     []RuleSpec              `yaml:"rules"`
	Colliders map[string]ColliderSpec `yaml:"colliders"`
}

// RuleSpec disables or re-enables one layer pair in the collision matrix.
// Both sides take layer expressions, so "a: player, b: enemy|projectile"
// updates two pairs at once.
type RuleSpec struct {
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	Enabled bool   `yaml:"enabled"`
}

// ColliderSpec is the yaml form of a physics.Collider.
type ColliderSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	Layer        string  `yaml:"layer"`
	CollidesWith string  `yaml:"collides_with"`
	Trigger      bool    `yaml:"trigger"`
}

// Collider converts the spec into a physics collider. An empty layer falls
// back to "default" and an empty collides_with to "all", matching
// physics.DefaultMask.
func (c ColliderSpec) Collider() (physics.Collider, error) {
	out := physics.NewCollider(c.Width, c.Height)
	out.OffsetX = c.OffsetX
	out.OffsetY = c.OffsetY
	out.Trigger = c.Trigger
	if c.Layer != "" {
		layer, err := ParseLayer(c.Layer)
		if err != nil {
			return physics.Collider{}, err
		}
		out.Mask.Layer = layer
	}
	if c.CollidesWith != "" {
		scan, err := ParseLayer(c.CollidesWith)
		if err != nil {
			return physics.Collider{}, err
		}
		out.Mask.CollidesWith = scan
	}
	return out, nil
}

// SceneSpec lists the entities a sandbox scene spawns.
type SceneSpec struct {
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec describes one scene entity. Collider names a shape from the
// world spec; Shape inlines one instead. Zero scale means unit scale.
type EntitySpec struct {
	Name      string         `yaml:"name"`
	Tag       string         `yaml:"tag"`
	X         float64        `yaml:"x"`
	Y         float64        `yaml:"y"`
	ScaleX    float64        `yaml:"scale_x"`
	ScaleY    float64        `yaml:"scale_y"`
	Collider  string         `yaml:"collider"`
	Shape     *ColliderSpec  `yaml:"shape"`
	Sprite    *SpriteSpec    `yaml:"sprite"`
	Animation *AnimationSpec `yaml:"animation"`
}

// Resolve returns the entity's collider shape, preferring an inline shape
// over a named reference.
func (e EntitySpec) Resolve(world WorldSpec) (physics.Collider, error) {
	if e.Shape != nil {
		return e.Shape.Collider()
	}
	if e.Collider == "" {
		return physics.DefaultCollider(), nil
	}
	spec, ok := world.Colliders[e.Collider]
	if !ok {
		return physics.Collider{}, fmt.Errorf("prefabs: entity %q references unknown collider %q", e.Name, e.Collider)
	}
	return spec.Collider()
}

// SpriteSpec paints the entity as a solid color quad sized to its collider.
type SpriteSpec struct {
	Color YAMLColor `yaml:"color"`
}

// AnimationSpec cycles the entity's sprite through a list of colors, one
// frame per color.
type AnimationSpec struct {
	Colors        []YAMLColor `yaml:"colors"`
	FrameDuration float64     `yaml:"frame_duration"`
	Mode          string      `yaml:"mode"`
}

// LoadSpec reads and decodes one yaml spec by name, disk copy first,
// embedded copy as fallback.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadWorldSpec loads the default world configuration.
func LoadWorldSpec() (WorldSpec, error) {
	return LoadSpec[WorldSpec]("world.yaml")
}

// LoadSceneSpec loads a scene by file name, e.g. "scene.yaml".
func LoadSceneSpec(name string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](name)
}

// Apply writes the spec's matrix rules into a collision world. Rules apply
// in order, so a later rule can re-enable a pair an earlier one disabled.
func Apply(w *physics.World, spec WorldSpec) error {
	if w == nil {
		return fmt.Errorf("prefabs: apply to nil world")
	}
	for i, rule := range spec.Rules {
		a, err := ParseLayer(rule.A)
		if err != nil {
			return fmt.Errorf("prefabs: rule %d: %w", i, err)
		}
		b, err := ParseLayer(rule.B)
		if err != nil {
			return fmt.Errorf("prefabs: rule %d: %w", i, err)
		}
		w.SetLayerCollisionEnabled(a, b, rule.Enabled)
	}
	return nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" scalars.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
