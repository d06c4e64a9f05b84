package prefabs

import (
	"fmt"
	"strings"

	"github.com/okranz/collider/physics"
)

// layerNames maps spec names to layer bits. The physics package stays
// string-free; every name that appears in a yaml file resolves here.
var layerNames = map[string]physics.Layer{
	"default":    physics.LayerDefault,
	"player":     physics.LayerPlayer,
	"enemy":      physics.LayerEnemy,
	"projectile": physics.LayerProjectile,
	"terrain":    physics.LayerTerrain,
	"trigger":    physics.LayerTrigger,
	"pickup":     physics.LayerPickup,
	"platform":   physics.LayerPlatform,
	"none":       physics.LayerNone,
	"all":        physics.LayerAll,
}

// layerOrder keeps LayerName output stable for multi-bit values.
var layerOrder = []struct {
	name  string
	layer physics.Layer
}{
	{"default", physics.LayerDefault},
	{"player", physics.LayerPlayer},
	{"enemy", physics.LayerEnemy},
	{"projectile", physics.LayerProjectile},
	{"terrain", physics.LayerTerrain},
	{"trigger", physics.LayerTrigger},
	{"pickup", physics.LayerPickup},
	{"platform", physics.LayerPlatform},
}

// ParseLayer resolves a spec layer expression like "player" or
// "enemy|projectile|trigger" into a layer bitmask. Names are
// case-insensitive; empty terms are rejected.
func ParseLayer(s string) (physics.Layer, error) {
	if strings.TrimSpace(s) == "" {
		return physics.LayerNone, fmt.Errorf("prefabs: empty layer expression")
	}
	var out physics.Layer
	for _, term := range strings.Split(s, "|") {
		name := strings.ToLower(strings.TrimSpace(term))
		layer, ok := layerNames[name]
		if !ok {
			return physics.LayerNone, fmt.Errorf("prefabs: unknown layer %q", term)
		}
		out |= layer
	}
	return out, nil
}

// LayerName renders a layer bitmask back into spec syntax. Sentinels map
// to "none" and "all"; unnamed high bits are dropped.
func LayerName(l physics.Layer) string {
	if l == physics.LayerNone {
		return "none"
	}
	if l == physics.LayerAll {
		return "all"
	}
	var parts []string
	for _, e := range layerOrder {
		if l.Has(e.layer) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
