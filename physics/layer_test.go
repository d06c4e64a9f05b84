package physics

import "testing"

func TestLayerHas(t *testing.T) {
	cases := []struct {
		name     string
		l, other Layer
		expected bool
	}{
		{"same_bit", LayerPlayer, LayerPlayer, true},
		{"different_bits", LayerPlayer, LayerEnemy, false},
		{"multi_bit_overlap", LayerPlayer | LayerEnemy, LayerEnemy, true},
		{"all_matches_any", LayerAll, LayerPlatform, true},
		{"none_matches_nothing", LayerNone, LayerAll, false},
		{"nothing_matches_none", LayerAll, LayerNone, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.l.Has(c.other); got != c.expected {
				t.Fatalf("(%#x).Has(%#x) = %v, expected %v", uint32(c.l), uint32(c.other), got, c.expected)
			}
		})
	}
}

func TestDefaultMask(t *testing.T) {
	m := DefaultMask()
	if m.Layer != LayerDefault {
		t.Fatalf("default layer = %#x, expected LayerDefault", uint32(m.Layer))
	}
	if m.CollidesWith != LayerAll {
		t.Fatalf("default scan set = %#x, expected LayerAll", uint32(m.CollidesWith))
	}
}

// The scan check is one-directional: only the caller's CollidesWith and the
// other side's Layer matter.
func TestMaskCanCollideWithIsOneDirectional(t *testing.T) {
	projectile := NewMask(LayerProjectile, LayerEnemy)
	enemy := NewMask(LayerEnemy, LayerTerrain)

	if !projectile.CanCollideWith(enemy) {
		t.Fatalf("projectile should scan the enemy layer")
	}
	if enemy.CanCollideWith(projectile) {
		t.Fatalf("enemy does not scan projectiles and should not see one")
	}
}

func TestMaskCanCollideWith(t *testing.T) {
	cases := []struct {
		name     string
		m, other Mask
		expected bool
	}{
		{"scans_other_layer", NewMask(LayerPlayer, LayerPickup), NewMask(LayerPickup, LayerNone), true},
		{"ignores_other_layer", NewMask(LayerPlayer, LayerPickup), NewMask(LayerEnemy, LayerAll), false},
		{"scan_set_none", NewMask(LayerPlayer, LayerNone), NewMask(LayerEnemy, LayerAll), false},
		{"other_layer_none", NewMask(LayerPlayer, LayerAll), NewMask(LayerNone, LayerAll), false},
		{"defaults_collide", DefaultMask(), DefaultMask(), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.m.CanCollideWith(c.other); got != c.expected {
				t.Fatalf("CanCollideWith = %v, expected %v", got, c.expected)
			}
		})
	}
}
