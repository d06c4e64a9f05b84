package physics

import "testing"

func solid(w, h float64) Collider {
	return NewCollider(w, h)
}

func solidOn(w, h float64, layer, collidesWith Layer) Collider {
	c := NewCollider(w, h)
	c.Mask = NewMask(layer, collidesWith)
	return c
}

func trigger(w, h float64) Collider {
	c := NewCollider(w, h)
	c.Trigger = true
	return c
}

func idSet(ids []EntityID) map[EntityID]bool {
	m := make(map[EntityID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestWorldAddRemove(t *testing.T) {
	t.Run("add_and_lookup", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 10, 20, solid(5, 5))

		if w.Len() != 1 {
			t.Fatalf("expected 1 collider, got %d", w.Len())
		}
		if !w.HasCollider(1) {
			t.Fatalf("expected collider for entity 1")
		}
		e, ok := w.Entry(1)
		if !ok {
			t.Fatalf("Entry(1) should succeed")
		}
		if e.X != 10 || e.Y != 20 || e.ScaleX != 1 || e.ScaleY != 1 {
			t.Fatalf("unexpected entry %+v", e)
		}
	})

	t.Run("re_add_replaces", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(5, 5))
		w.AddCollider(2, 50, 50, solid(5, 5))
		w.AddCollider(1, 100, 100, solid(9, 9))

		if w.Len() != 2 {
			t.Fatalf("replacement should not grow the world, got %d", w.Len())
		}
		e, _ := w.Entry(1)
		if e.X != 100 || e.Collider.Width != 9 {
			t.Fatalf("replacement should win, got %+v", e)
		}
		// Replacement re-appends, so entity 1 now scans last.
		entries := w.Entries()
		if entries[len(entries)-1].Entity != 1 {
			t.Fatalf("replaced entity should move to the end of scan order")
		}
	})

	t.Run("remove_middle_swaps_last", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(5, 5))
		w.AddCollider(2, 10, 0, solid(5, 5))
		w.AddCollider(3, 20, 0, solid(5, 5))

		w.RemoveCollider(2)

		if w.Len() != 2 {
			t.Fatalf("expected 2 colliders, got %d", w.Len())
		}
		if w.HasCollider(2) {
			t.Fatalf("entity 2 should be gone")
		}
		// Entity 3 was swapped into the vacated slot and must still resolve.
		e, ok := w.Entry(3)
		if !ok || e.X != 20 {
			t.Fatalf("relocated entry should still resolve, got %+v ok=%v", e, ok)
		}
		if w.Entries()[1].Entity != 3 {
			t.Fatalf("tail entry should occupy the vacated slot")
		}
	})

	t.Run("remove_unknown_is_noop", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(5, 5))
		w.RemoveCollider(99)
		if w.Len() != 1 {
			t.Fatalf("removing an unknown id should change nothing")
		}
	})

	t.Run("clear", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(5, 5))
		w.AddCollider(2, 0, 0, solid(5, 5))
		w.Clear()
		if w.Len() != 0 || w.HasCollider(1) {
			t.Fatalf("clear should drop every collider")
		}
		// The world stays usable after a clear.
		w.AddCollider(3, 0, 0, solid(5, 5))
		if !w.HasCollider(3) {
			t.Fatalf("world should accept colliders after clear")
		}
	})
}

func TestWorldUpdates(t *testing.T) {
	w := NewWorld()
	w.AddCollider(1, 0, 0, solid(10, 10))

	w.UpdatePosition(1, 40, 50)
	e, _ := w.Entry(1)
	if e.X != 40 || e.Y != 50 {
		t.Fatalf("position not updated, got %+v", e)
	}

	w.UpdateScale(1, 2, 3)
	e, _ = w.Entry(1)
	if e.ScaleX != 2 || e.ScaleY != 3 {
		t.Fatalf("scale not updated, got %+v", e)
	}
	if got := e.Bounds(); got != NewAABB(40, 50, 20, 30) {
		t.Fatalf("scaled bounds = %+v", got)
	}

	// Unknown ids are silent no-ops.
	w.UpdatePosition(99, 1, 1)
	w.UpdateScale(99, 9, 9)
	if w.Len() != 1 {
		t.Fatalf("updating unknown ids should not register anything")
	}
}

func TestEntriesReturnsCopies(t *testing.T) {
	w := NewWorld()
	w.AddCollider(1, 0, 0, solid(10, 10))
	w.AddCollider(2, 50, 0, solid(10, 10))

	entries := w.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, want 2", len(entries))
	}

	// Writes through the returned slice must not reach the world.
	entries[0].X = 999
	entries[1].Collider.Trigger = true
	if e, _ := w.Entry(1); e.X != 0 {
		t.Fatalf("mutating Entries() result leaked into the world: %+v", e)
	}
	if e, _ := w.Entry(2); e.Collider.Trigger {
		t.Fatalf("mutating Entries() result leaked into the world: %+v", e)
	}

	if w.Entries() == nil || (&w.Entries()[0] == &entries[0]) {
		t.Fatalf("Entries() should allocate a fresh slice per call")
	}

	var empty *World
	if empty.Entries() != nil {
		t.Fatalf("nil world should report no entries")
	}
}

func TestDetectCollisions(t *testing.T) {
	t.Run("reports_overlapping_pairs", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 5, 5, solid(10, 10))
		w.AddCollider(3, 100, 100, solid(10, 10))

		infos := w.DetectCollisions()
		if len(infos) != 1 {
			t.Fatalf("expected 1 collision, got %d", len(infos))
		}
		if infos[0].EntityA != 1 || infos[0].EntityB != 2 {
			t.Fatalf("expected pair (1, 2), got (%d, %d)", infos[0].EntityA, infos[0].EntityB)
		}
	})

	t.Run("edge_touching_not_reported", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 10, 0, solid(10, 10))
		if infos := w.DetectCollisions(); len(infos) != 0 {
			t.Fatalf("edge-touching boxes should not collide, got %d", len(infos))
		}
	})

	t.Run("masks_not_consulted", func(t *testing.T) {
		w := NewWorld()
		// Neither mask scans the other layer; the raw sweep reports the
		// pair anyway.
		w.AddCollider(1, 0, 0, solidOn(10, 10, LayerPlayer, LayerNone))
		w.AddCollider(2, 5, 5, solidOn(10, 10, LayerEnemy, LayerNone))
		if infos := w.DetectCollisions(); len(infos) != 1 {
			t.Fatalf("raw sweep should ignore masks, got %d infos", len(infos))
		}
	})

	t.Run("overlap_depths", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 6, 8, solid(10, 10))

		infos := w.DetectCollisions()
		if len(infos) != 1 {
			t.Fatalf("expected 1 collision, got %d", len(infos))
		}
		if infos[0].OverlapX != 4 {
			t.Fatalf("OverlapX = %v, expected 4", infos[0].OverlapX)
		}
		if infos[0].OverlapY != 2 {
			t.Fatalf("OverlapY = %v, expected 2", infos[0].OverlapY)
		}
	})

	t.Run("empty_and_single", func(t *testing.T) {
		w := NewWorld()
		if infos := w.DetectCollisions(); infos != nil {
			t.Fatalf("empty world should detect nothing")
		}
		w.AddCollider(1, 0, 0, solid(10, 10))
		if infos := w.DetectCollisions(); infos != nil {
			t.Fatalf("single collider should detect nothing")
		}
	})
}

func TestDetectCollisionsFor(t *testing.T) {
	t.Run("unknown_id", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		if infos := w.DetectCollisionsFor(99); infos != nil {
			t.Fatalf("unknown id should yield nil, got %d infos", len(infos))
		}
	})

	t.Run("target_mask_applied_one_way", func(t *testing.T) {
		w := NewWorld()
		// The probe scans enemies. The enemy scans nothing.
		w.AddCollider(1, 0, 0, solidOn(10, 10, LayerProjectile, LayerEnemy))
		w.AddCollider(2, 5, 0, solidOn(10, 10, LayerEnemy, LayerNone))
		w.AddCollider(3, 0, 5, solidOn(10, 10, LayerTerrain, LayerAll))

		infos := w.DetectCollisionsFor(1)
		if len(infos) != 1 {
			t.Fatalf("expected only the enemy overlap, got %d", len(infos))
		}
		if infos[0].EntityA != 1 || infos[0].EntityB != 2 {
			t.Fatalf("target should be EntityA, got (%d, %d)", infos[0].EntityA, infos[0].EntityB)
		}

		// From the enemy's side nothing is scanned, so the same geometry
		// yields no overlaps at all.
		if infos := w.DetectCollisionsFor(2); len(infos) != 0 {
			t.Fatalf("enemy scans nothing, got %d infos", len(infos))
		}

		// The terrain block scans everything and sees both others.
		if infos := w.DetectCollisionsFor(3); len(infos) != 2 {
			t.Fatalf("terrain should see both overlaps, got %d", len(infos))
		}
	})
}

func TestCheckCollision(t *testing.T) {
	w := NewWorld()
	w.AddCollider(1, 0, 0, solidOn(10, 10, LayerPlayer, LayerEnemy))
	w.AddCollider(2, 5, 0, solidOn(10, 10, LayerEnemy, LayerNone))
	w.AddCollider(3, 100, 100, solid(10, 10))

	t.Run("unregistered", func(t *testing.T) {
		if _, ok := w.CheckCollision(1, 99); ok {
			t.Fatalf("unregistered b should fail")
		}
		if _, ok := w.CheckCollision(99, 1); ok {
			t.Fatalf("unregistered a should fail")
		}
	})

	t.Run("not_intersecting", func(t *testing.T) {
		if _, ok := w.CheckCollision(1, 3); ok {
			t.Fatalf("separated boxes should fail")
		}
	})

	t.Run("mask_checked_from_a_side", func(t *testing.T) {
		info, ok := w.CheckCollision(1, 2)
		if !ok {
			t.Fatalf("player scans enemies, expected a collision")
		}
		if info.EntityA != 1 || info.EntityB != 2 {
			t.Fatalf("expected (1, 2), got (%d, %d)", info.EntityA, info.EntityB)
		}
		if info.OverlapX != 5 || info.OverlapY != 10 {
			t.Fatalf("overlap = (%v, %v), expected (5, 10)", info.OverlapX, info.OverlapY)
		}

		// Same pair from the other side fails: the enemy scans nothing.
		if _, ok := w.CheckCollision(2, 1); ok {
			t.Fatalf("enemy does not scan players, expected no collision")
		}
	})
}

func TestQueryPoint(t *testing.T) {
	w := NewWorld()
	w.AddCollider(1, 0, 0, solidOn(10, 10, LayerPlayer, LayerAll))
	w.AddCollider(2, 5, 5, solidOn(10, 10, LayerEnemy, LayerAll))
	w.AddCollider(3, 50, 50, solidOn(10, 10, LayerEnemy, LayerAll))

	cases := []struct {
		name     string
		x, y     float64
		filter   Layer
		expected []EntityID
	}{
		{"all_layers", 6, 6, LayerAll, []EntityID{1, 2}},
		{"player_only", 6, 6, LayerPlayer, []EntityID{1}},
		{"enemy_only", 6, 6, LayerEnemy, []EntityID{2}},
		{"no_match_layer", 6, 6, LayerTrigger, nil},
		{"miss", 30, 30, LayerAll, nil},
		{"on_shared_region_edge", 10, 10, LayerAll, []EntityID{1, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := w.QueryPoint(c.x, c.y, c.filter)
			if len(got) != len(c.expected) {
				t.Fatalf("got %v, expected %v", got, c.expected)
			}
			set := idSet(got)
			for _, id := range c.expected {
				if !set[id] {
					t.Fatalf("missing entity %d in %v", id, got)
				}
			}
		})
	}
}

func TestQueryAABB(t *testing.T) {
	w := NewWorld()
	w.AddCollider(1, 0, 0, solidOn(10, 10, LayerPlayer, LayerAll))
	w.AddCollider(2, 5, 5, solidOn(10, 10, LayerEnemy, LayerAll))
	w.AddCollider(3, 100, 100, solidOn(10, 10, LayerEnemy, LayerAll))

	probe := NewAABB(4, 4, 4, 4)

	got := w.QueryAABB(probe, LayerAll)
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %v", got)
	}

	// The layer filter is not applied to area probes; a filter that
	// matches neither layer still returns both hits.
	filtered := w.QueryAABB(probe, LayerTrigger)
	if len(filtered) != 2 {
		t.Fatalf("area probe should ignore the filter, got %v", filtered)
	}

	if hits := w.QueryAABB(NewAABB(200, 200, 5, 5), LayerAll); hits != nil {
		t.Fatalf("probe far away should hit nothing, got %v", hits)
	}
}

func TestLayerMatrix(t *testing.T) {
	t.Run("default_enabled", func(t *testing.T) {
		w := NewWorld()
		if !w.IsLayerCollisionEnabled(LayerPlayer, LayerEnemy) {
			t.Fatalf("fresh world should have every pair enabled")
		}
	})

	t.Run("disable_is_symmetric", func(t *testing.T) {
		w := NewWorld()
		w.SetLayerCollisionEnabled(LayerPlayer, LayerEnemy, false)
		if w.IsLayerCollisionEnabled(LayerPlayer, LayerEnemy) {
			t.Fatalf("pair should be disabled")
		}
		if w.IsLayerCollisionEnabled(LayerEnemy, LayerPlayer) {
			t.Fatalf("disable should apply in both directions")
		}
		if !w.IsLayerCollisionEnabled(LayerPlayer, LayerTerrain) {
			t.Fatalf("other pairs should be untouched")
		}

		w.SetLayerCollisionEnabled(LayerPlayer, LayerEnemy, true)
		if !w.IsLayerCollisionEnabled(LayerPlayer, LayerEnemy) {
			t.Fatalf("pair should be enabled again")
		}
	})

	t.Run("multi_bit_arguments", func(t *testing.T) {
		w := NewWorld()
		w.SetLayerCollisionEnabled(LayerPlayer|LayerEnemy, LayerProjectile, false)
		if w.IsLayerCollisionEnabled(LayerPlayer, LayerProjectile) {
			t.Fatalf("player row should be updated")
		}
		if w.IsLayerCollisionEnabled(LayerEnemy, LayerProjectile) {
			t.Fatalf("enemy row should be updated")
		}
		// A query spanning both rows needs both enabled.
		if w.IsLayerCollisionEnabled(LayerPlayer|LayerTerrain, LayerProjectile) {
			t.Fatalf("multi-bit query should fail when any named row disables the pair")
		}
	})

	t.Run("none_passes_vacuously", func(t *testing.T) {
		w := NewWorld()
		w.SetLayerCollisionEnabled(LayerPlayer, LayerAll, false)
		if !w.IsLayerCollisionEnabled(LayerNone, LayerPlayer) {
			t.Fatalf("LayerNone names no rows and should pass")
		}
	})

	t.Run("matrix_does_not_affect_detection", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solidOn(10, 10, LayerPlayer, LayerAll))
		w.AddCollider(2, 5, 5, solidOn(10, 10, LayerEnemy, LayerAll))
		w.SetLayerCollisionEnabled(LayerPlayer, LayerEnemy, false)

		if infos := w.DetectCollisions(); len(infos) != 1 {
			t.Fatalf("matrix is advisory, sweep should still report the pair")
		}
		if infos := w.DetectCollisionsFor(1); len(infos) != 1 {
			t.Fatalf("matrix is advisory, filtered scan should still report the pair")
		}
	})
}

func TestProcessCollisions(t *testing.T) {
	t.Run("routes_solid_and_trigger", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 5, 5, solid(10, 10))
		w.AddCollider(3, 100, 100, trigger(10, 10))
		w.AddCollider(4, 105, 105, solid(10, 10))

		var collisions []CollisionInfo
		var enters [][2]EntityID
		exitCalled := false
		w.SetCollisionCallback(func(info CollisionInfo) {
			collisions = append(collisions, info)
		})
		w.SetTriggerEnterCallback(func(a, b EntityID) {
			enters = append(enters, [2]EntityID{a, b})
		})
		w.SetTriggerExitCallback(func(a, b EntityID) {
			exitCalled = true
		})

		w.ProcessCollisions()

		if len(collisions) != 1 || collisions[0].EntityA != 1 || collisions[0].EntityB != 2 {
			t.Fatalf("expected one solid collision (1, 2), got %+v", collisions)
		}
		if len(enters) != 1 || enters[0] != [2]EntityID{3, 4} {
			t.Fatalf("expected one trigger enter (3, 4), got %+v", enters)
		}
		if exitCalled {
			t.Fatalf("trigger exit must never fire")
		}

		// No contact memory: a second frame with the same overlap fires
		// enter again.
		w.ProcessCollisions()
		if len(enters) != 2 {
			t.Fatalf("enter should fire every overlapping frame, got %d", len(enters))
		}
	})

	t.Run("trigger_pair_skips_collision_callback", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 5, 5, trigger(10, 10))

		called := 0
		w.SetCollisionCallback(func(CollisionInfo) { called++ })
		w.ProcessCollisions()
		if called != 0 {
			t.Fatalf("mixed solid/trigger pair should route to trigger enter only")
		}
	})

	t.Run("nil_callbacks", func(t *testing.T) {
		w := NewWorld()
		w.AddCollider(1, 0, 0, solid(10, 10))
		w.AddCollider(2, 5, 5, trigger(10, 10))
		// No callbacks installed; dispatch is a no-op, not a panic.
		w.ProcessCollisions()

		w.SetCollisionCallback(func(CollisionInfo) {})
		w.SetCollisionCallback(nil)
		w.ProcessCollisions()
	})
}
