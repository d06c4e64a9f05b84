// Command soak stress-tests the broad phase: it scatters random colliders
// over an area, jitters them every tick, and reports pair counts and
// timing. Useful for eyeballing the O(n^2) cost at a given entity count.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/okranz/collider/physics"
	"github.com/okranz/collider/timing"
)

func main() {
	n := flag.Int("n", 500, "number of colliders")
	ticks := flag.Int("ticks", 600, "ticks to simulate")
	area := flag.Float64("area", 2000, "side length of the square world")
	seed := flag.Int64("seed", 1, "rng seed")
	triggerPct := flag.Float64("triggers", 0.2, "fraction of colliders that are triggers")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	w := physics.NewWorld()

	layers := []physics.Layer{
		physics.LayerDefault, physics.LayerPlayer, physics.LayerEnemy,
		physics.LayerProjectile, physics.LayerTerrain, physics.LayerPickup,
	}
	for i := 0; i < *n; i++ {
		c := physics.NewCollider(8+rng.Float64()*56, 8+rng.Float64()*56)
		c.Mask.Layer = layers[rng.Intn(len(layers))]
		c.Trigger = rng.Float64() < *triggerPct
		w.AddCollider(physics.EntityID(i+1), rng.Float64()**area, rng.Float64()**area, c)
	}

	var solids, triggers uint64
	w.SetCollisionCallback(func(physics.CollisionInfo) { solids++ })
	w.SetTriggerEnterCallback(func(a, b physics.EntityID) { triggers++ })

	clock := timing.NewClock()
	clock.Every("report", 1.0, func() {
		fmt.Printf("t=%6.2fs fps=%6.1f solids=%d triggers=%d\n",
			clock.Total(), clock.FPS(), solids, triggers)
	})

	for t := 0; t < *ticks; t++ {
		for i := 0; i < *n; i++ {
			id := physics.EntityID(i + 1)
			if entry, ok := w.Entry(id); ok {
				w.UpdatePosition(id, entry.X+rng.Float64()*4-2, entry.Y+rng.Float64()*4-2)
			}
		}
		w.ProcessCollisions()
		clock.Update()
	}

	fmt.Printf("done: %d colliders, %d ticks, %.2fs wall, %d solid overlaps, %d trigger overlaps\n",
		*n, *ticks, clock.Total(), solids, triggers)
}
