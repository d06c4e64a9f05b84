package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/system"
	"github.com/okranz/collider/prefabs"
	"github.com/okranz/collider/script"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

const probeSpeed = 220.0

// Game is the collision sandbox: a scene of colliders loaded from yaml,
// one probe entity on the arrow keys, tengo hooks on collision events,
// and a layer-matrix panel on Tab.
type Game struct {
	world *ecs.World
	debug *system.DebugDraw
	hooks *script.Hooks

	watcher *prefabs.Watcher

	matrixUI   *ebitenui.UI
	showMatrix bool

	sceneName string
	debugDraw bool
}

// NewGame loads the world and scene specs and builds the sandbox.
func NewGame(sceneName string, debugDraw bool) (*Game, error) {
	g := &Game{sceneName: sceneName, debugDraw: debugDraw}
	if err := g.load(); err != nil {
		return nil, err
	}

	// Watching is best effort: without an on-disk prefabs/ directory the
	// sandbox just runs off the embedded specs.
	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		dirs := []string{"prefabs"}
		if info, err := os.Stat("prefabs/scripts"); err == nil && info.IsDir() {
			dirs = append(dirs, "prefabs/scripts")
		}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("sandbox: watch prefabs: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// load builds a fresh ecs world from the current spec files. On reload the
// old world is discarded wholesale; the sandbox has no state worth keeping.
func (g *Game) load() error {
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return err
	}
	scene, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if err := prefabs.Apply(w.Collisions(), worldSpec); err != nil {
		return err
	}

	probe, ok, err := buildScene(w, worldSpec, scene)
	if err != nil {
		return err
	}

	if ok {
		w.AddSystem(system.NewMovement(probe, probeSpeed))
	}
	w.AddSystem(system.NewAnimation())
	w.AddSystem(system.NewCollision())
	w.AddSystem(&hookDispatch{g: g})
	w.AddSystem(system.NewRender())
	g.debug = system.NewDebugDraw()
	g.debug.Enabled = g.debugDraw
	w.AddSystem(g.debug)

	hooks, err := script.Load("hooks.tengo")
	if err != nil {
		// The sandbox still runs without hooks; events just go unscripted.
		log.Printf("sandbox: load hooks: %v", err)
	} else {
		hooks.BindEngine(w.Collisions())
		g.hooks = hooks
	}

	g.world = w
	g.matrixUI = NewMatrixUI(g)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMatrix = !g.showMatrix
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Enabled = !g.debug.Enabled
	}

	g.pollWatcher()

	if g.showMatrix {
		// The panel pauses the simulation, like a pause menu.
		g.matrixUI.Update()
		return nil
	}

	g.world.Update(1.0 / 60.0)
	return nil
}

// hookDispatch drains collision events into the tengo hooks. It runs as a
// system right after Collision, since the event queue empties when the
// frame's update finishes.
type hookDispatch struct {
	g *Game
}

func (h *hookDispatch) Update(w *ecs.World) {
	if h.g.hooks == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventCollision:
			h.g.hooks.OnCollision(evt.Data.(ecs.CollisionEvent).Info)
		case ecs.EventTriggerEnter:
			te := evt.Data.(ecs.TriggerEnterEvent)
			h.g.hooks.OnTriggerEnter(te.A, te.B)
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("sandbox: %s changed, reloading", name)
			if err := g.load(); err != nil {
				log.Printf("sandbox: reload failed, keeping old scene: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("sandbox: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.world.Draw(screen)

	cw := g.world.Collisions()
	pairs := len(cw.DetectCollisions())
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  colliders %d  overlapping pairs %d\narrows/WASD move - Tab layer matrix - F1 boxes",
		ebiten.ActualFPS(), cw.Len(), pairs))

	if g.showMatrix {
		g.matrixUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
