package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", true, "draw collider boxes")
	scene := flag.String("scene", "scene.yaml", "scene file in prefabs/ (embedded default used when absent on disk)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("collider sandbox")

	game, err := NewGame(*scene, *debug)
	if err != nil {
		log.Fatalf("sandbox: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
