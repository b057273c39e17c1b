package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer3d/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "level name in levels/ or a path to a level .yaml")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer3d")
	ebiten.SetTPS(*tps)

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		TPS:   *tps,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
