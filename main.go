package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/knight/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	workers := flag.Int("workers", runtime.NumCPU(), "goroutines used to advance animators (1 = sequential)")
	prefab := flag.String("prefab", prefabs.DefaultPlayer, "player prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from prefabs/ when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("knight")

	game, err := NewGame(Config{
		Prefab:  *prefab,
		Workers: *workers,
		Watch:   *watch,
		Debug:   *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
