package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/knight/common"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
	"github.com/milk9111/knight/ecs/entity"
	"github.com/milk9111/knight/ecs/system"
	"github.com/milk9111/knight/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Config struct {
	Prefab  string
	Workers int
	Watch   bool
	Debug   bool
}

type Game struct {
	frames int
	debug  bool

	world   *ecs.World
	clock   *common.Clock
	render  *system.RenderSystem
	watcher *prefabs.Watcher
	player  ecs.Entity
}

// NewGame spawns the player from cfg.Prefab and wires the per-tick systems in
// order: input, player controller, state scripts, visual binding, animation,
// prefab reload.
func NewGame(cfg Config) (*Game, error) {
	w := ecs.NewWorld()

	player, err := entity.NewPlayerFromPrefab(w, cfg.Prefab)
	if err != nil {
		return nil, err
	}

	scripts := system.NewStateScriptSystem()
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(scripts)
	w.AddSystem(system.NewVisualBindingSystem())
	w.AddSystem(system.NewAnimationSystem(cfg.Workers))

	g := &Game{
		debug:  cfg.Debug,
		world:  w,
		clock:  common.NewClock(),
		render: system.NewRenderSystem(),
		player: player,
	}

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
			w.AddSystem(system.NewPrefabReloadSystem(watcher.Events, watcher.Errors, scripts))
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.world.SetDelta(g.clock.Tick())
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if g.debug {
		if anim, ok := ecs.Get(g.world, g.player, component.AnimationComponent.Kind()); ok && anim.Animator != nil {
			a := anim.Animator
			msg += fmt.Sprintf("\nState: %s    Frame: %d    Timer: %.3f    Done: %v", a.State(), a.Frame(), a.Timer(), a.Done())
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
