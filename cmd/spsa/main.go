// Command spsa previews a prefab's sprite sheet animations. Tab and
// Shift+Tab cycle through the catalog's states; -list prints the catalog and
// exits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/common"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
	"github.com/milk9111/knight/ecs/entity"
	"github.com/milk9111/knight/ecs/system"
	"github.com/milk9111/knight/prefabs"
)

const previewSize = 512

type previewGame struct {
	world    *ecs.World
	clock    *common.Clock
	render   *system.RenderSystem
	selector system.Selector
	entity   ecs.Entity
	states   []string
}

func newPreviewGame(prefab, state string) (*previewGame, error) {
	w := ecs.NewWorld()
	e, err := entity.NewPlayerFromPrefab(w, prefab)
	if err != nil {
		return nil, err
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = previewSize/2, previewSize/2
	}

	w.AddSystem(system.NewVisualBindingSystem())
	w.AddSystem(system.NewAnimationSystem(1))

	g := &previewGame{
		world:  w,
		clock:  common.NewClock(),
		render: system.NewRenderSystem(),
		entity: e,
	}
	if a := g.animator(); a != nil {
		g.states = a.Catalog().Names()
		if state != "" && !g.selector.Select(w, e, a, state) && a.State() != state {
			return nil, fmt.Errorf("spsa: %s has no state %q", prefab, state)
		}
	}
	return g, nil
}

func (g *previewGame) animator() *animation.Animator {
	anim, ok := ecs.Get(g.world, g.entity, component.AnimationComponent.Kind())
	if !ok {
		return nil
	}
	return anim.Animator
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		if a := g.animator(); a != nil {
			g.selector.Select(g.world, g.entity, a, cycle(g.states, a.State(), step))
		}
	}
	g.world.SetDelta(g.clock.Tick())
	g.world.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	g.render.Draw(g.world, screen)
	if a := g.animator(); a != nil {
		status := fmt.Sprintf("%s  frame %d", a.State(), a.Frame())
		if a.Done() {
			status += "  done"
		}
		ebitenutil.DebugPrint(screen, status+"  (tab to cycle)")
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// cycle returns the state step places away from current, wrapping around.
func cycle(states []string, current string, step int) string {
	if len(states) == 0 {
		return current
	}
	idx := 0
	for i, s := range states {
		if s == current {
			idx = i
			break
		}
	}
	n := len(states)
	return states[((idx+step)%n+n)%n]
}

func printCatalog(prefab string) error {
	catalog, err := prefabs.LoadCatalog(prefab)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tSTART\tEND\tFRAMES\tDURATION\tLOOP")
	for _, name := range catalog.Names() {
		def, _ := catalog.Get(name)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3fs\t%v\n", name, def.Start, def.End, def.NumFrames(), def.FrameDuration, def.Looping)
	}
	return tw.Flush()
}

func main() {
	prefab := flag.String("prefab", prefabs.DefaultPlayer, "prefab to preview")
	state := flag.String("state", "", "state to start in (defaults to the prefab's initial state)")
	list := flag.Bool("list", false, "print the animation catalog and exit")
	flag.Parse()

	if *list {
		if err := printCatalog(*prefab); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := newPreviewGame(*prefab, *state)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("spsa: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
