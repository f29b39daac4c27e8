package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
	"github.com/milk9111/knight/ecs/render"
	"github.com/milk9111/knight/prefabs"
)

// Sheet loaders. Tests swap these out to avoid creating GPU images.
var (
	loadSheet        = render.LoadImage
	placeholderSheet = func(frameW, frameH, frames int, c color.Color) *ebiten.Image {
		return render.PlaceholderSheet(frameW, frameH, frames, c)
	}
)

type buildContext struct {
	Prefab  string
	Spec    *prefabs.PlayerSpec
	Catalog *animation.Catalog
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, ctx *buildContext) error

type componentBuilder struct {
	name  string
	build componentBuildFn
}

var playerBuildOrder = []componentBuilder{
	{"player_tag", addPlayerTag},
	{"player", addPlayer},
	{"input", addInput},
	{"transform", addTransform},
	{"sprite", addSprite},
	{"render_layer", addRenderLayer},
	{"animation", addAnimation},
	{"visuals", addVisuals},
	{"state_script", addStateScript},
}

// NewPlayerFromPrefab loads a player prefab by name and spawns it.
func NewPlayerFromPrefab(w *ecs.World, name string) (ecs.Entity, error) {
	if name == "" {
		name = prefabs.DefaultPlayer
	}
	spec, err := prefabs.LoadPlayerSpec(name)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return NewPlayer(w, spec, name)
}

// NewPlayer spawns a player from an already decoded spec. The animation
// catalog is built first so an invalid prefab never creates an entity.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, prefab string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}

	catalog, err := spec.Animation.Catalog()
	if err != nil {
		return 0, fmt.Errorf("player: %q: %w", prefab, err)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{Prefab: prefab, Spec: spec, Catalog: catalog}
	for _, b := range playerBuildOrder {
		if err := b.build(w, e, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: %q: add %q: %w", prefab, b.name, err)
		}
	}
	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: ctx.Spec.MoveSpeed})
}

func addInput(w *ecs.World, e ecs.Entity, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	t := ctx.Spec.Transform
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        t.X,
		Y:        t.Y,
		ScaleX:   t.ScaleX,
		ScaleY:   t.ScaleY,
		Rotation: t.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, _ *buildContext) error {
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Hidden: true})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: ctx.Spec.RenderLayer.Index})
}

func addAnimation(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	initial := ctx.Spec.InitialState
	if initial == "" {
		initial = animation.InitialState
	}
	if !ctx.Catalog.Has(initial) {
		return fmt.Errorf("initial state %q: %w", initial, animation.ErrUnknownState)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Animator: animation.NewAnimatorAt(ctx.Catalog, initial),
		Prefab:   ctx.Prefab,
	})
}

func addVisuals(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	bindings := make(map[string]component.VisualBinding, len(ctx.Spec.Visuals))
	for _, v := range ctx.Spec.Visuals {
		if v.State == "" {
			return fmt.Errorf("visual without state")
		}
		if v.FrameW <= 0 || v.FrameH <= 0 {
			return fmt.Errorf("visual %q: frame size must be positive", v.State)
		}
		if !ctx.Catalog.Has(v.State) {
			log.Printf("player: %s: visual for unknown state %q", ctx.Prefab, v.State)
		}
		bindings[v.State] = component.VisualBinding{
			State:   v.State,
			Sheet:   sheetFor(ctx, v),
			FrameW:  v.FrameW,
			FrameH:  v.FrameH,
			Cols:    1,
			OriginX: v.OriginX,
			OriginY: v.OriginY,
		}
		if b := bindings[v.State]; b.Sheet != nil {
			b.Cols = b.Sheet.Bounds().Dx() / v.FrameW
			bindings[v.State] = b
		}
	}
	return ecs.Add(w, e, component.VisualsComponent.Kind(), &component.Visuals{Bindings: bindings})
}

func sheetFor(ctx *buildContext, v prefabs.VisualSpec) *ebiten.Image {
	if v.Sheet != "" {
		img, err := loadSheet(v.Sheet)
		if err == nil {
			return img
		}
		log.Printf("player: %s: state %q: %v; using placeholder", ctx.Prefab, v.State, err)
	}

	frames := 1
	if def, ok := ctx.Catalog.Get(v.State); ok {
		frames = def.End + 1
	}
	var c color.Color
	if v.Placeholder != nil {
		c = v.Placeholder.Color
	}
	return placeholderSheet(v.FrameW, v.FrameH, frames, c)
}

func addStateScript(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	if ctx.Spec.Script == "" {
		return nil
	}
	return ecs.Add(w, e, component.StateScriptComponent.Kind(), &component.StateScript{Path: ctx.Spec.Script})
}
