package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
)

func testCatalog(t *testing.T) *animation.Catalog {
	t.Helper()
	c, err := animation.NewCatalog(
		animation.Entry{Name: "Idle", Def: animation.Def{FrameDuration: 0.1, Start: 0, End: 3, Looping: true}},
		animation.Entry{Name: "Run", Def: animation.Def{FrameDuration: 0.1, Start: 4, End: 9, Looping: true}},
		animation.Entry{Name: "Walk", Def: animation.Def{FrameDuration: 0.2, Start: 10, End: 11, Looping: true}},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func testBindings() map[string]component.VisualBinding {
	return map[string]component.VisualBinding{
		"Idle": {State: "Idle", FrameW: 32, FrameH: 32, Cols: 16, OriginX: 16, OriginY: 16},
		"Run":  {State: "Run", FrameW: 32, FrameH: 32, Cols: 16, OriginX: 16, OriginY: 30},
	}
}

// spawnAnimated builds a player-shaped entity without any GPU images.
func spawnAnimated(t *testing.T, w *ecs.World, catalog *animation.Catalog, prefab string) (ecs.Entity, *animation.Animator) {
	t.Helper()
	e := ecs.CreateEntity(w)
	a := animation.NewAnimator(catalog)
	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 400}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}),
		ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Animator: a, Prefab: prefab}),
		ecs.Add(w, e, component.VisualsComponent.Kind(), &component.Visuals{Bindings: testBindings()}),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
	}
	return e, a
}

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, x, y float64) {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity has no input")
	}
	in.MoveX, in.MoveY = x, y
}

func stateChanges(w *ecs.World) []ecs.StateChangedEvent {
	var out []ecs.StateChangedEvent
	for _, evt := range w.Events().Drain() {
		if changed, ok := evt.Data.(ecs.StateChangedEvent); ok && evt.Type == ecs.EventStateChanged {
			out = append(out, changed)
		}
	}
	return out
}

// captureLog redirects the standard logger for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}
