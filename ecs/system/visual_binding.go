package system

import (
	"log"

	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
)

// VisualBindingSystem is the renderer-side consumer of state changes: it
// shows the binding tagged with the new state and hides the rest. Entities
// that have never been bound get the binding of their current state.
type VisualBindingSystem struct {
	missing map[ecs.Entity]string
}

func NewVisualBindingSystem() *VisualBindingSystem {
	return &VisualBindingSystem{missing: make(map[ecs.Entity]string)}
}

func (v *VisualBindingSystem) Update(w *ecs.World) {
	if v == nil || w == nil {
		return
	}

	pruneDead(w, v.missing)
	var other []ecs.Event
	for _, evt := range w.Events().Drain() {
		changed, ok := evt.Data.(ecs.StateChangedEvent)
		if evt.Type != ecs.EventStateChanged || !ok {
			other = append(other, evt)
			continue
		}
		v.bind(w, changed.Entity, changed.To)
	}
	for _, evt := range other {
		w.Events().Push(evt)
	}

	ecs.ForEach2(w, component.VisualsComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, vis *component.Visuals, anim *component.Animation) {
		if vis.Active == "" && anim.Animator != nil {
			v.bind(w, e, anim.Animator.State())
		}
	})
}

func (v *VisualBindingSystem) bind(w *ecs.World, e ecs.Entity, state string) {
	vis, ok := ecs.Get(w, e, component.VisualsComponent.Kind())
	if !ok {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	vis.Active = state

	binding, ok := vis.Bindings[state]
	if !ok {
		sprite.Hidden = true
		if v.missing[e] != state {
			log.Printf("animation: entity=%d has no visual for state %q", e, state)
			v.missing[e] = state
		}
		return
	}
	delete(v.missing, e)

	frame := 0
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.Animator != nil {
		frame = anim.Animator.Frame()
	}
	sprite.Image = binding.Sheet
	sprite.OriginX = binding.OriginX
	sprite.OriginY = binding.OriginY
	sprite.Source = binding.FrameRect(frame)
	sprite.UseSource = true
	sprite.Hidden = false
}
