package system

import (
	"log"

	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
)

// AnimationSystem advances every animator by the tick delta and writes each
// newly resolved frame into the sprite's source rectangle. Animators are
// independent, so they may be advanced on several workers.
type AnimationSystem struct {
	workers  int
	reported map[ecs.Entity]string
}

func NewAnimationSystem(workers int) *AnimationSystem {
	return &AnimationSystem{workers: workers, reported: make(map[ecs.Entity]string)}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	pruneDead(w, a.reported)
	dt := w.Delta()
	if dt < 0 {
		log.Printf("animation: %v (%.4fs), clamping to zero", animation.ErrNegativeElapsed, dt)
		dt = 0
	}

	entities := w.Query(component.AnimationComponent.Kind())
	animators := make([]*animation.Animator, len(entities))
	for i, e := range entities {
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		animators[i] = anim.Animator
	}

	results := animation.AdvanceAll(animators, dt, a.workers)
	for i, res := range results {
		e := entities[i]
		if res.Err != nil {
			a.report(e, animators[i], res.Err)
			continue
		}
		delete(a.reported, e)
		if !res.OK {
			continue
		}
		a.apply(w, e, res.Frame)
	}
}

// report logs a skipped entity once per state until it recovers.
func (a *AnimationSystem) report(e ecs.Entity, animator *animation.Animator, err error) {
	state := animator.State()
	if a.reported[e] == state {
		return
	}
	a.reported[e] = state
	log.Printf("animation: entity=%d skipped: %v", e, err)
}

func (a *AnimationSystem) apply(w *ecs.World, e ecs.Entity, frame animation.Frame) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	vis, ok := ecs.Get(w, e, component.VisualsComponent.Kind())
	if !ok {
		return
	}
	binding, ok := vis.Bindings[vis.Active]
	if !ok || vis.Active != frame.State {
		return
	}
	sprite.Source = binding.FrameRect(frame.Index)
	sprite.UseSource = true
}
