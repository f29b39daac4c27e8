package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
)

const (
	stateIdle = "Idle"
	stateRun  = "Run"

	defaultMoveSpeed = 400.0
)

// PlayerControllerSystem moves players from their input snapshot and picks
// Run or Idle. Players with a StateScript leave the choice to the script.
type PlayerControllerSystem struct {
	selector Selector
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p.selector.Prune(w)
	dt := w.Delta()
	if dt < 0 {
		dt = 0
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		speed := defaultMoveSpeed
		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && player.MoveSpeed > 0 {
			speed = player.MoveSpeed
		}

		moving := input.Moving()
		if moving {
			move := cp.Vector{X: input.MoveX, Y: input.MoveY}
			// keep diagonals from being faster than straight moves
			if move.LengthSq() > 1 {
				move = move.Normalize()
			}
			step := move.Mult(speed * dt)
			transform.X += step.X
			transform.Y += step.Y
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if input.MoveX < 0 {
				sprite.FacingLeft = true
			} else if input.MoveX > 0 {
				sprite.FacingLeft = false
			}
		}

		if ecs.Has(w, e, component.StateScriptComponent.Kind()) {
			continue
		}
		anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
		if !ok {
			continue
		}
		desired := stateIdle
		if moving {
			desired = stateRun
		}
		p.selector.Select(w, e, anim.Animator, desired)
	}
}
