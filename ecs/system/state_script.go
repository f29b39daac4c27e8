package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
	"github.com/milk9111/knight/prefabs"
)

// StateScriptSystem runs a per-entity tengo script that chooses the desired
// animation state from the input snapshot. The script reads move_x, move_y
// and current_state and assigns desired_state.
type StateScriptSystem struct {
	load     func(path string) ([]byte, error)
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
	selector Selector
}

type scriptGlobal struct {
	name  string
	value any
}

// scriptGlobals are declared on every script before compiling; run overwrites
// them per entity.
var scriptGlobals = []scriptGlobal{
	{"move_x", 0.0},
	{"move_y", 0.0},
	{"current_state", ""},
	{"desired_state", ""},
}

func NewStateScriptSystem() *StateScriptSystem {
	return &StateScriptSystem{load: prefabs.LoadScript}
}

func (s *StateScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.selector.Prune(w)
	entities := w.Query(
		component.StateScriptComponent.Kind(),
		component.AnimationComponent.Kind(),
	)
	for _, e := range entities {
		script, _ := ecs.Get(w, e, component.StateScriptComponent.Kind())
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		if strings.TrimSpace(script.Path) == "" {
			// no script: hand the entity back to the player controller
			ecs.Remove(w, e, component.StateScriptComponent.Kind())
			continue
		}
		if anim.Animator == nil {
			continue
		}

		var input component.Input
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			input = *in
		}

		desired, err := s.run(script.Path, input, anim.Animator.State())
		if err != nil {
			if !s.failed[script.Path] {
				log.Printf("animation: entity=%d state script %s: %v", e, script.Path, err)
				s.markFailed(script.Path)
			}
			continue
		}
		s.selector.Select(w, e, anim.Animator, desired)
	}
}

// Invalidate drops the compiled copy of a script so the next tick reloads it.
func (s *StateScriptSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	key := prefabs.Name(path)
	for cached := range s.compiled {
		if prefabs.Name(cached) == key {
			delete(s.compiled, cached)
		}
	}
	for cached := range s.failed {
		if prefabs.Name(cached) == key {
			delete(s.failed, cached)
		}
	}
}

func (s *StateScriptSystem) run(path string, input component.Input, current string) (string, error) {
	base, err := s.compile(path)
	if err != nil {
		return "", err
	}

	c := base.Clone()
	if err := c.Set("move_x", input.MoveX); err != nil {
		return "", err
	}
	if err := c.Set("move_y", input.MoveY); err != nil {
		return "", err
	}
	if err := c.Set("current_state", current); err != nil {
		return "", err
	}
	if err := c.Set("desired_state", current); err != nil {
		return "", err
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	desired := c.Get("desired_state")
	if desired.ValueType() != "string" {
		return "", fmt.Errorf("desired_state must be a string, got %s", desired.ValueType())
	}
	return desired.String(), nil
}

func (s *StateScriptSystem) compile(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	if s.failed[path] {
		return nil, fmt.Errorf("previous load failed")
	}

	src, err := s.load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	script := tengo.NewScript(src)
	for _, v := range scriptGlobals {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("declare %s: %w", v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	if s.compiled == nil {
		s.compiled = make(map[string]*tengo.Compiled)
	}
	s.compiled[path] = compiled
	return compiled, nil
}

func (s *StateScriptSystem) markFailed(path string) {
	if s.failed == nil {
		s.failed = make(map[string]bool)
	}
	s.failed[path] = true
}
