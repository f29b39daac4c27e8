package system

import (
	"errors"
	"log"

	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
)

// Selector asks animators to switch state and, when one does, publishes a
// StateChangedEvent for the renderer-side systems. An unknown state leaves the
// animator as it was and is logged once per entity until a later selection
// succeeds.
type Selector struct {
	rejected map[ecs.Entity]string
}

func (s *Selector) Select(w *ecs.World, e ecs.Entity, a *animation.Animator, desired string) bool {
	if a == nil || desired == "" {
		return false
	}
	from := a.State()
	changed, err := a.Select(desired)
	if err != nil {
		if errors.Is(err, animation.ErrUnknownState) && s.rejected[e] != desired {
			log.Printf("animation: entity=%d select rejected: %v", e, err)
			if s.rejected == nil {
				s.rejected = make(map[ecs.Entity]string)
			}
			s.rejected[e] = desired
		}
		return false
	}
	delete(s.rejected, e)
	if !changed {
		return false
	}
	w.Events().Push(ecs.Event{
		Type: ecs.EventStateChanged,
		Data: ecs.StateChangedEvent{Entity: e, From: from, To: desired},
	})
	return true
}

// Prune forgets entities that no longer exist.
func (s *Selector) Prune(w *ecs.World) {
	pruneDead(w, s.rejected)
}

// pruneDead drops bookkeeping kept for destroyed entities.
func pruneDead[V any](w *ecs.World, m map[ecs.Entity]V) {
	for e := range m {
		if !w.IsAlive(e) {
			delete(m, e)
		}
	}
}
