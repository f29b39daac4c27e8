package system

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
	"github.com/milk9111/knight/ecs/component"
	"github.com/milk9111/knight/prefabs"
)

// PrefabReloadSystem applies prefab edits between ticks. A changed prefab
// gets its catalog rebuilt and rebound to every entity spawned from it, and a
// changed script is recompiled on its next use. A prefab that fails to build
// leaves the running catalog in place.
type PrefabReloadSystem struct {
	changes <-chan string
	errs    <-chan error
	scripts *StateScriptSystem
	load    func(name string) (*animation.Catalog, error)
}

func NewPrefabReloadSystem(changes <-chan string, errs <-chan error, scripts *StateScriptSystem) *PrefabReloadSystem {
	return &PrefabReloadSystem{
		changes: changes,
		errs:    errs,
		scripts: scripts,
		load:    prefabs.LoadCatalog,
	}
}

func (p *PrefabReloadSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	for {
		select {
		case name, ok := <-p.changes:
			if !ok {
				p.changes = nil
				continue
			}
			p.reload(w, name)
		case err, ok := <-p.errs:
			if !ok {
				p.errs = nil
				continue
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (p *PrefabReloadSystem) reload(w *ecs.World, name string) {
	if strings.EqualFold(filepath.Ext(name), ".tengo") {
		p.scripts.Invalidate(name)
		log.Printf("prefabs: script %s changed", name)
		return
	}

	name = prefabs.Name(name)
	entities := w.Query(component.AnimationComponent.Kind())
	var targets []*animation.Animator
	for _, e := range entities {
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
		if anim.Animator != nil && prefabs.Name(anim.Prefab) == name {
			targets = append(targets, anim.Animator)
		}
	}
	if len(targets) == 0 {
		return
	}

	catalog, err := p.load(name)
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	rebound := 0
	for _, a := range targets {
		if err := a.Rebind(catalog); err != nil {
			log.Printf("prefabs: reload %s: keep old catalog: %v", name, err)
			continue
		}
		rebound++
	}
	log.Printf("prefabs: reloaded %s (%d animators)", name, rebound)
}
