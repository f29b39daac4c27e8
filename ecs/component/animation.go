package component

import "github.com/milk9111/knight/animation"

// Animation attaches per-entity playback state. Prefab names the prefab file
// the catalog was built from so hot reloads can find the entities to rebind.
type Animation struct {
	Animator *animation.Animator
	Prefab   string
}

var AnimationComponent = NewComponent[Animation]()
