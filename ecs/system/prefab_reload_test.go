package system

import (
	"errors"
	"testing"

	"github.com/milk9111/knight/animation"
	"github.com/milk9111/knight/ecs"
)

func TestPrefabReloadRebindsMatchingEntities(t *testing.T) {
	w := ecs.NewWorld()
	old := testCatalog(t)
	_, player := spawnAnimated(t, w, old, "player.yaml")
	_, other := spawnAnimated(t, w, old, "knight_scripted.yaml")

	fresh, err := animation.NewCatalog(
		animation.Entry{Name: "Idle", Def: animation.Def{FrameDuration: 0.2, Start: 8, End: 9, Looping: true}},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	changes := make(chan string, 1)
	var loaded []string
	p := NewPrefabReloadSystem(changes, nil, NewStateScriptSystem())
	p.load = func(name string) (*animation.Catalog, error) {
		loaded = append(loaded, name)
		return fresh, nil
	}

	changes <- "prefabs/player.yaml"
	p.Update(w)

	if len(loaded) != 1 || loaded[0] != "player.yaml" {
		t.Fatalf("unexpected loads %v", loaded)
	}
	if player.Catalog() != fresh {
		t.Fatalf("player should use the reloaded catalog")
	}
	if player.Frame() != 8 {
		t.Fatalf("expected frame 8 after rebind, got %d", player.Frame())
	}
	if other.Catalog() != old {
		t.Fatalf("entity from another prefab should keep its catalog")
	}
}

func TestPrefabReloadKeepsCatalogOnFailure(t *testing.T) {
	cases := []struct {
		name string
		load func(string) (*animation.Catalog, error)
	}{
		{
			name: "load_error",
			load: func(string) (*animation.Catalog, error) {
				return nil, errors.New("bad yaml")
			},
		},
		{
			name: "state_missing",
			load: func(string) (*animation.Catalog, error) {
				return animation.NewCatalog(animation.Entry{
					Name: "Run",
					Def:  animation.Def{FrameDuration: 0.1, Start: 0, End: 1, Looping: true},
				})
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			old := testCatalog(t)
			_, a := spawnAnimated(t, w, old, "player.yaml")

			changes := make(chan string, 1)
			p := NewPrefabReloadSystem(changes, nil, NewStateScriptSystem())
			p.load = c.load

			changes <- "player.yaml"
			p.Update(w)

			if a.Catalog() != old || a.State() != "Idle" {
				t.Fatalf("animator should be unchanged")
			}
		})
	}
}

func TestPrefabReloadInvalidatesScripts(t *testing.T) {
	w := ecs.NewWorld()
	e := scriptedEntity(t, w)
	src := `desired_state = "Run"`
	scripts := &StateScriptSystem{load: func(string) ([]byte, error) {
		return []byte(src), nil
	}}
	scripts.Update(w)

	changes := make(chan string, 1)
	p := NewPrefabReloadSystem(changes, nil, scripts)
	p.load = func(string) (*animation.Catalog, error) {
		t.Fatalf("script change should not load a catalog")
		return nil, nil
	}

	src = `desired_state = "Walk"`
	changes <- "prefabs/scripts/state.tengo"
	p.Update(w)
	scripts.Update(w)

	if got := stateOf(t, w, e); got != "Walk" {
		t.Fatalf("expected Walk after script reload, got %q", got)
	}
}

func TestPrefabReloadClosedChannels(t *testing.T) {
	w := ecs.NewWorld()
	changes := make(chan string)
	errs := make(chan error, 1)
	errs <- errors.New("watch failed")
	close(changes)
	close(errs)

	p := NewPrefabReloadSystem(changes, errs, NewStateScriptSystem())
	p.Update(w)
	p.Update(w)

	if p.changes != nil || p.errs != nil {
		t.Fatalf("closed channels should be dropped")
	}
}
