package component

// Player carries per-player tuning read from the prefab.
type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()

// PlayerTag marks entities driven by local input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
