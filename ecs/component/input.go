package component

// Input stores the per-tick snapshot of pressed movement keys as axes in
// [-1, 1]. Screen space: negative Y is up.
type Input struct {
	MoveX float64
	MoveY float64
}

// Moving reports whether any direction is held.
func (i Input) Moving() bool {
	return i.MoveX != 0 || i.MoveY != 0
}

var InputComponent = NewComponent[Input]()
