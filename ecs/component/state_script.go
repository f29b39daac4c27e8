package component

// StateScript names a tengo script under prefabs/scripts that picks the
// entity's desired animation state each tick.
type StateScript struct {
	Path string
}

var StateScriptComponent = NewComponent[StateScript]()
