package animation

import "errors"

var (
	// ErrUnknownState is returned when a state name has no definition in the
	// animator's catalog. It is recoverable: the animator is left untouched.
	ErrUnknownState = errors.New("animation: unknown state")
	// ErrInvalidDefinition is returned while building a catalog.
	ErrInvalidDefinition = errors.New("animation: invalid definition")
	// ErrNegativeElapsed reports a negative tick delta. Callers clamp it to zero.
	ErrNegativeElapsed = errors.New("animation: negative elapsed time")
)
