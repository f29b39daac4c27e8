package animation

import (
	"fmt"
	"math"
)

// Def is one named playback sequence inside a sprite sheet. Start and End are
// inclusive absolute frame indices; FrameDuration is in seconds.
type Def struct {
	FrameDuration float64
	Start         int
	End           int
	Looping       bool
}

// NumFrames returns the number of frames in the sequence.
func (d Def) NumFrames() int {
	return d.End - d.Start + 1
}

// Validate reports why d cannot be played, wrapping ErrInvalidDefinition.
func (d Def) Validate() error {
	switch {
	case d.Start < 0:
		return fmt.Errorf("%w: start %d is negative", ErrInvalidDefinition, d.Start)
	case d.End < d.Start:
		return fmt.Errorf("%w: end %d before start %d", ErrInvalidDefinition, d.End, d.Start)
	case math.IsNaN(d.FrameDuration) || math.IsInf(d.FrameDuration, 0):
		return fmt.Errorf("%w: frame duration %v is not finite", ErrInvalidDefinition, d.FrameDuration)
	case d.FrameDuration <= 0:
		return fmt.Errorf("%w: frame duration %v must be positive", ErrInvalidDefinition, d.FrameDuration)
	}
	return nil
}
