package component

import (
	"image"
	"testing"
)

func TestVisualBindingFrameRect(t *testing.T) {
	cases := []struct {
		name    string
		binding VisualBinding
		index   int
		want    image.Rectangle
	}{
		{"first_frame", VisualBinding{FrameW: 32, FrameH: 32, Cols: 4}, 0, image.Rect(0, 0, 32, 32)},
		{"same_row", VisualBinding{FrameW: 32, FrameH: 32, Cols: 4}, 3, image.Rect(96, 0, 128, 32)},
		{"wraps_to_next_row", VisualBinding{FrameW: 16, FrameH: 24, Cols: 3}, 4, image.Rect(16, 24, 32, 48)},
		{"zero_cols_is_single_column", VisualBinding{FrameW: 8, FrameH: 8}, 2, image.Rect(0, 16, 8, 24)},
		{"negative_index_clamps", VisualBinding{FrameW: 8, FrameH: 8, Cols: 2}, -1, image.Rect(0, 0, 8, 8)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.binding.FrameRect(c.index); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestInputMoving(t *testing.T) {
	if (Input{}).Moving() {
		t.Fatalf("zero input should not be moving")
	}
	if !(Input{MoveY: -1}).Moving() {
		t.Fatalf("vertical input should be moving")
	}
}
