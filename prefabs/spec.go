package prefabs

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultPlayer is the prefab the game spawns when no other is requested.
const DefaultPlayer = "player.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec[T](filename, data)
}

// ParseSpec decodes raw prefab yaml. Unknown keys are rejected so a typo in a
// hot-reloaded file is reported instead of silently ignored.
func ParseSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	Name         string          `yaml:"name"`
	MoveSpeed    float64         `yaml:"move_speed"`
	InitialState string          `yaml:"initial_state"`
	Transform    TransformSpec   `yaml:"transform"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
	Animation    AnimationSpec   `yaml:"animation"`
	Visuals      []VisualSpec    `yaml:"visuals"`
	Script       string          `yaml:"script"`
}

func LoadPlayerSpec(name string) (*PlayerSpec, error) {
	if name == "" {
		name = DefaultPlayer
	}
	spec, err := LoadSpec[PlayerSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// AnimationSpec lists state definitions in order. A list rather than a map
// keeps duplicate names legal; the later entry wins.
type AnimationSpec struct {
	Defs []AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Name          string  `yaml:"name"`
	Start         int     `yaml:"start"`
	End           int     `yaml:"end"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

// VisualSpec binds a sprite sheet to one animation state. Placeholder is the
// colour used when the sheet cannot be loaded.
type VisualSpec struct {
	State       string     `yaml:"state"`
	Sheet       string     `yaml:"sheet"`
	FrameW      int        `yaml:"frame_w"`
	FrameH      int        `yaml:"frame_h"`
	OriginX     float64    `yaml:"origin_x"`
	OriginY     float64    `yaml:"origin_y"`
	Placeholder *YAMLColor `yaml:"placeholder"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
