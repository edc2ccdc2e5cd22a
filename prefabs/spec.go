package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/controller"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name       string         `yaml:"name"`
	Transform  TransformSpec  `yaml:"transform"`
	Collider   ColliderSpec   `yaml:"collider"`
	Controller ControllerSpec `yaml:"controller"`
	Sprite     SpriteSpec     `yaml:"sprite"`
	Animation  AnimationSpec  `yaml:"animation"`
	Input      InputSpec      `yaml:"input"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ControllerSpec is the tuning block of player.yaml. Zero fields keep the
// controller defaults.
type ControllerSpec struct {
	MoveSpeed          float64       `yaml:"move_speed"`
	JumpSpeed          float64       `yaml:"jump_speed"`
	RollSpeed          float64       `yaml:"roll_speed"`
	RollDuration       time.Duration `yaml:"roll_duration"`
	RollCooldown       time.Duration `yaml:"roll_cooldown"`
	AttackCooldown     time.Duration `yaml:"attack_cooldown"`
	FallMultiplier     float64       `yaml:"fall_multiplier"`
	JumpLowMultiplier  float64       `yaml:"jump_low_multiplier"`
	JumpHighMultiplier float64       `yaml:"jump_high_multiplier"`
	MaxFallSpeed       float64       `yaml:"max_fall_speed"`
	GroundBoxHeight    float64       `yaml:"ground_box_height"`
	GroundMask         uint32        `yaml:"ground_mask"`
}

// ToConfig builds a validated controller config for a collider of the given
// size.
func (s ControllerSpec) ToConfig(collider ColliderSpec) (controller.Config, error) {
	cfg := controller.DefaultConfig()
	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setD := func(dst *time.Duration, v time.Duration) {
		if v != 0 {
			*dst = v
		}
	}
	setF(&cfg.MoveSpeed, s.MoveSpeed)
	setF(&cfg.JumpSpeed, s.JumpSpeed)
	setF(&cfg.RollSpeed, s.RollSpeed)
	setD(&cfg.RollDuration, s.RollDuration)
	setD(&cfg.RollCooldown, s.RollCooldown)
	setD(&cfg.AttackCooldown, s.AttackCooldown)
	setF(&cfg.FallMultiplier, s.FallMultiplier)
	setF(&cfg.JumpLowMultiplier, s.JumpLowMultiplier)
	setF(&cfg.JumpHighMultiplier, s.JumpHighMultiplier)
	setF(&cfg.MaxFallSpeed, s.MaxFallSpeed)
	if s.GroundMask != 0 {
		cfg.GroundMask = s.GroundMask
	}

	height := s.GroundBoxHeight
	if height == 0 {
		height = cfg.GroundBoxSize.Y
	}
	size := collider.Size()
	if size.IsZero() {
		size = DefaultColliderSize
	}
	cfg.GroundBoxSize, cfg.GroundBoxOffset = controller.GroundBoxFromCollider(size, height)

	if err := cfg.Validate(); err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: controller spec: %w", err)
	}
	return cfg, nil
}

type InputSpec struct {
	// Script, when set, drives the player from prefabs/scripts instead of
	// the keyboard.
	Script string `yaml:"script"`
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

// DefaultColliderSize is used when a prefab omits its collider.
var DefaultColliderSize = common.Vec3{X: 1, Y: 2, Z: 1}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Mass   float64 `yaml:"mass"`
}

func (c ColliderSpec) Size() common.Vec3 {
	return common.Vec3{X: c.Width, Y: c.Height, Z: c.Depth}
}

type SpriteSpec struct {
	Color   *YAMLColor `yaml:"color"`
	OriginX float64    `yaml:"origin_x"`
	OriginY float64    `yaml:"origin_y"`
}

type AnimationSpec struct {
	FrameW  int                         `yaml:"frame_w"`
	FrameH  int                         `yaml:"frame_h"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type LevelSpec struct {
	Name      string         `yaml:"name"`
	Gravity   float64        `yaml:"gravity"`
	LaneDepth float64        `yaml:"lane_depth"`
	Spawn     TransformSpec  `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Camera    CameraSpec     `yaml:"camera"`
}

// LoadLevelSpec loads levels by basename, with or without the .yaml suffix.
func LoadLevelSpec(name string) (*LevelSpec, error) {
	if name == "" {
		name = "level"
	}
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Gravity == 0 {
		spec.Gravity = common.Gravity.Y
	}
	if spec.LaneDepth <= 0 {
		spec.LaneDepth = 4
	}
	return &spec, nil
}

// PlatformSpec is an axis-aligned box given by its min and max corners.
type PlatformSpec struct {
	Min   [3]float64 `yaml:"min"`
	Max   [3]float64 `yaml:"max"`
	Layer uint32     `yaml:"layer"`
	Color *YAMLColor `yaml:"color"`
}

func (p PlatformSpec) Bounds() (min, max common.Vec3) {
	return common.Vec3{X: p.Min[0], Y: p.Min[1], Z: p.Min[2]},
		common.Vec3{X: p.Max[0], Y: p.Max[1], Z: p.Max[2]}
}

type CameraSpec struct {
	Target     string  `yaml:"target"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
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

// ColorOr returns the parsed color or fallback when unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
