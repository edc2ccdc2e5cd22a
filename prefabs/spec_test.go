package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/controller"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedPlayerSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if spec.Controller.RollDuration != 260*time.Millisecond {
		t.Fatalf("roll duration = %v", spec.Controller.RollDuration)
	}

	cfg, err := spec.Controller.ToConfig(spec.Collider)
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	if cfg != controller.DefaultConfig() {
		t.Fatalf("embedded tuning drifted from defaults:\n got %+v\nwant %+v", cfg, controller.DefaultConfig())
	}
}

func TestControllerSpecToConfig(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg controller.Config)
		wantErr error
	}{
		{
			name: "empty_keeps_defaults",
			yaml: `{}`,
			check: func(t *testing.T, cfg controller.Config) {
				if cfg != controller.DefaultConfig() {
					t.Fatalf("got %+v", cfg)
				}
			},
		},
		{
			name: "durations_and_speeds",
			yaml: "roll_duration: 300ms\nattack_cooldown: 1s\nmove_speed: 5\n",
			check: func(t *testing.T, cfg controller.Config) {
				if cfg.RollDuration != 300*time.Millisecond || cfg.AttackCooldown != time.Second || cfg.MoveSpeed != 5 {
					t.Fatalf("got %+v", cfg)
				}
				if cfg.RollCooldown != 500*time.Millisecond {
					t.Fatalf("unset roll cooldown should default, got %v", cfg.RollCooldown)
				}
			},
		},
		{
			name: "ground_box_height",
			yaml: "ground_box_height: 0.2\n",
			check: func(t *testing.T, cfg controller.Config) {
				want := common.Vec3{X: 0.95, Y: 0.2, Z: 0.95}
				if cfg.GroundBoxSize != want {
					t.Fatalf("ground box = %v, want %v", cfg.GroundBoxSize, want)
				}
				if cfg.GroundBoxOffset != (common.Vec3{Y: -0.1}) {
					t.Fatalf("ground offset = %v", cfg.GroundBoxOffset)
				}
			},
		},
		{
			name:    "invalid_max_fall_speed",
			yaml:    "max_fall_speed: 3\n",
			wantErr: controller.ErrInvalidConfig,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec ControllerSpec
			if err := yaml.Unmarshal([]byte(c.yaml), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			cfg, err := spec.ToConfig(ColliderSpec{})
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToConfig: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadLevelSpec(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"default", ""},
		{"basename", "level"},
		{"with_suffix", "level.yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadLevelSpec(c.in)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(spec.Platforms) == 0 {
				t.Fatalf("no platforms")
			}
			if spec.Gravity != -9.81 || spec.LaneDepth != 4 {
				t.Fatalf("gravity %v lane %v", spec.Gravity, spec.LaneDepth)
			}
			min, max := spec.Platforms[0].Bounds()
			if min.X >= max.X || min.Y >= max.Y {
				t.Fatalf("first platform bounds %v..%v", min, max)
			}
		})
	}

	if _, err := LoadLevelSpec("missing"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, "level.yaml"), []byte("name: override\nplatforms:\n  - min: [0, 0, 0]\n    max: [1, 1, 1]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadLevelSpec("level")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "override" {
		t.Fatalf("name = %q, want disk override", spec.Name)
	}
	if spec.Gravity != common.Gravity.Y || spec.LaneDepth != 4 {
		t.Fatalf("missing fields should default, got gravity %v lane %v", spec.Gravity, spec.LaneDepth)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#ff0000"`, color.NRGBA{R: 255, A: 255}, false},
		{`"00ff0080"`, color.NRGBA{G: 255, A: 128}, false},
		{`"#fff"`, nil, true},
		{`[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %v, want %v", got.Color, c.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.ColorOr(color.White) != color.White {
		t.Fatalf("nil color should fall back")
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{Name, "/tmp/x/prefabs/player.yaml", "player.yaml"},
		{Name, "prefabs/scripts/autopilot.tengo", "scripts/autopilot.tengo"},
		{cleanScriptPath, "autopilot.tengo", "scripts/autopilot.tengo"},
		{cleanScriptPath, "prefabs/scripts/autopilot.tengo", "scripts/autopilot.tengo"},
		{cleanPrefabPath, "prefabs/level.yaml", "level.yaml"},
	}
	for _, c := range cases {
		if got := c.fn(c.in); got != c.want {
			t.Errorf("%q -> %q, want %q", c.in, got, c.want)
		}
	}
}
