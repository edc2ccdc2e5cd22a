package entity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/controller"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/ecs/entity"
	"github.com/milk9111/rollbrawler/ecs/system"
	"github.com/milk9111/rollbrawler/prefabs"
)

func TestBuildScene(t *testing.T) {
	scene, err := entity.BuildScene("", entity.PlayerOptions{})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}

	w := scene.World
	for _, h := range []component.Kind{
		component.PlayerTagComponent.Kind(),
		component.CharacterComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.InputComponent.Kind(),
		component.AnimationComponent.Kind(),
	} {
		if !w.HasComponent(scene.Player, h) {
			t.Fatalf("player missing component %d", h.ID())
		}
	}
	if ecs.Has(w, scene.Player, component.ScriptedInputComponent) {
		t.Fatalf("player.yaml sets no script, player should use devices")
	}
	if got := len(w.Query(component.StaticBoxComponent.Kind())); got != len(scene.Level.Platforms) {
		t.Fatalf("platform entities = %d, want %d", got, len(scene.Level.Platforms))
	}

	ch, _ := ecs.Get(w, scene.Player, component.CharacterComponent)
	if ch.Controller.Facing() != common.Right {
		t.Fatalf("facing = %v, want right", ch.Controller.Facing())
	}
	if ch.Controller.Config() != controller.DefaultConfig() {
		t.Fatalf("embedded player.yaml should load the default tuning")
	}
	anim, _ := ecs.Get(w, scene.Player, component.AnimationComponent)
	if anim.Horizontal != 1 {
		t.Fatalf("animation should start facing right, horizontal = %v", anim.Horizontal)
	}
}

func TestScriptedSceneRuns(t *testing.T) {
	scene, err := entity.BuildScene("", entity.PlayerOptions{Script: "autopilot.tengo"})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	loop := system.NewPlayerLoop(scene.Physics, system.LoopOptions{Scripts: system.NewScriptedInputSystem()})

	start, _ := ecs.Get(scene.World, scene.Player, component.TransformComponent)
	startX := start.X

	sawJump := false
	for f := 0; f < 100; f++ {
		loop.Advance(scene.World)
		ch, _ := ecs.Get(scene.World, scene.Player, component.CharacterComponent)
		if ch.Controller.Action(controller.ActionJump).Doing() {
			sawJump = true
		}
	}

	end, _ := ecs.Get(scene.World, scene.Player, component.TransformComponent)
	if end.X < startX+3 {
		t.Fatalf("autopilot should run right: x %v -> %v", startX, end.X)
	}
	if !sawJump {
		t.Fatalf("autopilot jump at frame 30 never started")
	}
	ch, _ := ecs.Get(scene.World, scene.Player, component.CharacterComponent)
	if ch.Controller.Status() != controller.StatusActive {
		t.Fatalf("status = %v", ch.Controller.Status())
	}
}

func TestReloadPlayerTuning(t *testing.T) {
	scene, err := entity.BuildScene("", entity.PlayerOptions{})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}

	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	cases := []struct {
		name      string
		yaml      string
		wantErr   bool
		wantSpeed float64
	}{
		{"faster", "controller:\n  move_speed: 12\n", false, 12},
		{"invalid_keeps_last_good", "controller:\n  max_fall_speed: 5\n", true, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte(c.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			err := scene.ReloadPlayerTuning()
			if (err != nil) != c.wantErr {
				t.Fatalf("reload err = %v, wantErr %v", err, c.wantErr)
			}
			ch, _ := ecs.Get(scene.World, scene.Player, component.CharacterComponent)
			if got := ch.Controller.Config().MoveSpeed; got != c.wantSpeed {
				t.Fatalf("move speed = %v, want %v", got, c.wantSpeed)
			}
		})
	}
}

func TestNewLevelRejectsEmptyPlatform(t *testing.T) {
	spec := &prefabs.LevelSpec{
		Gravity:   -9.81,
		LaneDepth: 4,
		Platforms: []prefabs.PlatformSpec{{Min: [3]float64{0, 0, 0}, Max: [3]float64{0, 1, 1}}},
	}
	if _, err := entity.NewLevel(ecs.NewWorld(), spec); err == nil {
		t.Fatalf("expected error for zero-width platform")
	}
}
