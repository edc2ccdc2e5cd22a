package entity

import (
	"fmt"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/physics"
	"github.com/milk9111/rollbrawler/prefabs"
)

// Scene is a loaded level with its player and camera.
type Scene struct {
	World   *ecs.World
	Physics *physics.World
	Player  ecs.Entity
	Camera  ecs.Entity
	Level   *prefabs.LevelSpec
}

// BuildScene loads the level and player prefabs into a fresh world.
func BuildScene(levelName string, opts PlayerOptions) (*Scene, error) {
	level, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	pw, err := NewLevel(w, level)
	if err != nil {
		return nil, err
	}

	spawn := common.Vec3{X: level.Spawn.X, Y: level.Spawn.Y, Z: level.Spawn.Z}
	player, err := NewPlayer(w, pw, playerSpec, spawn, opts)
	if err != nil {
		return nil, err
	}
	camera, err := NewCameraAt(w, level.Camera, spawn.X, spawn.Y)
	if err != nil {
		return nil, err
	}

	return &Scene{World: w, Physics: pw, Player: player, Camera: camera, Level: level}, nil
}

// ReloadPlayerTuning re-reads player.yaml and swaps the controller config
// in place. Action state and position are kept.
func (s *Scene) ReloadPlayerTuning() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	cfg, err := spec.Controller.ToConfig(spec.Collider)
	if err != nil {
		return err
	}
	ch, ok := ecs.Get(s.World, s.Player, component.CharacterComponent)
	if !ok || ch.Controller == nil {
		return fmt.Errorf("scene: player has no controller")
	}
	return ch.Controller.Reconfigure(cfg)
}
