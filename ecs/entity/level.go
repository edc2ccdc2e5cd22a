package entity

import (
	"fmt"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/physics"
	"github.com/milk9111/rollbrawler/prefabs"
)

// NewLevel creates the physics world for spec and one entity per platform.
func NewLevel(w *ecs.World, spec *prefabs.LevelSpec) (*physics.World, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: nil spec")
	}
	pw := physics.NewWorld(common.Vec3{Y: spec.Gravity}, spec.LaneDepth)

	for i, p := range spec.Platforms {
		min, max := p.Bounds()
		if min.X >= max.X || min.Y >= max.Y || min.Z > max.Z {
			return nil, fmt.Errorf("level: platform %d: empty bounds %v..%v", i, min, max)
		}
		layer := p.Layer
		if layer == 0 {
			layer = physics.LayerGround
		}
		pw.AddStaticBox(min, max, layer)

		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.StaticBoxComponent, &component.StaticBox{
			MinX: min.X, MinY: min.Y, MinZ: min.Z,
			MaxX: max.X, MaxY: max.Y, MaxZ: max.Z,
			Layer: layer,
		}); err != nil {
			return nil, fmt.Errorf("level: add platform %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Tint: p.Color.ColorOr(nil)}); err != nil {
			return nil, fmt.Errorf("level: add platform %d sprite: %w", i, err)
		}
	}
	return pw, nil
}
