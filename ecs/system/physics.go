package system

import (
	"time"

	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/physics"
)

// PhysicsSystem steps the physics world by a fixed delta and copies body
// positions back into transforms.
type PhysicsSystem struct {
	world *physics.World
	dt    time.Duration
}

func NewPhysicsSystem(world *physics.World, dt time.Duration) *PhysicsSystem {
	return &PhysicsSystem{world: world, dt: dt}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.world == nil || w == nil {
		return
	}

	ps.world.Step(ps.dt)
	SyncTransforms(w)
}

// SyncTransforms copies every body's feet position into its transform.
func SyncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		p := pb.Body.Position()
		t.X, t.Y, t.Z = p.X, p.Y, p.Z
	})
}
