package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rollbrawler/common"
)

// Body is a character body in a World. Position is the feet: the bottom
// center of the box.
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	size  common.Vec3

	z, vz, az float64
}

func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Shape() *cp.Shape {
	return b.shape
}

func (b *Body) Size() common.Vec3 {
	return b.size
}

func (b *Body) Position() common.Vec3 {
	p := b.body.Position()
	return common.Vec3{X: p.X, Y: p.Y - b.size.Y/2, Z: b.z}
}

func (b *Body) SetPosition(feet common.Vec3) {
	b.body.SetPosition(cp.Vector{X: feet.X, Y: feet.Y + b.size.Y/2})
	b.z = b.world.clampDepth(feet.Z)
}

func (b *Body) Velocity() common.Vec3 {
	v := b.body.Velocity()
	return common.Vec3{X: v.X, Y: v.Y, Z: b.vz}
}

func (b *Body) SetVelocity(v common.Vec3) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
	b.vz = v.Z
}

// AddAcceleration queues a mass independent acceleration for the next Step.
func (b *Body) AddAcceleration(a common.Vec3) {
	m := b.body.Mass()
	b.body.SetForce(b.body.Force().Add(cp.Vector{X: a.X * m, Y: a.Y * m}))
	b.az += a.Z
}

func (b *Body) OverlapBox(center, halfExtents common.Vec3, mask uint32) bool {
	return b.world.OverlapBox(center, halfExtents, mask, b.body)
}

func (b *Body) Gravity() common.Vec3 {
	return b.world.Gravity()
}
