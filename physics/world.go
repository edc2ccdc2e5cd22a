package physics

import (
	"log"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rollbrawler/common"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// Collision layers used as Chipmunk filter categories.
const (
	LayerGround uint32 = 1 << iota
	LayerCharacter
)

type depthRange struct {
	min, max float64
}

// World owns the Chipmunk space. Chipmunk simulates the X/Y plane; depth (Z)
// is integrated here and clamped to the lane.
type World struct {
	space   *cp.Space
	gravity common.Vec3
	lane    depthRange

	depths map[*cp.Shape]depthRange
	bodies []*Body
}

// NewWorld creates a physics world. laneDepth is the full walkable depth,
// centered on Z = 0.
func NewWorld(gravity common.Vec3, laneDepth float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: gravity.X, Y: gravity.Y})

	if laneDepth <= 0 {
		laneDepth = 1
	}
	return &World{
		space:   space,
		gravity: gravity,
		lane:    depthRange{min: -laneDepth / 2, max: laneDepth / 2},
		depths:  make(map[*cp.Shape]depthRange),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *World) Gravity() common.Vec3 {
	return pw.gravity
}

// Lane returns the walkable depth range.
func (pw *World) Lane() (min, max float64) {
	return pw.lane.min, pw.lane.max
}

// AddStaticBox adds an axis-aligned static box spanning min..max on the given
// layer.
func (pw *World) AddStaticBox(min, max common.Vec3, layer uint32) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(layer), Mask: cp.ALL_CATEGORIES})
	pw.space.AddShape(shape)
	pw.depths[shape] = depthRange{min: min.Z, max: max.Z}
	return shape
}

// BodySpec describes a dynamic character body.
type BodySpec struct {
	// Feet is the bottom center of the body.
	Feet common.Vec3
	Size common.Vec3
	Mass float64
}

// AddBody creates a dynamic, non-rotating box body. Gravity from the space is
// ignored: whoever drives the body applies it through AddAcceleration.
func (pw *World) AddBody(spec BodySpec) *Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: spec.Feet.X, Y: spec.Feet.Y + spec.Size.Y/2})
	cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})

	shape := cp.NewBox(cpBody, spec.Size.X, spec.Size.Y, 0)
	// Horizontal speed is owned by the controller; contact friction would eat it.
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(LayerCharacter), Mask: cp.ALL_CATEGORIES})

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)

	b := &Body{
		world: pw,
		body:  cpBody,
		shape: shape,
		size:  spec.Size,
		z:     pw.clampDepth(spec.Feet.Z),
	}
	pw.bodies = append(pw.bodies, b)
	log.Printf("PhysicsWorld: AddBody size=%v mass=%v", spec.Size, mass)
	return b
}

// Step advances the simulation by dt.
func (pw *World) Step(dt time.Duration) {
	if pw == nil || pw.space == nil {
		return
	}
	secs := dt.Seconds()
	for _, b := range pw.bodies {
		b.vz += b.az * secs
		b.az = 0
		b.z = pw.clampDepth(b.z + b.vz*secs)
	}
	pw.space.Step(secs)
}

func (pw *World) clampDepth(z float64) float64 {
	return math.Max(pw.lane.min, math.Min(pw.lane.max, z))
}

// OverlapBox reports whether a shape on a layer in mask, other than the ones
// belonging to ignore, overlaps the box.
func (pw *World) OverlapBox(center, halfExtents common.Vec3, mask uint32, ignore *cp.Body) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	bb := cp.BB{
		L: center.X - halfExtents.X,
		B: center.Y - halfExtents.Y,
		R: center.X + halfExtents.X,
		T: center.Y + halfExtents.Y,
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
	zMin, zMax := center.Z-halfExtents.Z, center.Z+halfExtents.Z

	hit := false
	pw.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		if hit || (ignore != nil && shape.Body() == ignore) {
			return
		}
		if d, ok := pw.depths[shape]; ok && (zMax < d.min || zMin > d.max) {
			return
		}
		hit = true
	}, nil)
	return hit
}
