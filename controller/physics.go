package controller

import "github.com/milk9111/rollbrawler/common"

// PhysicsWorld is the narrow view of the physics backend the controller needs:
// one rigid body plus a box overlap query against the static world.
type PhysicsWorld interface {
	// Position is the body's reference point (the feet).
	Position() common.Vec3
	// OverlapBox reports whether any collider on a layer in mask overlaps the
	// axis-aligned box centered at center.
	OverlapBox(center, halfExtents common.Vec3, mask uint32) bool
	Velocity() common.Vec3
	SetVelocity(v common.Vec3)
	// AddAcceleration applies a mass independent acceleration during the next
	// physics step.
	AddAcceleration(a common.Vec3)
	Gravity() common.Vec3
}

// AnimationSink receives presentation signals. Implementations must not call
// back into the controller.
type AnimationSink interface {
	SetSpeed(sqrMagnitude float64)
	SetGrounded(grounded bool)
	SetFacing(horizontal, vertical float64)
	Trigger(name string)
}

const TriggerRoll = "Roll"

type nopSink struct{}

func (nopSink) SetSpeed(float64)           {}
func (nopSink) SetGrounded(bool)           {}
func (nopSink) SetFacing(float64, float64) {}
func (nopSink) Trigger(string)             {}
