package controller

import (
	"fmt"

	"github.com/milk9111/rollbrawler/common"
)

// Snapshot is a read-only view of the controller for debug overlays.
type Snapshot struct {
	Tick         uint64
	Status       Status
	Position     common.Vec3
	Velocity     common.Vec3
	Facing       common.Vec3
	Grounded     bool
	ChargedRoll  bool
	GravityScale float64
	Actions      [actionCount]ActionState
}

// Snapshot reads the body and rounds position and velocity to two decimals.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Tick:         c.ticks,
		Status:       c.status,
		Position:     c.body.Position().Round(2),
		Velocity:     c.body.Velocity().Round(2),
		Facing:       c.facing,
		Grounded:     c.grounded,
		ChargedRoll:  c.chargedRoll,
		GravityScale: c.gravityScale,
		Actions:      c.actions,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("Velocity : (%g, %g, %g)\nPosition : (%g, %g, %g)\nStatus : %s  Grounded : %v\nJump : %s  Roll : %s  Attack : %s",
		s.Velocity.X, s.Velocity.Y, s.Velocity.Z,
		s.Position.X, s.Position.Y, s.Position.Z,
		s.Status, s.Grounded,
		s.Actions[ActionJump].Phase(), s.Actions[ActionRoll].Phase(), s.Actions[ActionAttack].Phase(),
	)
}
