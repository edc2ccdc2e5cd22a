package controller

import "github.com/milk9111/rollbrawler/common"

// Input is one frame's input snapshot. Pressed fields are edges for this
// frame; JumpHeld is the level.
type Input struct {
	MoveX float64
	MoveZ float64

	JumpPressed   bool
	JumpHeld      bool
	RollPressed   bool
	AttackPressed bool

	// Debug only.
	HitPressed     bool
	DiePressed     bool
	RecoverPressed bool
}

// Direction returns the normalized move direction on the ground plane.
func (in Input) Direction() common.Vec3 {
	return common.Vec3{X: in.MoveX, Z: in.MoveZ}.Normalize()
}

// Intent is the set of action requests latched since the last tick.
type Intent struct {
	Jump   bool
	Roll   bool
	Attack bool
}

// Latch ORs the frame's edges into the intent so edges seen on frames between
// two physics ticks survive until the next tick consumes them.
func (i *Intent) Latch(in Input) {
	if in.JumpPressed {
		i.Jump = true
	}
	if in.RollPressed {
		i.Roll = true
	}
	if in.AttackPressed {
		i.Attack = true
	}
}

func (i *Intent) Clear() {
	*i = Intent{}
}

func (i Intent) wants(a Action) bool {
	switch a {
	case ActionJump:
		return i.Jump
	case ActionRoll:
		return i.Roll
	case ActionAttack:
		return i.Attack
	}
	return false
}
