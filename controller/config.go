package controller

import (
	"fmt"
	"time"

	"github.com/milk9111/rollbrawler/common"
)

// Config holds the tuning for one controller. It is copied into the
// controller at construction and never mutated afterwards.
type Config struct {
	// Movement
	MoveSpeed float64

	// Fall with style
	MaxFallSpeed       float64
	FallMultiplier     float64
	JumpLowMultiplier  float64
	JumpHighMultiplier float64

	// Jumping
	JumpSpeed float64

	// Roll
	RollSpeed    float64
	RollDuration time.Duration
	RollCooldown time.Duration

	// Combat
	AttackCooldown time.Duration

	// Environment check
	GroundBoxSize   common.Vec3
	GroundBoxOffset common.Vec3
	GroundMask      uint32
}

const (
	defaultGroundBoxHeight = 0.1
	groundBoxInset         = 0.05
)

// DefaultConfig returns the reference tuning for a one meter wide character.
func DefaultConfig() Config {
	size, offset := GroundBoxFromCollider(common.Vec3{X: 1, Y: 2, Z: 1}, defaultGroundBoxHeight)
	return Config{
		MoveSpeed:          8.3,
		MaxFallSpeed:       -20.9,
		FallMultiplier:     4.5,
		JumpLowMultiplier:  10,
		JumpHighMultiplier: 3.75,
		JumpSpeed:          20,
		RollSpeed:          20,
		RollDuration:       260 * time.Millisecond,
		RollCooldown:       500 * time.Millisecond,
		AttackCooldown:     400 * time.Millisecond,
		GroundBoxSize:      size,
		GroundBoxOffset:    offset,
		GroundMask:         1,
	}
}

// GroundBoxFromCollider derives the ground sensor from the character collider:
// a thin slab slightly narrower than the collider, hanging just under the feet.
func GroundBoxFromCollider(colliderSize common.Vec3, height float64) (size, offset common.Vec3) {
	size = common.Vec3{X: colliderSize.X - groundBoxInset, Y: height, Z: colliderSize.Z - groundBoxInset}
	offset = common.Down.Scale(size.Y * 0.5)
	return size, offset
}

// Validate reports the first field that would make the controller misbehave.
func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, c.MoveSpeed)
	case c.JumpSpeed < 0:
		return fmt.Errorf("%w: jump speed %v is negative", ErrInvalidConfig, c.JumpSpeed)
	case c.RollSpeed < 0:
		return fmt.Errorf("%w: roll speed %v is negative", ErrInvalidConfig, c.RollSpeed)
	case c.RollDuration <= 0:
		return fmt.Errorf("%w: roll duration %v must be positive", ErrInvalidConfig, c.RollDuration)
	case c.RollCooldown < 0:
		return fmt.Errorf("%w: roll cooldown %v is negative", ErrInvalidConfig, c.RollCooldown)
	case c.AttackCooldown < 0:
		return fmt.Errorf("%w: attack cooldown %v is negative", ErrInvalidConfig, c.AttackCooldown)
	case c.MaxFallSpeed >= 0:
		return fmt.Errorf("%w: max fall speed %v must be negative", ErrInvalidConfig, c.MaxFallSpeed)
	case c.FallMultiplier < 0 || c.JumpLowMultiplier < 0 || c.JumpHighMultiplier < 0:
		return fmt.Errorf("%w: gravity multipliers must not be negative", ErrInvalidConfig)
	case c.GroundBoxSize.X <= 0 || c.GroundBoxSize.Y <= 0 || c.GroundBoxSize.Z <= 0:
		return fmt.Errorf("%w: ground box size %v must be positive", ErrInvalidConfig, c.GroundBoxSize)
	case c.GroundMask == 0:
		return fmt.Errorf("%w: ground mask is empty", ErrInvalidConfig)
	}
	return nil
}
