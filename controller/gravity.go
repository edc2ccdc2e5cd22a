package controller

// GravityMultiplier picks the gravity scale for the current vertical speed.
// Falling uses the fall multiplier; rising uses the high jump multiplier while
// jump is held and the low one otherwise, which cuts short hops.
func GravityMultiplier(cfg Config, vy float64, jumpHeld bool) float64 {
	if vy <= 0 {
		return cfg.FallMultiplier
	}
	if jumpHeld {
		return cfg.JumpHighMultiplier
	}
	return cfg.JumpLowMultiplier
}

// ClampFallSpeed limits vy so that vy plus this tick's gravity delta never
// drops below floor. Only the excess past the floor is cancelled.
func ClampFallSpeed(vy, delta, floor float64) float64 {
	if vy+delta < floor {
		return floor - delta
	}
	return vy
}
