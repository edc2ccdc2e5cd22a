package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter maps physics units to screen pixels.
	PixelsPerMeter = 48.0

	// TPS is the ebiten frame rate; input is sampled once per frame.
	TPS = 60
)

// FrameDelta is the wall time covered by one ebiten Update.
const FrameDelta = time.Second / TPS

// FixedDelta is the 50 Hz physics tick. The controller tuning assumes it,
// and it does not line up with frames.
const FixedDelta = 20 * time.Millisecond

// Gravity is the world gravity acceleration in m/s².
var Gravity = Vec3{Y: -9.81}
