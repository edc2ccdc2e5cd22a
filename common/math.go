package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Vec3 is a world-space vector. X is right, Y is up, Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero  = Vec3{}
	Right = Vec3{X: 1}
	Up    = Vec3{Y: 1}
	Down  = Vec3{Y: -1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns v scaled to unit length. Vectors too small to normalize
// come back as zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-5 {
		return Zero
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool {
	return v == Zero
}

// Round returns v with each component rounded to the given number of decimals.
func (v Vec3) Round(decimals int) Vec3 {
	return Vec3{X: RoundTo(v.X, decimals), Y: RoundTo(v.Y, decimals), Z: RoundTo(v.Z, decimals)}
}

func RoundTo(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}

// CloseToZero reports whether |f| is under the epsilon used for "standing still"
// checks on vertical speed.
func CloseToZero(f float64) bool {
	return math.Abs(f) < 0.0001
}
