package component

// Transform is a world position in meters, Y up. Z is the lane depth.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
