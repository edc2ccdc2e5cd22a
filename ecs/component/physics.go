package component

import "github.com/milk9111/rollbrawler/physics"

// PhysicsBody stores the Chipmunk2D backed body and collider configuration.
type PhysicsBody struct {
	Body   *physics.Body
	Width  float64
	Height float64
	Depth  float64
	Mass   float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// StaticBox is a level collider, min/max corners in meters.
type StaticBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
	Layer            uint32
}

var StaticBoxComponent = NewComponent[StaticBox]()
