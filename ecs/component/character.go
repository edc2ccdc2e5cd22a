package component

import "github.com/milk9111/rollbrawler/controller"

// Character binds an entity to its movement controller.
type Character struct {
	Controller *controller.Controller
	SpawnX     float64
	SpawnY     float64
}

var CharacterComponent = NewComponent[Character]()
