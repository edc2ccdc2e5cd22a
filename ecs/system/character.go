package system

import (
	"time"

	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

// CharacterSampleSystem feeds each frame's input to the controllers. It runs
// once per frame, after the input systems.
type CharacterSampleSystem struct{}

func NewCharacterSampleSystem() *CharacterSampleSystem {
	return &CharacterSampleSystem{}
}

func (s *CharacterSampleSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterComponent, component.InputComponent, func(e ecs.Entity, ch *component.Character, input *component.Input) {
		if ch.Controller == nil {
			return
		}
		ch.Controller.Sample(*input)
	})
}

// CharacterTickSystem advances the controllers by one fixed physics tick. It
// runs before the physics step.
type CharacterTickSystem struct {
	dt time.Duration
}

func NewCharacterTickSystem(dt time.Duration) *CharacterTickSystem {
	return &CharacterTickSystem{dt: dt}
}

func (s *CharacterTickSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.CharacterComponent, func(e ecs.Entity, ch *component.Character) {
		if ch.Controller == nil {
			return
		}
		ch.Controller.Tick(s.dt)
	})
}
