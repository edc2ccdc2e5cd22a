package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits are the slot id, the high
// 32 bits the generation. The zero Entity is never alive.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders id/generation, which is what log lines want.
func (e Entity) String() string {
	if e == 0 {
		return "none"
	}
	return fmt.Sprintf("%d/%d", e.id(), e.generation())
}
