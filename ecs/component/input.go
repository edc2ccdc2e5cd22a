package component

import "github.com/milk9111/rollbrawler/controller"

// Input stores per-frame input state for an entity.
type Input = controller.Input

var InputComponent = NewComponent[Input]()

// ScriptedInput replaces device input with a tengo script. The script sees
// `frame` (int) and must set the move_x, move_z, jump, jump_held, roll and
// attack globals.
type ScriptedInput struct {
	Path string
}

var ScriptedInputComponent = NewComponent[ScriptedInput]()
