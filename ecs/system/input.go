package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

const stickDeadzone = 0.2

// deviceState is the raw device reading for one frame.
type deviceState struct {
	left, right, up, down bool
	stickX, stickY        float64

	jumpHeld    bool
	jumpPressed bool
	rollPressed bool
	attack      bool

	hit, die, recover bool
}

// InputSystem writes keyboard and gamepad state into every Input component
// not driven by a script.
type InputSystem struct {
	read func() deviceState
}

func NewInputSystem() *InputSystem {
	return &InputSystem{read: readDevices}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := mapInput(i.read())

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		if ecs.Has(w, e, component.ScriptedInputComponent) {
			return
		}
		*input = in
	})
}

func readDevices() deviceState {
	s := deviceState{
		left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		jumpHeld:    ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeySpace),
		jumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		rollPressed: inpututil.IsKeyJustPressed(ebiten.KeyC),
		attack:      inpututil.IsKeyJustPressed(ebiten.KeyX),
		hit:         inpututil.IsKeyJustPressed(ebiten.KeyH),
		die:         inpututil.IsKeyJustPressed(ebiten.KeyK),
		recover:     inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		s.stickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Stick up is negative.
		s.stickY = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		s.jumpHeld = s.jumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.jumpPressed = s.jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.rollPressed = s.rollPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		s.attack = s.attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
	return s
}

// mapInput turns device state into the controller's input snapshot. The
// stick overrides the keys outside its deadzone.
func mapInput(s deviceState) component.Input {
	moveX, moveZ := 0.0, 0.0
	if s.left {
		moveX -= 1
	}
	if s.right {
		moveX += 1
	}
	if s.up {
		moveZ += 1
	}
	if s.down {
		moveZ -= 1
	}
	if math.Hypot(s.stickX, s.stickY) > stickDeadzone {
		moveX, moveZ = s.stickX, s.stickY
	}

	return component.Input{
		MoveX:          moveX,
		MoveZ:          moveZ,
		JumpPressed:    s.jumpPressed,
		JumpHeld:       s.jumpHeld,
		RollPressed:    s.rollPressed,
		AttackPressed:  s.attack,
		HitPressed:     s.hit,
		DiePressed:     s.die,
		RecoverPressed: s.recover,
	}
}
