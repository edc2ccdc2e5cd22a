package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollbrawler/controller"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animation holds the playing clip and the parameters the character
// controller publishes each frame. It implements controller.AnimationSink.
type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool

	Speed      float64
	OnGround   bool
	Horizontal float64
	Vertical   float64

	triggers []string
}

var AnimationComponent = NewComponent[Animation]()

var _ controller.AnimationSink = (*Animation)(nil)

func (a *Animation) SetSpeed(sqrMagnitude float64) { a.Speed = sqrMagnitude }
func (a *Animation) SetGrounded(grounded bool)     { a.OnGround = grounded }

func (a *Animation) SetFacing(horizontal, vertical float64) {
	a.Horizontal = horizontal
	a.Vertical = vertical
}

func (a *Animation) Trigger(name string) {
	a.triggers = append(a.triggers, name)
}

// TakeTriggers returns and clears the triggers fired since the last call.
func (a *Animation) TakeTriggers() []string {
	t := a.triggers
	a.triggers = nil
	return t
}

// Play switches to clip name, restarting it unless it is already playing.
func (a *Animation) Play(name string) {
	if a.Current == name && a.Playing {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}
