package system

import (
	"time"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/physics"
)

// Loop runs frame systems once per Advance and tick systems at a fixed rate
// out of the accumulated frame time. Late systems run after the ticks of a
// frame.
type Loop struct {
	Frame *ecs.Scheduler
	Tick  *ecs.Scheduler
	Late  *ecs.Scheduler

	FrameDelta time.Duration
	TickDelta  time.Duration

	acc   time.Duration
	ticks uint64
}

// LoopOptions selects the input sources of a player loop.
type LoopOptions struct {
	// Devices reads keyboard and gamepad. Off for headless runs.
	Devices bool
	Scripts *ScriptedInputSystem
}

// NewPlayerLoop assembles the standard systems around pw.
func NewPlayerLoop(pw *physics.World, opts LoopOptions) *Loop {
	frame := ecs.NewScheduler()
	if opts.Devices {
		frame.Add(NewInputSystem())
	}
	if opts.Scripts != nil {
		frame.Add(opts.Scripts)
	}
	frame.Add(NewCharacterSampleSystem())

	return &Loop{
		Frame:      frame,
		Tick:       ecs.NewScheduler(NewCharacterTickSystem(common.FixedDelta), NewPhysicsSystem(pw, common.FixedDelta)),
		Late:       ecs.NewScheduler(NewAnimationSystem(), NewCameraSystem()),
		FrameDelta: common.FrameDelta,
		TickDelta:  common.FixedDelta,
	}
}

// Advance runs one frame and returns the number of ticks it ran.
func (l *Loop) Advance(w *ecs.World) int {
	if l.Frame != nil {
		l.Frame.Update(w)
	}

	n := 0
	l.acc += l.FrameDelta
	for l.TickDelta > 0 && l.acc >= l.TickDelta {
		l.acc -= l.TickDelta
		if l.Tick != nil {
			l.Tick.Update(w)
		}
		l.ticks++
		n++
	}

	if l.Late != nil {
		l.Late.Update(w)
	}
	return n
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}
