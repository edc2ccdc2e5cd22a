package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/controller"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

// Clip names the animation system selects between.
const (
	ClipIdle = "idle"
	ClipRun  = "run"
	ClipAir  = "air"
	ClipRoll = "roll"
	ClipHit  = "hit"
	ClipDead = "dead"
)

// runThreshold is the squared speed above which the run clip plays.
const runThreshold = 0.01

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		status := controller.StatusActive
		if ch, ok := ecs.Get(w, e, component.CharacterComponent); ok && ch.Controller != nil {
			status = ch.Controller.Status()
		}
		anim.Play(selectClip(anim, status))

		sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent)
		if hasSprite && anim.Horizontal != 0 {
			sprite.FacingLeft = anim.Horizontal < 0
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || !anim.Playing {
			return
		}
		AdvanceFrame(anim, def)

		if !hasSprite || anim.Sheet == nil {
			return
		}
		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}

// selectClip consumes pending triggers and picks the clip for the current
// parameters. A triggered roll plays to its end before locomotion resumes.
func selectClip(anim *component.Animation, status controller.Status) string {
	rolled := false
	for _, t := range anim.TakeTriggers() {
		if t == controller.TriggerRoll {
			rolled = true
		}
	}

	switch {
	case status == controller.StatusDead:
		return ClipDead
	case status == controller.StatusStunned:
		return ClipHit
	case rolled:
		anim.Playing = false
		return ClipRoll
	case anim.Current == ClipRoll && anim.Playing:
		return ClipRoll
	case !anim.OnGround:
		return ClipAir
	case anim.Speed > runThreshold:
		return ClipRun
	}
	return ClipIdle
}

// AdvanceFrame steps the clip by one frame at TPS.
func AdvanceFrame(anim *component.Animation, def component.AnimationDef) {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(common.TPS / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame {
		return
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame >= def.FrameCount {
		if def.Loop {
			anim.Frame = 0
		} else {
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
		}
	}
}
