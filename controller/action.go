package controller

import "time"

// Action identifies one of the exclusive character actions.
type Action int

const (
	ActionJump Action = iota
	ActionRoll
	ActionAttack

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionRoll:
		return "roll"
	case ActionAttack:
		return "attack"
	}
	return "unknown"
}

// actionPriority is the order in which willed actions compete; the first
// willed entry wins the tick.
var actionPriority = [actionCount]Action{ActionRoll, ActionAttack, ActionJump}

// executionOrder is the order in which willed actions fire.
var executionOrder = [actionCount]Action{ActionJump, ActionRoll, ActionAttack}

// Phase tags an ActionState.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseCooling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseCooling:
		return "cooling"
	}
	return "unknown"
}

// ActionState is the per-action record. The active duration and the cooldown
// are separate timers: a roll cools down while it is still running.
type ActionState struct {
	Can  bool
	Will bool

	active    bool
	remaining time.Duration
	cooldown  time.Duration
}

func (s ActionState) Phase() Phase {
	switch {
	case s.active:
		return PhaseActive
	case s.cooldown > 0:
		return PhaseCooling
	}
	return PhaseIdle
}

func (s ActionState) Doing() bool {
	return s.active
}

// Remaining is the active time left for timed actions.
func (s ActionState) Remaining() time.Duration {
	return s.remaining
}

func (s ActionState) Cooldown() time.Duration {
	return s.cooldown
}

// CooledDown reports whether the cooldown has elapsed.
func (s ActionState) CooledDown() bool {
	return s.cooldown <= 0
}

func (s *ActionState) start(duration, cooldown time.Duration) {
	s.active = true
	s.remaining = duration
	s.cooldown = cooldown
}

func (s *ActionState) end() {
	s.active = false
	s.remaining = 0
}

func (s *ActionState) tickCooldown(dt time.Duration) {
	if s.cooldown > 0 {
		s.cooldown -= dt
	}
}
