package controller

import (
	"io"
	"log"
	"time"

	"github.com/milk9111/rollbrawler/common"
)

// Status is the controller's run state. Only StatusActive processes input and
// ticks.
type Status int

const (
	StatusActive Status = iota
	StatusStunned
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusStunned:
		return "stunned"
	case StatusDead:
		return "dead"
	}
	return "unknown"
}

// Controller turns input into velocity for a single rigid body.
//
// Sample is called once per frame and only latches input. Tick is called once
// per fixed physics step and runs sensing, ongoing-action update, decision,
// then execution and gravity shaping. The body's velocity is read once at the
// start of Tick and written once at the end.
type Controller struct {
	cfg  Config
	body PhysicsWorld
	sink AnimationSink
	log  *log.Logger

	status Status
	ticks  uint64

	// Flat movement
	facing          common.Vec3
	inputDir        common.Vec3
	lockedDirection bool

	// Jump
	jumpHeld     bool
	gravityScale float64
	grounded     bool

	// Roll
	chargedRoll bool

	intent  Intent
	actions [actionCount]ActionState

	// velocity is the tick-local copy written back at the end of Tick.
	velocity common.Vec3
}

type Option func(*Controller)

func WithAnimationSink(sink AnimationSink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds a controller for body. The character starts facing right.
func New(body PhysicsWorld, cfg Config, opts ...Option) (*Controller, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		body:     body,
		sink:     nopSink{},
		log:      log.New(io.Discard, "", 0),
		inputDir: common.Right,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.turnCharacter()
	return c, nil
}

// Reconfigure swaps the tuning. Action state and timers are kept; new
// durations apply from the next action start.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.log.Printf("controller: reconfigured")
	return nil
}

// Sample consumes one frame of input.
func (c *Controller) Sample(in Input) {
	if in.RecoverPressed {
		c.Recover()
	}
	if c.status != StatusActive {
		return
	}
	if in.HitPressed {
		c.GetHit()
		return
	}
	if in.DiePressed {
		c.Die()
		return
	}

	c.inputDir = in.Direction()
	c.jumpHeld = in.JumpHeld

	if !c.lockedDirection && !c.inputDir.IsZero() && c.inputDir != c.facing {
		c.turnCharacter()
	}

	c.intent.Latch(in)

	c.sink.SetSpeed(c.body.Velocity().LengthSq())
	c.sink.SetGrounded(c.grounded)
}

func (c *Controller) turnCharacter() {
	c.facing = c.inputDir
	c.sink.SetFacing(c.facing.X, c.facing.Z)
}

// Tick advances the controller by one fixed step of dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.status != StatusActive || dt <= 0 {
		return
	}
	c.velocity = c.body.Velocity()

	c.updateEnvironmentChecking()
	c.updateOngoingActions(dt)
	c.decideFutureActions()

	jumpPressed := c.intent.Jump
	c.intent.Clear()

	c.moveFlat()
	for _, a := range executionOrder {
		if c.actions[a].Will {
			c.perform(a)
		}
	}

	c.adaptGravity(jumpPressed)
	c.limitFallingSpeed(dt)

	c.body.SetVelocity(c.velocity)
	c.ticks++
}

func (c *Controller) updateEnvironmentChecking() {
	center := c.body.Position().Add(c.cfg.GroundBoxOffset)
	c.grounded = c.body.OverlapBox(center, c.cfg.GroundBoxSize.Scale(0.5), c.cfg.GroundMask)
}

func (c *Controller) updateOngoingActions(dt time.Duration) {
	jump := &c.actions[ActionJump]
	if jump.Doing() && c.velocity.Y <= 0 && c.grounded {
		c.endJump()
	}

	roll := &c.actions[ActionRoll]
	if roll.Doing() {
		roll.remaining -= dt
		if roll.remaining <= 0 {
			c.endRoll()
		}
	}
	if !c.chargedRoll && c.grounded {
		c.chargedRoll = true
	}
	roll.tickCooldown(dt)

	c.actions[ActionAttack].tickCooldown(dt)
}

func (c *Controller) decideFutureActions() {
	jump := &c.actions[ActionJump]
	roll := &c.actions[ActionRoll]
	attack := &c.actions[ActionAttack]
	still := common.CloseToZero(c.velocity.Y)

	jump.Can = c.grounded &&
		!jump.Doing() && !roll.Doing() && !attack.Doing()

	roll.Can = c.chargedRoll && roll.CooledDown() && c.grounded && still &&
		!roll.Doing() && !attack.Doing()

	attack.Can = attack.CooledDown() && c.grounded && still &&
		!attack.Doing() && !roll.Doing()

	// Exclusivity comes from the Can predicates above; a running action is
	// never cancelled by a newly willed one.
	winner := false
	for _, a := range actionPriority {
		s := &c.actions[a]
		s.Will = !winner && c.intent.wants(a) && s.Can
		if s.Will {
			winner = true
		}
	}
}

func (c *Controller) perform(a Action) {
	switch a {
	case ActionJump:
		c.jump()
	case ActionRoll:
		c.roll()
	case ActionAttack:
		c.attack()
	}
}

func (c *Controller) moveFlat() {
	if c.actions[ActionRoll].Doing() || c.actions[ActionAttack].Doing() {
		return
	}
	c.velocity = common.Vec3{
		X: c.inputDir.X * c.cfg.MoveSpeed,
		Y: c.velocity.Y,
		Z: c.inputDir.Z * c.cfg.MoveSpeed,
	}
}

func (c *Controller) jump() {
	c.log.Printf("controller: jump")
	c.actions[ActionJump].start(0, 0)
	c.velocity.Y = c.cfg.JumpSpeed
}

func (c *Controller) endJump() {
	c.log.Printf("controller: end jump")
	c.actions[ActionJump].end()
}

func (c *Controller) roll() {
	c.log.Printf("controller: roll")
	c.sink.Trigger(TriggerRoll)

	c.actions[ActionRoll].start(c.cfg.RollDuration, c.cfg.RollCooldown)
	c.lockedDirection = true

	c.velocity = common.Vec3{
		X: c.cfg.RollSpeed * c.facing.X,
		Y: 0,
		Z: c.cfg.RollSpeed * c.facing.Z,
	}
	c.gravityScale = 0
}

func (c *Controller) endRoll() {
	c.log.Printf("controller: end roll")
	c.actions[ActionRoll].end()
	c.lockedDirection = false
}

// attack ends itself in the tick it starts: only the cooldown outlives it
// until attacks get a real duration.
func (c *Controller) attack() {
	c.log.Printf("controller: attack")
	c.actions[ActionAttack].start(0, c.cfg.AttackCooldown)
	c.lockedDirection = true
	c.velocity.X = 0

	c.EndAttack()
}

// EndAttack finalizes the attack state. It is safe to call from outside the
// tick, e.g. from an animation event.
func (c *Controller) EndAttack() {
	if !c.actions[ActionAttack].Doing() {
		return
	}
	c.log.Printf("controller: end attack")
	c.actions[ActionAttack].end()
	c.lockedDirection = false
}

// GetHit cancels every action, stops the body and halts the controller until
// Recover is called.
func (c *Controller) GetHit() {
	if c.status != StatusActive {
		return
	}
	c.log.Printf("controller: get hit")
	c.halt()
	c.status = StatusStunned
}

// Recover re-enables a stunned controller. It reports whether the controller
// is active afterwards; the dead stay dead.
func (c *Controller) Recover() bool {
	if c.status == StatusStunned {
		c.log.Printf("controller: recover from hit")
		c.status = StatusActive
	}
	return c.status == StatusActive
}

// Die halts the controller for good.
func (c *Controller) Die() {
	if c.status == StatusDead {
		return
	}
	c.log.Printf("controller: die")
	c.halt()
	c.status = StatusDead
}

func (c *Controller) halt() {
	c.cancelAllActions()
	c.intent.Clear()
	c.gravityScale = 0
	c.velocity = common.Zero
	c.body.SetVelocity(common.Zero)
}

func (c *Controller) cancelAllActions() {
	if c.actions[ActionJump].Doing() {
		c.endJump()
	}
	if c.actions[ActionRoll].Doing() {
		c.endRoll()
	}
	if c.actions[ActionAttack].Doing() {
		c.EndAttack()
	}
}

func (c *Controller) adaptGravity(jumpPressed bool) {
	if c.actions[ActionRoll].Doing() {
		return
	}
	c.setGravityScale(GravityMultiplier(c.cfg, c.velocity.Y, c.jumpHeld || jumpPressed))
}

func (c *Controller) setGravityScale(scale float64) {
	c.gravityScale = scale
	c.body.AddAcceleration(c.body.Gravity().Scale(scale))
}

func (c *Controller) limitFallingSpeed(dt time.Duration) {
	delta := c.body.Gravity().Y * c.gravityScale * dt.Seconds()
	c.velocity.Y = ClampFallSpeed(c.velocity.Y, delta, c.cfg.MaxFallSpeed)
}

func (c *Controller) Config() Config        { return c.cfg }
func (c *Controller) Status() Status        { return c.status }
func (c *Controller) Grounded() bool        { return c.grounded }
func (c *Controller) Facing() common.Vec3   { return c.facing }
func (c *Controller) DirectionLocked() bool { return c.lockedDirection }
func (c *Controller) ChargedRoll() bool     { return c.chargedRoll }
func (c *Controller) GravityScale() float64 { return c.gravityScale }
func (c *Controller) Intent() Intent        { return c.intent }
func (c *Controller) Ticks() uint64         { return c.ticks }
func (c *Controller) Action(a Action) ActionState {
	if a < 0 || a >= actionCount {
		return ActionState{}
	}
	return c.actions[a]
}
