package controller

import (
	"testing"
	"time"

	"github.com/milk9111/rollbrawler/common"
)

const testDelta = 20 * time.Millisecond

// fakeBody is a minimal rigid body: it integrates queued acceleration on step
// and stops downward motion while standing on ground.
type fakeBody struct {
	pos     common.Vec3
	vel     common.Vec3
	gravity common.Vec3
	ground  bool

	accel     common.Vec3
	setCalls  int
	lastQuery struct {
		center common.Vec3
		half   common.Vec3
		mask   uint32
	}
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravity: common.Gravity, ground: true}
}

func (b *fakeBody) Position() common.Vec3 { return b.pos }

func (b *fakeBody) OverlapBox(center, half common.Vec3, mask uint32) bool {
	b.lastQuery.center = center
	b.lastQuery.half = half
	b.lastQuery.mask = mask
	return b.ground
}

func (b *fakeBody) Velocity() common.Vec3 { return b.vel }

func (b *fakeBody) SetVelocity(v common.Vec3) {
	b.setCalls++
	b.vel = v
}

func (b *fakeBody) AddAcceleration(a common.Vec3) { b.accel = b.accel.Add(a) }

func (b *fakeBody) Gravity() common.Vec3 { return b.gravity }

func (b *fakeBody) step(dt time.Duration) {
	b.vel = b.vel.Add(b.accel.Scale(dt.Seconds()))
	b.accel = common.Zero
	if b.ground && b.vel.Y < 0 {
		b.vel.Y = 0
	}
	b.pos = b.pos.Add(b.vel.Scale(dt.Seconds()))
}

type recordingSink struct {
	speed    float64
	grounded bool
	facings  [][2]float64
	triggers []string
}

func (s *recordingSink) SetSpeed(v float64)     { s.speed = v }
func (s *recordingSink) SetGrounded(g bool)     { s.grounded = g }
func (s *recordingSink) Trigger(name string)    { s.triggers = append(s.triggers, name) }
func (s *recordingSink) SetFacing(h, v float64) { s.facings = append(s.facings, [2]float64{h, v}) }

func newTestController(t *testing.T, cfg Config) (*Controller, *fakeBody, *recordingSink) {
	t.Helper()
	body := newFakeBody()
	sink := &recordingSink{}
	c, err := New(body, cfg, WithAnimationSink(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, body, sink
}

// run samples in, ticks once and steps the fake body.
func run(c *Controller, b *fakeBody, in Input) {
	c.Sample(in)
	c.Tick(testDelta)
	b.step(testDelta)
}
