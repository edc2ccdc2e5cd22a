package system

import (
	"testing"
	"time"

	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(*ecs.World) { *s.log = append(*s.log, s.name) }

func TestLoopFixedTicks(t *testing.T) {
	cases := []struct {
		name      string
		frames    int
		wantTicks uint64
	}{
		{"one_frame_no_tick", 1, 0},
		{"two_frames_one_tick", 2, 1},
		{"six_frames", 6, 4},
		{"sixty_frames", 60, 49},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var calls []string
			l := &Loop{
				Frame:      ecs.NewScheduler(recordSystem{"frame", &calls}),
				Tick:       ecs.NewScheduler(recordSystem{"tick", &calls}),
				FrameDelta: common.FrameDelta,
				TickDelta:  common.FixedDelta,
			}
			w := ecs.NewWorld()
			for i := 0; i < c.frames; i++ {
				l.Advance(w)
			}
			if l.Ticks() != c.wantTicks {
				t.Fatalf("ticks = %d, want %d", l.Ticks(), c.wantTicks)
			}
			ticks := 0
			for _, s := range calls {
				if s == "tick" {
					ticks++
				}
			}
			if uint64(ticks) != c.wantTicks || len(calls)-ticks != c.frames {
				t.Fatalf("calls = %v", calls)
			}
		})
	}
}

func TestLoopOrder(t *testing.T) {
	var calls []string
	l := &Loop{
		Frame:      ecs.NewScheduler(recordSystem{"frame", &calls}),
		Tick:       ecs.NewScheduler(recordSystem{"tick", &calls}),
		Late:       ecs.NewScheduler(recordSystem{"late", &calls}),
		FrameDelta: 50 * time.Millisecond,
		TickDelta:  20 * time.Millisecond,
	}
	if n := l.Advance(ecs.NewWorld()); n != 2 {
		t.Fatalf("Advance ran %d ticks, want 2", n)
	}
	want := []string{"frame", "tick", "tick", "late"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestViewToScreen(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent, &component.Camera{Zoom: 2}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, cam, component.TransformComponent, &component.Transform{X: 10, Y: 5}); err != nil {
		t.Fatal(err)
	}

	v := ViewOf(w)
	x, y := v.ToScreen(10, 5, 0)
	if x != common.BaseWidth/2 || y != common.BaseHeight/2 {
		t.Fatalf("camera target should be screen center, got (%v, %v)", x, y)
	}
	x, y = v.ToScreen(11, 6, 0)
	if x != common.BaseWidth/2+2*common.PixelsPerMeter || y != common.BaseHeight/2-2*common.PixelsPerMeter {
		t.Fatalf("one meter up-right = (%v, %v)", x, y)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	_ = ecs.Add(w, cam, component.CameraComponent, &component.Camera{TargetName: "player", Smoothness: 0.5})
	_ = ecs.Add(w, cam, component.TransformComponent, &component.Transform{})

	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, player, component.TransformComponent, &component.Transform{X: 8, Y: 4})

	NewCameraSystem().Update(w)

	ct, _ := ecs.Get(w, cam, component.TransformComponent)
	if ct.X != 4 || ct.Y != 2 {
		t.Fatalf("camera = (%v, %v), want halfway (4, 2)", ct.X, ct.Y)
	}
}
