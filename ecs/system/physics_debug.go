package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	groundedColor   = color.RGBA{R: 255, A: 255}
	airborneColor   = color.RGBA{G: 255, A: 255}
	debugLabelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	drawer := &physicsDebugDrawer{screen: screen, view: ViewOf(w)}
	cp.DrawSpace(space, drawer)
}

// DrawGroundSensor outlines each character's ground box, red while grounded
// and green otherwise.
func DrawGroundSensor(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	view := ViewOf(w)
	ecs.ForEach2(w, component.CharacterComponent, component.PhysicsBodyComponent, func(e ecs.Entity, ch *component.Character, pb *component.PhysicsBody) {
		if ch.Controller == nil || pb.Body == nil {
			return
		}
		cfg := ch.Controller.Config()
		center := pb.Body.Position().Add(cfg.GroundBoxOffset)
		half := cfg.GroundBoxSize.Scale(0.5)

		c := airborneColor
		if ch.Controller.Grounded() {
			c = groundedColor
		}
		x0, y0 := view.ToScreen(center.X-half.X, center.Y+half.Y, center.Z)
		x1, y1 := view.ToScreen(center.X+half.X, center.Y-half.Y, center.Z)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
	})
}

// DebugText is the player's debug label: rounded velocity and position,
// status and action phases.
func DebugText(w *ecs.World) string {
	if w == nil {
		return ""
	}
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.CharacterComponent.Kind())
	if !ok {
		return ""
	}
	ch, ok := ecs.Get(w, player, component.CharacterComponent)
	if !ok || ch.Controller == nil {
		return ""
	}
	return ch.Controller.Snapshot().String()
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	text := DebugText(w)
	if text == "" || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n[F2] copy", text), 10, 24)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   View
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	// size is in pixels
	half := size / 2 / d.view.Scale()
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 0.6, B: 1, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.2, G: 0.4, B: 0.8, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.ToScreen(a.X, a.Y, 0)
	x2, y2 := d.view.ToScreen(b.X, b.Y, 0)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
