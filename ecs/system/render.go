package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"golang.org/x/image/colornames"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	view := ViewOf(w)

	ecs.ForEach(w, component.StaticBoxComponent, func(e ecs.Entity, box *component.StaticBox) {
		tint := color.Color(colornames.Dimgray)
		if s, ok := ecs.Get(w, e, component.SpriteComponent); ok && s.Tint != nil {
			tint = s.Tint
		}
		drawBox(screen, view, box.MinX, box.MinY, box.MaxX, box.MaxY, box.MaxZ, tint)
	})

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	// far lane first
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent)
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent)
		return ti.Z > tj.Z
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)

		if s.Image == nil {
			pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
			if !ok {
				continue
			}
			tint := s.Tint
			if tint == nil {
				tint = colornames.Steelblue
			}
			drawBox(screen, view, t.X-pb.Width/2, t.Y, t.X+pb.Width/2, t.Y+pb.Height, t.Z, tint)
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FacingLeft {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx*view.Zoom, sy*view.Zoom)
		px, py := view.ToScreen(t.X, t.Y, t.Z)
		op.GeoM.Translate(px, py)

		screen.DrawImage(img, op)
	}
}

// drawBox fills the world rectangle [minX,maxX]x[minY,maxY] at depth z.
func drawBox(screen *ebiten.Image, view View, minX, minY, maxX, maxY, z float64, c color.Color) {
	x0, y0 := view.ToScreen(minX, maxY, z)
	x1, y1 := view.ToScreen(maxX, minY, z)
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}
