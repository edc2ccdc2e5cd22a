package system

import (
	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
)

// depthSkew lifts things further down the lane so depth reads on screen.
const depthSkew = 0.35

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera entity's transform toward the target entity.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}

	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	smooth := float32(camComp.Smoothness)
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	camTransform.X = float64(common.Lerp(float32(camTransform.X), float32(targetTransform.X), smooth))
	camTransform.Y = float64(common.Lerp(float32(camTransform.Y), float32(targetTransform.Y), smooth))
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" || name == "" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}

// View maps world meters to screen pixels for one camera.
type View struct {
	CamX, CamY float64
	Zoom       float64
}

// ViewOf returns the view of the first camera in w, or an identity view.
func ViewOf(w *ecs.World) View {
	v := View{Zoom: 1}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		v.CamX, v.CamY = t.X, t.Y
	}
	if c, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && c.Zoom > 0 {
		v.Zoom = c.Zoom
	}
	return v
}

// Scale is pixels per meter at the current zoom.
func (v View) Scale() float64 {
	return common.PixelsPerMeter * v.Zoom
}

func (v View) ToScreen(x, y, z float64) (float64, float64) {
	s := v.Scale()
	sx := (x-v.CamX)*s + common.BaseWidth/2
	sy := common.BaseHeight/2 - (y-v.CamY+z*depthSkew)*s
	return sx, sy
}
