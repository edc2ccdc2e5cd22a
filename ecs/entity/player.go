package entity

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/controller"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/physics"
	"github.com/milk9111/rollbrawler/prefabs"
	"golang.org/x/image/colornames"
)

// PlayerOptions tune how NewPlayer builds the player entity.
type PlayerOptions struct {
	Logger *log.Logger
	// Script overrides the prefab's input script. "-" forces device input.
	Script string
	// Sheet generates a sprite sheet. Leave false when running headless.
	Sheet bool
}

// NewPlayer adds the player body to pw and builds the entity around a new
// controller. spawn is the feet position.
func NewPlayer(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, spawn common.Vec3, opts PlayerOptions) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	cfg, err := spec.Controller.ToConfig(spec.Collider)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	size := spec.Collider.Size()
	if size.IsZero() {
		size = prefabs.DefaultColliderSize
	}
	body := pw.AddBody(physics.BodySpec{Feet: spawn, Size: size, Mass: spec.Collider.Mass})

	anim := newAnimation(spec.Animation)
	tint := spec.Sprite.Color.ColorOr(colornames.Steelblue)
	sprite := &component.Sprite{OriginX: spec.Sprite.OriginX, OriginY: spec.Sprite.OriginY, Tint: tint}
	if opts.Sheet {
		anim.Sheet = BuildSheet(spec.Animation, tint)
	}

	ctrlOpts := []controller.Option{controller.WithAnimationSink(anim)}
	if opts.Logger != nil {
		ctrlOpts = append(ctrlOpts, controller.WithLogger(opts.Logger))
	}
	ctrl, err := controller.New(body, cfg, ctrlOpts...)
	if err != nil {
		return 0, fmt.Errorf("player: new controller: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:      spawn.X,
		Y:      spawn.Y,
		Z:      spawn.Z,
		ScaleX: nonZero(spec.Transform.ScaleX, 1),
		ScaleY: nonZero(spec.Transform.ScaleY, 1),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Body:   body,
		Width:  size.X,
		Height: size.Y,
		Depth:  size.Z,
		Mass:   spec.Collider.Mass,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CharacterComponent, &component.Character{Controller: ctrl, SpawnX: spawn.X, SpawnY: spawn.Y}); err != nil {
		return 0, fmt.Errorf("player: add character: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent, anim); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	script := spec.Input.Script
	if opts.Script != "" {
		script = opts.Script
	}
	if script != "" && script != "-" {
		if err := ecs.Add(w, e, component.ScriptedInputComponent, &component.ScriptedInput{Path: script}); err != nil {
			return 0, fmt.Errorf("player: add scripted input: %w", err)
		}
	}

	return e, nil
}

func newAnimation(spec prefabs.AnimationSpec) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     spec.FrameW,
			FrameH:     spec.FrameH,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	current := spec.Current
	if current == "" {
		current = "idle"
	}
	return &component.Animation{Defs: defs, Current: current, Playing: true}
}

// BuildSheet paints a placeholder sheet: one row per clip, each frame a
// body-sized block whose height bobs with the frame index.
func BuildSheet(spec prefabs.AnimationSpec, tint color.Color) *ebiten.Image {
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return nil
	}
	rows, cols := 1, 1
	for _, d := range spec.Defs {
		rows = max(rows, d.Row+1)
		cols = max(cols, d.ColStart+d.FrameCount)
	}
	sheet := ebiten.NewImage(cols*spec.FrameW, rows*spec.FrameH)
	r, g, b, _ := tint.RGBA()
	for _, d := range spec.Defs {
		for f := 0; f < d.FrameCount; f++ {
			x := (d.ColStart + f) * spec.FrameW
			y := d.Row * spec.FrameH
			inset := (f % 2) * spec.FrameH / 16
			rect := image.Rect(x+2, y+inset, x+spec.FrameW-2, y+spec.FrameH)
			shade := uint8(200 + 55*f/max(d.FrameCount, 1))
			sub := sheet.SubImage(rect).(*ebiten.Image)
			sub.Fill(color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: shade})
		}
	}
	return sheet
}

func nonZero(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
