package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/ecs/entity"
	"github.com/milk9111/rollbrawler/ecs/system"
	"github.com/milk9111/rollbrawler/prefabs"
	"golang.org/x/image/colornames"
)

const viewSize = 512

// clipViewer plays the player's animation clips on the generated sheet.
// Left/right cycles clips.
type clipViewer struct {
	anim  *component.Animation
	clips []string
	index int
}

func (g *clipViewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.index = (g.index + 1) % len(g.clips)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.index = (g.index + len(g.clips) - 1) % len(g.clips)
	}
	g.anim.Play(g.clips[g.index])

	def := g.anim.Defs[g.anim.Current]
	system.AdvanceFrame(g.anim, def)
	if !g.anim.Playing {
		// replay one-shot clips
		g.anim.Play(def.Name)
	}
	return nil
}

func (g *clipViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	def := g.anim.Defs[g.anim.Current]
	if g.anim.Sheet != nil && def.FrameW > 0 {
		x := (def.ColStart + g.anim.Frame) * def.FrameW
		y := def.Row * def.FrameH
		frame := g.anim.Sheet.SubImage(rectAt(x, y, def.FrameW, def.FrameH)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(viewSize-def.FrameW)/2, float64(viewSize-def.FrameH)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("clip: %s  frame: %d/%d  fps: %.0f", def.Name, g.anim.Frame+1, def.FrameCount, def.FPS))
}

func (g *clipViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	clip := flag.String("clip", "idle", "clip to start on")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	if len(spec.Animation.Defs) == 0 {
		log.Fatal("clipview: player.yaml has no animation defs")
	}

	anim := &component.Animation{Defs: map[string]component.AnimationDef{}}
	clips := make([]string, 0, len(spec.Animation.Defs))
	for name, d := range spec.Animation.Defs {
		anim.Defs[name] = component.AnimationDef{
			Name:       name,
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     spec.Animation.FrameW,
			FrameH:     spec.Animation.FrameH,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
		clips = append(clips, name)
	}
	sort.Strings(clips)
	anim.Sheet = entity.BuildSheet(spec.Animation, spec.Sprite.Color.ColorOr(colornames.Steelblue))

	g := &clipViewer{anim: anim, clips: clips}
	for i, name := range clips {
		if name == *clip {
			g.index = i
		}
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("rollbrawler clips")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
