package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/ecs/entity"
	"github.com/milk9111/rollbrawler/ecs/system"
	"github.com/milk9111/rollbrawler/prefabs"
	"golang.design/x/clipboard"
)

var background = color.RGBA{R: 0x16, G: 0x16, B: 0x1d, A: 0xff}

type Game struct {
	debug     bool
	paused    bool
	levelName string
	opts      entity.PlayerOptions

	scene   *entity.Scene
	loop    *system.Loop
	scripts *system.ScriptedInputSystem
	render  *system.RenderSystem

	watcher      *prefabs.Watcher
	pauseUI      *ebitenui.UI
	clipboardErr error
	notice       string
}

func NewGame(levelName string, debug bool, opts entity.PlayerOptions, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		levelName: levelName,
		opts:      opts,
		scripts:   system.NewScriptedInputSystem(),
		render:    system.NewRenderSystem(),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.clipboardErr = clipboard.Init()
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) loadScene() error {
	scene, err := entity.BuildScene(g.levelName, g.opts)
	if err != nil {
		return fmt.Errorf("game: build scene: %w", err)
	}
	g.scene = scene
	g.scripts.Invalidate("")
	g.loop = system.NewPlayerLoop(scene.Physics, system.LoopOptions{Devices: true, Scripts: g.scripts})
	return nil
}

func (g *Game) Update() error {
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyDebugText()
	}

	g.loop.Advance(g.scene.World)
	return nil
}

// applyReloads drains the watcher. Player tuning is swapped in place, a
// level edit rebuilds the scene, script edits recompile on next use.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("game: prefab watcher: %v", err)
	default:
	}

	for _, name := range g.watcher.Drain() {
		switch {
		case strings.HasPrefix(name, "scripts/"):
			g.scripts.Invalidate(name)
			log.Printf("game: reloaded %s", name)
		case name == "player.yaml":
			if err := g.scene.ReloadPlayerTuning(); err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			log.Printf("game: reloaded %s", name)
		case g.isLevelFile(name):
			if err := g.loadScene(); err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			log.Printf("game: reloaded %s", name)
		}
	}
}

func (g *Game) isLevelFile(name string) bool {
	level := g.levelName
	if level == "" {
		level = "level"
	}
	return strings.TrimSuffix(name, ".yaml") == strings.TrimSuffix(level, ".yaml")
}

func (g *Game) copyDebugText() {
	if g.clipboardErr != nil {
		g.notice = "clipboard unavailable: " + g.clipboardErr.Error()
		return
	}
	text := system.DebugText(g.scene.World)
	if text == "" {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.notice = "copied debug label"
}

func (g *Game) player() (*component.Character, bool) {
	return ecs.Get(g.scene.World, g.scene.Player, component.CharacterComponent)
}

// recoverPlayer is the pause menu's Recover action.
func (g *Game) recoverPlayer() {
	if ch, ok := g.player(); ok && ch.Controller != nil {
		if ch.Controller.Recover() {
			g.notice = "recovered"
		}
	}
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.render.Draw(g.scene.World, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.scene.Physics.Space(), g.scene.World, screen)
		system.DrawGroundSensor(g.scene.World, screen)
		system.DrawPlayerStateDebug(g.scene.World, screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Ticks: %d    FPS: %.2f    %s", g.loop.Ticks(), ebiten.ActualFPS(), g.notice))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
