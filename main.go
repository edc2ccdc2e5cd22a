package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollbrawler/common"
	"github.com/milk9111/rollbrawler/ecs/entity"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and controller logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in prefabs/ (basename, .yaml optional)")
	script := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts (\"-\" forces keyboard)")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts from prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("rollbrawler")
	ebiten.SetTPS(60)

	opts := entity.PlayerOptions{Script: *script, Sheet: true}
	if *debug {
		opts.Logger = log.Default()
	}

	game, err := NewGame(*levelName, *debug, opts, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
