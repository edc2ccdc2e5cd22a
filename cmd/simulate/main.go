// Command simulate runs the player controller headless, driven by a tengo
// input script, and prints the debug snapshot every few ticks.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/ecs/entity"
	"github.com/milk9111/rollbrawler/ecs/system"
)

func main() {
	levelName := flag.String("level", "", "level name in prefabs/ (basename, .yaml optional)")
	script := flag.String("script", "autopilot.tengo", "input script in prefabs/scripts")
	frames := flag.Int("frames", 600, "frames to simulate at 60 TPS")
	every := flag.Int("every", 10, "print a snapshot every N physics ticks")
	verbose := flag.Bool("v", false, "log controller and physics events")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	opts := entity.PlayerOptions{Script: *script}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	scene, err := entity.BuildScene(*levelName, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	loop := system.NewPlayerLoop(scene.Physics, system.LoopOptions{Scripts: system.NewScriptedInputSystem()})
	ch, ok := ecs.Get(scene.World, scene.Player, component.CharacterComponent)
	if !ok {
		fmt.Fprintln(os.Stderr, "simulate: player has no controller")
		os.Exit(1)
	}

	for f := 0; f < *frames; f++ {
		before := ch.Controller.Ticks()
		loop.Advance(scene.World)
		after := ch.Controller.Ticks()
		if *every > 0 && after/uint64(*every) != before/uint64(*every) {
			fmt.Printf("--- frame %d tick %d\n%s\n", f, after, ch.Controller.Snapshot())
		}
	}
}
