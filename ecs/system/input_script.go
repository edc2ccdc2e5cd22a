package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rollbrawler/ecs"
	"github.com/milk9111/rollbrawler/ecs/component"
	"github.com/milk9111/rollbrawler/prefabs"
)

type inputScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	frame      int
}

// ScriptedInputSystem drives Input components from tengo scripts, one
// compiled runtime per entity. Runtimes are rebuilt when the entity's path
// changes or Invalidate is called.
type ScriptedInputSystem struct {
	load        func(string) ([]byte, error)
	scriptCache map[ecs.Entity]*inputScriptRuntime
}

func NewScriptedInputSystem() *ScriptedInputSystem {
	return &ScriptedInputSystem{load: prefabs.LoadScript}
}

func (s *ScriptedInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ScriptedInputComponent, component.InputComponent, func(e ecs.Entity, src *component.ScriptedInput, input *component.Input) {
		rt, err := s.getScriptRuntime(e, src.Path)
		if err != nil {
			log.Printf("input script: entity=%v load %s: %v", e, src.Path, err)
			return
		}
		in, err := rt.next()
		if err != nil {
			log.Printf("input script: entity=%v run %s: %v", e, src.Path, err)
			*input = component.Input{}
			return
		}
		*input = in
	})
}

// Invalidate drops cached runtimes for path, or all of them when path is
// empty. The next Update recompiles from disk.
func (s *ScriptedInputSystem) Invalidate(path string) {
	for e, rt := range s.scriptCache {
		if path == "" || sameScript(rt.scriptPath, path) {
			delete(s.scriptCache, e)
		}
	}
}

func sameScript(a, b string) bool {
	trim := func(p string) string {
		p = strings.TrimPrefix(p, "prefabs/")
		return strings.TrimPrefix(p, "scripts/")
	}
	return trim(a) == trim(b)
}

func (s *ScriptedInputSystem) getScriptRuntime(e ecs.Entity, path string) (*inputScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	if s.scriptCache == nil {
		s.scriptCache = map[ecs.Entity]*inputScriptRuntime{}
	}
	if rt, ok := s.scriptCache[e]; ok && rt.scriptPath == path {
		return rt, nil
	}

	src, err := s.load(path)
	if err != nil {
		return nil, err
	}
	compiled, err := CompileInputScript(src)
	if err != nil {
		return nil, err
	}

	rt := &inputScriptRuntime{scriptPath: path, compiled: compiled}
	s.scriptCache[e] = rt
	return rt, nil
}

// CompileInputScript compiles an input script with the `frame` global
// predeclared and the tengo stdlib importable.
func CompileInputScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	if err := script.Add("frame", 0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (rt *inputScriptRuntime) next() (component.Input, error) {
	in, err := RunInputScript(rt.compiled, rt.frame)
	rt.frame++
	return in, err
}

// RunInputScript runs compiled for one frame and reads the input globals.
// Globals the script does not define read as zero.
func RunInputScript(compiled *tengo.Compiled, frame int) (component.Input, error) {
	if err := compiled.Set("frame", frame); err != nil {
		return component.Input{}, err
	}
	if err := compiled.Run(); err != nil {
		return component.Input{}, err
	}
	num := func(name string) float64 {
		if !compiled.IsDefined(name) {
			return 0
		}
		return compiled.Get(name).Float()
	}
	flag := func(name string) bool {
		if !compiled.IsDefined(name) {
			return false
		}
		return compiled.Get(name).Bool()
	}
	return component.Input{
		MoveX:          num("move_x"),
		MoveZ:          num("move_z"),
		JumpPressed:    flag("jump"),
		JumpHeld:       flag("jump_held"),
		RollPressed:    flag("roll"),
		AttackPressed:  flag("attack"),
		HitPressed:     flag("hit"),
		DiePressed:     flag("die"),
		RecoverPressed: flag("recover"),
	}, nil
}
