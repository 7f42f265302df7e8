package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/rig"
)

// HookRuntime compiles and caches tengo hook scripts that run after each
// successful recenter. Script failures are logged and never block the
// recenter itself.
type HookRuntime struct {
	compiled map[string]*tengo.Compiled
}

func NewHookRuntime() *HookRuntime {
	return &HookRuntime{compiled: map[string]*tengo.Compiled{}}
}

// Notify runs the behavior's hook script, if one is configured.
func (h *HookRuntime) Notify(rec *component.Recenter, yaw float64) {
	if h == nil || rec == nil || rec.HookScript == "" {
		return
	}
	if err := h.run(rec, yaw); err != nil {
		fmt.Printf("recenter: hook %s: %v\n", rec.HookScript, err)
	}
}

func (h *HookRuntime) run(rec *component.Recenter, yaw float64) error {
	c, err := h.get(rec.HookScript)
	if err != nil {
		return err
	}
	if err := c.Set("yaw", yaw); err != nil {
		return err
	}
	if err := c.Set("count", rec.Count); err != nil {
		return err
	}
	if err := c.Set("player", rec.PlayerName); err != nil {
		return err
	}
	if err := c.Set("world", rec.WorldName); err != nil {
		return err
	}
	return c.Run()
}

func (h *HookRuntime) get(path string) (*tengo.Compiled, error) {
	if c, ok := h.compiled[path]; ok && c != nil {
		return c, nil
	}

	src, err := rig.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math"))
	if err := script.Add("yaw", 0.0); err != nil {
		return nil, err
	}
	if err := script.Add("count", 0); err != nil {
		return nil, err
	}
	if err := script.Add("player", ""); err != nil {
		return nil, err
	}
	if err := script.Add("world", ""); err != nil {
		return nil, err
	}

	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	h.compiled[path] = c
	return c, nil
}

// Invalidate drops a cached script so the next recenter recompiles it.
// Used by hot reload.
func (h *HookRuntime) Invalidate(path string) {
	if h == nil {
		return
	}
	delete(h.compiled, path)
}
