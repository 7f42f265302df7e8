package system

import (
	"strings"
	"testing"

	"github.com/milk9111/roomscale/ecs/component"
)

func TestHookRuntimeRunsEmbeddedScript(t *testing.T) {
	h := NewHookRuntime()
	rec := component.NewRecenter("player", "world", nil)
	rec.HookScript = "on_recenter.tengo"
	rec.Count = 3

	if err := h.run(&rec, 42.5); err != nil {
		t.Fatalf("run: %v", err)
	}
	// Second run reuses the compiled script.
	if err := h.run(&rec, -10); err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if len(h.compiled) != 1 {
		t.Fatalf("compiled cache size = %d, want 1", len(h.compiled))
	}
}

func TestHookRuntimeMissingScript(t *testing.T) {
	h := NewHookRuntime()
	rec := component.NewRecenter("player", "world", nil)
	rec.HookScript = "nope.tengo"

	err := h.run(&rec, 0)
	if err == nil {
		t.Fatal("missing script should error")
	}
	if !strings.Contains(err.Error(), "load script") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHookRuntimeInvalidate(t *testing.T) {
	h := NewHookRuntime()
	rec := component.NewRecenter("player", "world", nil)
	rec.HookScript = "on_recenter.tengo"

	if err := h.run(&rec, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	h.Invalidate("on_recenter.tengo")
	if len(h.compiled) != 0 {
		t.Fatalf("cache should be empty after invalidate, got %d", len(h.compiled))
	}
	if err := h.run(&rec, 2); err != nil {
		t.Fatalf("recompile after invalidate: %v", err)
	}
}

func TestHookNotifyNilSafe(t *testing.T) {
	var h *HookRuntime
	rec := component.NewRecenter("player", "world", nil)
	rec.HookScript = "on_recenter.tengo"
	// Must not panic with a nil runtime or an empty script.
	h.Notify(&rec, 0)
	NewHookRuntime().Notify(&component.Recenter{}, 0)
}
