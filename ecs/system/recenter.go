package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/spatial"
)

// RecenterSystem watches the button event stream for each recenter
// behavior's chord. When a press edge completes the chord it reorients the
// world entity to the active camera's yaw and returns the player entity to
// the origin.
//
// Chord state lives on the component and is intentionally not cleared when
// the system is disabled: releases that happen while disabled are never
// observed, so a chord held across a disable/enable cycle can fire on the
// next press edge.
type RecenterSystem struct {
	hooks    *HookRuntime
	disabled bool
}

// NewRecenterSystem creates the behavior. hooks may be nil to skip script
// hooks entirely.
func NewRecenterSystem(hooks *HookRuntime) *RecenterSystem {
	return &RecenterSystem{hooks: hooks}
}

// Disable stops event processing without touching chord state.
func (s *RecenterSystem) Disable() { s.disabled = true }

// Enable resumes event processing.
func (s *RecenterSystem) Enable() { s.disabled = false }

func (s *RecenterSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.disabled {
		return
	}
	events := w.Events().Pending()
	if len(events) == 0 {
		return
	}

	for _, e := range w.Query(component.RecenterComponent.ID()) {
		rec, ok := ecs.Get(w, e, component.RecenterComponent)
		if !ok || rec.Chord == nil {
			continue
		}
		for _, evt := range events {
			button, pressed, ok := ecs.ButtonFromEvent(evt.Type)
			if !ok {
				continue
			}
			if !pressed {
				rec.Chord.Release(string(button))
				continue
			}
			// Evaluation happens only on press edges.
			if rec.Chord.Press(string(button)) {
				s.recalibrate(w, rec)
			}
		}
	}
}

// recalibrate resolves the three required entities, then applies rotation
// and position together. Any resolution failure aborts before the first
// mutation, so the scene is never left half-updated.
func (s *RecenterSystem) recalibrate(w *ecs.World, rec *component.Recenter) bool {
	player, ok := w.FindByName(rec.PlayerName)
	if !ok {
		fmt.Printf("recenter: player entity %q not found\n", rec.PlayerName)
		return false
	}
	worldEnt, ok := w.FindByName(rec.WorldName)
	if !ok {
		fmt.Printf("recenter: world entity %q not found\n", rec.WorldName)
		return false
	}
	camera, ok := ActiveCamera(w)
	if !ok {
		fmt.Printf("recenter: no active camera in scene\n")
		return false
	}
	playerT, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		fmt.Printf("recenter: player entity %q has no transform\n", rec.PlayerName)
		return false
	}
	worldT, ok := ecs.Get(w, worldEnt, component.TransformComponent)
	if !ok {
		fmt.Printf("recenter: world entity %q has no transform\n", rec.WorldName)
		return false
	}

	yaw := spatial.YawDegrees(WorldRotation(w, camera))
	worldT.Rotation = spatial.QuatFromEulerDegrees(0, yaw, 0)
	playerT.Position = mgl64.Vec3{}
	rec.Count++

	fmt.Printf("recenter: world yaw %.2f, player reset to origin\n", yaw)
	s.hooks.Notify(rec, yaw)
	return true
}

// ActiveCamera returns the entity holding the active camera, if any. It
// must also carry a transform to serve as a pose source.
func ActiveCamera(w *ecs.World) (ecs.Entity, bool) {
	for _, e := range w.Query(component.CameraComponent.ID(), component.TransformComponent.ID()) {
		cam, ok := ecs.Get(w, e, component.CameraComponent)
		if ok && cam.Active {
			return e, true
		}
	}
	return 0, false
}
