package system

import (
	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
)

// ControllerInputSystem mirrors button events into Controller components so
// the HUD can show held state without re-parsing the event stream.
type ControllerInputSystem struct{}

func NewControllerInputSystem() *ControllerInputSystem {
	return &ControllerInputSystem{}
}

func (s *ControllerInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := w.Events().Pending()
	if len(events) == 0 {
		return
	}

	for _, e := range w.Query(component.ControllerComponent.ID()) {
		ctrl, ok := ecs.Get(w, e, component.ControllerComponent)
		if !ok || ctrl.Pressed == nil {
			continue
		}
		for _, evt := range events {
			button, pressed, ok := ecs.ButtonFromEvent(evt.Type)
			if !ok {
				continue
			}
			ctrl.Pressed[button] = pressed
		}
	}
}
