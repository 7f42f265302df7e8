package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/rig"
	"github.com/milk9111/roomscale/spatial"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, spec *rig.EntitySpec) error

var componentRegistry = map[string]componentBuildFn{
	"transform":  addTransform,
	"camera":     addCamera,
	"controller": addController,
	"recenter":   addRecenter,
}

var componentBuildOrder = []string{
	"transform",
	"camera",
	"controller",
	"recenter",
}

func specHasComponent(spec *rig.EntitySpec, name string) bool {
	switch name {
	case "transform":
		return spec.Transform != nil
	case "camera":
		return spec.Camera != nil
	case "controller":
		return spec.Controller != nil
	case "recenter":
		return spec.Recenter != nil
	}
	return false
}

// BuildEntity creates one entity from its rig spec, attaching components in
// the fixed build order.
func BuildEntity(w *ecs.World, spec *rig.EntitySpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build entity: spec is nil")
	}

	e := w.CreateEntity()
	if spec.Name != "" {
		if err := w.SetName(e, spec.Name); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %w", err)
		}
	}

	for _, name := range componentBuildOrder {
		if !specHasComponent(spec, name) {
			continue
		}
		build, ok := componentRegistry[name]
		if !ok {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity %q: no builder for component %q", spec.Name, name)
		}
		if err := build(w, e, spec); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity %q: component %q: %w", spec.Name, name, err)
		}
	}

	return e, nil
}

// BuildRig validates a rig document and instantiates every entity in it.
func BuildRig(w *ecs.World, spec *rig.Spec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("build rig: spec is nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build rig: %w", err)
	}

	entities := make([]ecs.Entity, 0, len(spec.Entities))
	for i := range spec.Entities {
		e, err := BuildEntity(w, &spec.Entities[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// BuildDefaultRig loads the embedded default rig document and builds it.
func BuildDefaultRig(w *ecs.World) ([]ecs.Entity, error) {
	spec, err := rig.LoadSpec(rig.DefaultRig)
	if err != nil {
		return nil, fmt.Errorf("build rig: %w", err)
	}
	return BuildRig(w, spec)
}

func addTransform(w *ecs.World, e ecs.Entity, spec *rig.EntitySpec) error {
	ts := spec.Transform
	t := component.NewTransform()
	t.Position = mgl64.Vec3{ts.Position[0], ts.Position[1], ts.Position[2]}
	if ts.Rotation != [3]float64{} {
		t.Rotation = spatial.QuatFromEulerDegrees(ts.Rotation[0], ts.Rotation[1], ts.Rotation[2])
	}
	t.Parent = ts.Parent
	return ecs.Add(w, e, component.TransformComponent, &t)
}

func addCamera(w *ecs.World, e ecs.Entity, spec *rig.EntitySpec) error {
	cs := spec.Camera
	c := component.Camera{Active: cs.Active, FOV: cs.FOV}
	return ecs.Add(w, e, component.CameraComponent, &c)
}

func addController(w *ecs.World, e ecs.Entity, spec *rig.EntitySpec) error {
	c := component.NewController(spec.Controller.Hand)
	return ecs.Add(w, e, component.ControllerComponent, &c)
}

func addRecenter(w *ecs.World, e ecs.Entity, spec *rig.EntitySpec) error {
	rs := *spec.Recenter
	rs.ApplyDefaults()
	buttons := make([]component.Button, len(rs.Buttons))
	for i, b := range rs.Buttons {
		buttons[i] = component.Button(b)
	}
	r := component.NewRecenter(rs.Player, rs.World, buttons)
	r.HookScript = rs.Script
	return ecs.Add(w, e, component.RecenterComponent, &r)
}
