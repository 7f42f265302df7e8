// Package rig loads yaml rig documents describing the scene: the world,
// the player, the headset camera, and the hand controllers with their
// recenter behavior.
package rig

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/roomscale/ecs/component"
)

type Spec struct {
	Entities []EntitySpec `yaml:"entities"`
}

type EntitySpec struct {
	Name       string          `yaml:"name"`
	Transform  *TransformSpec  `yaml:"transform"`
	Camera     *CameraSpec     `yaml:"camera"`
	Controller *ControllerSpec `yaml:"controller"`
	Recenter   *RecenterSpec   `yaml:"recenter"`
}

type TransformSpec struct {
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"` // pitch, yaw, roll in degrees
	Parent   string     `yaml:"parent"`
}

type CameraSpec struct {
	Active bool    `yaml:"active"`
	FOV    float64 `yaml:"fov"`
}

type ControllerSpec struct {
	Hand string `yaml:"hand"`
}

type RecenterSpec struct {
	Player  string   `yaml:"player"`
	World   string   `yaml:"world"`
	Buttons []string `yaml:"buttons"`
	Script  string   `yaml:"script"`
}

// ApplyDefaults fills the documented defaults: player "player", world
// "world", and the full a/b/x/y button set.
func (r *RecenterSpec) ApplyDefaults() {
	if r == nil {
		return
	}
	if r.Player == "" {
		r.Player = component.DefaultPlayerName
	}
	if r.World == "" {
		r.World = component.DefaultWorldName
	}
	if len(r.Buttons) == 0 {
		for _, b := range component.TrackedButtons {
			r.Buttons = append(r.Buttons, string(b))
		}
	}
}

// ParseSpec decodes a rig document without validating it.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("rig: unmarshal: %w", err)
	}
	return &spec, nil
}

// LoadSpec loads and decodes a rig document by name, disk first, embedded
// fallback.
func LoadSpec(filename string) (*Spec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("rig: load %s: %w", filename, err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("rig: %s: %w", filename, err)
	}
	return spec, nil
}

// Validate checks the document's internal references: unique entity names,
// resolvable parents, resolvable recenter targets, known buttons, and an
// active camera whenever a recenter behavior is present. All problems are
// reported, not just the first.
func (s *Spec) Validate() error {
	if s == nil {
		return errors.New("rig: nil spec")
	}

	var errs []error
	names := make(map[string]bool, len(s.Entities))
	for i, e := range s.Entities {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("rig: entity %d has no name", i))
			continue
		}
		if names[e.Name] {
			errs = append(errs, fmt.Errorf("rig: duplicate entity name %q", e.Name))
		}
		names[e.Name] = true
	}

	activeCameras := 0
	hasRecenter := false
	for _, e := range s.Entities {
		if e.Camera != nil && e.Camera.Active {
			activeCameras++
		}
		if e.Transform != nil && e.Transform.Parent != "" {
			if !names[e.Transform.Parent] {
				errs = append(errs, fmt.Errorf("rig: entity %q: unknown parent %q", e.Name, e.Transform.Parent))
			}
			if e.Transform.Parent == e.Name {
				errs = append(errs, fmt.Errorf("rig: entity %q is its own parent", e.Name))
			}
		}
		if e.Recenter == nil {
			continue
		}
		hasRecenter = true
		r := *e.Recenter
		r.ApplyDefaults()
		if !names[r.Player] {
			errs = append(errs, fmt.Errorf("rig: entity %q: recenter player %q not in rig", e.Name, r.Player))
		}
		if !names[r.World] {
			errs = append(errs, fmt.Errorf("rig: entity %q: recenter world %q not in rig", e.Name, r.World))
		}
		for _, b := range r.Buttons {
			if !knownButton(b) {
				errs = append(errs, fmt.Errorf("rig: entity %q: unknown button %q", e.Name, b))
			}
		}
	}

	if hasRecenter && activeCameras == 0 {
		errs = append(errs, errors.New("rig: recenter behavior present but no active camera"))
	}
	if activeCameras > 1 {
		errs = append(errs, fmt.Errorf("rig: %d active cameras, want at most one", activeCameras))
	}

	return errors.Join(errs...)
}

func knownButton(name string) bool {
	for _, b := range component.TrackedButtons {
		if string(b) == name {
			return true
		}
	}
	return false
}
