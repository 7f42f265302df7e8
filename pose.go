package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/ecs/system"
	"github.com/milk9111/roomscale/spatial"
)

type entityPose struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"` // pitch, yaw, roll in degrees
}

type poseDoc struct {
	Entities []entityPose `yaml:"entities"`
}

// BuildPoseDoc snapshots the world-space pose of every named entity as a
// yaml document, for pasting into bug reports or rig files.
func BuildPoseDoc(w *ecs.World) ([]byte, error) {
	if w == nil {
		return nil, fmt.Errorf("pose: world is nil")
	}

	var doc poseDoc
	for _, e := range w.Entities() {
		name, ok := w.NameOf(e)
		if !ok {
			continue
		}
		if _, ok := ecs.Get(w, e, component.TransformComponent); !ok {
			continue
		}
		pos := system.WorldPosition(w, e)
		pitch, yaw, roll := spatial.EulerDegrees(system.WorldRotation(w, e))
		doc.Entities = append(doc.Entities, entityPose{
			Name:     name,
			Position: [3]float64{pos.X(), pos.Y(), pos.Z()},
			Rotation: [3]float64{pitch, yaw, roll},
		})
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("pose: marshal: %w", err)
	}
	return out, nil
}
