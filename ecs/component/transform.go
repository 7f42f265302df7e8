package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's pose in the scene. Parent, when set, names the
// entity this pose is local to; world-space poses compose through the
// parent chain.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Parent   string
}

// NewTransform returns an identity pose.
func NewTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

var TransformComponent = NewComponent[Transform]()
