package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
)

// maxParentDepth bounds parent-chain walks so a cyclic rig cannot hang the
// frame.
const maxParentDepth = 32

// WorldRotation composes an entity's absolute orientation through its
// parent chain. Entities without a transform, or with a dangling parent
// name, contribute identity from that point up.
func WorldRotation(w *ecs.World, e ecs.Entity) mgl64.Quat {
	rot := mgl64.QuatIdent()
	cur := e
	for depth := 0; depth < maxParentDepth; depth++ {
		t, ok := ecs.Get(w, cur, component.TransformComponent)
		if !ok {
			break
		}
		rot = t.Rotation.Mul(rot)
		if t.Parent == "" {
			break
		}
		parent, ok := w.FindByName(t.Parent)
		if !ok {
			break
		}
		cur = parent
	}
	return rot
}

// WorldPosition composes an entity's absolute position through its parent
// chain.
func WorldPosition(w *ecs.World, e ecs.Entity) mgl64.Vec3 {
	pos := mgl64.Vec3{}
	rot := mgl64.QuatIdent()
	// Collect the chain leaf-to-root, then fold root-to-leaf.
	chain := make([]*component.Transform, 0, 4)
	cur := e
	for depth := 0; depth < maxParentDepth; depth++ {
		t, ok := ecs.Get(w, cur, component.TransformComponent)
		if !ok {
			break
		}
		chain = append(chain, t)
		if t.Parent == "" {
			break
		}
		parent, ok := w.FindByName(t.Parent)
		if !ok {
			break
		}
		cur = parent
	}
	for i := len(chain) - 1; i >= 0; i-- {
		t := chain[i]
		pos = pos.Add(rot.Rotate(t.Position))
		rot = rot.Mul(t.Rotation)
	}
	return pos
}
