package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/ecs/system"
	"github.com/milk9111/roomscale/spatial"
)

const (
	yawDegreesPerFrame   = 1.5
	pitchDegreesPerFrame = 1.0
	maxPitchDegrees      = 89
)

// buttonKeys maps keyboard keys to the tracked controller buttons.
var buttonKeys = map[ebiten.Key]component.Button{
	ebiten.KeyZ: component.ButtonA,
	ebiten.KeyX: component.ButtonB,
	ebiten.KeyC: component.ButtonX,
	ebiten.KeyV: component.ButtonY,
}

// Input turns keyboard state into the eight button notifications and
// steers the headset camera.
type Input struct {
	yaw   float64
	pitch float64
}

func NewInput() *Input {
	return &Input{}
}

// ResetPose re-reads the camera orientation after a rig (re)load so the
// arrow keys continue from the document's pose.
func (i *Input) ResetPose(w *ecs.World) {
	i.yaw, i.pitch = 0, 0
	camera, ok := system.ActiveCamera(w)
	if !ok {
		return
	}
	if tr, ok := ecs.Get(w, camera, component.TransformComponent); ok {
		p, y, _ := spatial.EulerDegrees(tr.Rotation)
		i.pitch, i.yaw = p, y
	}
}

func (i *Input) Update(g *Game) {
	w := g.world

	for key, button := range buttonKeys {
		if inpututil.IsKeyJustPressed(key) {
			w.Events().PushType(ecs.ButtonDownEvent(button))
		}
		if inpututil.IsKeyJustReleased(key) {
			w.Events().PushType(ecs.ButtonUpEvent(button))
		}
	}

	i.steerCamera(w)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		i.copyPose(g)
	}
}

func (i *Input) steerCamera(w *ecs.World) {
	moved := false
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.yaw += yawDegreesPerFrame
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.yaw -= yawDegreesPerFrame
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		i.pitch += pitchDegreesPerFrame
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		i.pitch -= pitchDegreesPerFrame
		moved = true
	}
	if !moved {
		return
	}

	i.yaw = spatial.NormalizeDegrees(i.yaw)
	if i.pitch > maxPitchDegrees {
		i.pitch = maxPitchDegrees
	} else if i.pitch < -maxPitchDegrees {
		i.pitch = -maxPitchDegrees
	}

	camera, ok := system.ActiveCamera(w)
	if !ok {
		return
	}
	if tr, ok := ecs.Get(w, camera, component.TransformComponent); ok {
		tr.Rotation = spatial.QuatFromEulerDegrees(i.pitch, i.yaw, 0)
	}
}

func (i *Input) copyPose(g *Game) {
	if !g.clipboardReady {
		log.Printf("simulator: clipboard unavailable, pose not copied")
		return
	}
	doc, err := BuildPoseDoc(g.world)
	if err != nil {
		log.Printf("simulator: pose export: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, doc)
	log.Printf("simulator: pose copied to clipboard")
}
