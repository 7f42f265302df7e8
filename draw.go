package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/ecs/system"
	"github.com/milk9111/roomscale/spatial"
)

const pixelsPerMeter = 80

var (
	axisXColor   = color.RGBA{R: 0xd0, G: 0x50, B: 0x50, A: 0xff}
	axisZColor   = color.RGBA{R: 0x50, G: 0x70, B: 0xd0, A: 0xff}
	playerColor  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	cameraColor  = color.RGBA{R: 0x60, G: 0xd0, B: 0x60, A: 0xff}
	handColor    = color.RGBA{R: 0xa0, G: 0xa0, B: 0x40, A: 0xff}
	handHotColor = color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
)

// toScreen maps a world-space point to the top-down view: +X right,
// +Z down (so the -Z forward direction points up the screen).
func toScreen(x, z float64) (float32, float32) {
	return float32(baseWidth/2 + x*pixelsPerMeter), float32(baseHeight/2 + z*pixelsPerMeter)
}

// headingLine returns the screen endpoint of a ray from (x, z) along the
// given yaw heading.
func headingLine(x, z, yawDeg, length float64) (float32, float32) {
	rad := yawDeg * math.Pi / 180
	// Yaw 0 faces -Z; positive yaw turns toward -X.
	return toScreen(x-math.Sin(rad)*length, z-math.Cos(rad)*length)
}

func drawScene(screen *ebiten.Image, w *ecs.World) {
	if w == nil {
		return
	}

	drawWorldAxes(screen, w)
	drawPlayer(screen, w)
	drawCamera(screen, w)
	drawHands(screen, w)
}

// drawWorldAxes draws the world entity's X and Z axes under its current
// yaw, so a recenter visibly swings the grid.
func drawWorldAxes(screen *ebiten.Image, w *ecs.World) {
	yaw := 0.0
	if e, ok := w.FindByName(component.DefaultWorldName); ok {
		yaw = spatial.YawDegrees(system.WorldRotation(w, e))
	}

	_, _ = toScreen(0, 0)
	const axisMeters = 3.5

	// Z axis (forward) and X axis (right), both rotated by the world yaw.
	fx, fy := headingLine(0, 0, yaw, axisMeters)
	bx, by := headingLine(0, 0, yaw+180, axisMeters)
	vector.StrokeLine(screen, bx, by, fx, fy, 2, axisZColor, true)

	rx, ry := headingLine(0, 0, yaw-90, axisMeters)
	lx, ly := headingLine(0, 0, yaw+90, axisMeters)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, axisXColor, true)
}

func drawPlayer(screen *ebiten.Image, w *ecs.World) {
	e, ok := w.FindByName(component.DefaultPlayerName)
	if !ok {
		return
	}
	pos := system.WorldPosition(w, e)
	px, py := toScreen(pos.X(), pos.Z())
	vector.DrawFilledCircle(screen, px, py, 10, playerColor, true)
}

func drawCamera(screen *ebiten.Image, w *ecs.World) {
	camera, ok := system.ActiveCamera(w)
	if !ok {
		return
	}
	pos := system.WorldPosition(w, camera)
	yaw := spatial.YawDegrees(system.WorldRotation(w, camera))

	px, py := toScreen(pos.X(), pos.Z())
	hx, hy := headingLine(pos.X(), pos.Z(), yaw, 1.2)
	vector.StrokeLine(screen, px, py, hx, hy, 3, cameraColor, true)
	vector.DrawFilledCircle(screen, px, py, 5, cameraColor, true)
}

func drawHands(screen *ebiten.Image, w *ecs.World) {
	for _, e := range w.Query(component.ControllerComponent.ID(), component.TransformComponent.ID()) {
		pos := system.WorldPosition(w, e)
		px, py := toScreen(pos.X(), pos.Z())

		clr := handColor
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent); ok {
			for _, held := range ctrl.Pressed {
				if held {
					clr = handHotColor
					break
				}
			}
		}
		vector.DrawFilledCircle(screen, px, py, 4, clr, true)
	}
}
