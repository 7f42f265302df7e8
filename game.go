package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/ecs/entity"
	"github.com/milk9111/roomscale/ecs/system"
	"github.com/milk9111/roomscale/rig"
	"github.com/milk9111/roomscale/spatial"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game drives the whole pipeline without VR hardware: keyboard keys stand
// in for the controller buttons, arrow keys steer the headset, and the rig
// is drawn top-down.
type Game struct {
	frames int

	world    *ecs.World
	recenter *system.RecenterSystem
	hooks    *system.HookRuntime

	input   *Input
	watcher *rig.Watcher

	overlay     *ebitenui.UI
	status      *overlayStatus
	showOverlay bool

	rigName        string
	clipboardReady bool
}

func NewGame(rigName string, watch bool) (*Game, error) {
	if rigName == "" {
		rigName = rig.DefaultRig
	} else if !strings.HasSuffix(rigName, ".yaml") && !strings.HasSuffix(rigName, ".yml") {
		rigName += ".yaml"
	}

	g := &Game{
		rigName: rigName,
		input:   NewInput(),
	}
	if err := g.reload(); err != nil {
		return nil, err
	}

	if watch {
		watcher, err := rig.NewWatcher("rig", "rig/scripts")
		if err != nil {
			log.Printf("simulator: rig watcher unavailable: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("simulator: clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	g.overlay, g.status = NewOverlayUI(g)
	return g, nil
}

// reload rebuilds the world from the rig document. Pose edits made in the
// simulator are discarded; the document is the source of truth.
func (g *Game) reload() error {
	spec, err := rig.LoadSpec(g.rigName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildRig(w, spec); err != nil {
		return err
	}

	g.hooks = system.NewHookRuntime()
	g.recenter = system.NewRecenterSystem(g.hooks)
	w.AddSystem(system.NewControllerInputSystem())
	w.AddSystem(g.recenter)
	g.world = w
	g.input.ResetPose(w)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				log.Printf("simulator: %s changed, reloading rig", name)
				if err := g.reload(); err != nil {
					log.Printf("simulator: reload failed: %v", err)
				}
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("simulator: watcher: %v", err)
			}
		default:
		}
	}

	g.input.Update(g)
	g.world.Update()

	if g.showOverlay {
		g.status.Refresh(g)
		g.overlay.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.world)

	hud := fmt.Sprintf("FPS: %.0f    %s\n%s", ebiten.ActualFPS(), g.hudPose(), g.hudButtons())
	ebitenutil.DebugPrint(screen, hud)

	if g.showOverlay {
		g.overlay.Draw(screen)
	}
}

func (g *Game) hudPose() string {
	camera, ok := system.ActiveCamera(g.world)
	if !ok {
		return "no active camera"
	}
	yaw := spatial.YawDegrees(system.WorldRotation(g.world, camera))
	return fmt.Sprintf("camera yaw %.1f", yaw)
}

func (g *Game) hudButtons() string {
	var sb strings.Builder
	sb.WriteString("buttons:")
	for _, e := range g.world.Query(component.ControllerComponent.ID()) {
		ctrl, ok := ecs.Get(g.world, e, component.ControllerComponent)
		if !ok {
			continue
		}
		held := make([]string, 0, len(component.TrackedButtons))
		for _, b := range component.TrackedButtons {
			if ctrl.Pressed[b] {
				held = append(held, string(b))
			}
		}
		sb.WriteString(fmt.Sprintf(" %s[%s]", ctrl.Hand, strings.Join(held, " ")))
	}
	return sb.String()
}

func (g *Game) recenterCount() int {
	total := 0
	for _, e := range g.world.Query(component.RecenterComponent.ID()) {
		if rec, ok := ecs.Get(g.world, e, component.RecenterComponent); ok {
			total += rec.Count
		}
	}
	return total
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
