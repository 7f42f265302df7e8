package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/roomscale/ecs"
	"github.com/milk9111/roomscale/ecs/component"
	"github.com/milk9111/roomscale/ecs/entity"
	"github.com/milk9111/roomscale/rig"
	"github.com/milk9111/roomscale/spatial"
)

var testButtons = []component.Button{
	component.ButtonA,
	component.ButtonB,
	component.ButtonX,
	component.ButtonY,
}

// testRig builds the minimal scene the behavior needs: world, player, a
// head camera parented to the player, and one hand carrying the recenter
// behavior.
func testRig(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	spec := &rig.Spec{
		Entities: []rig.EntitySpec{
			{Name: "world", Transform: &rig.TransformSpec{}},
			{Name: "player", Transform: &rig.TransformSpec{}},
			{
				Name:      "head",
				Transform: &rig.TransformSpec{Parent: "player", Position: [3]float64{0, 1.6, 0}},
				Camera:    &rig.CameraSpec{Active: true},
			},
			{
				Name:       "left-hand",
				Transform:  &rig.TransformSpec{Parent: "player"},
				Controller: &rig.ControllerSpec{Hand: "left"},
				Recenter:   &rig.RecenterSpec{},
			},
		},
	}
	if _, err := entity.BuildRig(w, spec); err != nil {
		t.Fatalf("BuildRig: %v", err)
	}
	return w
}

func press(w *ecs.World, b component.Button) {
	w.Events().PushType(ecs.ButtonDownEvent(b))
	w.Update()
}

func release(w *ecs.World, b component.Button) {
	w.Events().PushType(ecs.ButtonUpEvent(b))
	w.Update()
}

func recenterOf(t *testing.T, w *ecs.World) *component.Recenter {
	t.Helper()
	hand, ok := w.FindByName("left-hand")
	if !ok {
		t.Fatal("left-hand missing")
	}
	rec, ok := ecs.Get(w, hand, component.RecenterComponent)
	if !ok {
		t.Fatal("recenter component missing")
	}
	return rec
}

func transformOf(t *testing.T, w *ecs.World, name string) *component.Transform {
	t.Helper()
	e, ok := w.FindByName(name)
	if !ok {
		t.Fatalf("entity %q missing", name)
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %q has no transform", name)
	}
	return tr
}

func setCameraOrientation(t *testing.T, w *ecs.World, pitch, yaw, roll float64) {
	t.Helper()
	transformOf(t, w, "head").Rotation = spatial.QuatFromEulerDegrees(pitch, yaw, roll)
}

func TestRecenterFiresOnlyOnFullChord(t *testing.T) {
	for mask := 0; mask < 1<<len(testButtons); mask++ {
		w := testRig(t)
		w.AddSystem(NewRecenterSystem(nil))
		for i, b := range testButtons {
			if mask&(1<<i) != 0 {
				press(w, b)
			}
		}
		rec := recenterOf(t, w)
		wantCount := 0
		if mask == 1<<len(testButtons)-1 {
			wantCount = 1
		}
		if rec.Count != wantCount {
			t.Errorf("mask %04b: fired %d times, want %d", mask, rec.Count, wantCount)
		}
	}
}

func TestRecenterDoesNotRefireWhileHeld(t *testing.T) {
	w := testRig(t)
	w.AddSystem(NewRecenterSystem(nil))
	for _, b := range testButtons {
		press(w, b)
	}
	rec := recenterOf(t, w)
	if rec.Count != 1 {
		t.Fatalf("count = %d, want 1", rec.Count)
	}

	// Holding the chord produces no further press edges; extra frames and
	// even a spurious repeat press must not fire again.
	w.Update()
	w.Update()
	press(w, component.ButtonY)
	if rec.Count != 1 {
		t.Fatalf("count = %d after hold, want 1", rec.Count)
	}
}

func TestRecenterReleaseThenRepressFiresAgain(t *testing.T) {
	w := testRig(t)
	w.AddSystem(NewRecenterSystem(nil))
	for _, b := range testButtons {
		press(w, b)
	}
	rec := recenterOf(t, w)
	if rec.Count != 1 {
		t.Fatalf("count = %d, want 1", rec.Count)
	}
	release(w, component.ButtonY)
	press(w, component.ButtonY)
	if rec.Count != 2 {
		t.Fatalf("count = %d after release/repress, want 2", rec.Count)
	}
}

func TestRecenterReleaseBeforeCompleteNeverFires(t *testing.T) {
	w := testRig(t)
	w.AddSystem(NewRecenterSystem(nil))
	press(w, component.ButtonA)
	press(w, component.ButtonB)
	press(w, component.ButtonX)
	release(w, component.ButtonB)
	press(w, component.ButtonY)
	if rec := recenterOf(t, w); rec.Count != 0 {
		t.Fatalf("count = %d, want 0", rec.Count)
	}
}

func TestRecenterAppliesCameraYawOnly(t *testing.T) {
	cases := []struct {
		name             string
		pitch, yaw, roll float64
	}{
		{"pure_yaw", 0, 135, 0},
		{"yaw_with_pitch", 30, 135, 0},
		{"yaw_with_pitch_and_roll", -25, -60, 40},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := testRig(t)
			w.AddSystem(NewRecenterSystem(nil))
			setCameraOrientation(t, w, c.pitch, c.yaw, c.roll)

			playerT := transformOf(t, w, "player")
			playerT.Position = mgl64.Vec3{2, 0.5, -3}

			for _, b := range testButtons {
				press(w, b)
			}

			p, y, r := spatial.EulerDegrees(transformOf(t, w, "world").Rotation)
			if math.Abs(p) > 1e-6 || math.Abs(r) > 1e-6 {
				t.Fatalf("world rotation not yaw-only: pitch %.6f roll %.6f", p, r)
			}
			if math.Abs(spatial.NormalizeDegrees(y-c.yaw)) > 1e-6 {
				t.Fatalf("world yaw = %.6f, want %.6f", y, c.yaw)
			}
			if playerT.Position != (mgl64.Vec3{}) {
				t.Fatalf("player position = %v, want origin", playerT.Position)
			}
		})
	}
}

func TestRecenterComposesParentOrientation(t *testing.T) {
	w := testRig(t)
	w.AddSystem(NewRecenterSystem(nil))

	// The camera's world-space orientation includes the player rig's own
	// rotation, not just the head-local one.
	transformOf(t, w, "player").Rotation = spatial.QuatFromEulerDegrees(0, 40, 0)
	setCameraOrientation(t, w, 0, 20, 0)

	for _, b := range testButtons {
		press(w, b)
	}

	_, y, _ := spatial.EulerDegrees(transformOf(t, w, "world").Rotation)
	if math.Abs(spatial.NormalizeDegrees(y-60)) > 1e-6 {
		t.Fatalf("world yaw = %.6f, want 60", y)
	}
}

// brokenRig builds a scene by hand so required entities can be left out.
func brokenRig(t *testing.T, withCamera bool) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()

	addNamed := func(name string) ecs.Entity {
		e := w.CreateEntity()
		if err := w.SetName(e, name); err != nil {
			t.Fatal(err)
		}
		tr := component.NewTransform()
		if err := ecs.Add(w, e, component.TransformComponent, &tr); err != nil {
			t.Fatal(err)
		}
		return e
	}

	addNamed("world")
	addNamed("player")
	if withCamera {
		head := addNamed("head")
		cam := component.Camera{Active: true}
		if err := ecs.Add(w, head, component.CameraComponent, &cam); err != nil {
			t.Fatal(err)
		}
	}

	hand := w.CreateEntity()
	rec := component.NewRecenter("", "", nil)
	if err := ecs.Add(w, hand, component.RecenterComponent, &rec); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestRecenterAbortsWithoutCamera(t *testing.T) {
	w := brokenRig(t, false)
	w.AddSystem(NewRecenterSystem(nil))

	playerT := transformOf(t, w, "player")
	worldT := transformOf(t, w, "world")
	playerT.Position = mgl64.Vec3{1, 2, 3}
	wantRotation := worldT.Rotation

	for _, b := range testButtons {
		press(w, b)
	}

	hand := w.Query(component.RecenterComponent.ID())[0]
	rec, _ := ecs.Get(w, hand, component.RecenterComponent)
	if rec.Count != 0 {
		t.Fatalf("count = %d, want 0", rec.Count)
	}
	if playerT.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("player position mutated: %v", playerT.Position)
	}
	if worldT.Rotation != wantRotation {
		t.Fatalf("world rotation mutated: %v", worldT.Rotation)
	}
}

func TestRecenterRetriesAfterResolutionFailure(t *testing.T) {
	w := brokenRig(t, false)
	w.AddSystem(NewRecenterSystem(nil))

	for _, b := range testButtons {
		press(w, b)
	}
	hand := w.Query(component.RecenterComponent.ID())[0]
	rec, _ := ecs.Get(w, hand, component.RecenterComponent)
	if rec.Count != 0 {
		t.Fatalf("count = %d, want 0", rec.Count)
	}

	// Fix the scene, then re-arm with a release/repress edge.
	head := w.CreateEntity()
	if err := w.SetName(head, "head"); err != nil {
		t.Fatal(err)
	}
	tr := component.NewTransform()
	if err := ecs.Add(w, head, component.TransformComponent, &tr); err != nil {
		t.Fatal(err)
	}
	cam := component.Camera{Active: true}
	if err := ecs.Add(w, head, component.CameraComponent, &cam); err != nil {
		t.Fatal(err)
	}

	release(w, component.ButtonY)
	press(w, component.ButtonY)
	if rec.Count != 1 {
		t.Fatalf("count = %d after repair, want 1", rec.Count)
	}
}

func TestRecenterMissingPlayerReference(t *testing.T) {
	w := brokenRig(t, true)
	hand := w.Query(component.RecenterComponent.ID())[0]
	rec, _ := ecs.Get(w, hand, component.RecenterComponent)
	rec.PlayerName = "ghost"
	w.AddSystem(NewRecenterSystem(nil))

	worldT := transformOf(t, w, "world")
	wantRotation := worldT.Rotation
	for _, b := range testButtons {
		press(w, b)
	}
	if rec.Count != 0 {
		t.Fatalf("count = %d, want 0", rec.Count)
	}
	if worldT.Rotation != wantRotation {
		t.Fatalf("world rotation mutated: %v", worldT.Rotation)
	}
}

func TestRecenterDisabledSkipsEventsButKeepsState(t *testing.T) {
	w := testRig(t)
	s := NewRecenterSystem(nil)
	w.AddSystem(s)

	press(w, component.ButtonA)
	press(w, component.ButtonB)
	press(w, component.ButtonX)

	// While disabled the release below is never observed, so the chord
	// still counts b as held. This mirrors the behavior not clearing state
	// on detach: the next press edge after re-enable completes the chord.
	s.Disable()
	release(w, component.ButtonB)
	s.Enable()

	press(w, component.ButtonY)
	if rec := recenterOf(t, w); rec.Count != 1 {
		t.Fatalf("count = %d, want 1 (stale chord state fires)", rec.Count)
	}
}

func TestControllerInputMirrorsButtons(t *testing.T) {
	w := testRig(t)
	w.AddSystem(NewControllerInputSystem())

	press(w, component.ButtonA)
	press(w, component.ButtonX)
	release(w, component.ButtonA)

	hand, _ := w.FindByName("left-hand")
	ctrl, ok := ecs.Get(w, hand, component.ControllerComponent)
	if !ok {
		t.Fatal("controller missing")
	}
	if ctrl.Pressed[component.ButtonA] || !ctrl.Pressed[component.ButtonX] {
		t.Fatalf("pressed state = %v", ctrl.Pressed)
	}
}
