package chord

import "testing"

func TestDetectorFiresOnlyOnFullSet(t *testing.T) {
	names := []string{"a", "b", "x", "y"}

	// Every proper subset of the four inputs, held in order, must not fire.
	// Only the full set fires, and only on the press that completes it.
	for mask := 0; mask < 1<<len(names); mask++ {
		d := New(names...)
		fired := 0
		for i, n := range names {
			if mask&(1<<i) == 0 {
				continue
			}
			if d.Press(n) {
				fired++
			}
		}
		wantFired := 0
		if mask == 1<<len(names)-1 {
			wantFired = 1
		}
		if fired != wantFired {
			t.Errorf("mask %04b: fired %d times, want %d", mask, fired, wantFired)
		}
	}
}

func TestDetectorPressEdges(t *testing.T) {
	cases := []struct {
		name      string
		steps     func(d *Detector) (fires int)
		wantFires int
	}{
		{
			name: "release_before_complete_never_fires",
			steps: func(d *Detector) int {
				fires := 0
				for _, n := range []string{"a", "b", "x"} {
					if d.Press(n) {
						fires++
					}
				}
				d.Release("b")
				if d.Press("y") {
					fires++
				}
				return fires
			},
			wantFires: 0,
		},
		{
			name: "held_chord_fires_once",
			steps: func(d *Detector) int {
				fires := 0
				for _, n := range []string{"a", "b", "x", "y", "y", "a"} {
					if d.Press(n) {
						fires++
					}
				}
				return fires
			},
			wantFires: 1,
		},
		{
			name: "release_then_repress_one_button_fires_again",
			steps: func(d *Detector) int {
				fires := 0
				for _, n := range []string{"a", "b", "x", "y"} {
					if d.Press(n) {
						fires++
					}
				}
				d.Release("y")
				if d.Press("y") {
					fires++
				}
				return fires
			},
			wantFires: 2,
		},
		{
			name: "reset_clears_everything",
			steps: func(d *Detector) int {
				fires := 0
				for _, n := range []string{"a", "b", "x", "y"} {
					if d.Press(n) {
						fires++
					}
				}
				d.Reset()
				// All inputs cleared, so a single press cannot complete
				// the chord again.
				if d.Press("y") {
					fires++
				}
				return fires
			},
			wantFires: 1,
		},
		{
			name: "unknown_input_ignored",
			steps: func(d *Detector) int {
				fires := 0
				for _, n := range []string{"a", "b", "x", "trigger"} {
					if d.Press(n) {
						fires++
					}
				}
				return fires
			},
			wantFires: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := New("a", "b", "x", "y")
			if got := c.steps(d); got != c.wantFires {
				t.Fatalf("fires = %d, want %d", got, c.wantFires)
			}
		})
	}
}

func TestDetectorState(t *testing.T) {
	d := New("a", "b", "x", "y")
	d.Press("a")
	d.Press("x")
	if d.Held() != 2 {
		t.Fatalf("Held = %d, want 2", d.Held())
	}
	if !d.Pressed("a") || d.Pressed("b") {
		t.Fatalf("Pressed state wrong: a=%v b=%v", d.Pressed("a"), d.Pressed("b"))
	}
	if d.Latched() {
		t.Fatal("detector should not be latched before firing")
	}
	d.Press("b")
	d.Press("y")
	if !d.Latched() {
		t.Fatal("detector should be latched after firing")
	}
	d.Release("a")
	if d.Latched() {
		t.Fatal("release should re-arm the detector")
	}
	if got := d.Names(); len(got) != 4 || got[0] != "a" || got[3] != "y" {
		t.Fatalf("Names = %v", got)
	}
}
