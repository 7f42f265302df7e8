package rig

import (
	"strings"
	"testing"
)

func TestParseSpecAndDefaults(t *testing.T) {
	doc := `
entities:
  - name: world
    transform: {}
  - name: player
    transform: {}
  - name: head
    transform:
      parent: player
      position: [0, 1.6, 0]
    camera:
      active: true
  - name: left-hand
    controller:
      hand: left
    recenter: {}
`
	spec, err := ParseSpec([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if len(spec.Entities) != 4 {
		t.Fatalf("entities = %d, want 4", len(spec.Entities))
	}

	head := spec.Entities[2]
	if head.Transform.Parent != "player" || head.Transform.Position[1] != 1.6 {
		t.Fatalf("head transform = %+v", head.Transform)
	}
	if head.Camera == nil || !head.Camera.Active {
		t.Fatalf("head camera = %+v", head.Camera)
	}

	r := spec.Entities[3].Recenter
	if r == nil {
		t.Fatal("recenter spec missing")
	}
	r.ApplyDefaults()
	if r.Player != "player" || r.World != "world" {
		t.Fatalf("defaults = player %q, world %q", r.Player, r.World)
	}
	if len(r.Buttons) != 4 || r.Buttons[0] != "a" || r.Buttons[3] != "y" {
		t.Fatalf("default buttons = %v", r.Buttons)
	}

	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "duplicate_names",
			doc: `
entities:
  - name: world
  - name: world
`,
			want: []string{`duplicate entity name "world"`},
		},
		{
			name: "unknown_parent",
			doc: `
entities:
  - name: head
    transform:
      parent: torso
`,
			want: []string{`unknown parent "torso"`},
		},
		{
			name: "self_parent",
			doc: `
entities:
  - name: head
    transform:
      parent: head
`,
			want: []string{`is its own parent`},
		},
		{
			name: "dangling_recenter_refs_and_no_camera",
			doc: `
entities:
  - name: left-hand
    recenter:
      player: rig
      world: stage
`,
			want: []string{
				`recenter player "rig" not in rig`,
				`recenter world "stage" not in rig`,
				`no active camera`,
			},
		},
		{
			name: "unknown_button",
			doc: `
entities:
  - name: world
  - name: player
  - name: head
    camera: {active: true}
  - name: left-hand
    recenter:
      buttons: [a, b, x, trigger]
`,
			want: []string{`unknown button "trigger"`},
		},
		{
			name: "two_active_cameras",
			doc: `
entities:
  - name: head
    camera: {active: true}
  - name: spectator
    camera: {active: true}
`,
			want: []string{`2 active cameras`},
		},
		{
			name: "unnamed_entity",
			doc: `
entities:
  - transform: {}
`,
			want: []string{`entity 0 has no name`},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := ParseSpec([]byte(c.doc))
			if err != nil {
				t.Fatalf("ParseSpec: %v", err)
			}
			err = spec.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			for _, want := range c.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate error %q missing %q", err, want)
				}
			}
		})
	}
}

func TestLoadSpecEmbeddedDefault(t *testing.T) {
	spec, err := LoadSpec(DefaultRig)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("embedded default rig should validate: %v", err)
	}

	var hasRecenter bool
	for _, e := range spec.Entities {
		if e.Recenter != nil {
			hasRecenter = true
		}
	}
	if !hasRecenter {
		t.Fatal("default rig should carry a recenter behavior")
	}
}
