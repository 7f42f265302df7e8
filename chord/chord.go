// Package chord implements a fixed-size detector over a set of named
// boolean inputs. A press that completes the full set fires exactly once;
// the detector re-arms only after at least one input has been released.
package chord

// Detector tracks which inputs of a fixed set are currently held.
type Detector struct {
	required []string
	pressed  map[string]bool
	fired    bool
}

// New creates a detector over the given input names. Duplicate names are
// collapsed.
func New(names ...string) *Detector {
	d := &Detector{pressed: make(map[string]bool, len(names))}
	for _, n := range names {
		if _, ok := d.pressed[n]; ok {
			continue
		}
		d.required = append(d.required, n)
		d.pressed[n] = false
	}
	return d
}

// Press marks name as held and reports whether this press completed the
// full set. Unknown names are ignored. Evaluation happens only here, on the
// press edge, so a held chord cannot fire twice: once fired, the detector
// stays latched until a release breaks the chord.
func (d *Detector) Press(name string) bool {
	if d == nil {
		return false
	}
	if _, ok := d.pressed[name]; !ok {
		return false
	}
	d.pressed[name] = true
	if d.fired {
		return false
	}
	for _, n := range d.required {
		if !d.pressed[n] {
			return false
		}
	}
	d.fired = true
	return true
}

// Release clears a single input and re-arms the detector. It never triggers
// evaluation.
func (d *Detector) Release(name string) {
	if d == nil {
		return
	}
	if _, ok := d.pressed[name]; !ok {
		return
	}
	d.pressed[name] = false
	d.fired = false
}

// Reset clears all inputs and the fire latch.
func (d *Detector) Reset() {
	if d == nil {
		return
	}
	for n := range d.pressed {
		d.pressed[n] = false
	}
	d.fired = false
}

// Pressed reports whether a single input is currently held.
func (d *Detector) Pressed(name string) bool {
	if d == nil {
		return false
	}
	return d.pressed[name]
}

// Held returns the number of inputs currently held.
func (d *Detector) Held() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, v := range d.pressed {
		if v {
			count++
		}
	}
	return count
}

// Latched reports whether the detector has fired and not yet been re-armed
// by a release.
func (d *Detector) Latched() bool {
	return d != nil && d.fired
}

// Names returns the input names in registration order.
func (d *Detector) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.required...)
}
