package component

// Camera marks an entity as a headset pose source. At most one camera
// should be active at a time; the recenter behavior reads the active one.
type Camera struct {
	Active bool
	FOV    float64
}

var CameraComponent = NewComponent[Camera]()
