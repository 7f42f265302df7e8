package component

// Button identifies one of the tracked controller buttons.
type Button string

const (
	ButtonA Button = "a"
	ButtonB Button = "b"
	ButtonX Button = "x"
	ButtonY Button = "y"
)

// TrackedButtons is the fixed button set in wire order.
var TrackedButtons = []Button{ButtonA, ButtonB, ButtonX, ButtonY}

// Controller mirrors the current held state of a hand controller's buttons,
// for HUD display and debugging. The authoritative press/release stream is
// the world event queue.
type Controller struct {
	Hand    string
	Pressed map[Button]bool
}

// NewController returns a controller with all tracked buttons released.
func NewController(hand string) Controller {
	pressed := make(map[Button]bool, len(TrackedButtons))
	for _, b := range TrackedButtons {
		pressed[b] = false
	}
	return Controller{Hand: hand, Pressed: pressed}
}

var ControllerComponent = NewComponent[Controller]()
