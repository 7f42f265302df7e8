package component

import "github.com/milk9111/roomscale/chord"

// Recenter configures the world-recenter behavior on a controller entity.
// When the configured button chord completes, the world entity is rotated
// to the active camera's yaw and the player entity returns to the origin.
//
// Chord state deliberately survives the behavior being disabled; see the
// recenter system.
type Recenter struct {
	PlayerName string
	WorldName  string
	Buttons    []Button
	HookScript string

	Chord *chord.Detector
	Count int
}

// DefaultPlayerName and DefaultWorldName are the reference defaults used
// when a rig spec leaves them empty.
const (
	DefaultPlayerName = "player"
	DefaultWorldName  = "world"
)

// NewRecenter builds a behavior over the given buttons, falling back to the
// full tracked set and the default reference names.
func NewRecenter(playerName, worldName string, buttons []Button) Recenter {
	if playerName == "" {
		playerName = DefaultPlayerName
	}
	if worldName == "" {
		worldName = DefaultWorldName
	}
	if len(buttons) == 0 {
		buttons = append([]Button(nil), TrackedButtons...)
	}
	names := make([]string, len(buttons))
	for i, b := range buttons {
		names[i] = string(b)
	}
	return Recenter{
		PlayerName: playerName,
		WorldName:  worldName,
		Buttons:    buttons,
		Chord:      chord.New(names...),
	}
}

var RecenterComponent = NewComponent[Recenter]()
