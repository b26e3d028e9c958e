// Package input maps terminal bytes to discrete key events and tracks the
// satellite's thruster controls.
package input

// Key identifies a physical key the game cares about.
type Key int

const (
	KeyNone Key = iota
	KeyYawLeft
	KeyYawRight
	KeyTransLeft
	KeyTransRight
	KeyTransFwd
	KeyTransBack
	KeyGrab
	KeyQuit
	KeyEnter
	KeyEscape
)

// Event is a discrete key press or release. Repeat marks presses produced by
// terminal auto-repeat while the key is already held.
type Event struct {
	Key    Key
	Press  bool
	Repeat bool
}

// Controls holds the seven level-triggered thruster flags. Each flag is set
// on key-down and cleared on key-up of its bound key; flags combine freely.
type Controls struct {
	YawLeft    bool
	YawRight   bool
	TransLeft  bool
	TransRight bool
	TransFwd   bool
	TransBack  bool
	Grab       bool
}

// HandleEvent applies a key event to the control flags. Returns true if the
// event was consumed. Auto-repeat events are ignored so that holding a key
// never toggles its flag.
func (c *Controls) HandleEvent(ev Event) bool {
	if ev.Repeat {
		return false
	}
	switch ev.Key {
	case KeyYawLeft:
		c.YawLeft = ev.Press
	case KeyYawRight:
		c.YawRight = ev.Press
	case KeyTransLeft:
		c.TransLeft = ev.Press
	case KeyTransRight:
		c.TransRight = ev.Press
	case KeyTransFwd:
		c.TransFwd = ev.Press
	case KeyTransBack:
		c.TransBack = ev.Press
	case KeyGrab:
		c.Grab = ev.Press
	default:
		return false
	}
	return true
}

// ThrusterCount returns how many thrusters are firing. Grab is not a
// thruster and burns no fuel.
func (c Controls) ThrusterCount() int {
	n := 0
	for _, on := range [...]bool{c.YawLeft, c.YawRight, c.TransLeft, c.TransRight, c.TransFwd, c.TransBack} {
		if on {
			n++
		}
	}
	return n
}

// Reset clears all flags.
func (c *Controls) Reset() {
	*c = Controls{}
}
