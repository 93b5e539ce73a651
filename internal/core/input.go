package core

// InputFrame is the normalized input vector for a single simulation tick.
// The platform layer collapses raw key events into two signed unit axes and
// a fire flag; no device or key identifiers cross this boundary.
type InputFrame struct {
	// DX and DY are movement axes in {-1, 0, 1}. Opposed key pairs cancel
	// to 0 in the key mapper before the frame reaches the game.
	DX, DY int

	// Fire requests a shot this frame. Firing during cooldown or with no
	// ammo is a silent no-op inside the game.
	Fire bool

	// Quit signals the session should end. Games never act on it; the
	// platform tears the program down.
	Quit bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Axis folds a pair of opposed key states into a single {-1, 0, 1} axis.
func Axis(negative, positive bool) int {
	v := 0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
