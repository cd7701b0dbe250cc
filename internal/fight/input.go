package fight

// Input is one tick's normalized control vector for a single fighter.
// Axes are in [-1, 1]; y > 0 means up. The simulation does not validate
// out-of-range values.
type Input struct {
	X         float64
	Y         float64
	PunchHeld bool
	KickHeld  bool
}

// InputSource supplies the human-controlled fighter's input once per tick.
type InputSource interface {
	Sample() Input
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() Input

// Sample implements InputSource.
func (f InputFunc) Sample() Input { return f() }
