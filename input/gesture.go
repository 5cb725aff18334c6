package input

// Gesture identifies one classified input stream.
type Gesture int

const (
	// GestureSpin is a primary button drag. Spins the globe in 3D and
	// pans the map in 2D and Columbus view.
	GestureSpin Gesture = iota
	// GestureLook is a primary button drag with shift held.
	GestureLook
	// GestureTilt is a secondary button drag. Tilts in 3D, twists in 2D.
	GestureTilt
	// GestureZoom is an auxiliary button drag.
	GestureZoom
	// GestureWheel is wheel scroll, reported as an instantaneous flick.
	GestureWheel

	gestureCount
)

type Point struct {
	X, Y float64
}

// Movement is a screen-space drag step.
type Movement struct {
	Start Point
	End   Point
}

// Motion is the displacement from Start to End.
func (m Movement) Motion() Point {
	return Point{X: m.End.X - m.Start.X, Y: m.End.Y - m.Start.Y}
}
