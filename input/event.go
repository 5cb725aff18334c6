package input

type MouseButton int

const (
	MouseButtonNull      MouseButton = -1
	MouseButtonPrimary   MouseButton = 0
	MouseButtonAuxiliary MouseButton = 1
	MouseButtonSecondary MouseButton = 2
)

type MouseEvent struct {
	OffsetX, OffsetY float64
	Button           MouseButton
	ShiftKey         bool
}

type WheelEvent struct {
	MouseEvent
	DeltaX, DeltaY, DeltaZ float64
}
