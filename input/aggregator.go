// Package input classifies raw mouse and wheel events into per-gesture
// channels with press/release timestamps and movement deltas, the form
// consumed by the camera controller once per tick.
package input

import (
	"time"
)

type channel struct {
	down         bool
	moving       bool
	movement     Movement
	hasMovement  bool
	lastMovement Movement
	hasLast      bool
	pressTime    time.Time
	hasPress     bool
	releaseTime  time.Time
	hasRelease   bool
}

// Aggregator owns the gesture channels. Events are fed through
// MouseDown/MouseMove/MouseUp/Wheel; the controller reads the channel
// state during its tick and calls EndFrame afterward.
type Aggregator struct {
	channels [gestureCount]channel

	// pressed remembers which gesture each physical button mapped to at
	// press time, so a release finds its own channel even when buttons
	// are chorded or the shift state changed mid drag.
	pressed map[MouseButton]Gesture

	active    Gesture
	hasActive bool
	lastPos   Point

	wheel  wheelNormalizer
	closed bool

	now func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		pressed: map[MouseButton]Gesture{},
		now:     time.Now,
	}
}

func classify(e MouseEvent) (Gesture, bool) {
	switch e.Button {
	case MouseButtonPrimary:
		if e.ShiftKey {
			return GestureLook, true
		}
		return GestureSpin, true
	case MouseButtonSecondary:
		return GestureTilt, true
	case MouseButtonAuxiliary:
		return GestureZoom, true
	}
	return 0, false
}

func (a *Aggregator) MouseDown(e MouseEvent) {
	if a.closed {
		return
	}
	g, ok := classify(e)
	if !ok {
		return
	}
	a.pressed[e.Button] = g
	ch := &a.channels[g]
	ch.down = true
	ch.pressTime = a.now()
	ch.hasPress = true
	ch.hasMovement = false
	ch.hasLast = false
	a.active = g
	a.hasActive = true
	a.lastPos = Point{X: e.OffsetX, Y: e.OffsetY}
}

func (a *Aggregator) MouseMove(e MouseEvent) {
	if a.closed || !a.hasActive {
		return
	}
	ch := &a.channels[a.active]
	if !ch.down {
		return
	}
	pos := Point{X: e.OffsetX, Y: e.OffsetY}
	m := Movement{Start: a.lastPos, End: pos}
	ch.movement = m
	ch.hasMovement = true
	ch.moving = true
	if m.Start != m.End {
		ch.lastMovement = m
		ch.hasLast = true
	}
	a.lastPos = pos
}

func (a *Aggregator) MouseUp(e MouseEvent) {
	if a.closed {
		return
	}
	g, ok := a.pressed[e.Button]
	if !ok {
		return
	}
	delete(a.pressed, e.Button)
	ch := &a.channels[g]
	ch.down = false
	ch.releaseTime = a.now()
	ch.hasRelease = true
	if a.hasActive && a.active == g {
		a.hasActive = false
		// movement routing falls back to a still-held button
		for _, rem := range a.pressed {
			a.active = rem
			a.hasActive = true
			break
		}
	}
}

// Wheel reports a scroll as an instantaneous press and release with a
// vertical movement, so a wheel step always qualifies as a flick.
func (a *Aggregator) Wheel(e WheelEvent) {
	if a.closed {
		return
	}
	now := a.now()
	dy, ready := a.wheel.pixels(e.DeltaY, now)
	if !ready || dy == 0 {
		return
	}
	ch := &a.channels[GestureWheel]
	ch.pressTime = now
	ch.hasPress = true
	ch.releaseTime = now
	ch.hasRelease = true
	ch.movement = Movement{End: Point{Y: dy}}
	ch.hasMovement = true
	ch.lastMovement = ch.movement
	ch.hasLast = true
	ch.moving = true
}

func (a *Aggregator) ButtonDown(g Gesture) bool {
	return a.channels[g].down
}

func (a *Aggregator) Moving(g Gesture) bool {
	return a.channels[g].moving
}

func (a *Aggregator) Movement(g Gesture) (Movement, bool) {
	ch := &a.channels[g]
	return ch.movement, ch.hasMovement
}

func (a *Aggregator) LastMovement(g Gesture) (Movement, bool) {
	ch := &a.channels[g]
	return ch.lastMovement, ch.hasLast
}

func (a *Aggregator) PressTime(g Gesture) (time.Time, bool) {
	ch := &a.channels[g]
	return ch.pressTime, ch.hasPress
}

func (a *Aggregator) ReleaseTime(g Gesture) (time.Time, bool) {
	ch := &a.channels[g]
	return ch.releaseTime, ch.hasRelease
}

// EndFrame drops the per-tick movement state. Press/release bookkeeping
// and last movements survive for the inertia window.
func (a *Aggregator) EndFrame() {
	for i := range a.channels {
		a.channels[i].moving = false
		a.channels[i].hasMovement = false
	}
}

func (a *Aggregator) Close() {
	a.closed = true
	a.hasActive = false
	a.pressed = map[MouseButton]Gesture{}
	for i := range a.channels {
		a.channels[i] = channel{}
	}
}
