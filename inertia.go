package globecam

import (
	"math"

	"github.com/seqsense/globecam/input"
)

// decay maps elapsed seconds and a damping coefficient in [0,1) to an
// amplitude multiplier. Larger coefficients decay slower.
func decay(elapsed, coefficient float64) float64 {
	if elapsed < 0 {
		return 0
	}
	tau := (1 - coefficient) * 25
	return math.Exp(-tau * elapsed)
}

// action applies a movement to the camera. The same function serves live
// drags and the synthetic movements produced by inertia.
type action func(c *Controller, m input.Movement)

// inertiaState is the per-channel slot carrying the synthetic movement
// across ticks. The seeded motion stays fixed; each step advances the
// endpoint by that motion scaled with the fresh decay factor, producing
// an exponentially contracting trajectory.
type inertiaState struct {
	movement *input.Movement
	motion   input.Point
}

func (s *inertiaState) clear() {
	s.movement = nil
	s.motion = input.Point{}
}

func (s *inertiaState) active() bool {
	return s.movement != nil
}

const samePositionEpsilon = 1e-12

func samePosition(a, b input.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy < samePositionEpsilon
}

func invalidPoint(p input.Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) ||
		math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// maintainInertia synthesizes decaying movements for a released channel
// and feeds them to act. Live input always preempts: a held button clears
// the slot immediately.
func (c *Controller) maintainInertia(g input.Gesture, coefficient float64, act action, s *inertiaState) {
	if c.src.ButtonDown(g) {
		s.clear()
		return
	}
	press, okPress := c.src.PressTime(g)
	release, okRelease := c.src.ReleaseTime(g)
	if !okPress || !okRelease || release.Before(press) {
		s.clear()
		return
	}

	threshold := release.Sub(press).Seconds()
	fromNow := c.now().Sub(release).Seconds()
	if threshold >= inertiaFlickWindow || fromNow > inertiaMaxDuration {
		// a held drag, or the decay window has passed
		s.clear()
		return
	}

	d := decay(fromNow, coefficient)
	if s.movement == nil {
		last, ok := c.src.LastMovement(g)
		if !ok || samePosition(last.Start, last.End) {
			return
		}
		s.motion = input.Point{
			X: (last.End.X - last.Start.X) * 0.5,
			Y: (last.End.Y - last.Start.Y) * 0.5,
		}
		s.movement = &input.Movement{
			Start: last.Start,
			End: input.Point{
				X: last.Start.X + s.motion.X*d,
				Y: last.Start.Y + s.motion.Y*d,
			},
		}
	} else {
		prev := *s.movement
		s.movement = &input.Movement{
			Start: prev.End,
			End: input.Point{
				X: prev.End.X + s.motion.X*d,
				Y: prev.End.Y + s.motion.Y*d,
			},
		}
	}

	m := *s.movement
	if invalidPoint(m.End) || samePosition(m.Start, m.End) {
		s.clear()
		return
	}
	act(c, m)
}
