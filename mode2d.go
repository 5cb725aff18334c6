package globecam

import (
	"math"

	"github.com/seqsense/globecam/anim"
	"github.com/seqsense/globecam/geom"
	"github.com/seqsense/globecam/input"
)

// twoD maps gestures in the orthographic map mode and keeps the camera
// within the projected map extents. It owns the correction tween handles;
// liveness is queried against the scheduler by identity.
type twoD struct {
	zoomTween      *anim.Tween
	translateTween *anim.Tween
}

func (s *twoD) update(c *Controller) error {
	f, ok := c.cam.Frustum().(*geom.OrthographicFrustum)
	if !ok {
		return ErrNotOrthographic
	}

	if c.EnableInputs {
		if c.EnableTranslate {
			if m, ok := c.liveMovement(input.GestureSpin); ok {
				c.translate2D(m)
			}
			c.maintainInertia(input.GestureSpin, c.InertiaTranslate, (*Controller).translate2D, &c.translateState)
		}
		if c.EnableZoom {
			if m, ok := c.liveMovement(input.GestureZoom); ok {
				c.zoom2D(m)
			}
			c.maintainInertia(input.GestureZoom, c.InertiaZoom, (*Controller).zoom2D, &c.zoomState)

			if m, ok := c.liveMovement(input.GestureWheel); ok {
				c.zoom2D(m)
			}
			c.maintainInertia(input.GestureWheel, c.InertiaZoom, (*Controller).zoom2D, &c.wheelState)
		}
		if c.EnableRotate {
			if m, ok := c.liveMovement(input.GestureTilt); ok {
				c.twist2D(m)
			}
		}
	}

	s.correctBounds(c, f)
	return nil
}

// translate2D pans by the difference of the unprojected ray origins,
// mapped onto the camera right/up axes.
func (c *Controller) translate2D(m input.Movement) {
	start := c.cam.PickRay(m.Start.X, m.Start.Y).Origin
	end := c.cam.PickRay(m.End.X, m.End.Y).Origin
	delta := start.Sub(end)
	c.cam.MoveRight(delta.Dot(c.cam.Right()))
	c.cam.MoveUp(delta.Dot(c.cam.Up()))
}

func (c *Controller) zoom2D(m input.Movement) {
	f, ok := c.cam.Frustum().(*geom.OrthographicFrustum)
	if !ok {
		return
	}
	c.handleZoom(m, zoomFactor2D, float64(f.HalfWidth()))
}

// twist2D rolls the view by the angle swept around the viewport center.
func (c *Controller) twist2D(m input.Movement) {
	w, h := c.cam.Viewport()
	cx, cy := w/2, h/2

	angleAt := func(p input.Point) (float64, bool) {
		x, y := p.X-cx, cy-p.Y
		n := math.Hypot(x, y)
		if n == 0 {
			return 0, false
		}
		a := math.Acos(clamp(x/n, -1, 1))
		if y < 0 {
			a = 2*math.Pi - a
		}
		return a, true
	}

	a0, ok0 := angleAt(m.Start)
	a1, ok1 := angleAt(m.End)
	if !ok0 || !ok1 {
		return
	}
	c.cam.Look(c.cam.Direction(), float32(a0-a1))
}

// correctBounds pulls the camera back when it pans past the map extents
// or zooms out beyond the full map width. Corrections are animated and
// suppressed while the user still holds a pan or zoom button.
func (s *twoD) correctBounds(c *Controller, f *geom.OrthographicFrustum) {
	if c.src.ButtonDown(input.GestureSpin) || c.src.ButtonDown(input.GestureZoom) {
		return
	}

	maxX := math.Pi * float64(c.ellipsoid.MaximumRadius())
	maxY := maxX / 2

	if hw := float64(f.HalfWidth()); hw > maxX &&
		!c.sched.Active(s.zoomTween) && !c.zoomState.active() && !c.wheelState.active() {
		s.zoomTween = c.sched.Add(hw, maxX, boundsCorrectionDuration, anim.EaseOutExpo, func(v float64) {
			if cur := float64(f.HalfWidth()); cur > 0 {
				f.Scale(float32(v / cur))
			}
		})
	}

	pos := c.cam.Position()
	px, py := float64(pos[0]), float64(pos[1])
	if (math.Abs(px) > maxX || math.Abs(py) > maxY) &&
		!c.sched.Active(s.translateTween) && !c.translateState.active() {
		tx := clamp(px, -maxX, maxX)
		ty := clamp(py, -maxY, maxY)
		s.translateTween = c.sched.Add(0, 1, boundsCorrectionDuration, anim.EaseOutExpo, func(v float64) {
			p := c.cam.Position()
			p[0] = float32(px + (tx-px)*v)
			p[1] = float32(py + (ty-py)*v)
			c.cam.SetPosition(p)
		})
	}
}
