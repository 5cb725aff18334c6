package globecam

import (
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globecam/anim"
	"github.com/seqsense/globecam/geom"
	"github.com/seqsense/globecam/input"
)

// equatorialPlane is the reference plane of the Columbus view: the map
// lies on it with its north axis along +y and up along +z.
var equatorialPlane = geom.Plane{Normal: mat.NewVec3(0, 0, 1)}

// columbusView maps gestures in the oblique map mode. Rotation reduces to
// a 3D orbit about the view-center column; panning slides along the map
// plane.
type columbusView struct {
	translateTween *anim.Tween
}

func (s *columbusView) update(c *Controller) error {
	if c.EnableInputs {
		if c.EnableTranslate {
			if m, ok := c.liveMovement(input.GestureSpin); ok {
				c.translateCV(m)
			}
			c.maintainInertia(input.GestureSpin, c.InertiaTranslate, (*Controller).translateCV, &c.translateState)
		}
		if c.EnableRotate {
			if m, ok := c.liveMovement(input.GestureTilt); ok {
				c.rotateCV(m)
			}
		}
		if c.EnableZoom {
			if m, ok := c.liveMovement(input.GestureZoom); ok {
				c.zoom3D(m)
			}
			c.maintainInertia(input.GestureZoom, c.InertiaZoom, (*Controller).zoom3D, &c.zoomState)

			if m, ok := c.liveMovement(input.GestureWheel); ok {
				c.zoom3D(m)
			}
			c.maintainInertia(input.GestureWheel, c.InertiaZoom, (*Controller).zoom3D, &c.wheelState)
		}
		if c.EnableLook {
			if m, ok := c.liveMovement(input.GestureLook); ok {
				c.look3D(m)
			}
		}
	}

	if !c.anyButtonDown() {
		s.correctPosition(c)
	}
	return nil
}

// translateCV slides the camera by the in-plane displacement between the
// reference-plane hits of the start and end pick rays.
func (c *Controller) translateCV(m input.Movement) {
	r0 := c.cam.PickRay(m.Start.X, m.Start.Y)
	r1 := c.cam.PickRay(m.End.X, m.End.Y)
	t0, ok0 := equatorialPlane.IntersectRay(r0)
	t1, ok1 := equatorialPlane.IntersectRay(r1)
	if !ok0 || !ok1 {
		return
	}
	delta := r0.Point(t0).Sub(r1.Point(t1))
	delta[2] = 0
	c.cam.SetPosition(c.cam.Position().Add(delta))
}

// rotateCV orbits about the reference-plane point under the viewport
// center, substituting a unit sphere and a vertical constrained axis so
// the gesture behaves like an orbit rather than a free tumble.
func (c *Controller) rotateCV(m input.Movement) {
	w, h := c.cam.Viewport()
	if w == 0 || h == 0 {
		return
	}
	vertical := mat.NewVec3(0, 0, 1)

	ray := c.cam.PickRay(w/2, h/2)
	t, ok := equatorialPlane.IntersectRay(ray)
	if !ok {
		c.rotate3D(m, geom.UnitSphere, &vertical, false, false)
		return
	}
	pivot := ray.Point(t)

	dPhi := math.Pi * (m.Start.X - m.End.X) / w
	rot := math.Pi * (m.Start.Y - m.End.Y) / h

	rel := c.cam.Position().Sub(pivot)
	if rel.NormSq() < 1e-12 {
		return
	}
	theta := float64(geom.AcosClamped(rel.Normalized().Dot(vertical)))
	if t := theta + rot; t > maxTiltAngle {
		rot = maxTiltAngle - theta
		if rot < 0 {
			rot = 0
		}
	} else if t < poleTiltEpsilon {
		rot = poleTiltEpsilon - theta
	}

	c.cam.RotateAround(pivot, vertical, float32(dPhi))
	c.cam.RotateAround(pivot, c.cam.Right(), float32(-rot))
}

// correctPosition keeps the camera over the map while idle: the look-at
// center is pulled back with a smooth animation, and the position is
// clamped immediately past the stricter bound so the camera can never
// escape the map during idle drift.
func (s *columbusView) correctPosition(c *Controller) {
	pos := c.cam.Position()

	var center mat.Vec3
	ray := geom.Ray{Origin: pos, Direction: c.cam.Direction()}
	if t, ok := equatorialPlane.IntersectRay(ray); ok {
		center = ray.Point(t)
	} else {
		center = mat.NewVec3(pos[0], pos[1], 0)
	}

	d := float64(center.Sub(pos).Norm())
	tanPhi, tanTheta := 1.0, 1.0
	if f, ok := c.cam.Frustum().(*geom.PerspectiveFrustum); ok {
		tanPhi = math.Tan(float64(f.FovY) / 2)
		tanTheta = float64(f.Aspect) * tanPhi
	}
	extentX := d * tanTheta
	extentY := d * tanPhi

	maxX := math.Pi * float64(c.ellipsoid.MaximumRadius())
	maxY := maxX / 2
	allowedX := extentX + maxX
	allowedY := extentY + maxY

	px, py := float64(pos[0]), float64(pos[1])
	if math.Abs(px) > allowedX || math.Abs(py) > allowedY {
		pos[0] = float32(clamp(px, -allowedX, allowedX))
		pos[1] = float32(clamp(py, -allowedY, allowedY))
		c.cam.SetPosition(pos)
		return
	}

	cx, cy := float64(center[0]), float64(center[1])
	centerOut := math.Abs(cx) > maxX || math.Abs(cy) > maxY
	if !centerOut || c.sched.Active(s.translateTween) || c.translateState.active() {
		return
	}

	dx := clamp(cx, -maxX, maxX) - cx
	dy := clamp(cy, -maxY, maxY) - cy
	s.translateTween = c.sched.Add(0, 1, boundsCorrectionDuration, anim.EaseOutExpo, func(v float64) {
		p := c.cam.Position()
		p[0] = float32(px + dx*v)
		p[1] = float32(py + dy*v)
		c.cam.SetPosition(p)
	})
}
