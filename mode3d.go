package globecam

import (
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globecam/geom"
	"github.com/seqsense/globecam/input"
)

// threeD maps gestures in the perspective globe mode: primary drag spins
// or pans along the globe, secondary drag tilts about the picked surface
// point, auxiliary drag and wheel zoom, shift-drag free-looks.
type threeD struct{}

func (s *threeD) update(c *Controller) error {
	if !c.EnableInputs {
		return nil
	}
	if c.EnableRotate {
		if m, ok := c.liveMovement(input.GestureSpin); ok {
			c.spin3D(m)
		}
		c.maintainInertia(input.GestureSpin, c.InertiaSpin, (*Controller).spin3D, &c.spinState)

		if m, ok := c.liveMovement(input.GestureTilt); ok {
			c.tilt3D(m)
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
	return nil
}

// spin3D pans along the globe surface when the drag started on the
// ellipsoid, and falls back to free rotation when it started on open sky.
func (c *Controller) spin3D(m input.Movement) {
	e := c.ellipsoid
	if _, ok := c.cam.PickEllipsoid(m.Start.X, m.Start.Y, e); ok {
		c.pan3D(m, e)
		return
	}
	c.rotate3D(m, e, c.ConstrainedAxis, false, false)
}

func (c *Controller) pan3D(m input.Movement, e geom.Ellipsoid) {
	p0, ok0 := c.cam.PickEllipsoid(m.Start.X, m.Start.Y, e)
	p1, ok1 := c.cam.PickEllipsoid(m.End.X, m.End.Y, e)
	if !ok0 || !ok1 {
		c.rotate3D(m, e, c.ConstrainedAxis, false, false)
		return
	}

	if c.ConstrainedAxis == nil {
		p0n, p1n := p0.Normalized(), p1.Normalized()
		axis := p1n.Cross(p0n)
		if axis.NormSq() < 1e-12 {
			// parallel or coincident picks; no stable rotation axis
			return
		}
		angle := geom.AcosClamped(p0n.Dot(p1n))
		c.cam.Rotate(axis.Normalized(), angle)
		return
	}

	// With a constrained axis the deltas are applied as independent
	// azimuth/polar rotations, which stays stable at the poles where a
	// cross product based axis degenerates.
	axis := c.ConstrainedAxis.Normalized()
	f := axisFrame(axis)
	s0 := geom.SphericalFromVec3(intoFrame(f, p0))
	s1 := geom.SphericalFromVec3(intoFrame(f, p1))
	dAzimuth := s1.Azimuth - s0.Azimuth
	dPolar := s1.Polar - s0.Polar
	if math.IsNaN(float64(dAzimuth)) || math.IsNaN(float64(dPolar)) {
		return
	}
	c.cam.RotateRight(dAzimuth, &axis)
	c.cam.RotateUp(dPolar, &axis)
}

// axisFrame is an orthonormal basis with the given unit axis as z.
func axisFrame(axis mat.Vec3) [3]mat.Vec3 {
	ref := mat.NewVec3(0, 0, 1)
	if axis[0]*axis[0]+axis[1]*axis[1] < 1e-10 {
		ref = mat.NewVec3(1, 0, 0)
	}
	x := ref.Cross(axis).Normalized()
	y := axis.Cross(x)
	return [3]mat.Vec3{x, y, axis}
}

func intoFrame(f [3]mat.Vec3, v mat.Vec3) mat.Vec3 {
	return mat.NewVec3(f[0].Dot(v), f[1].Dot(v), f[2].Dot(v))
}

// rotate3D applies free rotation scaled by height above the surface. The
// ellipsoid and axis are scoped to the call so tilt and Columbus rotate
// can substitute a unit sphere without touching controller state.
func (c *Controller) rotate3D(m input.Movement, e geom.Ellipsoid, axis *mat.Vec3, onlyVertical, onlyHorizontal bool) {
	w, h := c.cam.Viewport()
	if w == 0 || h == 0 {
		return
	}
	rate := c.rotateRate(e)
	dPhi := rate * math.Pi * (m.Start.X - m.End.X) / w
	dTheta := rate * math.Pi * (m.Start.Y - m.End.Y) / h
	if !onlyVertical {
		c.cam.RotateRight(float32(dPhi), axis)
	}
	if !onlyHorizontal {
		c.cam.RotateUp(float32(dTheta), axis)
	}
}

// tilt3D orbits about the surface point under the viewport center.
func (c *Controller) tilt3D(m input.Movement) {
	e := c.ellipsoid
	w, h := c.cam.Viewport()
	if w == 0 || h == 0 {
		return
	}
	ray := c.cam.PickRay(w/2, h/2)
	near, _, ok := e.IntersectRay(ray)
	if !ok {
		return
	}
	pivot := ray.Point(near)
	frame := geom.EastNorthUp(pivot, e)
	up := mat.NewVec3(frame[8], frame[9], frame[10])

	dPhi := math.Pi * (m.Start.X - m.End.X) / w
	rot := math.Pi * (m.Start.Y - m.End.Y) / h

	rel := c.cam.Position().Sub(pivot)
	if rel.NormSq() < 1e-12 {
		return
	}
	theta := float64(geom.AcosClamped(rel.Normalized().Dot(up)))

	// positive rot tips the camera toward the horizon; block it past the
	// inversion point unless the drag pulls the view back down
	if rot > 0 {
		if t := theta + rot; t > maxTiltAngle {
			rot = maxTiltAngle - theta
			if rot < 0 {
				rot = 0
			}
		}
		if float64(c.cam.Height(e))-floorHeight < 1 {
			rot = 0
		}
	} else if t := theta + rot; t < poleTiltEpsilon {
		rot = poleTiltEpsilon - theta
	}

	c.cam.RotateAround(pivot, up, float32(dPhi))
	c.cam.RotateAround(pivot, c.cam.Right(), float32(-rot))
}

const (
	maxTiltAngle    = math.Pi/2 - 0.01
	poleTiltEpsilon = 1e-3
)

func (c *Controller) zoom3D(m input.Movement) {
	c.handleZoom(m, zoomFactor3D, float64(c.cam.Height(c.ellipsoid)))
}

// look3D derives independent yaw and pitch from the angle between pick
// rays cast through the start/end coordinates.
func (c *Controller) look3D(m input.Movement) {
	r0 := c.cam.PickRay(m.Start.X, 0).Direction
	r1 := c.cam.PickRay(m.End.X, 0).Direction
	yaw := float64(geom.AcosClamped(r0.Dot(r1)))
	if m.End.X < m.Start.X {
		yaw = -yaw
	}

	r0 = c.cam.PickRay(0, m.Start.Y).Direction
	r1 = c.cam.PickRay(0, m.End.Y).Direction
	pitch := float64(geom.AcosClamped(r0.Dot(r1)))
	if m.End.Y > m.Start.Y {
		pitch = -pitch
	}

	if c.ConstrainedAxis != nil {
		c.cam.Look(*c.ConstrainedAxis, float32(yaw))
	} else {
		c.cam.LookRight(float32(yaw))
	}
	c.cam.LookUp(float32(pitch))
}
