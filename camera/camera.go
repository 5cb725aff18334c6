// Package camera provides the camera consumed by the globecam
// controller: pose, frustum, pick rays and the world/camera transforms.
// It implements mechanism only; gesture policy lives in the controller.
package camera

import (
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globecam/geom"
)

// Camera holds an orthonormal pose and a projection frustum.
// right is re-derived from direction and up after every rotation.
type Camera struct {
	position  mat.Vec3
	direction mat.Vec3
	up        mat.Vec3
	right     mat.Vec3

	frustum geom.Frustum

	width, height float64
}

// New returns a camera at +z looking at the origin.
func New(width, height float64, f geom.Frustum) *Camera {
	c := &Camera{
		width:   width,
		height:  height,
		frustum: f,
	}
	c.SetView(mat.NewVec3(0, 0, 1), mat.NewVec3(0, 0, 0), mat.NewVec3(0, 1, 0))
	return c
}

// SetView places the camera at eye looking at target.
func (c *Camera) SetView(eye, target, up mat.Vec3) {
	c.position = eye
	c.direction = target.Sub(eye).Normalized()
	c.right = c.direction.Cross(up).Normalized()
	c.up = c.right.Cross(c.direction)
}

func (c *Camera) Position() mat.Vec3      { return c.position }
func (c *Camera) Direction() mat.Vec3     { return c.direction }
func (c *Camera) Up() mat.Vec3            { return c.up }
func (c *Camera) Right() mat.Vec3         { return c.right }
func (c *Camera) Frustum() geom.Frustum   { return c.frustum }
func (c *Camera) SetPosition(p mat.Vec3)  { c.position = p }
func (c *Camera) Viewport() (w, h float64) {
	return c.width, c.height
}

func (c *Camera) SetViewport(w, h float64) {
	c.width, c.height = w, h
}

func (c *Camera) Move(dir mat.Vec3, amount float32) {
	c.position = c.position.Add(dir.Mul(amount))
}

func (c *Camera) MoveRight(amount float32) { c.Move(c.right, amount) }
func (c *Camera) MoveUp(amount float32)    { c.Move(c.up, amount) }

// ZoomIn moves along the view direction, or shrinks the orthographic
// frustum when the projection has no depth to move through.
func (c *Camera) ZoomIn(amount float32) {
	if f, ok := c.frustum.(*geom.OrthographicFrustum); ok {
		hw := f.HalfWidth()
		if hw <= amount {
			return
		}
		f.Scale((hw - amount) / hw)
		return
	}
	c.Move(c.direction, amount)
}

func (c *Camera) ZoomOut(amount float32) {
	if f, ok := c.frustum.(*geom.OrthographicFrustum); ok {
		hw := f.HalfWidth()
		f.Scale((hw + amount) / hw)
		return
	}
	c.Move(c.direction, -amount)
}

// Rotate orbits the camera about an axis through the origin, turning the
// orientation with it.
func (c *Camera) Rotate(axis mat.Vec3, angle float32) {
	a := axis.Normalized()
	m := mat.Rotate(a[0], a[1], a[2], -angle)
	c.position = m.Transform(c.position)
	c.direction = m.Transform(c.direction)
	c.up = m.Transform(c.up)
	c.normalize()
}

// RotateAround orbits about an axis through pivot instead of the origin.
func (c *Camera) RotateAround(pivot, axis mat.Vec3, angle float32) {
	c.position = c.position.Sub(pivot)
	c.Rotate(axis, angle)
	c.position = c.position.Add(pivot)
}

// RotateRight orbits right about axis, or the camera up axis when axis is
// nil. The axis is scoped to the call; the camera keeps no constraint state.
func (c *Camera) RotateRight(angle float32, axis *mat.Vec3) {
	if axis != nil {
		c.Rotate(*axis, angle)
		return
	}
	c.Rotate(c.up, angle)
}

// RotateUp orbits about the camera right axis; positive angles move the
// position away from the pole of axis. With a non-nil axis the rotation is
// clamped so the position never crosses its poles.
func (c *Camera) RotateUp(angle float32, axis *mat.Vec3) {
	if axis != nil {
		p := c.position.Normalized()
		theta := geom.AcosClamped(p.Dot(axis.Normalized()))
		if t := theta + angle; t < poleEpsilon {
			angle = poleEpsilon - theta
		} else if t > math.Pi-poleEpsilon {
			angle = math.Pi - poleEpsilon - theta
		}
	}
	c.Rotate(c.right, -angle)
}

// Look turns the view about an axis keeping the position fixed.
func (c *Camera) Look(axis mat.Vec3, angle float32) {
	a := axis.Normalized()
	m := mat.Rotate(a[0], a[1], a[2], -angle)
	c.direction = m.Transform(c.direction)
	c.up = m.Transform(c.up)
	c.normalize()
}

func (c *Camera) LookLeft(angle float32)  { c.Look(c.up, -angle) }
func (c *Camera) LookRight(angle float32) { c.Look(c.up, angle) }
func (c *Camera) LookUp(angle float32)    { c.Look(c.right, -angle) }
func (c *Camera) LookDown(angle float32)  { c.Look(c.right, angle) }

const poleEpsilon = 1e-3

func (c *Camera) normalize() {
	c.direction = c.direction.Normalized()
	c.right = c.direction.Cross(c.up).Normalized()
	c.up = c.right.Cross(c.direction)
}

// ViewMatrix transforms world coordinates into camera coordinates.
func (c *Camera) ViewMatrix() mat.Mat4 {
	r, u, d, p := c.right, c.up, c.direction, c.position
	return mat.Mat4{
		r[0], u[0], -d[0], 0,
		r[1], u[1], -d[1], 0,
		r[2], u[2], -d[2], 0,
		-r.Dot(p), -u.Dot(p), d.Dot(p), 1,
	}
}

// InverseViewMatrix transforms camera coordinates into world coordinates.
func (c *Camera) InverseViewMatrix() mat.Mat4 {
	r, u, d, p := c.right, c.up, c.direction, c.position
	return mat.Mat4{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		-d[0], -d[1], -d[2], 0,
		p[0], p[1], p[2], 1,
	}
}

func (c *Camera) WorldToCamera(v mat.Vec3) mat.Vec3 {
	return c.ViewMatrix().TransformAffine(v)
}

func (c *Camera) CameraToWorld(v mat.Vec3) mat.Vec3 {
	return c.InverseViewMatrix().TransformAffine(v)
}

// PickRay casts a ray through a screen point. y grows downward.
func (c *Camera) PickRay(x, y float64) geom.Ray {
	switch f := c.frustum.(type) {
	case *geom.OrthographicFrustum:
		fx := f.Left + float32(x/c.width)*(f.Right-f.Left)
		fy := f.Bottom + float32(1-y/c.height)*(f.Top-f.Bottom)
		return geom.Ray{
			Origin:    c.position.Add(c.right.Mul(fx)).Add(c.up.Mul(fy)),
			Direction: c.direction,
		}
	case *geom.PerspectiveFrustum:
		tanY := float32(math.Tan(float64(f.FovY / 2)))
		tanX := tanY * f.Aspect
		nx := float32(2*x/c.width - 1)
		ny := float32(1 - 2*y/c.height)
		dir := c.direction.
			Add(c.right.Mul(nx * tanX)).
			Add(c.up.Mul(ny * tanY)).
			Normalized()
		return geom.Ray{Origin: c.position, Direction: dir}
	}
	return geom.Ray{Origin: c.position, Direction: c.direction}
}

// PickEllipsoid returns the nearest intersection of the pick ray with the
// ellipsoid surface.
func (c *Camera) PickEllipsoid(x, y float64, e geom.Ellipsoid) (mat.Vec3, bool) {
	ray := c.PickRay(x, y)
	near, _, ok := e.IntersectRay(ray)
	if !ok {
		return mat.Vec3{}, false
	}
	return ray.Point(near), true
}

// Height returns the camera height above the ellipsoid surface.
func (c *Camera) Height(e geom.Ellipsoid) float32 {
	return e.Height(c.position)
}
