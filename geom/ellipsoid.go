package geom

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Ellipsoid is an axis-aligned quadric surface centered at the origin.
type Ellipsoid struct {
	Radii mat.Vec3
}

func NewEllipsoid(x, y, z float32) Ellipsoid {
	return Ellipsoid{Radii: mat.NewVec3(x, y, z)}
}

// UnitSphere is used as a substitute surface by orbit style rotations.
var UnitSphere = Ellipsoid{Radii: mat.NewVec3(1, 1, 1)}

// Default returns the WGS84 ellipsoid.
func Default() Ellipsoid {
	return Ellipsoid{Radii: mat.NewVec3(6378137, 6378137, 6356752.3)}
}

func (e Ellipsoid) MaximumRadius() float32 {
	r := e.Radii[0]
	if e.Radii[1] > r {
		r = e.Radii[1]
	}
	if e.Radii[2] > r {
		r = e.Radii[2]
	}
	return r
}

// GeodeticSurfaceNormal returns the outward surface normal at p.
func (e Ellipsoid) GeodeticSurfaceNormal(p mat.Vec3) mat.Vec3 {
	n := mat.NewVec3(
		p[0]/(e.Radii[0]*e.Radii[0]),
		p[1]/(e.Radii[1]*e.Radii[1]),
		p[2]/(e.Radii[2]*e.Radii[2]),
	)
	if n.NormSq() == 0 {
		return mat.NewVec3(0, 0, 1)
	}
	return n.Normalized()
}

// Height returns the geocentric height of p above the surface.
func (e Ellipsoid) Height(p mat.Vec3) float32 {
	r := p.Norm()
	if r == 0 {
		return -e.Radii[2]
	}
	n := e.scale(p).Norm()
	return r * (1 - 1/n)
}

// IntersectRay solves the quadratic of the ray against the scaled unit
// sphere. near is clamped to zero when the origin is inside.
func (e Ellipsoid) IntersectRay(r Ray) (near, far float32, ok bool) {
	q := e.scale(r.Origin)
	w := e.scale(r.Direction)

	a := float64(w.NormSq())
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * float64(q.Dot(w))
	c := float64(q.NormSq()) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	root := math.Sqrt(disc)
	t0 := float32((-b - root) / (2 * a))
	t1 := float32((-b + root) / (2 * a))
	if t1 < 0 {
		return 0, 0, false
	}
	if t0 < 0 {
		t0 = 0
	}
	return t0, t1, true
}

func (e Ellipsoid) scale(v mat.Vec3) mat.Vec3 {
	return mat.NewVec3(v[0]/e.Radii[0], v[1]/e.Radii[1], v[2]/e.Radii[2])
}
