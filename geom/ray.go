package geom

import (
	"github.com/seqsense/pcgol/mat"
)

// Ray is a half line starting at Origin. Direction must be normalized.
type Ray struct {
	Origin    mat.Vec3
	Direction mat.Vec3
}

func (r Ray) Point(t float32) mat.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane satisfying Normal*p + Distance = 0.
type Plane struct {
	Normal   mat.Vec3
	Distance float32
}

// IntersectRay returns the ray parameter of the intersection point.
// ok is false when the ray is parallel to the plane or points away from it.
func (p Plane) IntersectRay(r Ray) (float32, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom > -planeEpsilon && denom < planeEpsilon {
		return 0, false
	}
	t := -(p.Normal.Dot(r.Origin) + p.Distance) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

const planeEpsilon = 1e-7
