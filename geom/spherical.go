package geom

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Spherical holds spherical coordinates. Azimuth is measured from the
// x axis on the x-y plane, Polar from the +z axis.
type Spherical struct {
	Radius  float32
	Azimuth float32
	Polar   float32
}

func SphericalFromVec3(v mat.Vec3) Spherical {
	r := v.Norm()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius:  r,
		Azimuth: float32(math.Atan2(float64(v[1]), float64(v[0]))),
		Polar:   AcosClamped(v[2] / r),
	}
}

func (s Spherical) Vec3() mat.Vec3 {
	sp, cp := math.Sincos(float64(s.Polar))
	sa, ca := math.Sincos(float64(s.Azimuth))
	return mat.NewVec3(
		s.Radius*float32(sp*ca),
		s.Radius*float32(sp*sa),
		s.Radius*float32(cp),
	)
}

// AcosClamped clamps the argument into [-1, 1] before acos so that
// rounding around the poles never yields NaN.
func AcosClamped(v float32) float32 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return float32(math.Acos(float64(v)))
}
