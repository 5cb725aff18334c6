package geom

import (
	"github.com/seqsense/pcgol/mat"
)

// EastNorthUp returns the local frame at a surface point as an affine
// matrix with east, north and up as basis columns and origin as the
// translation. At the poles, where east is undefined, the x axis is used.
func EastNorthUp(origin mat.Vec3, e Ellipsoid) mat.Mat4 {
	up := e.GeodeticSurfaceNormal(origin)
	z := mat.NewVec3(0, 0, 1)
	east := z.Cross(up)
	if east.NormSq() < frameEpsilon {
		east = mat.NewVec3(1, 0, 0)
	} else {
		east = east.Normalized()
	}
	north := up.Cross(east)
	return mat.Mat4{
		east[0], east[1], east[2], 0,
		north[0], north[1], north[2], 0,
		up[0], up[1], up[2], 0,
		origin[0], origin[1], origin[2], 1,
	}
}

const frameEpsilon = 1e-10
