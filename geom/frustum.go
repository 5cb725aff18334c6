package geom

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Frustum is implemented by the two projection kinds of the viewer.
type Frustum interface {
	ProjectionMatrix() mat.Mat4
}

type PerspectiveFrustum struct {
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

func (f *PerspectiveFrustum) ProjectionMatrix() mat.Mat4 {
	halfFovCot := 1 / float32(math.Tan(float64(f.FovY/2)))
	return mat.Mat4{
		halfFovCot / f.Aspect, 0, 0, 0,
		0, halfFovCot, 0, 0,
		0, 0, -(f.Far + f.Near) / (f.Far - f.Near), -1,
		0, 0, -2 * f.Far * f.Near / (f.Far - f.Near), 0,
	}
}

type OrthographicFrustum struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
}

func (f *OrthographicFrustum) ProjectionMatrix() mat.Mat4 {
	return mat.Mat4{
		2 / (f.Right - f.Left), 0, 0, 0,
		0, 2 / (f.Top - f.Bottom), 0, 0,
		0, 0, 2 / (f.Far - f.Near), 0,
		-(f.Right + f.Left) / (f.Right - f.Left),
		-(f.Top + f.Bottom) / (f.Top - f.Bottom),
		-(f.Far + f.Near) / (f.Far - f.Near), 1,
	}
}

// HalfWidth is the distance measure used by orthographic zoom.
func (f *OrthographicFrustum) HalfWidth() float32 {
	return (f.Right - f.Left) / 2
}

// Scale resizes the frustum around its center keeping the aspect ratio.
func (f *OrthographicFrustum) Scale(ratio float32) {
	cx := (f.Right + f.Left) / 2
	cy := (f.Top + f.Bottom) / 2
	f.Left = cx + (f.Left-cx)*ratio
	f.Right = cx + (f.Right-cx)*ratio
	f.Top = cy + (f.Top-cy)*ratio
	f.Bottom = cy + (f.Bottom-cy)*ratio
}
