package geom

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestSphericalFromVec3(t *testing.T) {
	testCases := map[string]struct {
		in       mat.Vec3
		expected Spherical
	}{
		"XAxis": {
			in:       mat.NewVec3(2, 0, 0),
			expected: Spherical{Radius: 2, Azimuth: 0, Polar: math.Pi / 2},
		},
		"YAxis": {
			in:       mat.NewVec3(0, 3, 0),
			expected: Spherical{Radius: 3, Azimuth: math.Pi / 2, Polar: math.Pi / 2},
		},
		"NorthPole": {
			in:       mat.NewVec3(0, 0, 1),
			expected: Spherical{Radius: 1, Azimuth: 0, Polar: 0},
		},
		"SouthPole": {
			in:       mat.NewVec3(0, 0, -5),
			expected: Spherical{Radius: 5, Azimuth: 0, Polar: math.Pi},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := SphericalFromVec3(tt.in)
			if math.IsNaN(float64(s.Polar)) || math.IsNaN(float64(s.Azimuth)) {
				t.Fatalf("Spherical coordinates must not be NaN, got: %+v", s)
			}
			if d := s.Radius - tt.expected.Radius; d < -1e-5 || 1e-5 < d {
				t.Errorf("Expected radius: %f, got: %f", tt.expected.Radius, s.Radius)
			}
			if d := s.Polar - tt.expected.Polar; d < -1e-5 || 1e-5 < d {
				t.Errorf("Expected polar: %f, got: %f", tt.expected.Polar, s.Polar)
			}

			back := s.Vec3()
			if back.Sub(tt.in).Norm() > 1e-5*tt.expected.Radius {
				t.Errorf("Round-trip mismatch: %v -> %v", tt.in, back)
			}
		})
	}
}

func TestSphericalFromVec3_NearPole(t *testing.T) {
	// z slightly above radius by rounding must not produce NaN
	v := mat.NewVec3(1e-12, 0, 1)
	s := SphericalFromVec3(v)
	if math.IsNaN(float64(s.Polar)) {
		t.Error("Polar angle near the pole must not be NaN")
	}
}

func TestEastNorthUp(t *testing.T) {
	e := NewEllipsoid(1, 1, 1)

	m := EastNorthUp(mat.NewVec3(1, 0, 0), e)
	east := mat.NewVec3(m[0], m[1], m[2])
	north := mat.NewVec3(m[4], m[5], m[6])
	up := mat.NewVec3(m[8], m[9], m[10])
	if !up.Equal(mat.NewVec3(1, 0, 0)) {
		t.Errorf("Expected up: (1, 0, 0), got: %v", up)
	}
	if !east.Equal(mat.NewVec3(0, 1, 0)) {
		t.Errorf("Expected east: (0, 1, 0), got: %v", east)
	}
	if !north.Equal(mat.NewVec3(0, 0, 1)) {
		t.Errorf("Expected north: (0, 0, 1), got: %v", north)
	}

	// frame must stay orthonormal at the pole
	m = EastNorthUp(mat.NewVec3(0, 0, 1), e)
	east = mat.NewVec3(m[0], m[1], m[2])
	north = mat.NewVec3(m[4], m[5], m[6])
	up = mat.NewVec3(m[8], m[9], m[10])
	if d := east.Dot(north); d < -1e-6 || 1e-6 < d {
		t.Error("East and north must be orthogonal at the pole")
	}
	if d := east.Dot(up); d < -1e-6 || 1e-6 < d {
		t.Error("East and up must be orthogonal at the pole")
	}
	if n := north.Norm(); n < 1-1e-6 || 1+1e-6 < n {
		t.Error("North must be normalized at the pole")
	}
}
