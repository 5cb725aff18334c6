package globecam

import (
	"math"
	"testing"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globecam/geom"
	"github.com/seqsense/globecam/input"
)

func orthoFrustum(halfWidth float32) *geom.OrthographicFrustum {
	hh := halfWidth * 600 / 800
	return &geom.OrthographicFrustum{
		Left: -halfWidth, Right: halfWidth,
		Bottom: -hh, Top: hh,
		Near: 0.1, Far: 1e6,
	}
}

func TestUpdate2D_Translate(t *testing.T) {
	c, src, cam := newTestController(t, orthoFrustum(400))

	// one frustum unit per pixel; dragging the map 100px right moves the
	// camera 100 units left
	src.drag(input.GestureSpin, input.Movement{
		Start: input.Point{X: 400, Y: 300},
		End:   input.Point{X: 500, Y: 300},
	})
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	pos := cam.Position()
	if d := pos[0] - (-100); d < -1e-3 || 1e-3 < d {
		t.Errorf("Expected camera x: -100, got: %f", pos[0])
	}
	if d := pos[1]; d < -1e-3 || 1e-3 < d {
		t.Errorf("Expected camera y: 0, got: %f", pos[1])
	}
}

func TestUpdate2D_Twist(t *testing.T) {
	t.Run("QuarterTurn", func(t *testing.T) {
		c, src, cam := newTestController(t, orthoFrustum(400))

		// sweep from the +x viewport axis to the +y viewport axis
		src.drag(input.GestureTilt, input.Movement{
			Start: input.Point{X: 800, Y: 300},
			End:   input.Point{X: 400, Y: 0},
		})
		if err := c.Update(Scene2D); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if expected := mat.NewVec3(1, 0, 0); cam.Up().Sub(expected).Norm() > 1e-4 {
			t.Errorf("Expected up: %v, got: %v", expected, cam.Up())
		}
	})
	t.Run("RadialDragNoTwist", func(t *testing.T) {
		c, src, cam := newTestController(t, orthoFrustum(400))

		src.drag(input.GestureTilt, input.Movement{
			Start: input.Point{X: 500, Y: 300},
			End:   input.Point{X: 700, Y: 300},
		})
		if err := c.Update(Scene2D); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if up := cam.Up(); up.Sub(mat.NewVec3(0, 1, 0)).Norm() > 1e-6 {
			t.Errorf("Radial drag must not roll the view, got up: %v", up)
		}
	})
	t.Run("CenterStartIgnored", func(t *testing.T) {
		c, src, cam := newTestController(t, orthoFrustum(400))

		src.drag(input.GestureTilt, input.Movement{
			Start: input.Point{X: 400, Y: 300},
			End:   input.Point{X: 700, Y: 100},
		})
		if err := c.Update(Scene2D); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if up := cam.Up(); up.Sub(mat.NewVec3(0, 1, 0)).Norm() > 1e-6 {
			t.Errorf("Degenerate sweep must not roll the view, got up: %v", up)
		}
	})
}

func TestUpdate2D_CorrectionRunsWithInputsDisabled(t *testing.T) {
	c, _, cam := newTestController(t, orthoFrustum(400))
	c.SetEllipsoid(geom.NewEllipsoid(2000/math.Pi, 2000/math.Pi, 2000/math.Pi))
	c.EnableInputs = false

	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	cam.SetPosition(mat.NewVec3(3000, 0, 1))
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if c.m2D.translateTween == nil {
		t.Fatal("Disabling gesture handling must not disable boundary corrections")
	}

	now = now.Add(boundsCorrectionDuration + 100*time.Millisecond)
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if pos := cam.Position(); pos[0] < 2000-1e-2 || 2000+1e-2 < pos[0] {
		t.Errorf("Expected corrected x: 2000, got: %f", pos[0])
	}
}

func TestUpdate2D_ZoomCorrection(t *testing.T) {
	f := orthoFrustum(2500)
	c, _, _ := newTestController(t, f)
	// map half extent pi*r = 2000
	c.SetEllipsoid(geom.NewEllipsoid(2000/math.Pi, 2000/math.Pi, 2000/math.Pi))

	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	tw := c.m2D.zoomTween
	if tw == nil {
		t.Fatal("Zoom-out past the map width must schedule a correction")
	}

	// while the correction runs no second tween may be stacked on it
	now = now.Add(100 * time.Millisecond)
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if c.m2D.zoomTween != tw {
		t.Error("A running correction must not be rescheduled")
	}

	now = now.Add(boundsCorrectionDuration)
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if hw := f.HalfWidth(); hw < 2000-1e-2 || 2000+1e-2 < hw {
		t.Errorf("Expected corrected half width: 2000, got: %f", hw)
	}
}

func TestUpdate2D_TranslateCorrection(t *testing.T) {
	c, src, cam := newTestController(t, orthoFrustum(400))
	c.SetEllipsoid(geom.NewEllipsoid(2000/math.Pi, 2000/math.Pi, 2000/math.Pi))

	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	cam.SetPosition(mat.NewVec3(3000, 0, 1))

	// held pan suppresses the correction
	src.down[input.GestureSpin] = true
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if c.m2D.translateTween != nil {
		t.Fatal("Correction must wait for the pan button to be released")
	}

	src.down[input.GestureSpin] = false
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if c.m2D.translateTween == nil {
		t.Fatal("Out-of-bounds position must schedule a correction")
	}

	now = now.Add(boundsCorrectionDuration + 100*time.Millisecond)
	if err := c.Update(Scene2D); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	pos := cam.Position()
	if d := pos[0] - 2000; d < -1e-2 || 1e-2 < d {
		t.Errorf("Expected corrected x: 2000, got: %f", pos[0])
	}
	if d := pos[1]; d < -1e-2 || 1e-2 < d {
		t.Errorf("Expected corrected y: 0, got: %f", pos[1])
	}
}
