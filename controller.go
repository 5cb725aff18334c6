// Package globecam translates pointer and wheel gestures into camera-pose
// updates for a globe/map viewer with three scene modes: 3D perspective,
// 2D orthographic and the oblique Columbus view. The controller is tick
// driven; the host calls Update once per rendered frame.
package globecam

import (
	"errors"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globecam/anim"
	"github.com/seqsense/globecam/camera"
	"github.com/seqsense/globecam/geom"
	"github.com/seqsense/globecam/input"
)

type SceneMode int

const (
	Scene3D SceneMode = iota
	Scene2D
	SceneColumbus
)

var (
	ErrClosed          = errors.New("controller is closed")
	ErrNotOrthographic = errors.New("2D scene requires an orthographic frustum")
	errNoInputSource   = errors.New("input source is required")
	errNoCamera        = errors.New("camera is required")
)

// InputSource is the capability consumed per gesture channel. It is
// implemented by input.Aggregator.
type InputSource interface {
	ButtonDown(input.Gesture) bool
	Moving(input.Gesture) bool
	Movement(input.Gesture) (input.Movement, bool)
	LastMovement(input.Gesture) (input.Movement, bool)
	PressTime(input.Gesture) (time.Time, bool)
	ReleaseTime(input.Gesture) (time.Time, bool)
	EndFrame()
	Close()
}

const (
	// Inertia qualifies only for a quick flick, and always dies out
	// within the decay window.
	inertiaFlickWindow = 0.4
	inertiaMaxDuration = 2.0

	// Zoom stops floorHeight units above the reference surface.
	floorHeight  = 20.0
	zoomFactor2D = 1.5
	zoomFactor3D = 5.0

	minRotateRate = 1.0 / 5000
	maxRotateRate = 1.0

	defaultMaximumZoomRate = 1e12

	boundsCorrectionDuration = 500 * time.Millisecond
)

// Controller owns the gesture channels and dispatches one mode strategy
// per tick. The exported fields are tunables taking effect on the next
// Update call.
type Controller struct {
	// EnableInputs gates gesture handling only; mode preconditions and
	// boundary corrections keep running while it is off.
	EnableInputs    bool
	EnableTranslate bool
	EnableZoom      bool
	EnableRotate    bool
	EnableLook      bool

	// Inertia coefficients in [0,1). Larger values keep the synthetic
	// post-release motion alive longer.
	InertiaSpin      float64
	InertiaTranslate float64
	InertiaZoom      float64

	MaximumZoomRate float64

	// ConstrainedAxis restricts 3D rotation to tilt/pan about the axis.
	ConstrainedAxis *mat.Vec3

	src InputSource
	cam *camera.Camera

	ellipsoid geom.Ellipsoid
	sched     *anim.Scheduler

	spinState      inertiaState
	translateState inertiaState
	zoomState      inertiaState
	wheelState     inertiaState

	m2D *twoD
	mCV *columbusView
	m3D *threeD

	closed bool
	now    func() time.Time
}

func NewController(src InputSource, cam *camera.Camera) (*Controller, error) {
	if src == nil {
		return nil, errNoInputSource
	}
	if cam == nil {
		return nil, errNoCamera
	}
	return &Controller{
		EnableInputs:    true,
		EnableTranslate: true,
		EnableZoom:      true,
		EnableRotate:    true,
		EnableLook:      true,

		InertiaSpin:      0.9,
		InertiaTranslate: 0.9,
		InertiaZoom:      0.8,
		MaximumZoomRate:  defaultMaximumZoomRate,

		src:       src,
		cam:       cam,
		ellipsoid: geom.Default(),
		sched:     anim.NewScheduler(),
		m2D:       &twoD{},
		mCV:       &columbusView{},
		m3D:       &threeD{},
		now:       time.Now,
	}, nil
}

func (c *Controller) Ellipsoid() geom.Ellipsoid {
	return c.ellipsoid
}

// SetEllipsoid swaps the reference surface. A zero-radii ellipsoid
// restores the default.
func (c *Controller) SetEllipsoid(e geom.Ellipsoid) error {
	if c.closed {
		return ErrClosed
	}
	if e.Radii.NormSq() == 0 {
		c.ellipsoid = geom.Default()
		return nil
	}
	c.ellipsoid = e
	return nil
}

// Update runs one controller tick for the active scene mode.
func (c *Controller) Update(mode SceneMode) error {
	if c.closed {
		return ErrClosed
	}

	if c.anyButtonDown() {
		// deliberate input wins over residual corrections
		c.sched.CancelAll()
	}

	var err error
	switch mode {
	case Scene2D:
		err = c.m2D.update(c)
	case SceneColumbus:
		err = c.mCV.update(c)
	default:
		err = c.m3D.update(c)
	}

	c.sched.Tick(c.now())
	c.src.EndFrame()
	return err
}

func (c *Controller) Closed() bool {
	return c.closed
}

// Close releases the gesture channels. Any further operation other than
// Closed reports ErrClosed.
func (c *Controller) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	c.sched.CancelAll()
	c.src.Close()
	return nil
}

func (c *Controller) anyButtonDown() bool {
	for g := input.GestureSpin; g <= input.GestureZoom; g++ {
		if c.src.ButtonDown(g) {
			return true
		}
	}
	return false
}

// liveMovement returns the movement of this tick while the gesture is
// actually being performed. Wheel has no held button; its synthetic
// movement alone qualifies.
func (c *Controller) liveMovement(g input.Gesture) (input.Movement, bool) {
	if g != input.GestureWheel && !c.src.ButtonDown(g) {
		return input.Movement{}, false
	}
	if !c.src.Moving(g) {
		return input.Movement{}, false
	}
	return c.src.Movement(g)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// rotateRate scales rotation sensitivity with the height above the
// reference surface, bounded to keep motion usable at any altitude.
func (c *Controller) rotateRate(e geom.Ellipsoid) float64 {
	rate := float64(c.cam.Height(e)) / float64(e.MaximumRadius())
	return clamp(rate, minRotateRate, maxRotateRate)
}
