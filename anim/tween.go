// Package anim provides a tick driven scalar interpolation scheduler.
// Tweens carry no goroutine or timer; the owner advances them by calling
// Tick once per frame.
package anim

import (
	"math"
	"time"
)

type EasingFunc func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// EaseOutExpo decelerates exponentially toward the stop value.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Tween interpolates a scalar from start to stop over duration.
// The zero t of the first Tick after Add is the animation origin.
type Tween struct {
	start, stop float64
	duration    time.Duration
	easing      EasingFunc
	onFrame     func(v float64)

	begun bool
	t0    time.Time
}

type Scheduler struct {
	tweens []*Tween
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Add(start, stop float64, duration time.Duration, easing EasingFunc, onFrame func(v float64)) *Tween {
	tw := &Tween{
		start:    start,
		stop:     stop,
		duration: duration,
		easing:   easing,
		onFrame:  onFrame,
	}
	s.tweens = append(s.tweens, tw)
	return tw
}

// Active reports whether tw is still scheduled. Identity based; a finished
// tween stays inactive even if an equal-valued one is running.
func (s *Scheduler) Active(tw *Tween) bool {
	if tw == nil {
		return false
	}
	for _, t := range s.tweens {
		if t == tw {
			return true
		}
	}
	return false
}

func (s *Scheduler) CancelAll() {
	s.tweens = nil
}

// Tick advances all scheduled tweens to now and retires finished ones.
func (s *Scheduler) Tick(now time.Time) {
	remaining := s.tweens[:0]
	for _, tw := range s.tweens {
		if !tw.begun {
			tw.begun = true
			tw.t0 = now
		}
		t := 1.0
		if tw.duration > 0 {
			t = float64(now.Sub(tw.t0)) / float64(tw.duration)
			if t > 1 {
				t = 1
			}
		}
		tw.onFrame(tw.start + (tw.stop-tw.start)*tw.easing(t))
		if t < 1 {
			remaining = append(remaining, tw)
		}
	}
	s.tweens = remaining
}
