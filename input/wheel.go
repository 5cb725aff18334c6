package input

import (
	"math"
	"time"
)

const (
	notchDetectCount = 4
	initialPeakRate  = 10

	// One normalized wheel step maps to this many pixels of synthetic
	// vertical drag; a single burst is capped so it cannot jump past
	// the zoom floor clamp in one frame.
	wheelStepPixels = 20.0
	wheelMaxPixels  = 200.0
)

type wheelKind int

const (
	wheelKindUnknown wheelKind = iota
	wheelKindNotched
	wheelKindContinuous
)

// wheelNormalizer rescales raw wheel deltas into the vertical drag
// distance of the synthetic flick movement. Notched mice report a fixed
// delta per click while trackpads stream small varying ones; the device
// is classified from the recent delta pattern, and continuous deltas are
// normalized against a low-pass tracked peak scroll rate.
type wheelNormalizer struct {
	ready    bool
	eventCnt int

	kind     wheelKind
	peakRate float64

	repeatCnt int
	repeatAbs float64

	tPrev time.Time
	accum float64
}

// pixels converts one raw delta into flick pixels. Not ready until
// enough events arrived to classify the device.
func (n *wheelNormalizer) pixels(d float64, now time.Time) (float64, bool) {
	if n.eventCnt > notchDetectCount {
		n.ready = true
	} else {
		n.eventCnt++
	}
	abs := math.Abs(d)
	if abs == 0 {
		return 0, n.ready
	}

	if abs == n.repeatAbs {
		n.repeatCnt++
	} else {
		n.repeatCnt = 0
	}
	n.repeatAbs = abs

	prev := n.kind
	if n.repeatCnt > notchDetectCount {
		n.kind = wheelKindNotched
	} else {
		n.kind = wheelKindContinuous
	}
	if n.kind != prev {
		n.peakRate = initialPeakRate
	}

	if dt := now.Sub(n.tPrev).Seconds(); dt > 0 {
		if dt > 0.1 {
			dt = 0.1
		}
		rate := math.Abs(n.accum+d) / dt
		n.accum = 0
		n.tPrev = now
		if n.peakRate < rate {
			// LPF to suppress spikes
			n.peakRate = (n.peakRate + rate) / 2
		}
		n.peakRate *= 0.95
	} else {
		// same-instant events accumulate into the next rate sample
		n.accum += d
	}
	if n.peakRate < 1 {
		n.peakRate = 1
	}

	norm := d * 250 / n.peakRate
	if n.kind == wheelKindNotched {
		norm = 1
		if d < 0 {
			norm = -1
		}
	}

	dy := -norm * wheelStepPixels
	if dy > wheelMaxPixels {
		dy = wheelMaxPixels
	} else if dy < -wheelMaxPixels {
		dy = -wheelMaxPixels
	}
	return dy, n.ready
}
