package input

import (
	"testing"
	"time"
)

func TestWheelNormalizer(t *testing.T) {
	interval := 10 * time.Millisecond
	testCases := map[string]struct {
		pre       []float64
		input     []float64
		expected  []float64 // flick pixels
		tolerance float64
	}{
		"NotchedWheel1": {
			pre:      []float64{1, 1, -1, 0, -1, -1},
			input:    []float64{1, -1, 0},
			expected: []float64{-20, 20, 0},
		},
		"NotchedWheel120": {
			pre:      []float64{120, 120, -120, 0, -120, -120},
			input:    []float64{120, -120, 0},
			expected: []float64{-20, 20, 0},
		},
		"ContinuousWheel3": {
			pre:       []float64{2, 4, 3, 0, -1, 2},
			input:     []float64{3, -2, 0},
			expected:  []float64{-60, 40, 0},
			tolerance: 5,
		},
		"ContinuousWheel30": {
			pre:       []float64{20, 40, 30, 0, -10, 20},
			input:     []float64{30, -20, 0},
			expected:  []float64{-60, 40, 0},
			tolerance: 5,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			wn := &wheelNormalizer{}
			now := time.Unix(100, 0)
			for _, v := range tt.pre {
				now = now.Add(interval)
				wn.pixels(v, now)
			}
			for i, v := range tt.input {
				now = now.Add(interval)
				dy, ok := wn.pixels(v, now)
				if !ok {
					t.Error("Normalizer should be ready")
					continue
				}
				if dy < tt.expected[i]-tt.tolerance || tt.expected[i]+tt.tolerance < dy {
					t.Errorf("Expected: %f, got: %f", tt.expected[i], dy)
				}
			}
		})
	}
}

func TestWheelNormalizer_Readiness(t *testing.T) {
	wn := &wheelNormalizer{}
	now := time.Unix(100, 0)
	for i := 0; i < 5; i++ {
		now = now.Add(10 * time.Millisecond)
		if _, ok := wn.pixels(1, now); ok {
			t.Fatalf("Normalizer must not be ready at event %d", i)
		}
	}
	now = now.Add(10 * time.Millisecond)
	if _, ok := wn.pixels(1, now); !ok {
		t.Error("Normalizer must be ready once the device is classified")
	}
}

func TestWheelNormalizer_Clamp(t *testing.T) {
	// a huge burst in the same instant as the previous event hits
	// before the peak rate can absorb it and must be capped
	wn := &wheelNormalizer{}
	now := time.Unix(100, 0)
	for _, v := range []float64{2, 4, 3, 2, 4, 3} {
		now = now.Add(10 * time.Millisecond)
		wn.pixels(v, now)
	}
	dy, ok := wn.pixels(1e6, now)
	if !ok {
		t.Fatal("Normalizer should be ready")
	}
	if dy != -wheelMaxPixels {
		t.Errorf("Expected the clamp at %f, got: %f", -wheelMaxPixels, dy)
	}
}
