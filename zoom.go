package globecam

import (
	"github.com/seqsense/globecam/input"
)

// handleZoom converts a vertical drag or wheel delta into a bounded zoom
// command. distanceMeasure is the orthographic frustum half width in 2D
// and the height above the reference surface otherwise. The floor sits
// floorHeight units above the surface; the command never takes the
// distance measure below floorHeight-1.
func (c *Controller) handleZoom(m input.Movement, zoomFactor, distanceMeasure float64) {
	zoomRate := zoomFactor * (distanceMeasure - floorHeight)
	if zoomRate > c.MaximumZoomRate {
		zoomRate = c.MaximumZoomRate
	}

	_, vh := c.cam.Viewport()
	if vh == 0 {
		return
	}
	dist := zoomRate * (m.End.Y - m.Start.Y) / vh
	if dist == 0 {
		return
	}
	if dist > 0 && distanceMeasure-floorHeight < 1 {
		// already at the floor; refuse to oscillate against it
		return
	}
	if distanceMeasure-dist < floorHeight-1 {
		dist = distanceMeasure - (floorHeight - 1)
	}

	if dist > 0 {
		c.cam.ZoomIn(float32(dist))
	} else {
		c.cam.ZoomOut(float32(-dist))
	}
}
