package globecam

// modeStrategy is the uniform per-tick contract of the three scene modes.
// Exactly one strategy runs per Update call.
type modeStrategy interface {
	update(c *Controller) error
}

var (
	_ modeStrategy = (*twoD)(nil)
	_ modeStrategy = (*columbusView)(nil)
	_ modeStrategy = (*threeD)(nil)
)
