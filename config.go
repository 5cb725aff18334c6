package globecam

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// Config is the serializable form of the controller tunables.
type Config struct {
	EnableInputs    bool `yaml:"enable_inputs"`
	EnableTranslate bool `yaml:"enable_translate"`
	EnableZoom      bool `yaml:"enable_zoom"`
	EnableRotate    bool `yaml:"enable_rotate"`
	EnableLook      bool `yaml:"enable_look"`

	InertiaSpin      float64 `yaml:"inertia_spin"`
	InertiaTranslate float64 `yaml:"inertia_translate"`
	InertiaZoom      float64 `yaml:"inertia_zoom"`

	MaximumZoomRate float64 `yaml:"maximum_zoom_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		EnableInputs:     true,
		EnableTranslate:  true,
		EnableZoom:       true,
		EnableRotate:     true,
		EnableLook:       true,
		InertiaSpin:      0.9,
		InertiaTranslate: 0.9,
		InertiaZoom:      0.8,
		MaximumZoomRate:  defaultMaximumZoomRate,
	}
}

// LoadConfig parses YAML over the defaults and validates ranges.
func LoadConfig(b []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	for _, v := range []float64{c.InertiaSpin, c.InertiaTranslate, c.InertiaZoom} {
		if v < 0 || v >= 1 {
			return nil, errors.New("inertia coefficient must be in [0, 1)")
		}
	}
	if c.MaximumZoomRate <= 0 {
		return nil, errors.New("maximum zoom rate must be >0")
	}
	return c, nil
}

// Apply copies the tunables onto the controller, effective next tick.
func (cfg *Config) Apply(c *Controller) {
	c.EnableInputs = cfg.EnableInputs
	c.EnableTranslate = cfg.EnableTranslate
	c.EnableZoom = cfg.EnableZoom
	c.EnableRotate = cfg.EnableRotate
	c.EnableLook = cfg.EnableLook
	c.InertiaSpin = cfg.InertiaSpin
	c.InertiaTranslate = cfg.InertiaTranslate
	c.InertiaZoom = cfg.InertiaZoom
	c.MaximumZoomRate = cfg.MaximumZoomRate
}
