package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk form of the tunable values. Unset fields keep their defaults.
type Overrides struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`

	Section struct {
		Spacing      *float64 `yaml:"spacing"`
		SpinDuration *float64 `yaml:"spin_duration"`
		IdleRateX    *float64 `yaml:"idle_rate_x"`
		IdleRateY    *float64 `yaml:"idle_rate_y"`
	} `yaml:"section"`

	Camera struct {
		FOV               *float64 `yaml:"fov"`
		ParallaxSmoothing *float64 `yaml:"parallax_smoothing"`
	} `yaml:"camera"`

	Particles struct {
		Count *int     `yaml:"count"`
		Size  *float64 `yaml:"size"`
		Seed  *int64   `yaml:"seed"`
	} `yaml:"particles"`

	MaterialColor *string  `yaml:"material_color"`
	MaxPixelRatio *float64 `yaml:"max_pixel_ratio"`
}

// LoadOverrides reads a YAML override file and applies it to the global configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return o.Apply()
}

// Apply copies every set field into the global configuration.
func (o *Overrides) Apply() error {
	if o.MaterialColor != nil {
		if _, err := ParseHexColor(*o.MaterialColor); err != nil {
			return err
		}
		Material.Color = *o.MaterialColor
	}
	if o.Particles.Count != nil && *o.Particles.Count < 0 {
		return fmt.Errorf("particles.count must not be negative, got %d", *o.Particles.Count)
	}

	setInt(&C.Width, o.Width)
	setInt(&C.Height, o.Height)

	setFloat(&Section.Spacing, o.Section.Spacing)
	setFloat(&Section.SpinDuration, o.Section.SpinDuration)
	setFloat(&Section.IdleRateX, o.Section.IdleRateX)
	setFloat(&Section.IdleRateY, o.Section.IdleRateY)

	setFloat(&Camera.FOV, o.Camera.FOV)
	setFloat(&Camera.ParallaxSmoothing, o.Camera.ParallaxSmoothing)

	setInt(&Particles.Count, o.Particles.Count)
	setFloat(&Particles.Size, o.Particles.Size)
	if o.Particles.Seed != nil {
		Particles.Seed = *o.Particles.Seed
	}

	setFloat(&Render.MaxPixelRatio, o.MaxPixelRatio)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
