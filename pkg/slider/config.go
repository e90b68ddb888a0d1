package slider

import (
	"maps"
	"time"
)

// ImageFit selects how the image fills its box. It is rendered as the class
// lin-img-style-<fit>; values outside the known set are passed through as is.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitNone    ImageFit = "none"
	FitFill    ImageFit = "fill"
	FitContain ImageFit = "contain"
)

// Known reports whether f is one of the fits the stylesheet defines.
func (f ImageFit) Known() bool {
	switch f {
	case FitCover, FitNone, FitFill, FitContain:
		return true
	}
	return false
}

// Config holds the display options of a slider.
type Config struct {
	// Animation enables the fade on image change.
	Animation bool `yaml:"animation"`
	// AnimationDuration is the fade length in milliseconds.
	AnimationDuration int `yaml:"animationDuration"`
	// ImageFit selects the image fit class.
	ImageFit ImageFit `yaml:"imageFit"`
	// ShowCounter renders the "current / total" text.
	ShowCounter bool `yaml:"showCounter"`
	// ShowControls renders the previous and next affordances.
	ShowControls bool `yaml:"showControls"`
	// ShowDots renders the position tracker.
	ShowDots bool `yaml:"showDots"`
	// Extra keeps keys the slider does not recognize. They have no effect.
	Extra map[string]any `yaml:",inline"`
}

// DefaultConfig returns the configuration every slider starts with.
func DefaultConfig() Config {
	return Config{
		Animation:         true,
		AnimationDuration: 500,
		ImageFit:          FitCover,
		ShowCounter:       true,
		ShowControls:      true,
		ShowDots:          true,
	}
}

// Duration returns AnimationDuration as a time.Duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.AnimationDuration) * time.Millisecond
}

// Clone returns a copy that shares nothing with c.
func (c Config) Clone() Config {
	c.Extra = maps.Clone(c.Extra)
	return c
}

// ConfigUpdate is a partial configuration. Nil fields keep their current
// value; Extra entries are added or overwritten.
type ConfigUpdate struct {
	Animation         *bool          `yaml:"animation,omitempty"`
	AnimationDuration *int           `yaml:"animationDuration,omitempty"`
	ImageFit          *ImageFit      `yaml:"imageFit,omitempty"`
	ShowCounter       *bool          `yaml:"showCounter,omitempty"`
	ShowControls      *bool          `yaml:"showControls,omitempty"`
	ShowDots          *bool          `yaml:"showDots,omitempty"`
	Extra             map[string]any `yaml:",inline"`
}

// Empty reports whether u changes nothing.
func (u ConfigUpdate) Empty() bool {
	return u.Animation == nil && u.AnimationDuration == nil && u.ImageFit == nil &&
		u.ShowCounter == nil && u.ShowControls == nil && u.ShowDots == nil &&
		len(u.Extra) == 0
}

// Merge applies u over c, a shallow merge: only the fields u sets change.
// Nothing is validated.
func (c *Config) Merge(u ConfigUpdate) {
	if u.Animation != nil {
		c.Animation = *u.Animation
	}
	if u.AnimationDuration != nil {
		c.AnimationDuration = *u.AnimationDuration
	}
	if u.ImageFit != nil {
		c.ImageFit = *u.ImageFit
	}
	if u.ShowCounter != nil {
		c.ShowCounter = *u.ShowCounter
	}
	if u.ShowControls != nil {
		c.ShowControls = *u.ShowControls
	}
	if u.ShowDots != nil {
		c.ShowDots = *u.ShowDots
	}
	if len(u.Extra) > 0 {
		if c.Extra == nil {
			c.Extra = make(map[string]any, len(u.Extra))
		}
		maps.Copy(c.Extra, u.Extra)
	}
}

// Bool returns a pointer to v, for ConfigUpdate literals.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for ConfigUpdate literals.
func Int(v int) *int { return &v }

// Fit returns a pointer to f, for ConfigUpdate literals.
func Fit(f ImageFit) *ImageFit { return &f }
