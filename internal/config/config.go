// Package config loads the YAML configuration of the scrollfx demo.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/metrics"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Wordmark WordmarkConfig `yaml:"wordmark"`
	Marquee  MarqueeConfig  `yaml:"marquee"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig configures the demo window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// WordmarkConfig configures the scroll-morphing wordmark.
type WordmarkConfig struct {
	Label              string  `yaml:"label"`
	Threshold          float64 `yaml:"threshold"`            // px of scroll for the full transition
	Band               float64 `yaml:"band"`                 // px past the threshold before hiding
	TargetFraction     float64 `yaml:"target_fraction"`      // hero width / viewport width
	CharWidthRatio     float64 `yaml:"char_width_ratio"`     // average glyph advance / font size
	Breakpoint         float64 `yaml:"breakpoint"`           // mobile below this width
	HeroColor          string  `yaml:"hero_color"`           // #rrggbb
	HeaderColor        string  `yaml:"header_color"`         // #rrggbb
	HeaderHeight       float64 `yaml:"header_height"`        // fallback anchor is half of this
	InitialTopFraction float64 `yaml:"initial_top_fraction"` // hero top / viewport height
	WheelStep          float64 `yaml:"wheel_step"`           // px per wheel notch
}

// MarqueeConfig configures the offers strip.
type MarqueeConfig struct {
	Items     []string `yaml:"items"`
	Speed     float64  `yaml:"speed"`     // px/s
	ItemGap   float64  `yaml:"item_gap"`  // px after each item
	Tolerance float64  `yaml:"tolerance"` // px
	Debounce  string   `yaml:"debounce"`  // duration
	FontSize  float64  `yaml:"font_size"` // px
	Height    float64  `yaml:"height"`    // px

	LetterSpacing float64 `yaml:"letter_spacing"` // em
	Uppercase     bool    `yaml:"uppercase"`

	MobileFontSize      float64 `yaml:"mobile_font_size"`      // px
	MobileHeight        float64 `yaml:"mobile_height"`         // px
	MobileItemGap       float64 `yaml:"mobile_item_gap"`       // px
	MobileLetterSpacing float64 `yaml:"mobile_letter_spacing"` // em
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "scrollfx",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Wordmark: WordmarkConfig{
			Label:              "VALIARIAN",
			Threshold:          400,
			Band:               50,
			TargetFraction:     0.9,
			CharWidthRatio:     0.65,
			Breakpoint:         768,
			HeroColor:          "#ffffff",
			HeaderColor:        "#000000",
			HeaderHeight:       80,
			InitialTopFraction: 0.25,
			WheelStep:          40,
		},
		Marquee: MarqueeConfig{
			Items: []string{
				"Flat 20% off on premium polos",
				"Free shipping on orders above ₹1999",
				"Limited edition drop – Shop now",
			},
			Speed:     40,
			ItemGap:   64 + 4 + 64,
			Tolerance: 1,
			Debounce:  "150ms",
			FontSize:  13,
			Height:    36,

			LetterSpacing: 0.03,
			Uppercase:     true,

			MobileFontSize:      11,
			MobileHeight:        32,
			MobileItemGap:       48 + 4 + 48,
			MobileLetterSpacing: 0.02,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("SCROLLFX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if speed := os.Getenv("SCROLLFX_MARQUEE_SPEED"); speed != "" {
		value, err := strconv.ParseFloat(speed, 64)
		if err != nil {
			return fmt.Errorf("invalid SCROLLFX_MARQUEE_SPEED: %w", err)
		}
		c.Marquee.Speed = value
	}
	if threshold := os.Getenv("SCROLLFX_THRESHOLD"); threshold != "" {
		value, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return fmt.Errorf("invalid SCROLLFX_THRESHOLD: %w", err)
		}
		c.Wordmark.Threshold = value
	}
	return nil
}

// GetDebounce returns the marquee debounce window.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Marquee.Debounce)
	if err != nil || d <= 0 {
		return 150 * time.Millisecond
	}
	return d
}

// Colors returns the parsed hero and header colors.
func (c *Config) Colors() (hero, header colorful.Color, err error) {
	hero, err = colorful.Hex(c.Wordmark.HeroColor)
	if err != nil {
		return hero, header, fmt.Errorf("invalid hero_color %q: %w", c.Wordmark.HeroColor, err)
	}
	header, err = colorful.Hex(c.Wordmark.HeaderColor)
	if err != nil {
		return hero, header, fmt.Errorf("invalid header_color %q: %w", c.Wordmark.HeaderColor, err)
	}
	return hero, header, nil
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window size must be at least 1x1, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS < 1 {
		errs = append(errs, fmt.Errorf("window tps must be positive, got %d", c.Window.TPS))
	}

	w := c.Wordmark
	if w.Label == "" {
		errs = append(errs, errors.New("wordmark label is required"))
	}
	if !(w.Threshold > 0) || math.IsInf(w.Threshold, 0) {
		errs = append(errs, fmt.Errorf("wordmark threshold must be positive, got %v", w.Threshold))
	}
	if w.Band < 0 {
		errs = append(errs, fmt.Errorf("wordmark band can't be negative, got %v", w.Band))
	}
	if !(w.TargetFraction > 0) || w.TargetFraction > 1 {
		errs = append(errs, fmt.Errorf("wordmark target_fraction must be in (0, 1], got %v", w.TargetFraction))
	}
	if !(w.CharWidthRatio > 0) {
		errs = append(errs, fmt.Errorf("wordmark char_width_ratio must be positive, got %v", w.CharWidthRatio))
	}
	if w.InitialTopFraction < 0 || w.InitialTopFraction > 1 {
		errs = append(errs, fmt.Errorf("wordmark initial_top_fraction must be in [0, 1], got %v", w.InitialTopFraction))
	}
	if w.HeaderHeight < 0 {
		errs = append(errs, fmt.Errorf("wordmark header_height can't be negative, got %v", w.HeaderHeight))
	}
	if _, _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}

	m := c.Marquee
	if err := c.MarqueeConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(m.MobileItemGap >= 0) || math.IsInf(m.MobileItemGap, 0) {
		errs = append(errs, fmt.Errorf("marquee mobile_item_gap must be finite and non-negative, got %v", m.MobileItemGap))
	}
	if math.IsNaN(m.LetterSpacing) || math.IsNaN(m.MobileLetterSpacing) ||
		math.IsInf(m.LetterSpacing, 0) || math.IsInf(m.MobileLetterSpacing, 0) {
		errs = append(errs, errors.New("marquee letter_spacing must be finite"))
	}
	if !(m.FontSize > 0) || !(m.Height > 0) || !(m.MobileFontSize > 0) || !(m.MobileHeight > 0) {
		errs = append(errs, errors.New("marquee font_size and height must be positive"))
	}
	if _, err := time.ParseDuration(m.Debounce); err != nil {
		errs = append(errs, fmt.Errorf("invalid marquee debounce: %w", err))
	}

	return errors.Join(errs...)
}

// MarqueeConfig returns the marquee tunables.
func (c *Config) MarqueeConfig() marquee.Config {
	mc := marquee.DefaultConfig()
	mc.Speed = c.Marquee.Speed
	mc.ItemGap = c.Marquee.ItemGap
	mc.Tolerance = c.Marquee.Tolerance
	mc.DebounceWindow = c.GetDebounce()
	return mc
}

// Profile returns the responsive metrics profile.
func (c *Config) Profile() metrics.Profile {
	profile := metrics.DefaultProfile()
	profile.Breakpoint = c.Wordmark.Breakpoint
	profile.CharWidthRatio = c.Wordmark.CharWidthRatio
	return profile
}
