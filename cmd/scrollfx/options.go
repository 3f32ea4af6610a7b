package main

import (
	"github.com/edwinsyarief/scrollfx"
	"github.com/edwinsyarief/scrollfx/internal/config"
	"github.com/edwinsyarief/scrollfx/metrics"
)

// optionsFromConfig maps the file configuration onto controller options.
func optionsFromConfig(cfg *config.Config) (scrollfx.Options, error) {
	hero, header, err := cfg.Colors()
	if err != nil {
		return scrollfx.Options{}, err
	}

	options := scrollfx.DefaultOptions()
	options.Label = cfg.Wordmark.Label
	options.Threshold = cfg.Wordmark.Threshold
	options.Band = cfg.Wordmark.Band
	options.TargetFraction = cfg.Wordmark.TargetFraction
	options.Profile = cfg.Profile()
	options.HeroColor = hero
	options.HeaderColor = header
	options.HeaderHeight = cfg.Wordmark.HeaderHeight
	options.InitialTopFraction = cfg.Wordmark.InitialTopFraction
	options.WheelStep = cfg.Wordmark.WheelStep
	options.Marquee = cfg.MarqueeConfig()
	options.MarqueeItems = cfg.Marquee.Items
	options.MarqueeFontSizes[metrics.Desktop] = cfg.Marquee.FontSize
	options.MarqueeFontSizes[metrics.Mobile] = cfg.Marquee.MobileFontSize
	options.MarqueeHeights[metrics.Desktop] = cfg.Marquee.Height
	options.MarqueeHeights[metrics.Mobile] = cfg.Marquee.MobileHeight
	options.MarqueeGaps[metrics.Desktop] = cfg.Marquee.ItemGap
	options.MarqueeGaps[metrics.Mobile] = cfg.Marquee.MobileItemGap
	options.MarqueeLetterSpacings[metrics.Desktop] = cfg.Marquee.LetterSpacing
	options.MarqueeLetterSpacings[metrics.Mobile] = cfg.Marquee.MobileLetterSpacing
	options.MarqueeUppercase = cfg.Marquee.Uppercase
	return options, nil
}
