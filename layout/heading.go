package layout

import (
	"strings"

	"github.com/tsawler/strata/model"
)

// HeadingConfig holds configuration for heading level classification
type HeadingConfig struct {
	// Level1Ratio, Level2Ratio and Level3Ratio are the minimum font size
	// ratios (token size over body size) for heading levels 1-3.
	// Defaults: 1.8, 1.4, 1.1
	Level1Ratio float64 `yaml:"level1_ratio"`
	Level2Ratio float64 `yaml:"level2_ratio"`
	Level3Ratio float64 `yaml:"level3_ratio"`

	// MaxHeadingLength is the trimmed text length above which a token is
	// never a heading; longer strings are body text misclassified by size.
	// Default: 120
	MaxHeadingLength int `yaml:"max_heading_length"`

	// ShortTextLength is the trimmed length below which the secondary score
	// is incremented.
	// Default: 60
	ShortTextLength int `yaml:"short_text_length"`

	// CenterTolerance is the centering tolerance as a fraction of page
	// width: a token whose text center sits within this fraction of the page
	// center scores as centered.
	// Default: 0.1
	CenterTolerance float64 `yaml:"center_tolerance"`

	// ForceScore is the secondary score at which a token whose ratio missed
	// every band is still forced to level 3.
	// Default: 2
	ForceScore int `yaml:"force_score"`
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		Level1Ratio:      1.8,
		Level2Ratio:      1.4,
		Level3Ratio:      1.1,
		MaxHeadingLength: 120,
		ShortTextLength:  60,
		CenterTolerance:  0.1,
		ForceScore:       2,
	}
}

// HeadingClassifier scores tokens as heading levels using font size ratio
// against the document body font size, plus styling signals.
type HeadingClassifier struct {
	config HeadingConfig
}

// NewHeadingClassifier creates a classifier with default configuration
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{config: DefaultHeadingConfig()}
}

// NewHeadingClassifierWithConfig creates a classifier with custom configuration
func NewHeadingClassifierWithConfig(config HeadingConfig) *HeadingClassifier {
	return &HeadingClassifier{config: config}
}

// Level returns the heading level (1-3) for a token, or 0 if the token
// should remain body text.
func (c *HeadingClassifier) Level(tok model.Token, bodyFontSize, pageWidth float64) int {
	trimmed := strings.TrimSpace(tok.Text)
	if len([]rune(trimmed)) > c.config.MaxHeadingLength {
		return 0
	}
	if bodyFontSize <= 0 {
		return 0
	}

	ratio := tok.FontSize / bodyFontSize

	level := 0
	switch {
	case ratio >= c.config.Level1Ratio:
		level = 1
	case ratio >= c.config.Level2Ratio:
		level = 2
	case ratio >= c.config.Level3Ratio:
		level = 3
	}

	if level == 0 && c.score(tok, trimmed, pageWidth) >= c.config.ForceScore {
		level = 3
	}

	return level
}

// score counts secondary heading signals: bold font, all-caps text,
// horizontal centering, and short text.
func (c *HeadingClassifier) score(tok model.Token, trimmed string, pageWidth float64) int {
	score := 0

	if isBoldFont(tok.FontName) {
		score++
	}
	if isAllCaps(trimmed) {
		score++
	}
	if pageWidth > 0 {
		offset := absFloat(tok.CenterX() - pageWidth/2)
		if offset <= pageWidth*c.config.CenterTolerance {
			score++
		}
	}
	if len([]rune(trimmed)) < c.config.ShortTextLength {
		score++
	}

	return score
}

// isBoldFont checks the font name for bold weight indicators
func isBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "bold") ||
		strings.Contains(name, "black") ||
		strings.Contains(name, "heavy")
}

// isAllCaps reports whether text longer than 3 characters is entirely
// uppercase.
func isAllCaps(text string) bool {
	if len([]rune(text)) <= 3 {
		return false
	}
	return text == strings.ToUpper(text) && text != strings.ToLower(text)
}
