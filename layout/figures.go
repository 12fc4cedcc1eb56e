package layout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/strata/model"
)

// FigureConfig holds configuration for figure caption detection
type FigureConfig struct {
	// MaxLookahead is how many tokens after a caption label are considered
	// for caption aggregation.
	// Default: 9
	MaxLookahead int `yaml:"max_lookahead"`

	// WindowAbove and WindowBelow bound the vertical offset from the label
	// within which look-ahead tokens still belong to the caption.
	// Defaults: 20 above, 30 below
	WindowAbove float64 `yaml:"window_above"`
	WindowBelow float64 `yaml:"window_below"`
}

// DefaultFigureConfig returns sensible default configuration
func DefaultFigureConfig() FigureConfig {
	return FigureConfig{
		MaxLookahead: 9,
		WindowAbove:  20.0,
		WindowBelow:  30.0,
	}
}

// captionLabelPattern matches caption labels such as "Figure 3", "Fig. 12",
// "Image 1" or "Diagram 4", case-insensitively.
var captionLabelPattern = regexp.MustCompile(`(?i)^\s*(figure|fig\.?|image|diagram)\s*(\d+)`)

// FigureDetector scans tokens for caption-label patterns and aggregates the
// trailing caption text.
type FigureDetector struct {
	config FigureConfig
}

// NewFigureDetector creates a detector with default configuration
func NewFigureDetector() *FigureDetector {
	return &FigureDetector{config: DefaultFigureConfig()}
}

// NewFigureDetectorWithConfig creates a detector with custom configuration
func NewFigureDetectorWithConfig(config FigureConfig) *FigureDetector {
	return &FigureDetector{config: config}
}

// Detect scans the page's tokens in original order and emits one Figure per
// caption-label match. AltText is always empty; an external collaborator
// fills it.
func (d *FigureDetector) Detect(tokens []model.Token) []model.Figure {
	var figures []model.Figure

	for i, tok := range tokens {
		m := captionLabelPattern.FindStringSubmatch(tok.Text)
		if m == nil {
			continue
		}

		number, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		figures = append(figures, model.Figure{
			Label:   m[1],
			Number:  number,
			Caption: d.aggregateCaption(tokens, i),
			X:       tok.X,
			Y:       tok.Y,
		})
	}

	return figures
}

// aggregateCaption appends look-ahead token text to the label token's text
// while the vertical offset from the label stays within the caption window.
// The first token outside the window stops the scan.
func (d *FigureDetector) aggregateCaption(tokens []model.Token, labelIdx int) string {
	label := tokens[labelIdx]

	var caption strings.Builder
	caption.WriteString(strings.TrimSpace(label.Text))

	for j := labelIdx + 1; j <= labelIdx+d.config.MaxLookahead && j < len(tokens); j++ {
		tok := tokens[j]
		if tok.Y > label.Y+d.config.WindowAbove || tok.Y < label.Y-d.config.WindowBelow {
			break
		}
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}
		caption.WriteString(" ")
		caption.WriteString(text)
	}

	return caption.String()
}
