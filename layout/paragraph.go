package layout

import (
	"strings"

	"github.com/tsawler/strata/model"
)

// ParagraphConfig holds configuration for paragraph/heading building
type ParagraphConfig struct {
	// ParagraphGapFactor is the vertical gap, as a multiple of the incoming
	// token's font size, above which a paragraph break occurs.
	// Default: 2.5
	ParagraphGapFactor float64 `yaml:"paragraph_gap_factor"`

	// LineTolerance is the vertical gap at or below which two tokens share
	// the same visual line.
	// Default: 5 points
	LineTolerance float64 `yaml:"line_tolerance"`

	// WordGapFactor is the horizontal gap, as a multiple of the incoming
	// token's font size, above which a word space is inserted. Smaller gaps
	// mean the same word was split across runs and the text concatenates
	// directly.
	// Default: 0.1
	WordGapFactor float64 `yaml:"word_gap_factor"`

	// MinHeadingTokenLength is the trimmed length a token must exceed to be
	// considered as a heading.
	// Default: 3
	MinHeadingTokenLength int `yaml:"min_heading_token_length"`
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		ParagraphGapFactor:    2.5,
		LineTolerance:         5.0,
		WordGapFactor:         0.1,
		MinHeadingTokenLength: 3,
	}
}

// ParagraphBuilder joins an ordered token sequence into paragraph and heading
// content items using spacing heuristics. Tokens larger than the document
// body font size are classified by the heading classifier and flushed as
// their own items; everything else flows into paragraphs.
type ParagraphBuilder struct {
	config     ParagraphConfig
	classifier *HeadingClassifier
}

// NewParagraphBuilder creates a builder with default configuration
func NewParagraphBuilder() *ParagraphBuilder {
	return NewParagraphBuilderWithConfig(DefaultParagraphConfig(), DefaultHeadingConfig())
}

// NewParagraphBuilderWithConfig creates a builder with custom configuration
func NewParagraphBuilderWithConfig(config ParagraphConfig, heading HeadingConfig) *ParagraphBuilder {
	return &ParagraphBuilder{
		config:     config,
		classifier: NewHeadingClassifierWithConfig(heading),
	}
}

// Build converts an ordered token sequence into paragraph and heading items.
// bodyFontSize is the document-wide baseline computed by the aggregator;
// pageWidth is used for the centering heading signal.
func (b *ParagraphBuilder) Build(order *ReadingOrder, bodyFontSize, pageWidth float64, pageNumber int) []model.ContentItem {
	if order == nil || len(order.Tokens) == 0 {
		return nil
	}

	var items []model.ContentItem

	var para strings.Builder
	paraY := 0.0
	havePrev := false
	var prev model.Token
	prevColumn := 0

	flush := func() {
		if para.Len() == 0 {
			return
		}
		items = append(items, &model.Paragraph{
			Text:       para.String(),
			PageNumber: pageNumber,
			Y:          paraY,
		})
		para.Reset()
	}

	for i, tok := range order.Tokens {
		column := order.ColumnIndex[i]

		// Oversized tokens are candidate headings and never join the flow
		// unless the classifier demotes them.
		if tok.FontSize > bodyFontSize && tok.TrimmedLen() > b.config.MinHeadingTokenLength {
			if level := b.classifier.Level(tok, bodyFontSize, pageWidth); level > 0 {
				flush()
				items = append(items, &model.Heading{
					Text:       strings.TrimSpace(tok.Text),
					Level:      level,
					FontSize:   tok.FontSize,
					PageNumber: pageNumber,
					Y:          tok.Y,
				})
				havePrev = false
				prevColumn = column
				continue
			}
		}

		if para.Len() == 0 || !havePrev {
			flush()
			para.WriteString(tok.Text)
			paraY = tok.Y
		} else {
			sep, breakPara := b.separator(prev, tok, column != prevColumn)
			if breakPara {
				flush()
				para.WriteString(tok.Text)
				paraY = tok.Y
			} else {
				para.WriteString(sep)
				para.WriteString(tok.Text)
			}
		}

		havePrev = true
		prev = tok
		prevColumn = column
	}

	flush()
	return items
}

// separator classifies the gap between two adjacent tokens. It returns the
// joining string for line breaks, word spaces, and split-run concatenation,
// or breakPara=true when the vertical gap or a column change forces a new
// paragraph.
func (b *ParagraphBuilder) separator(prev, item model.Token, columnChanged bool) (sep string, breakPara bool) {
	if columnChanged {
		return "", true
	}

	verticalGap := prev.Y - item.Y
	horizontalGap := item.X - (prev.X + prev.Width)

	switch {
	case verticalGap > b.config.ParagraphGapFactor*item.FontSize:
		return "", true
	case verticalGap > b.config.LineTolerance:
		return "\n", false
	case horizontalGap > b.config.WordGapFactor*item.FontSize:
		return " ", false
	default:
		return "", false
	}
}
