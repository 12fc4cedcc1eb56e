package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/strata/model"
)

// EquationConfig holds configuration for equation span detection
type EquationConfig struct {
	// VerticalTolerance is the maximum Y distance between consecutive span
	// tokens for the span to keep growing.
	// Default: 10 points
	VerticalTolerance float64 `yaml:"vertical_tolerance"`

	// MinSpanTokens is the minimum token count for a closed span to be
	// emitted; shorter spans are discarded as noise.
	// Default: 3
	MinSpanTokens int `yaml:"min_span_tokens"`
}

// DefaultEquationConfig returns sensible default configuration
func DefaultEquationConfig() EquationConfig {
	return EquationConfig{
		VerticalTolerance: 10.0,
		MinSpanTokens:     3,
	}
}

var (
	// mathSymbolPattern matches operator and set-theory symbols plus Greek
	// letters commonly found in typeset mathematics.
	mathSymbolPattern = regexp.MustCompile(`[∑∫∂√∞≈≠≤≥±×÷∈∉⊂⊃∪∩∀∃∇∆α-ωΑ-Ω]`)

	// equationTextPatterns match textual equation forms: variable
	// assignments and exponent/subscript digit forms.
	equationTextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Za-z]\s*=\s*`),
		regexp.MustCompile(`[A-Za-z0-9]\^[A-Za-z0-9]`),
		regexp.MustCompile(`[⁰¹²³⁴⁵⁶⁷⁸⁹₀₁₂₃₄₅₆₇₈₉]`),
	}

	// equationSafePattern is the restricted character class a non-math token
	// must match to extend an open span.
	equationSafePattern = regexp.MustCompile(`^[A-Za-z0-9+\-*/=()\[\]{}.,:;|_^<>\s]+$`)
)

// EquationDetector scans tokens for mathematical symbols and patterns,
// merging contiguous math-bearing runs into opaque equation spans. No
// semantic parse is attempted.
type EquationDetector struct {
	config EquationConfig
}

// NewEquationDetector creates a detector with default configuration
func NewEquationDetector() *EquationDetector {
	return &EquationDetector{config: DefaultEquationConfig()}
}

// NewEquationDetectorWithConfig creates a detector with custom configuration
func NewEquationDetectorWithConfig(config EquationConfig) *EquationDetector {
	return &EquationDetector{config: config}
}

// Detect scans the page's tokens in original order and returns the detected
// equation spans in detection order.
func (d *EquationDetector) Detect(tokens []model.Token) []model.Equation {
	var equations []model.Equation
	var span []model.Token

	close := func() {
		if len(span) >= d.config.MinSpanTokens {
			equations = append(equations, d.buildEquation(span))
		}
		span = nil
	}

	for _, tok := range tokens {
		switch {
		case isMathBearing(tok.Text):
			if len(span) > 0 && !d.withinBand(span, tok) {
				close()
			}
			span = append(span, tok)

		case len(span) > 0 && isEquationSafe(tok.Text) && d.withinBand(span, tok):
			span = append(span, tok)

		default:
			close()
		}
	}
	close()

	return equations
}

// withinBand reports whether a token sits within the vertical tolerance of
// the span's most recently admitted token.
func (d *EquationDetector) withinBand(span []model.Token, tok model.Token) bool {
	last := span[len(span)-1]
	return absFloat(tok.Y-last.Y) <= d.config.VerticalTolerance
}

// buildEquation assembles an Equation from a closed span.
func (d *EquationDetector) buildEquation(span []model.Token) model.Equation {
	parts := make([]string, 0, len(span))
	for _, tok := range span {
		parts = append(parts, strings.TrimSpace(tok.Text))
	}
	tokens := make([]model.Token, len(span))
	copy(tokens, span)

	return model.Equation{
		Text:   strings.Join(parts, " "),
		Tokens: tokens,
		Y:      span[0].Y,
	}
}

// isMathBearing reports whether token text matches the mathematical symbol
// set or a textual equation pattern.
func isMathBearing(text string) bool {
	if mathSymbolPattern.MatchString(text) {
		return true
	}
	for _, pat := range equationTextPatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	return false
}

// isEquationSafe reports whether non-math token text is restricted to
// letters, digits, operators, brackets, and whitespace.
func isEquationSafe(text string) bool {
	return text != "" && equationSafePattern.MatchString(text)
}
