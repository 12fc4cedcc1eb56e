// Package token normalizes raw glyph-run records from a document's text layer
// into canonical tokens for layout analysis.
//
// The text layer hands the pipeline flat records carrying a position
// transform, advance metrics, and a font name. Normalization is a pure
// mapping: text is NFKC-normalized (folding ligatures and fullwidth forms),
// coordinates and sizes are rounded to one decimal, and records missing text
// or position are silently dropped rather than surfaced as errors.
package token

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/strata/model"
)

// RawRun is a raw positioned glyph-run record as produced by a text-layer
// collaborator, before normalization.
type RawRun struct {
	// Text is the run's extracted text.
	Text string

	// Transform is the 6-element text transformation matrix. The run origin
	// is the translation component; the rendered font size is the vertical
	// scale. A nil or short transform marks the record malformed.
	Transform []float64

	// Width and Height are the run's advance extents in page units.
	Width  float64
	Height float64

	// FontName is the font family name reported by the text layer.
	FontName string
}

// Normalize converts raw glyph-run records into canonical tokens. Records
// with missing text or position are dropped, as are runs whose transform
// yields a non-positive font size. The mapping has no side effects.
func Normalize(runs []RawRun) []model.Token {
	tokens := make([]model.Token, 0, len(runs))
	for _, run := range runs {
		tok, ok := normalizeRun(run)
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// normalizeRun maps a single raw run to a token, reporting false for
// malformed records.
func normalizeRun(run RawRun) (model.Token, bool) {
	if run.Text == "" {
		return model.Token{}, false
	}
	if len(run.Transform) < 6 {
		return model.Token{}, false
	}

	var m model.Matrix
	copy(m[:], run.Transform[:6])

	fontSize := m.VerticalScale()
	if fontSize <= 0 {
		return model.Token{}, false
	}

	return model.NewToken(
		norm.NFKC.String(run.Text),
		m.TranslateX(),
		m.TranslateY(),
		run.Width,
		run.Height,
		fontSize,
		run.FontName,
	), true
}
