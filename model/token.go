package model

import (
	"strings"
	"unicode/utf8"
)

// Token is a single positioned run of text with font metrics, the atomic unit
// of layout analysis. All numeric fields are rounded to one decimal place.
// X and Y are the glyph-run origin in page coordinate space, where increasing
// Y moves toward the top of the page. A Token is immutable once created and
// owned exclusively by the page that produced it.
type Token struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
	FontName string
}

// NewToken creates a token with all numeric fields rounded to one decimal.
func NewToken(text string, x, y, width, height, fontSize float64, fontName string) Token {
	return Token{
		Text:     text,
		X:        Round1(x),
		Y:        Round1(y),
		Width:    Round1(width),
		Height:   Round1(height),
		FontSize: Round1(fontSize),
		FontName: fontName,
	}
}

// Bounds returns the token's bounding box.
func (t Token) Bounds() BBox {
	return BBox{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// CenterX returns the horizontal center of the token.
func (t Token) CenterX() float64 {
	return t.X + t.Width/2
}

// TrimmedLen returns the rune count of the token text with surrounding
// whitespace removed. Detection thresholds are expressed against this length.
func (t Token) TrimmedLen() int {
	return utf8.RuneCountInString(strings.TrimSpace(t.Text))
}

// TextLen returns the rune count of the raw token text. Body-font-size
// selection weighs font sizes by this length.
func (t Token) TextLen() int {
	return utf8.RuneCountInString(t.Text)
}

// Column is a half-open horizontal band [StartX, EndX) representing one
// vertical reading lane on a multi-column page. Columns are derived per page
// and never persisted across pages.
type Column struct {
	StartX  float64
	EndX    float64
	CenterX float64
}

// Contains reports whether an X coordinate falls inside the column band.
func (c Column) Contains(x float64) bool {
	return x >= c.StartX && x < c.EndX
}

// Width returns the width of the column band.
func (c Column) Width() float64 {
	return c.EndX - c.StartX
}
