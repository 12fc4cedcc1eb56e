package model

// Figure represents a detected figure caption on a page. AltText starts empty
// and is filled only by an external collaborator; the analysis core never
// generates descriptions.
type Figure struct {
	// Label is the caption label as it appeared, e.g. "Figure" or "Fig.".
	Label string

	// Number is the figure number parsed from the caption label.
	Number int

	// Caption is the aggregated caption text, starting with the label token.
	Caption string

	// X and Y anchor the caption label on the page.
	X float64
	Y float64

	// AltText is an externally supplied description. Always empty when
	// emitted by detection.
	AltText string
}

// Equation represents an opaque mathematical span. The tokens are carried
// verbatim; no semantic parse is attempted.
type Equation struct {
	// Text is the span's token text joined with single spaces.
	Text string

	// Tokens are the tokens that make up the span, in detection order.
	Tokens []Token

	// Y anchors the span vertically (the first token's Y).
	Y float64
}
