package layout

import (
	"testing"

	"github.com/tsawler/strata/model"
)

func equationTokens(texts []string, y float64) []model.Token {
	tokens := make([]model.Token, len(texts))
	for i, text := range texts {
		tokens[i] = makeToken(text, float64(100+i*40), y, 30, 12)
	}
	return tokens
}

func TestEquationDetector_SymbolSpan(t *testing.T) {
	tokens := []model.Token{
		makeToken("∑", 200, 500, 12, 12),
		makeToken("i=1", 215, 500, 20, 10),
		makeToken("n", 215, 498, 10, 10),
	}

	equations := NewEquationDetector().Detect(tokens)

	if len(equations) != 1 {
		t.Fatalf("expected 1 equation, got %d", len(equations))
	}
	eq := equations[0]
	if eq.Text != "∑ i=1 n" {
		t.Errorf("Text = %q, want %q", eq.Text, "∑ i=1 n")
	}
	if len(eq.Tokens) != 3 {
		t.Errorf("token count = %d, want 3", len(eq.Tokens))
	}
	if eq.Y != 500 {
		t.Errorf("Y = %v, want 500 (first token)", eq.Y)
	}
}

func TestEquationDetector_ShortSpanDiscarded(t *testing.T) {
	tokens := []model.Token{
		makeToken("E=mc", 200, 500, 30, 12),
		makeToken("2", 232, 504, 8, 8),
	}

	if equations := NewEquationDetector().Detect(tokens); len(equations) != 0 {
		t.Errorf("expected 2-token span discarded, got %d equations", len(equations))
	}
}

func TestEquationDetector_BandSplit(t *testing.T) {
	// Three assignments on one line form a span; two more 20 points lower
	// fall outside the vertical band, start a fresh span, and are discarded
	// as too short.
	tokens := []model.Token{
		makeToken("a = 1", 100, 500, 30, 12),
		makeToken("b = 2", 140, 500, 30, 12),
		makeToken("c = 3", 180, 500, 30, 12),
		makeToken("d = 4", 100, 480, 30, 12),
		makeToken("e = 5", 140, 480, 30, 12),
	}

	equations := NewEquationDetector().Detect(tokens)

	if len(equations) != 1 {
		t.Fatalf("expected 1 equation, got %d", len(equations))
	}
	if equations[0].Text != "a = 1 b = 2 c = 3" {
		t.Errorf("Text = %q", equations[0].Text)
	}
}

func TestEquationDetector_ProseClosesSpan(t *testing.T) {
	// An apostrophe is outside the equation-safe character class, so prose
	// following a math run closes the span instead of extending it.
	tokens := []model.Token{
		makeToken("x = y", 100, 500, 30, 12),
		makeToken("+ 2z", 140, 500, 25, 12),
		makeToken("(1)", 500, 500, 20, 12),
		makeToken("Newton's method", 100, 480, 110, 12),
	}

	equations := NewEquationDetector().Detect(tokens)

	if len(equations) != 1 {
		t.Fatalf("expected 1 equation, got %d", len(equations))
	}
	if equations[0].Text != "x = y + 2z (1)" {
		t.Errorf("Text = %q", equations[0].Text)
	}
	if len(equations[0].Tokens) != 3 {
		t.Errorf("token count = %d, want 3", len(equations[0].Tokens))
	}
}

func TestEquationDetector_PlainProseIgnored(t *testing.T) {
	tokens := equationTokens([]string{"The quick", "brown fox", "jumps over", "the lazy dog"}, 700)

	if equations := NewEquationDetector().Detect(tokens); len(equations) != 0 {
		t.Errorf("expected no equations in prose, got %d", len(equations))
	}
}

func TestIsMathBearing(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"∫f(x)dx", true},
		{"α", true},
		{"x = 1", true},
		{"x^2", true},
		{"x²", true},
		{"plain words", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isMathBearing(tt.text); got != tt.want {
			t.Errorf("isMathBearing(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsEquationSafe(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"(a+b)", true},
		{"n", true},
		{"don't", false},
		{"", false},
		{"café", false},
	}

	for _, tt := range tests {
		if got := isEquationSafe(tt.text); got != tt.want {
			t.Errorf("isEquationSafe(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
