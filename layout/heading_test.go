package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/strata/model"
)

func TestHeadingClassifier_RatioBands(t *testing.T) {
	tests := []struct {
		name     string
		fontSize float64
		want     int
	}{
		{"double body size is level 1", 24, 1},
		{"exactly 1.8x is level 1", 21.6, 1},
		{"1.5x is level 2", 18, 2},
		{"1.17x is level 3", 14, 3},
		{"body size is not a heading", 12, 0},
	}

	classifier := NewHeadingClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Off-center and mixed case so no secondary signal fires.
			tok := makeToken("Chapter heading text here", 72, 700, 180, tt.fontSize)
			if got := classifier.Level(tok, 12, 612); got != tt.want {
				t.Errorf("Level(fontSize=%v) = %d, want %d", tt.fontSize, got, tt.want)
			}
		})
	}
}

func TestHeadingClassifier_ChapterHeading(t *testing.T) {
	classifier := NewHeadingClassifier()

	tok := model.NewToken("Chapter 1", 72, 720, 110, 24, 24, "Arial-Bold")
	if got := classifier.Level(tok, 12, 612); got != 1 {
		t.Errorf("Level() = %d, want 1 for a 2.0 size ratio", got)
	}
}

func TestHeadingClassifier_SecondaryScoreForces(t *testing.T) {
	classifier := NewHeadingClassifier()

	// 13-point text misses every ratio band against a 12-point body, but
	// all-caps plus short text scores 2 and forces level 3.
	tok := makeToken("SECTION NOTICE", 72, 700, 110, 13)
	if got := classifier.Level(tok, 12, 612); got != 3 {
		t.Errorf("forced level = %d, want 3", got)
	}

	// The same text in mixed case scores only 1 (short) and stays body.
	tok = makeToken("Section notice", 72, 700, 110, 13)
	if got := classifier.Level(tok, 12, 612); got != 0 {
		t.Errorf("mixed-case level = %d, want 0", got)
	}
}

func TestHeadingClassifier_BoldCenteredScores(t *testing.T) {
	classifier := NewHeadingClassifier()

	// Bold and centered: center at 306 on a 612-wide page.
	tok := model.NewToken("A centered bold title sitting mid page that runs well past sixty characters total", 186, 700, 240, 13, 13, "Times-Bold")
	if got := classifier.Level(tok, 12, 612); got != 3 {
		t.Errorf("bold centered level = %d, want 3", got)
	}
}

func TestHeadingClassifier_LongTextNeverHeading(t *testing.T) {
	classifier := NewHeadingClassifier()

	long := strings.Repeat("word ", 30) // 150 characters trimmed to 149
	tok := makeToken(long, 72, 700, 400, 24)
	if got := classifier.Level(tok, 12, 612); got != 0 {
		t.Errorf("level for %d-char text = %d, want 0", len(strings.TrimSpace(long)), got)
	}
}

func TestHeadingClassifier_ZeroBodySize(t *testing.T) {
	classifier := NewHeadingClassifier()

	tok := makeToken("Heading", 72, 700, 60, 24)
	if got := classifier.Level(tok, 0, 612); got != 0 {
		t.Errorf("level with zero body size = %d, want 0", got)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Arial-BoldMT", true},
		{"Helvetica-Black", true},
		{"FiraSans-Heavy", true},
		{"Times-Roman", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"INTRODUCTION", true},
		{"Introduction", false},
		{"API", false},   // too short to be a signal
		{"1234", false},  // no letters at all
		{"RFC 9110", true},
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.text); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
