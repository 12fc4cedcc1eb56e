package strata

import (
	"strings"
	"testing"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/structure"
)

func samplePages() []Page {
	return []Page{
		{
			PageNumber: 1,
			Width:      612,
			Height:     792,
			Tokens: []model.Token{
				model.NewToken("Results", 72, 720, 90, 24, 24, "Helvetica-Bold"),
				model.NewToken("The experiment completed in", 72, 695, 190, 12, 12, "Helvetica"),
				model.NewToken("under four hours on average,", 72, 680, 195, 12, 12, "Helvetica"),
				model.NewToken("across every configuration.", 72, 665, 185, 12, 12, "Helvetica"),
				model.NewToken("No failures were recorded at all.", 72, 650, 210, 12, 12, "Helvetica"),
			},
		},
	}
}

func TestAnalyze(t *testing.T) {
	doc := Analyze(Info{Title: "Report"}, samplePages())

	if doc.Title != "Report" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.IsScanned {
		t.Error("document misclassified as scanned")
	}

	content := doc.Content()
	if len(content) != 2 {
		t.Fatalf("expected heading + paragraph, got %d items", len(content))
	}
	if content[0].Type() != model.ContentTypeHeading {
		t.Errorf("first item = %v, want heading", content[0].Type())
	}
	if !strings.Contains(doc.ExtractText(), "The experiment completed") {
		t.Errorf("ExtractText() = %q", doc.ExtractText())
	}

	toc := doc.TableOfContents()
	if len(toc) != 1 || toc[0].Text != "Results" {
		t.Errorf("TableOfContents() = %+v", toc)
	}
}

func TestAnalyzeWithConfig(t *testing.T) {
	config := structure.DefaultConfig()
	config.Headings.Level1Ratio = 2.5 // 24pt over a 12pt body now reads as level 2

	doc := AnalyzeWithConfig(config, Info{}, samplePages())

	headings := doc.AllHeadings()
	if len(headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(headings))
	}
	if headings[0].Level != 2 {
		t.Errorf("heading level = %d, want 2", headings[0].Level)
	}
}
