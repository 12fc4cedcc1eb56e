package model

import (
	"strings"
	"testing"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{-1.25, -1.2},
		{100.0, 100.0},
		{0.049, 0.0},
	}

	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewToken_RoundsNumericFields(t *testing.T) {
	tok := NewToken("hello", 100.04, 699.96, 40.55, 12.04, 11.97, "Helvetica")

	if tok.X != 100.0 {
		t.Errorf("X = %v, want 100.0", tok.X)
	}
	if tok.Y != 700.0 {
		t.Errorf("Y = %v, want 700.0", tok.Y)
	}
	if tok.Width != 40.6 {
		t.Errorf("Width = %v, want 40.6", tok.Width)
	}
	if tok.Height != 12.0 {
		t.Errorf("Height = %v, want 12.0", tok.Height)
	}
	if tok.FontSize != 12.0 {
		t.Errorf("FontSize = %v, want 12.0", tok.FontSize)
	}
}

func TestToken_TrimmedLen(t *testing.T) {
	tok := NewToken("  héllo  ", 0, 0, 10, 10, 10, "")
	if got := tok.TrimmedLen(); got != 5 {
		t.Errorf("TrimmedLen() = %d, want 5", got)
	}

	empty := NewToken("   ", 0, 0, 10, 10, 10, "")
	if got := empty.TrimmedLen(); got != 0 {
		t.Errorf("TrimmedLen() on whitespace = %d, want 0", got)
	}
}

func TestColumn_Contains(t *testing.T) {
	col := Column{StartX: 52, EndX: 197, CenterX: 72}

	if !col.Contains(52) {
		t.Error("band should contain its start edge")
	}
	if col.Contains(197) {
		t.Error("band is half-open; end edge should be excluded")
	}
	if !col.Contains(120) {
		t.Error("band should contain interior points")
	}
}

func TestMatrix_VerticalScale(t *testing.T) {
	m := Matrix{12, 0, 0, 12, 100, 700}
	if got := m.VerticalScale(); got != 12 {
		t.Errorf("VerticalScale() = %v, want 12", got)
	}

	if got := m.TranslateX(); got != 100 {
		t.Errorf("TranslateX() = %v, want 100", got)
	}
	if got := m.TranslateY(); got != 700 {
		t.Errorf("TranslateY() = %v, want 700", got)
	}

	if !Identity().IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
}

func TestBBox_Union(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 20, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 30 || u.Height != 30 {
		t.Errorf("Union = %+v, want {0 0 30 30}", u)
	}
}

func makeTable() *Table {
	return &Table{
		Rows: [][]Cell{
			{{Text: "Name", IsHeader: true}, {Text: "Value", IsHeader: true}},
			{{Text: "alpha"}, {Text: "one"}},
			{{Text: "beta"}, {Text: "two"}},
		},
	}
}

func TestTable_GetText_PipeJoined(t *testing.T) {
	table := makeTable()

	want := "Name | Value\nalpha | one\nbeta | two"
	if got := table.GetText(); got != want {
		t.Errorf("GetText() = %q, want %q", got, want)
	}
}

func TestTable_ToMarkdown(t *testing.T) {
	md := makeTable().ToMarkdown()

	lines := strings.Split(strings.TrimSpace(md), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 markdown lines, got %d: %q", len(lines), md)
	}
	if lines[0] != "| Name | Value |" {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "|---|---|" {
		t.Errorf("separator line = %q", lines[1])
	}
}

func TestTable_ToCSV_Escaping(t *testing.T) {
	table := &Table{
		Rows: [][]Cell{
			{{Text: "a,b"}, {Text: `say "hi"`}},
		},
	}

	want := "\"a,b\",\"say \"\"hi\"\"\"\n"
	if got := table.ToCSV(); got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestTable_GetCell_Bounds(t *testing.T) {
	table := makeTable()

	if cell := table.GetCell(0, 0); cell == nil || cell.Text != "Name" {
		t.Errorf("GetCell(0,0) = %+v, want Name", cell)
	}
	if cell := table.GetCell(5, 0); cell != nil {
		t.Error("out-of-bounds row should return nil")
	}
	if cell := table.GetCell(0, 9); cell != nil {
		t.Error("out-of-bounds col should return nil")
	}
	if table.RowCount() != 3 || table.ColCount() != 2 {
		t.Errorf("dims = %dx%d, want 3x2", table.RowCount(), table.ColCount())
	}
}

func TestHeading_ToMarkdown(t *testing.T) {
	h := &Heading{Text: "Introduction", Level: 2}
	if got := h.ToMarkdown(); got != "## Introduction" {
		t.Errorf("ToMarkdown() = %q", got)
	}
	if h.IsTopLevel() {
		t.Error("level 2 heading should not be top level")
	}
	if got := h.WordCount(); got != 1 {
		t.Errorf("WordCount() = %d, want 1", got)
	}
}

func TestContentTypes(t *testing.T) {
	items := []struct {
		item ContentItem
		typ  ContentType
	}{
		{&Paragraph{Text: "body", PageNumber: 1}, ContentTypeParagraph},
		{&Heading{Text: "head", PageNumber: 1}, ContentTypeHeading},
		{&TableContent{Table: makeTable(), PageNumber: 1}, ContentTypeTable},
		{&FigureContent{Figure: Figure{Caption: "Figure 1"}, PageNumber: 1}, ContentTypeFigure},
		{&EquationContent{Equation: Equation{Text: "x = 1"}, PageNumber: 1}, ContentTypeEquation},
	}

	for _, tt := range items {
		if tt.item.Type() != tt.typ {
			t.Errorf("%T Type() = %v, want %v", tt.item, tt.item.Type(), tt.typ)
		}
		if tt.item.Page() != 1 {
			t.Errorf("%T Page() = %d, want 1", tt.item, tt.item.Page())
		}
		if tt.item.GetText() == "" {
			t.Errorf("%T GetText() should not be empty", tt.item)
		}
	}
}

func TestDocument_TableOfContents(t *testing.T) {
	doc := NewDocument()

	page1 := NewPage(1, 612, 792)
	page1.Content = []ContentItem{
		&Heading{Text: "Chapter 1", Level: 1, FontSize: 24, PageNumber: 1},
		&Paragraph{Text: "Some text.", PageNumber: 1},
	}
	page2 := NewPage(2, 612, 792)
	page2.Content = []ContentItem{
		&Heading{Text: "Background", Level: 2, FontSize: 18, PageNumber: 2},
	}
	doc.AddPage(page1)
	doc.AddPage(page2)

	toc := doc.TableOfContents()
	if len(toc) != 2 {
		t.Fatalf("expected 2 TOC entries, got %d", len(toc))
	}
	if toc[0].Text != "Chapter 1" || toc[0].Level != 1 || toc[0].Page != 1 {
		t.Errorf("first entry = %+v", toc[0])
	}
	if toc[1].Text != "Background" || toc[1].Level != 2 || toc[1].Page != 2 {
		t.Errorf("second entry = %+v", toc[1])
	}

	if doc.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", doc.PageCount)
	}
	if got := doc.GetPage(2); got != page2 {
		t.Error("GetPage(2) should return the second page")
	}
	if got := doc.GetPage(9); got != nil {
		t.Error("GetPage out of range should return nil")
	}
}

func TestPage_TextLen(t *testing.T) {
	page := NewPage(1, 612, 792)
	page.Tokens = []Token{
		NewToken("hello", 0, 0, 10, 10, 10, ""),
		NewToken("wörld", 0, 0, 10, 10, 10, ""),
	}
	if got := page.TextLen(); got != 10 {
		t.Errorf("TextLen() = %d, want 10", got)
	}
}
