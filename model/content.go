package model

import "strings"

// ContentType represents the type of a structured content item
type ContentType int

const (
	ContentTypeUnknown ContentType = iota
	ContentTypeParagraph
	ContentTypeHeading
	ContentTypeTable
	ContentTypeFigure
	ContentTypeEquation
)

func (ct ContentType) String() string {
	switch ct {
	case ContentTypeParagraph:
		return "Paragraph"
	case ContentTypeHeading:
		return "Heading"
	case ContentTypeTable:
		return "Table"
	case ContentTypeFigure:
		return "Figure"
	case ContentTypeEquation:
		return "Equation"
	default:
		return "Unknown"
	}
}

// ContentItem is the interface for all structured content items. Items are
// produced only by the document aggregator; within a page they are ordered
// paragraphs/headings first (in reading order), then the table if any, then
// figures in detection order, then equations in detection order.
type ContentItem interface {
	Type() ContentType
	Page() int
	GetText() string
}

// Paragraph represents a run of flowing body text
type Paragraph struct {
	Text       string
	PageNumber int
	Y          float64 // anchoring Y position of the first token
}

func (p *Paragraph) Type() ContentType { return ContentTypeParagraph }
func (p *Paragraph) Page() int         { return p.PageNumber }
func (p *Paragraph) GetText() string   { return p.Text }

// Heading represents a detected heading
type Heading struct {
	Text       string
	Level      int // 1-3
	FontSize   float64
	PageNumber int
	Y          float64 // anchoring Y position
}

func (h *Heading) Type() ContentType { return ContentTypeHeading }
func (h *Heading) Page() int         { return h.PageNumber }
func (h *Heading) GetText() string   { return h.Text }

// IsTopLevel returns true if this is a level 1 heading
func (h *Heading) IsTopLevel() bool {
	return h.Level == 1
}

// WordCount returns the word count of the heading text
func (h *Heading) WordCount() int {
	return len(strings.Fields(h.Text))
}

// ToMarkdown returns the heading as a markdown heading
func (h *Heading) ToMarkdown() string {
	level := h.Level
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + h.Text
}

// TableContent wraps a detected table as a content item
type TableContent struct {
	Table      *Table
	PageNumber int
}

func (t *TableContent) Type() ContentType { return ContentTypeTable }
func (t *TableContent) Page() int         { return t.PageNumber }
func (t *TableContent) GetText() string {
	if t.Table == nil {
		return ""
	}
	return t.Table.GetText()
}

// FigureContent wraps a detected figure as a content item
type FigureContent struct {
	Figure     Figure
	PageNumber int
}

func (f *FigureContent) Type() ContentType { return ContentTypeFigure }
func (f *FigureContent) Page() int         { return f.PageNumber }
func (f *FigureContent) GetText() string   { return f.Figure.Caption }

// EquationContent wraps a detected equation as a content item
type EquationContent struct {
	Equation   Equation
	Index      int // per-page detection index
	PageNumber int
}

func (e *EquationContent) Type() ContentType { return ContentTypeEquation }
func (e *EquationContent) Page() int         { return e.PageNumber }
func (e *EquationContent) GetText() string   { return e.Equation.Text }
