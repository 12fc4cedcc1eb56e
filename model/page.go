package model

// Page represents a single analyzed page. Token ordering inside a page is
// never assumed sorted; every consumer re-sorts or re-clusters as needed.
type Page struct {
	PageNumber int     // 1-indexed page number
	Width      float64 // Page width in points
	Height     float64 // Page height in points

	// Tokens are the normalized tokens the page was analyzed from.
	Tokens []Token

	// Columns is the number of detected column bands (1 for single-column).
	Columns int

	// HasTable reports whether the page was classified as tabular.
	HasTable bool

	// Table is the detected grid, nil unless HasTable.
	Table *Table

	// Figures are detected figure captions in detection order.
	Figures []Figure

	// Equations are detected equation spans in detection order.
	Equations []Equation

	// Content is the page's structured content sequence.
	Content []ContentItem
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		PageNumber: number,
		Width:      width,
		Height:     height,
	}
}

// ExtractText concatenates the text of all content items in order.
func (p *Page) ExtractText() string {
	var text string
	for _, item := range p.Content {
		text += item.GetText() + "\n"
	}
	return text
}

// TextLen returns the total rune count of all token text on the page.
func (p *Page) TextLen() int {
	total := 0
	for _, t := range p.Tokens {
		total += t.TextLen()
	}
	return total
}

// Headings returns all heading items on the page in content order.
func (p *Page) Headings() []*Heading {
	var headings []*Heading
	for _, item := range p.Content {
		if h, ok := item.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}
