package model

// Document represents a complete analyzed document.
type Document struct {
	Title  string
	Author string

	// PageCount is the number of pages analyzed.
	PageCount int

	// IsScanned is true when the document's total extracted text length fell
	// below the scanned-document thresholds. No structure can be recovered
	// from such a document; a vision-based collaborator must take over.
	IsScanned bool

	// BodyFontSize is the font size covering the greatest total character
	// count across all pages, the baseline for heading detection.
	BodyFontSize float64

	// MaxFontSize is the largest font size seen on any token.
	MaxFontSize float64

	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
	d.PageCount = len(d.Pages)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	for _, p := range d.Pages {
		if p.PageNumber == number {
			return p
		}
	}
	return nil
}

// Content returns the document's full structured content sequence, page by page.
func (d *Document) Content() []ContentItem {
	var items []ContentItem
	for _, page := range d.Pages {
		items = append(items, page.Content...)
	}
	return items
}

// ExtractText returns all content text concatenated in page order.
func (d *Document) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}

// AllTables returns all detected tables across all pages.
func (d *Document) AllTables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		if page.HasTable && page.Table != nil {
			tables = append(tables, page.Table)
		}
	}
	return tables
}

// AllHeadings returns all detected headings across all pages.
func (d *Document) AllHeadings() []*Heading {
	var headings []*Heading
	for _, page := range d.Pages {
		headings = append(headings, page.Headings()...)
	}
	return headings
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level    int     // Heading level (1-3)
	Text     string  // Heading text
	Page     int     // Page number (1-indexed)
	FontSize float64 // Font size of heading
}

// TableOfContents returns headings organized as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for _, h := range d.AllHeadings() {
		toc = append(toc, TOCEntry{
			Level:    h.Level,
			Text:     h.Text,
			Page:     h.PageNumber,
			FontSize: h.FontSize,
		})
	}
	return toc
}
