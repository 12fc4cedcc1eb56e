package structure

import (
	"sync"

	"github.com/tsawler/strata/layout"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/tables"
)

// PageInput is the per-page input contract: page geometry plus the flat
// token list produced by whatever collaborator extracted the text layer.
// Tokens are expected to already be rounded to one decimal (the token
// package's Normalize does this).
type PageInput struct {
	PageNumber int
	Width      float64
	Height     float64
	Tokens     []model.Token
}

// DocumentInfo carries document metadata supplied by the caller.
type DocumentInfo struct {
	Title  string
	Author string
}

// Analyzer runs the full structure-recovery pipeline over a document's
// pages. It is safe for concurrent use; all per-page state lives on the
// stack of each analysis call.
type Analyzer struct {
	config Config

	columns   *layout.ColumnDetector
	sequencer *layout.Sequencer
	builder   *layout.ParagraphBuilder
	figures   *layout.FigureDetector
	equations *layout.EquationDetector
	tables    tables.Detector
}

// NewAnalyzer creates an analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates an analyzer with the specified configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	config.applyDefaults()
	return &Analyzer{
		config:    config,
		columns:   layout.NewColumnDetectorWithConfig(config.Columns),
		sequencer: layout.NewSequencerWithConfig(config.ReadingOrder),
		builder:   layout.NewParagraphBuilderWithConfig(config.Paragraphs, config.Headings),
		figures:   layout.NewFigureDetectorWithConfig(config.Figures),
		equations: layout.NewEquationDetectorWithConfig(config.Equations),
		tables:    tables.NewAlignmentDetectorWithConfig(config.Tables),
	}
}

// AnalyzeDocument runs the two-pass pipeline: per-page detection in
// parallel, a document-wide font statistics reduction, then parallel
// paragraph/heading building against the computed body font size. It never
// fails: malformed tokens were dropped at normalization, detector non-match
// is an expected outcome, and an empty page yields empty content.
func (a *Analyzer) AnalyzeDocument(info DocumentInfo, pages []PageInput) *model.Document {
	doc := model.NewDocument()
	doc.Title = info.Title
	doc.Author = info.Author

	// Build pages and fold font tallies in page order, so body-font-size
	// ties break on the first size encountered.
	stats := NewFontStats()
	for _, input := range pages {
		page := model.NewPage(input.PageNumber, input.Width, input.Height)
		page.Tokens = filterValid(input.Tokens)
		for _, tok := range page.Tokens {
			stats.Add(tok)
		}
		doc.AddPage(page)
	}
	doc.BodyFontSize = stats.BodyFontSize()
	doc.MaxFontSize = stats.MaxFontSize()

	// A scanned document carries too little text for structure recovery;
	// no detector runs and the content is a single notice paragraph.
	if a.isScanned(stats.TotalChars(), len(pages)) {
		doc.IsScanned = true
		if len(doc.Pages) > 0 {
			first := doc.Pages[0]
			first.Content = []model.ContentItem{&model.Paragraph{
				Text:       a.config.ScannedNotice,
				PageNumber: first.PageNumber,
			}}
		}
		a.config.Logger.Debug("document classified as scanned",
			"pages", len(pages), "total_chars", stats.TotalChars())
		return doc
	}

	// Pass 1: everything that does not need the body font size.
	orders := make([]*layout.ReadingOrder, len(doc.Pages))
	a.forEachPage(len(doc.Pages), func(i int) {
		orders[i] = a.analyzePage(doc.Pages[i])
	})

	// Pass 2: paragraph/heading building with the computed baseline.
	a.forEachPage(len(doc.Pages), func(i int) {
		page := doc.Pages[i]
		if page.HasTable {
			return
		}
		items := a.builder.Build(orders[i], doc.BodyFontSize, page.Width, page.PageNumber)
		page.Content = append(items, page.Content...)
	})

	for _, page := range doc.Pages {
		a.config.Logger.Debug("page analyzed",
			"page", page.PageNumber,
			"columns", page.Columns,
			"table", page.HasTable,
			"figures", len(page.Figures),
			"equations", len(page.Equations))
	}

	return doc
}

// analyzePage runs the scatter-phase detectors for one page and returns the
// page's reading order. A page on which the table detector fires is
// classified tabular and returns early: its structured content is the table
// alone, rendered as pipe-joined rows.
func (a *Analyzer) analyzePage(page *model.Page) *layout.ReadingOrder {
	columnLayout := a.columns.Detect(page.Tokens, page.Width)
	page.Columns = columnLayout.ColumnCount()

	if table := a.tables.Detect(page.Tokens); table != nil {
		page.HasTable = true
		page.Table = table
		page.Content = []model.ContentItem{&model.TableContent{
			Table:      table,
			PageNumber: page.PageNumber,
		}}
		return nil
	}

	page.Figures = a.figures.Detect(page.Tokens)
	page.Equations = a.equations.Detect(page.Tokens)

	// Figures and equations append after the flowing text, in detection
	// order; pass 2 prepends the paragraph/heading items.
	for _, fig := range page.Figures {
		page.Content = append(page.Content, &model.FigureContent{
			Figure:     fig,
			PageNumber: page.PageNumber,
		})
	}
	for i, eq := range page.Equations {
		page.Content = append(page.Content, &model.EquationContent{
			Equation:   eq,
			Index:      i,
			PageNumber: page.PageNumber,
		})
	}

	return a.sequencer.Sequence(page.Tokens, columnLayout)
}

// isScanned applies the absolute and per-page average text length floors.
func (a *Analyzer) isScanned(totalChars, pageCount int) bool {
	if pageCount == 0 {
		return false
	}
	if totalChars < a.config.MinTextLength {
		return true
	}
	return float64(totalChars)/float64(pageCount) < a.config.MinCharsPerPage
}

// forEachPage runs fn for every page index on a bounded worker pool.
func (a *Analyzer) forEachPage(n int, fn func(i int)) {
	workers := a.config.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}

// filterValid drops tokens that violate the input invariants: empty text or
// a non-positive font size. Detection never sees them.
func filterValid(tokens []model.Token) []model.Token {
	kept := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		if tok.FontSize <= 0 {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
