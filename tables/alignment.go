package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/strata/model"
)

// AlignmentDetector recognizes tables from positional alignment alone. It
// groups tokens into rows by Y proximity, keeps rows whose substantial-cell
// count falls in the configured column range, and requires a rectangular,
// visually aligned grid across at least MinRows rows.
type AlignmentDetector struct {
	config Config
}

// NewAlignmentDetector creates a new alignment-based table detector with
// default configuration.
func NewAlignmentDetector() *AlignmentDetector {
	return &AlignmentDetector{config: DefaultConfig()}
}

// NewAlignmentDetectorWithConfig creates a detector with custom configuration.
func NewAlignmentDetectorWithConfig(config Config) *AlignmentDetector {
	return &AlignmentDetector{config: config}
}

// Name returns the detector's identifier ("alignment").
func (d *AlignmentDetector) Name() string {
	return "alignment"
}

// Configure sets the detector configuration.
func (d *AlignmentDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// row accumulates tokens sharing a Y band. The anchor is the Y of the first
// token that opened the row.
type row struct {
	anchorY float64
	tokens  []model.Token
}

// substantialCount returns how many of the row's tokens exceed the
// substantial-length threshold.
func (r *row) substantialCount(minLen int) int {
	count := 0
	for _, tok := range r.tokens {
		if tok.TrimmedLen() > minLen {
			count++
		}
	}
	return count
}

// substantial returns the row's substantial tokens sorted left to right.
func (r *row) substantial(minLen int) []model.Token {
	var cells []model.Token
	for _, tok := range r.tokens {
		if tok.TrimmedLen() > minLen {
			cells = append(cells, tok)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].X < cells[j].X })
	return cells
}

// Detect tests the page's tokens for a consistent row/column grid. It
// returns nil when the page does not hold a table: too few candidate rows,
// varying column counts, or columns that do not visually align.
func (d *AlignmentDetector) Detect(tokens []model.Token) *model.Table {
	rows := d.groupRows(d.filterTokens(tokens))

	candidates := d.candidateRows(rows)
	if len(candidates) < d.config.MinRows {
		return nil
	}

	colCount, ok := d.consistentColumnCount(candidates)
	if !ok {
		return nil
	}

	if !d.columnsAligned(candidates, colCount) {
		return nil
	}

	return d.buildTable(candidates)
}

// filterTokens discards tokens too small or faint to be table cells.
func (d *AlignmentDetector) filterTokens(tokens []model.Token) []model.Token {
	var kept []model.Token
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		if tok.Width <= d.config.MinCellWidth {
			continue
		}
		if tok.FontSize <= d.config.MinCellFontSize {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// groupRows assigns each token to the first existing row whose anchor Y is
// within RowTolerance, or opens a new row.
func (d *AlignmentDetector) groupRows(tokens []model.Token) []*row {
	var rows []*row
	for _, tok := range tokens {
		placed := false
		for _, r := range rows {
			if math.Abs(tok.Y-r.anchorY) <= d.config.RowTolerance {
				r.tokens = append(r.tokens, tok)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, &row{anchorY: tok.Y, tokens: []model.Token{tok}})
		}
	}
	return rows
}

// candidateRows keeps rows whose substantial-cell count lies in the
// configured column range, sorted top to bottom.
func (d *AlignmentDetector) candidateRows(rows []*row) []*row {
	var candidates []*row
	for _, r := range rows {
		count := r.substantialCount(d.config.MinSubstantialLength)
		if count >= d.config.MinColumns && count <= d.config.MaxColumns {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].anchorY > candidates[j].anchorY
	})
	return candidates
}

// consistentColumnCount requires every candidate row's substantial-cell
// count to equal the rounded mean across all candidate rows.
func (d *AlignmentDetector) consistentColumnCount(candidates []*row) (int, bool) {
	sum := 0
	for _, r := range candidates {
		sum += r.substantialCount(d.config.MinSubstantialLength)
	}
	mean := int(math.Round(float64(sum) / float64(len(candidates))))

	for _, r := range candidates {
		if r.substantialCount(d.config.MinSubstantialLength) != mean {
			return 0, false
		}
	}
	return mean, true
}

// columnsAligned checks, per column index, that every cell's X lies within
// AlignmentTolerance of that column's mean X across all candidate rows.
func (d *AlignmentDetector) columnsAligned(candidates []*row, colCount int) bool {
	means := make([]float64, colCount)
	for col := 0; col < colCount; col++ {
		sum := 0.0
		for _, r := range candidates {
			sum += r.substantial(d.config.MinSubstantialLength)[col].X
		}
		means[col] = sum / float64(len(candidates))
	}

	for _, r := range candidates {
		cells := r.substantial(d.config.MinSubstantialLength)
		for col := 0; col < colCount; col++ {
			if math.Abs(cells[col].X-means[col]) > d.config.AlignmentTolerance {
				return false
			}
		}
	}
	return true
}

// buildTable assembles the final grid from each candidate row's substantial
// cells, re-sorted left to right. Using the substantial cells keeps the grid
// rectangular: every row carries exactly the consistent column count. The
// first row is marked as the header row.
func (d *AlignmentDetector) buildTable(candidates []*row) *model.Table {
	table := &model.Table{}

	for i, r := range candidates {
		var cells []model.Cell
		for _, tok := range r.substantial(d.config.MinSubstantialLength) {
			cell := model.CellFromToken(tok)
			cell.IsHeader = i == 0
			cells = append(cells, cell)

			if table.BBox.IsEmpty() {
				table.BBox = tok.Bounds()
			} else {
				table.BBox = table.BBox.Union(tok.Bounds())
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}
