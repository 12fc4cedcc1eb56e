package model

import "strings"

// Cell represents a single table cell: a Token reinterpreted as grid content.
type Cell struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	FontSize float64
	IsHeader bool
}

// CellFromToken reinterprets a token as a table cell.
func CellFromToken(t Token) Cell {
	return Cell{
		Text:     strings.TrimSpace(t.Text),
		X:        t.X,
		Y:        t.Y,
		Width:    t.Width,
		FontSize: t.FontSize,
	}
}

// Table represents a detected grid of cells. Rows are ordered top to bottom
// and cells within a row left to right. By convention the first row is the
// header row unless an external collaborator overrides HeaderRow.
type Table struct {
	Rows [][]Cell

	// HeaderRow is the index of the header row. External collaborators may
	// override the default of 0.
	HeaderRow int

	// BBox is the overall bounding box of the table content.
	BBox BBox
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given row and column (0-indexed), or nil if
// out of bounds.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// GetText renders the table as pipe-joined lines, one row per line. This is
// the text form used for pages classified as tabular.
func (t *Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(cell.Text)
		}
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format, using the header row as
// the markdown header.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	header := t.HeaderRow
	if header < 0 || header >= len(t.Rows) {
		header = 0
	}

	var sb strings.Builder

	writeRow := func(row []Cell) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[header])

	for range t.Rows[header] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for i, row := range t.Rows {
		if i == header {
			continue
		}
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			text := cell.Text
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
