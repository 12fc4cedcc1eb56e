// Package tables provides table detection from positional token alignment.
// No layout tags or drawn grid lines are required: a table is recognized
// purely from a consistent row/column grid in the token coordinates.
package tables

import (
	"github.com/tsawler/strata/model"
)

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect tests a page's tokens for a table. A nil result is the
	// expected non-match outcome, not an error.
	Detect(tokens []model.Token) *model.Table

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Config holds detector configuration
type Config struct {
	// MinCellWidth is the minimum token width for table consideration;
	// narrower tokens are discarded as noise.
	// Default: 5 points
	MinCellWidth float64 `yaml:"min_cell_width"`

	// MinCellFontSize is the minimum font size for table consideration.
	// Default: 8 points
	MinCellFontSize float64 `yaml:"min_cell_font_size"`

	// RowTolerance is the Y proximity within which a token joins an
	// existing row.
	// Default: 5 points
	RowTolerance float64 `yaml:"row_tolerance"`

	// MinSubstantialLength is the trimmed length a cell must exceed to
	// count toward a row's column count.
	// Default: 3
	MinSubstantialLength int `yaml:"min_substantial_length"`

	// MinColumns and MaxColumns bound the substantial-cell count for a row
	// to qualify as a candidate table row.
	// Defaults: 2 and 4
	MinColumns int `yaml:"min_columns"`
	MaxColumns int `yaml:"max_columns"`

	// MinRows is the minimum number of candidate rows; fewer signals a
	// multi-column text layout, not a table.
	// Default: 5
	MinRows int `yaml:"min_rows"`

	// AlignmentTolerance is how far a cell's X may sit from its column's
	// mean X; columns must visually align, not merely match in count.
	// Default: 30 points
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinCellWidth:         5.0,
		MinCellFontSize:      8.0,
		RowTolerance:         5.0,
		MinSubstantialLength: 3,
		MinColumns:           2,
		MaxColumns:           4,
		MinRows:              5,
		AlignmentTolerance:   30.0,
	}
}

// DetectorRegistry holds registered detectors
type DetectorRegistry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector
func (r *DetectorRegistry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names
func (r *DetectorRegistry) List() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a detector by name
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	// Register default detectors
	RegisterDetector(NewAlignmentDetector())
}
