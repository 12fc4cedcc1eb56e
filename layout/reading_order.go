package layout

import (
	"math"
	"sort"

	"github.com/tsawler/strata/model"
)

// SequencerConfig holds configuration for reading-order sequencing
type SequencerConfig struct {
	// LineTolerance is the Y distance within which two tokens are treated as
	// sharing a visual line.
	// Default: 5 points
	LineTolerance float64 `yaml:"line_tolerance"`

	// BandQuantum is the quantization step for merging multi-column content
	// into horizontal Y bands.
	// Default: 5 points
	BandQuantum float64 `yaml:"band_quantum"`

	// BandTolerance is how far a token's quantized Y may sit from a band
	// value and still be emitted with that band.
	// Default: 2 points
	BandTolerance float64 `yaml:"band_tolerance"`
}

// DefaultSequencerConfig returns sensible default configuration
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		LineTolerance: 5.0,
		BandQuantum:   5.0,
		BandTolerance: 2.0,
	}
}

// ReadingOrder is a linear token sequence with the column band each token
// was assigned to. ColumnIndex runs parallel to Tokens.
type ReadingOrder struct {
	Tokens      []model.Token
	ColumnIndex []int

	// ColumnCount is the number of column bands the page was read with.
	ColumnCount int
}

// Sequencer orders a page's tokens into a single linear reading sequence
// respecting column bands. On multi-column pages the result is column-major
// within horizontal Y bands, top to bottom, rather than true raster order.
type Sequencer struct {
	config SequencerConfig
}

// NewSequencer creates a sequencer with default configuration
func NewSequencer() *Sequencer {
	return &Sequencer{config: DefaultSequencerConfig()}
}

// NewSequencerWithConfig creates a sequencer with custom configuration
func NewSequencerWithConfig(config SequencerConfig) *Sequencer {
	return &Sequencer{config: config}
}

// Sequence orders tokens for reading. Single-column pages sort by Y
// descending with X ascending inside the same visual line. Multi-column
// pages sort each band's tokens independently and merge by quantized Y.
func (s *Sequencer) Sequence(tokens []model.Token, columns *ColumnLayout) *ReadingOrder {
	if columns == nil || !columns.IsMultiColumn() {
		ordered := s.sortColumn(tokens)
		return &ReadingOrder{
			Tokens:      ordered,
			ColumnIndex: make([]int, len(ordered)),
			ColumnCount: 1,
		}
	}

	// Assign each token to the band containing its horizontal center
	buckets := make([][]model.Token, len(columns.Columns))
	for _, tok := range tokens {
		idx := columns.ColumnFor(tok.CenterX())
		buckets[idx] = append(buckets[idx], tok)
	}
	for i := range buckets {
		buckets[i] = s.sortColumn(buckets[i])
	}

	// Collect the quantized Y bands present across all columns, top first
	bandSet := make(map[float64]bool)
	for _, bucket := range buckets {
		for _, tok := range bucket {
			bandSet[s.quantizeY(tok.Y)] = true
		}
	}
	bands := make([]float64, 0, len(bandSet))
	for band := range bandSet {
		bands = append(bands, band)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(bands)))

	result := &ReadingOrder{ColumnCount: len(columns.Columns)}
	emitted := make([]int, len(buckets)) // per-column cursor over sorted tokens

	for _, band := range bands {
		for col, bucket := range buckets {
			for emitted[col] < len(bucket) {
				tok := bucket[emitted[col]]
				if absFloat(s.quantizeY(tok.Y)-band) > s.config.BandTolerance {
					break
				}
				result.Tokens = append(result.Tokens, tok)
				result.ColumnIndex = append(result.ColumnIndex, col)
				emitted[col]++
			}
		}
	}

	// Any tokens left behind by band mismatch flush in column order
	for col, bucket := range buckets {
		for emitted[col] < len(bucket) {
			result.Tokens = append(result.Tokens, bucket[emitted[col]])
			result.ColumnIndex = append(result.ColumnIndex, col)
			emitted[col]++
		}
	}

	return result
}

// sortColumn stable-sorts tokens by Y descending, breaking ties by X
// ascending when two tokens share a visual line.
func (s *Sequencer) sortColumn(tokens []model.Token) []model.Token {
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if absFloat(sorted[i].Y-sorted[j].Y) <= s.config.LineTolerance {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y > sorted[j].Y
	})
	return sorted
}

// quantizeY rounds a Y coordinate to the nearest band quantum
func (s *Sequencer) quantizeY(y float64) float64 {
	return math.Round(y/s.config.BandQuantum) * s.config.BandQuantum
}
