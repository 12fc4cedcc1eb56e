// Package layout provides per-page layout analysis for recovering semantic
// structure from flat token streams.
//
// This package analyzes positioned tokens to detect column bands, reading
// order, figure captions, equation spans, and paragraph/heading structure,
// using only geometric coordinates, font metrics, and font names.
//
// # Detectors
//
// The package includes specialized detectors, each with its own
// configuration:
//
//   - [ColumnDetector] - clusters token left edges into column bands
//   - [Sequencer] - orders tokens into a linear reading sequence
//   - [FigureDetector] - finds caption-label patterns and aggregates captions
//   - [EquationDetector] - merges math-bearing token runs into opaque spans
//   - [ParagraphBuilder] - joins ordered tokens into paragraphs and headings
//   - [HeadingClassifier] - scores heading level from font size and styling
//
// # Configuration
//
// Each detector can be configured independently:
//
//	config := layout.DefaultColumnConfig()
//	config.ClusterThreshold = 50
//	detector := layout.NewColumnDetectorWithConfig(config)
//
// All detection is stateless per page: detectors depend only on the page's
// own tokens and dimensions, so pages can be analyzed in parallel.
package layout
