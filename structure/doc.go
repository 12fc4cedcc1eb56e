// Package structure assembles per-page layout analysis into a structured
// document.
//
// The [Analyzer] is the top-level entry point of the pipeline: it consumes
// flat per-page token lists plus page geometry, runs the layout and table
// detectors on every page, and produces a [model.Document] whose pages carry
// an ordered structured content sequence.
//
//	analyzer := structure.NewAnalyzer()
//	doc := analyzer.AnalyzeDocument(info, pages)
//
// Analysis is page-parallel and stateless at the page level. The only
// cross-page steps are the document-wide font statistics (body and max font
// size) and the scanned-document classification, both simple reductions over
// per-page results. Paragraph and heading building runs as a second pass
// once the body font size is known.
//
// Thresholds for every detector live on [Config], which can be loaded from a
// YAML file via [LoadConfig] for tuning without recompilation.
package structure
