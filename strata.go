// Package strata recovers semantic document structure from flat streams of
// positioned text fragments.
//
// Given per-page token lists and page geometry, with no layout tags, strata
// infers reading order across single- and multi-column layouts, separates
// headings from body text, detects tables from positional alignment alone,
// and recognizes figure captions and equation spans from text-pattern
// heuristics.
//
// Basic usage:
//
//	doc := strata.Analyze(strata.Info{Title: "Paper"}, pages)
//	for _, item := range doc.Content() {
//	    fmt.Println(item.Type(), item.GetText())
//	}
//
// With custom thresholds:
//
//	config := structure.DefaultConfig()
//	config.Tables.MinRows = 6
//	doc := strata.AnalyzeWithConfig(config, info, pages)
//
// For lower-level access, the structure, layout, tables, and token packages
// are also available.
package strata

import (
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/structure"
)

// Info carries document metadata supplied by the caller.
type Info = structure.DocumentInfo

// Page is the per-page input contract: page geometry plus the flat token
// list extracted from the document's text layer.
type Page = structure.PageInput

// Analyze runs the full structure-recovery pipeline with default
// configuration.
func Analyze(info Info, pages []Page) *model.Document {
	return structure.NewAnalyzer().AnalyzeDocument(info, pages)
}

// AnalyzeWithConfig runs the pipeline with custom thresholds.
func AnalyzeWithConfig(config structure.Config, info Info, pages []Page) *model.Document {
	return structure.NewAnalyzerWithConfig(config).AnalyzeDocument(info, pages)
}
