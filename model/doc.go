// Package model provides the intermediate representation (IR) for recovered
// document structure.
//
// This package defines the user-facing data structures produced by layout
// analysis. The analysis pipeline consumes flat per-page [Token] lists and
// produces these types, making them the primary API for consuming recovered
// structure.
//
// # Document Structure
//
// The [Document] type represents a complete analyzed document:
//
//	doc := model.NewDocument()
//	doc.Title = "My Document"
//	doc.AddPage(page)
//
// Each [Page] contains dimensions, the tokens it was built from, and the
// per-page detection results (column count, table, figures, equations).
//
// # Content Items
//
// All structured content implements the [ContentItem] interface. The concrete
// types are:
//
//   - [Paragraph] - flowing body text
//   - [Heading] - headings (levels 1-3)
//   - [TableContent] - a detected table
//   - [FigureContent] - a figure caption with placeholder alt text
//   - [EquationContent] - an opaque mathematical span
//
// # Tables
//
// The [Table] type provides a grid representation with export methods
// ToMarkdown() and ToCSV(). By convention the first row is the header row
// unless an external collaborator overrides it.
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with union and containment checks
//   - [Matrix] - 2D affine transformation matrix (glyph-run transforms)
package model
