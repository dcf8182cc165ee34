// Package types provides shared type definitions for the docsection engine.
//
// This package defines the domain types used across the chunker, the MCP server
// and the command line tools: sections, documents, dialects and the error
// taxonomy for chunking and lookups.
//
// # Sections and Documents
//
// A Section is a titled (or untitled) span of a document's body. Untitled
// sections only appear for content that precedes the first heading, or as the
// single section of a document without headings:
//
//	section := types.Section{
//	    Title:   types.Title("Installation"),
//	    Content: "Run go install ./...",
//	}
//
// A Document is the ordered result of one chunking pass. Titles may repeat, so
// lookups come in two flavours:
//
//	all := doc.FindAll(types.Title("Usage"))          // every match, in order
//	one, err := doc.FindUnique(types.Title("Usage"))  // exactly one, or an error
//	intro, err := doc.FindUnique(nil)                 // the untitled section
//
// # Dialects
//
// Dialect is a closed set of markup conventions: markdown, latex and rst.
// ParseDialect accepts the canonical tags plus a few aliases (md, tex,
// restructuredtext), and DialectFromPath infers a dialect from a file extension.
//
// # Errors
//
// Failures are reported with typed errors that also match sentinel values:
//
//	var lookupErr *types.SectionLookupError
//	if errors.As(err, &lookupErr) {
//	    log.Printf("found %d sections", lookupErr.Count)
//	}
//	if errors.Is(err, types.ErrSectionNotFound) { ... }
//	if errors.Is(err, types.ErrUnsupportedDialect) { ... }
package types
