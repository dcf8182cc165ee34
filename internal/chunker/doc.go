// Package chunker splits plain-text documents into flat, titled sections.
//
// Heading detection depends on the document's markup dialect. Every dialect
// shares one accumulation loop: body lines are collected until a heading
// boundary is found, the pending section is flushed, and a new section starts
// under the heading's title.
//
// # Basic Usage
//
//	c := chunker.New()
//	doc, err := c.Chunk(readme, types.DialectMarkdown)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, section := range doc.Sections() {
//	    fmt.Printf("%s: %d bytes\n", section.TitleOr("(untitled)"), len(section.Content))
//	}
//
// # Dialect Rules
//
// Markdown:
//   - Only "# Title" starts a section; "##" and deeper stay in the body
//   - Lines between ``` fences are never treated as headings
//   - An unterminated fence suppresses headings to the end of the document
//
// LaTeX:
//   - Only \section{Title} starts a section; \subsection{...} stays in the body
//
// reStructuredText:
//   - A title is a line followed by an underline made of one repeated
//     adornment character that is at least as wide as the title
//   - Underline characters are ranked by first appearance in the document
//   - Only the first two ranks start sections; deeper titles and their
//     underlines are kept verbatim in the current section
//
// # Flush Policy
//
// Back-to-back headings with nothing between them do not produce an empty
// section for the first heading. The last section is always emitted, even when
// empty, so a document without headings yields exactly one untitled section
// whose content is the whole (trimmed) text.
//
// # Concurrency
//
// Classifiers are created per call, so a single Chunker can be shared by any
// number of goroutines.
package chunker
