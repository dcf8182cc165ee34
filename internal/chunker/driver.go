package chunker

import (
	"strings"

	"github.com/dshills/docsection-mcp/pkg/types"
)

// stepKind tells the driver how to treat a classified line
type stepKind int

const (
	// stepContent is an ordinary body line
	stepContent stepKind = iota
	// stepSuppressed is a line inside a region where headings are ignored
	stepSuppressed
	// stepBoundary starts a new section
	stepBoundary
)

// step is the outcome of classifying the line at a given index
type step struct {
	kind  stepKind
	title string   // Only set for boundaries
	lines []string // Lines appended to the pending section for content/suppressed steps
	width int      // Number of input lines consumed, at least 1
}

func contentStep(lines ...string) step {
	return step{kind: stepContent, lines: lines, width: len(lines)}
}

func suppressedStep(line string) step {
	return step{kind: stepSuppressed, lines: []string{line}, width: 1}
}

func boundaryStep(title string, width int) step {
	return step{kind: stepBoundary, title: title, width: width}
}

// classifier is a per-dialect line classification strategy.
// A fresh classifier is created for every chunking call, so implementations
// may keep state between lines of a single document.
type classifier interface {
	classify(lines []string, i int) step
}

// accumulate runs the shared section accumulation loop over text.
//
// Content is collected until a boundary is found. On a boundary the pending
// section is flushed only if it has lines, so back-to-back headings do not
// produce empty sections. The final pending section is always flushed, which
// gives a heading-free document exactly one untitled section.
func accumulate(text string, c classifier) *types.Document {
	lines := splitLines(text)
	doc := types.NewDocument()

	var title *string
	pending := make([]string, 0)

	for i := 0; i < len(lines); {
		st := c.classify(lines, i)

		switch st.kind {
		case stepBoundary:
			if len(pending) > 0 {
				doc.AppendSection(title, pending)
			}
			title = types.Title(st.title)
			pending = make([]string, 0)
		default:
			pending = append(pending, st.lines...)
		}

		if st.width < 1 {
			st.width = 1
		}
		i += st.width
	}

	doc.AppendSection(title, pending)
	return doc
}

// splitLines splits text on line breaks. CRLF and CR are treated as LF and a
// trailing line break does not yield a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
