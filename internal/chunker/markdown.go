package chunker

import (
	"regexp"
	"strings"
)

var (
	markdownHeading = regexp.MustCompile(`^# (.+)$`)
	markdownFence   = "```"
)

// markdownClassifier splits on level-one ATX headings outside fenced code blocks
type markdownClassifier struct {
	inCodeBlock bool
}

func newMarkdownClassifier() classifier {
	return &markdownClassifier{}
}

func (m *markdownClassifier) classify(lines []string, i int) step {
	line := strings.TrimSpace(lines[i])

	if strings.HasPrefix(line, markdownFence) {
		m.inCodeBlock = !m.inCodeBlock
	}

	// The opening fence and everything up to the closing fence is kept verbatim
	if m.inCodeBlock {
		return suppressedStep(line)
	}

	if match := markdownHeading.FindStringSubmatch(line); match != nil {
		return boundaryStep(match[1], 1)
	}

	return contentStep(line)
}
