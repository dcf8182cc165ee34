package chunker

import (
	"regexp"
	"strings"
)

var latexSection = regexp.MustCompile(`^\\section\{(.+)\}$`)

// latexClassifier splits on \section{...}; deeper sectioning commands stay in the body
type latexClassifier struct{}

func newLaTeXClassifier() classifier {
	return latexClassifier{}
}

func (latexClassifier) classify(lines []string, i int) step {
	line := strings.TrimSpace(lines[i])

	if match := latexSection.FindStringSubmatch(line); match != nil {
		return boundaryStep(match[1], 1)
	}

	return contentStep(line)
}
