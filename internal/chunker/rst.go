package chunker

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// rstUnderlineChars are the adornment characters recognised as heading underlines
const rstUnderlineChars = "=-~^`#*+\"':._"

// rstMaxBoundaryLevel is the deepest underline level that starts a new section
const rstMaxBoundaryLevel = 1

// rstClassifier detects underlined section titles. Underline characters are
// ranked by first appearance; only the first two ranks split the document and
// deeper titles are flattened into the current section.
type rstClassifier struct {
	levels []rune
}

func newRSTClassifier() classifier {
	return &rstClassifier{levels: make([]rune, 0, 4)}
}

func (r *rstClassifier) classify(lines []string, i int) step {
	line := strings.TrimRightFunc(lines[i], unicode.IsSpace)

	// The last line has no underline below it
	if i+1 >= len(lines) {
		return contentStep(line)
	}

	underline := strings.TrimRightFunc(lines[i+1], unicode.IsSpace)
	symbol, ok := rstUnderlineSymbol(underline)
	if !ok || !rstTitleCandidate(line) {
		return contentStep(line)
	}
	if runewidth.StringWidth(underline) < runewidth.StringWidth(line) {
		return contentStep(line)
	}

	if r.level(symbol) > rstMaxBoundaryLevel {
		return contentStep(line, underline)
	}

	return boundaryStep(line, 2)
}

// level returns the rank of symbol, registering it on first sight
func (r *rstClassifier) level(symbol rune) int {
	for i, s := range r.levels {
		if s == symbol {
			return i
		}
	}
	r.levels = append(r.levels, symbol)
	return len(r.levels) - 1
}

// rstUnderlineSymbol reports the repeated adornment character of an underline
func rstUnderlineSymbol(line string) (rune, bool) {
	if line == "" {
		return 0, false
	}

	first := []rune(line)[0]
	if !strings.ContainsRune(rstUnderlineChars, first) {
		return 0, false
	}

	for _, c := range line {
		if c != first {
			return 0, false
		}
	}
	return first, true
}

// rstTitleCandidate rejects blank lines, indented lines and lines that are
// themselves adornment runs
func rstTitleCandidate(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if unicode.IsSpace([]rune(line)[0]) {
		return false
	}
	if _, isAdornment := rstUnderlineSymbol(line); isAdornment {
		return false
	}
	return true
}
