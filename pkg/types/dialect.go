package types

import (
	"path"
	"strings"
)

// Dialect identifies the markup convention that governs heading detection
type Dialect string

const (
	DialectMarkdown Dialect = "markdown"
	DialectLaTeX    Dialect = "latex"
	DialectRST      Dialect = "rst"
)

// dialectAliases maps accepted tag spellings to their dialect
var dialectAliases = map[string]Dialect{
	"markdown":         DialectMarkdown,
	"md":               DialectMarkdown,
	"latex":            DialectLaTeX,
	"tex":              DialectLaTeX,
	"rst":              DialectRST,
	"rest":             DialectRST,
	"restructuredtext": DialectRST,
}

// dialectExtensions maps file extensions to their dialect
var dialectExtensions = map[string]Dialect{
	".md":       DialectMarkdown,
	".markdown": DialectMarkdown,
	".tex":      DialectLaTeX,
	".latex":    DialectLaTeX,
	".rst":      DialectRST,
	".rest":     DialectRST,
}

// Dialects returns every supported dialect
func Dialects() []Dialect {
	return []Dialect{DialectMarkdown, DialectLaTeX, DialectRST}
}

// Valid reports whether d is a supported dialect
func (d Dialect) Valid() bool {
	switch d {
	case DialectMarkdown, DialectLaTeX, DialectRST:
		return true
	default:
		return false
	}
}

func (d Dialect) String() string {
	return string(d)
}

// ParseDialect resolves a dialect tag, accepting common aliases in any case.
// Unknown tags fail with *UnsupportedDialectError.
func ParseDialect(tag string) (Dialect, error) {
	if d, ok := dialectAliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return d, nil
	}
	return "", &UnsupportedDialectError{Tag: tag}
}

// DialectFromPath infers the dialect from a file path or locator extension
func DialectFromPath(p string) (Dialect, bool) {
	d, ok := dialectExtensions[strings.ToLower(path.Ext(p))]
	return d, ok
}
