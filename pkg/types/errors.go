package types

import (
	"errors"
	"fmt"
)

// Domain errors for chunking and section lookup
var (
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	ErrSectionLookup      = errors.New("section lookup failed")
	ErrSectionNotFound    = errors.New("section not found")
	ErrAmbiguousSection   = errors.New("section title is ambiguous")
)

// UnsupportedDialectError reports a dialect tag with no registered classifier
type UnsupportedDialectError struct {
	Tag string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("%s not supported", e.Tag)
}

// Unwrap allows errors.Is(err, ErrUnsupportedDialect)
func (e *UnsupportedDialectError) Unwrap() error {
	return ErrUnsupportedDialect
}

// SectionLookupError reports a unique lookup that matched zero or several sections
type SectionLookupError struct {
	Title *string // Nullable - nil for untitled lookups
	Count int
}

func (e *SectionLookupError) Error() string {
	title := "<untitled>"
	if e.Title != nil {
		title = fmt.Sprintf("%q", *e.Title)
	}
	return fmt.Sprintf("section lookup for %s resulted in '%d' sections, expected exactly one", title, e.Count)
}

// Unwrap allows errors.Is(err, ErrSectionLookup)
func (e *SectionLookupError) Unwrap() error {
	return ErrSectionLookup
}

// Is matches ErrSectionNotFound or ErrAmbiguousSection depending on the count
func (e *SectionLookupError) Is(target error) bool {
	switch target {
	case ErrSectionNotFound:
		return e.Count == 0
	case ErrAmbiguousSection:
		return e.Count > 1
	default:
		return false
	}
}
