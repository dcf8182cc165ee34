package types

import (
	"encoding/json"
	"strings"
)

// Section represents a titled (or untitled) contiguous span of a document's body
type Section struct {
	Title   *string `json:"title"` // Nullable - leading content before any heading has no title
	Content string  `json:"content"`
}

// Title returns a pointer to a concrete section title for use in lookups
func Title(s string) *string {
	return &s
}

// HasTitle reports whether the section has a concrete title
func (s Section) HasTitle() bool {
	return s.Title != nil
}

// TitleOr returns the section title, or fallback for untitled sections
func (s Section) TitleOr(fallback string) string {
	if s.Title == nil {
		return fallback
	}
	return *s.Title
}

// MatchesTitle reports whether the section title equals title.
// A nil title only matches untitled sections.
func (s Section) MatchesTitle(title *string) bool {
	if s.Title == nil || title == nil {
		return s.Title == nil && title == nil
	}
	return *s.Title == *title
}

// Document is an ordered sequence of sections produced by one chunking pass.
// Titles are not required to be unique.
type Document struct {
	sections []Section
}

// NewDocument creates a document holding the given sections in order
func NewDocument(sections ...Section) *Document {
	d := &Document{sections: make([]Section, 0, len(sections))}
	d.sections = append(d.sections, sections...)
	return d
}

// AppendSection joins lines with newlines, trims the result and appends it as a
// new section. It is only meant to be called while the document is being built.
func (d *Document) AppendSection(title *string, lines []string) {
	var t *string
	if title != nil {
		t = Title(*title)
	}
	d.sections = append(d.sections, Section{
		Title:   t,
		Content: strings.TrimSpace(strings.Join(lines, "\n")),
	})
}

// Sections returns a copy of the document's sections in document order
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Len returns the number of sections
func (d *Document) Len() int {
	return len(d.sections)
}

// Titles returns the title of every section in document order
func (d *Document) Titles() []*string {
	titles := make([]*string, len(d.sections))
	for i, s := range d.sections {
		titles[i] = s.Title
	}
	return titles
}

// FindAll returns every section whose title equals title, in document order.
// Passing nil finds untitled sections.
func (d *Document) FindAll(title *string) []Section {
	matches := make([]Section, 0)
	for _, s := range d.sections {
		if s.MatchesTitle(title) {
			matches = append(matches, s)
		}
	}
	return matches
}

// FindUnique returns the only section whose title equals title.
// It fails with a *SectionLookupError when zero or several sections match.
func (d *Document) FindUnique(title *string) (Section, error) {
	matches := d.FindAll(title)
	if len(matches) != 1 {
		return Section{}, &SectionLookupError{Title: title, Count: len(matches)}
	}
	return matches[0], nil
}

// Equal reports whether two documents hold the same sections in the same order
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.sections) != len(other.sections) {
		return false
	}
	for i := range d.sections {
		a, b := d.sections[i], other.sections[i]
		if !a.MatchesTitle(b.Title) || a.Content != b.Content {
			return false
		}
	}
	return true
}

type documentJSON struct {
	Sections []Section `json:"sections"`
}

// MarshalJSON encodes the document as {"sections": [...]}
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Sections: d.Sections()})
}

// UnmarshalJSON decodes a document previously encoded with MarshalJSON
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.sections = raw.Sections
	if d.sections == nil {
		d.sections = make([]Section, 0)
	}
	return nil
}
