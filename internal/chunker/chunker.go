package chunker

import (
	"github.com/dshills/docsection-mcp/pkg/types"
)

// classifiers maps each supported dialect to a constructor for its line
// classification strategy. A new classifier is built for every call so that
// per-document state never leaks between calls.
var classifiers = map[types.Dialect]func() classifier{
	types.DialectMarkdown: newMarkdownClassifier,
	types.DialectLaTeX:    newLaTeXClassifier,
	types.DialectRST:      newRSTClassifier,
}

// Chunker splits documents into sections according to their markup dialect.
// It holds no per-document state and is safe for concurrent use.
type Chunker struct{}

// New creates a new Chunker instance
func New() *Chunker {
	return &Chunker{}
}

// Chunk splits text into sections using the rules of dialect.
// It fails with *types.UnsupportedDialectError when dialect has no classifier;
// malformed or empty text never fails.
func (c *Chunker) Chunk(text string, dialect types.Dialect) (*types.Document, error) {
	newClassifier, ok := classifiers[dialect]
	if !ok {
		return nil, &types.UnsupportedDialectError{Tag: string(dialect)}
	}
	return accumulate(text, newClassifier()), nil
}

// ChunkTag resolves a dialect tag (including aliases such as "md") and chunks text
func (c *Chunker) ChunkTag(text, tag string) (*types.Document, error) {
	dialect, err := types.ParseDialect(tag)
	if err != nil {
		return nil, err
	}
	return c.Chunk(text, dialect)
}

var defaultChunker = New()

// Chunk splits text with a shared default Chunker
func Chunk(text string, dialect types.Dialect) (*types.Document, error) {
	return defaultChunker.Chunk(text, dialect)
}
