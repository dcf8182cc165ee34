package chunker

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docsection-mcp/pkg/types"
)

// section builds an expected section; an empty title means untitled
func section(title, content string) types.Section {
	if title == "" {
		return types.Section{Content: content}
	}
	return types.Section{Title: types.Title(title), Content: content}
}

func TestNew(t *testing.T) {
	c := New()
	assert.NotNil(t, c)
}

func TestChunk_UnsupportedDialect(t *testing.T) {
	for _, text := range []string{"", "# Hello\n\nWorld"} {
		doc, err := New().Chunk(text, types.Dialect("fake"))

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.EqualError(t, err, "fake not supported")
		assert.True(t, errors.Is(err, types.ErrUnsupportedDialect))

		var dialectErr *types.UnsupportedDialectError
		require.True(t, errors.As(err, &dialectErr))
		assert.Equal(t, "fake", dialectErr.Tag)
	}
}

func TestChunk_EveryDialectHasClassifier(t *testing.T) {
	c := New()
	for _, d := range types.Dialects() {
		doc, err := c.Chunk("plain text", d)
		require.NoError(t, err, "dialect %s", d)
		assert.Equal(t, []types.Section{section("", "plain text")}, doc.Sections())
	}
}

func TestChunk_NoHeadingsYieldsSingleUntitledSection(t *testing.T) {
	text := "\n  First paragraph.\n\nSecond paragraph.  \n\n"

	for _, d := range types.Dialects() {
		doc, err := Chunk(text, d)
		require.NoError(t, err)
		require.Equal(t, 1, doc.Len(), "dialect %s", d)

		s := doc.Sections()[0]
		assert.False(t, s.HasTitle())
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", s.Content)
	}
}

func TestChunk_EmptyDocument(t *testing.T) {
	for _, d := range types.Dialects() {
		doc, err := Chunk("", d)
		require.NoError(t, err)
		assert.Equal(t, []types.Section{section("", "")}, doc.Sections(), "dialect %s", d)
	}
}

func TestChunkTag(t *testing.T) {
	c := New()

	t.Run("alias", func(t *testing.T) {
		doc, err := c.ChunkTag("# Hello\n\nWorld\n", "MD")
		require.NoError(t, err)
		assert.Equal(t, []types.Section{section("Hello", "World")}, doc.Sections())
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := c.ChunkTag("# Hello", "asciidoc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "asciidoc")
	})
}

func TestChunk_RepeatedCallsAreIndependent(t *testing.T) {
	c := New()

	// Registers "=", "-" and "~" in that order
	first := "A\n=\n\na\n\nB\n-\n\nb\n\nC\n~\n\nc"
	// Uses "~" only; it must rank first again
	second := "Only\n~~~~\n\nbody"

	_, err := c.Chunk(first, types.DialectRST)
	require.NoError(t, err)

	doc, err := c.Chunk(second, types.DialectRST)
	require.NoError(t, err)
	assert.Equal(t, []types.Section{section("Only", "body")}, doc.Sections())
}

func TestChunk_ConcurrentUse(t *testing.T) {
	c := New()

	inputs := []struct {
		text    string
		dialect types.Dialect
	}{
		{"A\n=\n\na\n\nB\n-\n\nb\n\nC\n~\n\nc", types.DialectRST},
		{"Only\n~~~~\n\nbody", types.DialectRST},
		{"# A\n\n```\n# not a title\n```\n", types.DialectMarkdown},
		{"\\section{A}\nbody", types.DialectLaTeX},
	}

	expected := make([]*types.Document, len(inputs))
	for i, in := range inputs {
		doc, err := c.Chunk(in.text, in.dialect)
		require.NoError(t, err)
		expected[i] = doc
	}

	var wg sync.WaitGroup
	results := make([][]*types.Document, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for round := 0; round < 20; round++ {
				for _, in := range inputs {
					doc, err := c.Chunk(in.text, in.dialect)
					if err != nil {
						return
					}
					results[w] = append(results[w], doc)
				}
			}
		}(w)
	}
	wg.Wait()

	for _, docs := range results {
		require.Len(t, docs, 20*len(inputs))
		for i, doc := range docs {
			assert.True(t, expected[i%len(inputs)].Equal(doc))
		}
	}
}
