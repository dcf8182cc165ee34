package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/dshills/docsection-mcp/internal/chunker"
	"github.com/dshills/docsection-mcp/internal/fetcher"
	"github.com/dshills/docsection-mcp/pkg/types"
)

// dumpOptions holds the command line flags
type dumpOptions struct {
	dialect  string
	title    string
	titleSet bool
	untitled bool
	list     bool
	json     bool
}

// untitledLabel is printed in place of a missing title
const untitledLabel = "(untitled)"

var errTitleAndUntitled = errors.New("--title and --untitled cannot be combined")

// runDump fetches every locator, chunks it and writes the requested view to w
func runDump(ctx context.Context, w io.Writer, locators []string, opts *dumpOptions) error {
	if opts.titleSet && opts.untitled {
		return errTitleAndUntitled
	}
	if ctx == nil {
		ctx = context.Background()
	}

	dialects := make([]types.Dialect, len(locators))
	for i, locator := range locators {
		d, err := resolveDialect(opts.dialect, locator)
		if err != nil {
			return err
		}
		dialects[i] = d
	}

	downloader, err := fetcher.NewFromEnv()
	if err != nil {
		return err
	}

	texts, err := downloader.FetchAll(ctx, locators)
	if err != nil {
		return err
	}

	c := chunker.New()
	for i, text := range texts {
		doc, err := c.Chunk(text, dialects[i])
		if err != nil {
			return err
		}
		if len(locators) > 1 {
			_, _ = color.New(color.FgHiBlack).Fprintf(w, "==> %s <==\n", locators[i])
		}
		if err := writeDocument(w, doc, opts); err != nil {
			return fmt.Errorf("%s: %w", locators[i], err)
		}
	}

	return nil
}

// resolveDialect parses the --dialect flag or infers the dialect from locator
func resolveDialect(tag, locator string) (types.Dialect, error) {
	if tag != "" {
		return types.ParseDialect(tag)
	}
	d, ok := types.DialectFromPath(locator)
	if !ok {
		return "", fmt.Errorf("cannot infer dialect of %s, use --dialect", locator)
	}
	return d, nil
}

// writeDocument prints the view selected by opts
func writeDocument(w io.Writer, doc *types.Document, opts *dumpOptions) error {
	sections := doc.Sections()

	switch {
	case opts.titleSet:
		s, err := doc.FindUnique(types.Title(opts.title))
		if err != nil {
			return err
		}
		sections = []types.Section{s}
	case opts.untitled:
		s, err := doc.FindUnique(nil)
		if err != nil {
			return err
		}
		sections = []types.Section{s}
	}

	switch {
	case opts.json:
		return writeJSON(w, types.NewDocument(sections...))
	case opts.list:
		writeTable(w, sections)
		return nil
	default:
		writeSections(w, sections)
		return nil
	}
}

func writeJSON(w io.Writer, doc *types.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeTable(w io.Writer, sections []types.Section) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Lines", "Bytes"})
	table.SetAutoWrapText(false)

	for i, s := range sections {
		lines := 0
		if s.Content != "" {
			lines = countLines(s.Content)
		}
		table.Append([]string{
			strconv.Itoa(i),
			s.TitleOr(untitledLabel),
			strconv.Itoa(lines),
			strconv.Itoa(len(s.Content)),
		})
	}

	table.Render()
}

func writeSections(w io.Writer, sections []types.Section) {
	heading := color.New(color.FgCyan, color.Bold)
	for i, s := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = heading.Fprintf(w, "## %s\n", s.TitleOr(untitledLabel))
		if s.Content != "" {
			_, _ = fmt.Fprintln(w, s.Content)
		}
	}
}

func countLines(s string) int {
	n := 1
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
