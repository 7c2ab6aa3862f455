// Package data loads the sample article collection. The collection is
// embedded in the binary; an external CSV with the same columns can be
// supplied instead.
package data

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"ragsum/internal/domain"
)

//go:embed sample_articles.csv
var sampleCSV []byte

// Known article categories. The loader rejects anything else so typos
// in a custom CSV surface at startup instead of in the UI.
var knownCategories = map[string]struct{}{
	"science":     {},
	"technology":  {},
	"food":        {},
	"finance":     {},
	"health":      {},
	"environment": {},
}

// Load reads the document collection. An empty path loads the embedded
// sample articles.
func Load(path string) ([]domain.Document, error) {
	var r io.Reader
	if path == "" {
		r = bytes.NewReader(sampleCSV)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open document collection %s: %w", path, domain.ErrDependency)
		}
		defer f.Close()
		r = f
	}
	return parse(r)
}

func parse(r io.Reader) ([]domain.Document, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read collection header: %w", domain.ErrData)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"title", "content", "category"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("collection missing %q column: %w", required, domain.ErrData)
		}
	}
	var docs []domain.Document
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read collection row %d: %v: %w", row, err, domain.ErrData)
		}
		row++
		doc := domain.Document{
			ID:       strconv.Itoa(row),
			Title:    strings.TrimSpace(record[col["title"]]),
			Content:  strings.TrimSpace(record[col["content"]]),
			Category: strings.TrimSpace(strings.ToLower(record[col["category"]])),
		}
		if doc.Title == "" || doc.Content == "" {
			return nil, fmt.Errorf("row %d has empty title or content: %w", row, domain.ErrData)
		}
		if _, ok := knownCategories[doc.Category]; !ok {
			return nil, fmt.Errorf("row %d has unknown category %q: %w", row, doc.Category, domain.ErrData)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("document collection is empty: %w", domain.ErrData)
	}
	return docs, nil
}

// Categories returns the sorted distinct categories of the collection.
func Categories(docs []domain.Document) []string {
	set := map[string]struct{}{}
	for _, d := range docs {
		set[d.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FilterByCategory returns the documents of the given category.
func FilterByCategory(docs []domain.Document, category string) []domain.Document {
	var out []domain.Document
	for _, d := range docs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
