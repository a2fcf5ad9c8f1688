package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/steamlens/steamlens/core"
)

// ErrNotFound reports a missing input source.
var ErrNotFound = errors.New("catalog source not found")

// ParseError reports structurally malformed input, such as broken CSV
// framing. Per-field coercion issues are not parse errors; they are resolved
// by the per-field defaults in Normalize.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RawRow is one uncoerced CSV row keyed by canonical column name.
type RawRow map[string]string

// Load reads a catalog CSV and returns its rows keyed by canonical column
// names. Extra columns are kept in the row map; downstream lookups simply
// ignore them.
func Load(ctx context.Context, fs afero.Fs, path string) ([]RawRow, error) {
	core.Debugf(ctx, "loading catalog from %s", path)

	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = CanonicalColumn(h)
	}

	var rows []RawRow
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		row := make(RawRow, len(columns))
		for i, v := range fields {
			if i < len(columns) {
				row[columns[i]] = v
			}
		}
		rows = append(rows, row)
	}

	core.Infof(ctx, "loaded %d rows from %s", len(rows), path)
	return rows, nil
}

// columnSynonyms maps known alternate export headers onto the canonical
// schema, applied after lowercasing/underscoring.
var columnSynonyms = map[string]string{
	"positive":       "positive_reviews",
	"negative":       "negative_reviews",
	"publisher":      "publishers",
	"publisher_name": "publishers",
	"game_publisher": "publishers",
	"developer":      "developers",
	"developer_name": "developers",
	"game_developer": "developers",
}

// CanonicalColumn lowercases and trims a raw header name, replaces spaces
// with underscores, then applies the synonym table.
func CanonicalColumn(name string) string {
	c := strings.ToLower(strings.TrimSpace(name))
	c = strings.ReplaceAll(c, " ", "_")
	if canon, ok := columnSynonyms[c]; ok {
		return canon
	}
	return c
}
