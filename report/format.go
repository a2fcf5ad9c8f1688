package report

import (
	"encoding/json"
	"io"
	"sort"
)

// FormatterFn writes a full query report to the output stream.
type FormatterFn func(data map[string]any, w io.Writer) error

// Formatters maps output format names to implementations.
var Formatters = map[string]FormatterFn{
	"json":   JSONFormatter,
	"ndjson": NDJSONFormatter,
}

// JSONFormatter writes the whole report as one indented JSON document.
func JSONFormatter(data map[string]any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// NDJSONFormatter writes one {"query":..., "result":...} object per line,
// ordered by query identifier so output is stable.
func NDJSONFormatter(data map[string]any, w io.Writer) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	enc := json.NewEncoder(w)
	for _, k := range keys {
		line := map[string]any{"query": k, "result": data[k]}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
