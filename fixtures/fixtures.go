package fixtures

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/steamlens/steamlens/catalog"
)

// DefaultTolerance is the absolute difference allowed between expected and
// actual numeric values.
const DefaultTolerance = 0.01

// SampleExpectations maps a query identifier (e.g. "q4_linux_growth") to its
// expected result payload.
type SampleExpectations map[string]json.RawMessage

// ExpectedResults maps a sample name (e.g. "sample_03") to its per-query
// expectations. This mirrors the shape of all_expected_results.json.
type ExpectedResults map[string]SampleExpectations

// Load reads an expected-results fixture file.
func Load(fs afero.Fs, path string) (ExpectedResults, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, path)
		}
		return nil, err
	}
	var out ExpectedResults
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &catalog.ParseError{Path: path, Err: err}
	}
	return out, nil
}

// Diff compares a live query result against an expected fixture payload and
// returns one message per mismatch; an empty slice means they agree. Both
// sides are round-tripped through JSON so fixture documents and Go result
// values compare structurally. Numbers match within tol.
func Diff(expected json.RawMessage, actual any, tol float64) ([]string, error) {
	var want any
	if err := json.Unmarshal(expected, &want); err != nil {
		return nil, fmt.Errorf("bad expected payload: %w", err)
	}

	raw, err := json.Marshal(actual)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal actual result: %w", err)
	}
	var got any
	if err := json.Unmarshal(raw, &got); err != nil {
		return nil, err
	}

	var diffs []string
	compare("$", want, got, tol, &diffs)
	return diffs, nil
}

func compare(path string, want, got any, tol float64, diffs *[]string) {
	switch w := want.(type) {
	case nil:
		if got != nil {
			*diffs = append(*diffs, fmt.Sprintf("%s: want null, got %v", path, got))
		}
	case float64:
		g, ok := got.(float64)
		if !ok {
			*diffs = append(*diffs, fmt.Sprintf("%s: want number %v, got %T", path, w, got))
			return
		}
		if math.Abs(w-g) > tol {
			*diffs = append(*diffs, fmt.Sprintf("%s: want %v, got %v (tol %v)", path, w, g, tol))
		}
	case string:
		if g, ok := got.(string); !ok || g != w {
			*diffs = append(*diffs, fmt.Sprintf("%s: want %q, got %v", path, w, got))
		}
	case bool:
		if g, ok := got.(bool); !ok || g != w {
			*diffs = append(*diffs, fmt.Sprintf("%s: want %v, got %v", path, w, got))
		}
	case []any:
		g, ok := got.([]any)
		if !ok {
			*diffs = append(*diffs, fmt.Sprintf("%s: want array, got %T", path, got))
			return
		}
		if len(g) != len(w) {
			*diffs = append(*diffs, fmt.Sprintf("%s: want %d elements, got %d", path, len(w), len(g)))
			return
		}
		for i := range w {
			compare(fmt.Sprintf("%s[%d]", path, i), w[i], g[i], tol, diffs)
		}
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			*diffs = append(*diffs, fmt.Sprintf("%s: want object, got %T", path, got))
			return
		}
		keys := make([]string, 0, len(w))
		for k := range w {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			gv, ok := g[k]
			if !ok {
				*diffs = append(*diffs, fmt.Sprintf("%s.%s: missing in actual", path, k))
				continue
			}
			compare(fmt.Sprintf("%s.%s", path, k), w[k], gv, tol, diffs)
		}
	default:
		*diffs = append(*diffs, fmt.Sprintf("%s: unsupported fixture type %T", path, want))
	}
}
