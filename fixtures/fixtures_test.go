package fixtures

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steamlens/steamlens/analysis"
	"github.com/steamlens/steamlens/catalog"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{
	  "sample_01": {
	    "q4_linux_growth": [
	      {"release_year": 2018, "num_linux_games": 2},
	      {"release_year": 2019, "num_linux_games": 0}
	    ]
	  }
	}`
	require.NoError(t, afero.WriteFile(fs, "expected.json", []byte(doc), 0o644))

	exp, err := Load(fs, "expected.json")
	require.NoError(t, err)
	require.Contains(t, exp, "sample_01")
	assert.Contains(t, exp["sample_01"], "q4_linux_growth")
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "missing.json")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))

	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{not json"), 0o644))
	_, err = Load(fs, "bad.json")
	var perr *catalog.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestDiffTolerance(t *testing.T) {
	expected := json.RawMessage(`[{"publishers": "Valve", "avg_positive_reviews": 100.0}]`)

	within := []analysis.PublisherStats{{Publishers: "Valve", AvgPositiveReviews: 100.005}}
	diffs, err := Diff(expected, within, DefaultTolerance)
	require.NoError(t, err)
	// only the listed fixture keys are compared
	assert.Empty(t, diffs)

	outside := []analysis.PublisherStats{{Publishers: "Valve", AvgPositiveReviews: 100.5}}
	diffs, err = Diff(expected, outside, DefaultTolerance)
	require.NoError(t, err)
	assert.NotEmpty(t, diffs)
}

func TestDiffShapeMismatches(t *testing.T) {
	expected := json.RawMessage(`[
	  {"release_year": 2018, "num_linux_games": 2},
	  {"release_year": 2019, "num_linux_games": 0}
	]`)

	match := []analysis.YearCount{{ReleaseYear: 2018, NumLinuxGames: 2}, {ReleaseYear: 2019, NumLinuxGames: 0}}
	diffs, err := Diff(expected, match, DefaultTolerance)
	require.NoError(t, err)
	assert.Empty(t, diffs)

	short := []analysis.YearCount{{ReleaseYear: 2018, NumLinuxGames: 2}}
	diffs, err = Diff(expected, short, DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0], "want 2 elements")

	wrongValue := []analysis.YearCount{{ReleaseYear: 2018, NumLinuxGames: 2}, {ReleaseYear: 2020, NumLinuxGames: 0}}
	diffs, err = Diff(expected, wrongValue, DefaultTolerance)
	require.NoError(t, err)
	assert.NotEmpty(t, diffs)
}
