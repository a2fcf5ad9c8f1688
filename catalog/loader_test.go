package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadCanonicalizesHeaders(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "games.csv",
		"Name,Release Date,Positive,Negative,Publisher Name,AppID\n"+
			"Dota 2,\"Jul 9, 2013\",100,5,Valve,570\n")

	rows, err := Load(context.Background(), fs, "games.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Dota 2", rows[0]["name"])
	assert.Equal(t, "Jul 9, 2013", rows[0]["release_date"])
	assert.Equal(t, "100", rows[0]["positive_reviews"])
	assert.Equal(t, "5", rows[0]["negative_reviews"])
	assert.Equal(t, "Valve", rows[0]["publishers"])
	// unknown columns are kept under their canonical name and ignored later
	assert.Equal(t, "570", rows[0]["appid"])
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(context.Background(), fs, "nope.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadMalformedFraming(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated quote", "name,price\n\"broken,1.0\n"},
		{"ragged row", "name,price\nok,1.0\nonly-one-field\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "bad.csv", tt.content)

			_, err := Load(context.Background(), fs, "bad.csv")
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}

func TestCanonicalColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{" Release Date ", "release_date"},
		{"Positive", "positive_reviews"},
		{"Negative", "negative_reviews"},
		{"Game Publisher", "publishers"},
		{"developer_name", "developers"},
		{"Metacritic score", "metacritic_score"},
	}
	for _, tt := range tests {
		if got := CanonicalColumn(tt.in); got != tt.want {
			t.Errorf("CanonicalColumn(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
