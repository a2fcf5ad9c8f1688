package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"q4_linux_growth": []map[string]int{{"release_year": 2018, "num_linux_games": 2}},
	}
	require.NoError(t, JSONFormatter(data, &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "q4_linux_growth")
}

func TestNDJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"q2_rpg_metrics":    map[string]float64{"mean": 1},
		"q1_top_metacritic": []string{},
	}
	require.NoError(t, NDJSONFormatter(data, &buf))

	var lines []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			lines = append(lines, sc.Text())
		}
	}
	require.Len(t, lines, 2)

	// lines come out sorted by query identifier
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "q1_top_metacritic", first["query"])
}
