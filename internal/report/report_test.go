package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/wordfreq/internal/rank"
)

var sampleEntries = rank.List{{Word: "one", Count: 4}, {Word: "two", Count: 2}}

func render(t *testing.T, r Report, f Format) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, f))
	return buf.String()
}

func TestFormatString(t *testing.T) {
	tests := map[Format]string{
		Table:      "Table",
		Text:       "Text",
		JSON:       "JSON",
		Markdown:   "Markdown",
		Format(99): "Unknown",
	}
	for f, want := range tests {
		assert.Equal(t, want, f.String())
	}
}

func TestRenderIncludesEveryEntry(t *testing.T) {
	for _, f := range []Format{Table, Text, JSON, Markdown} {
		t.Run(f.String(), func(t *testing.T) {
			out := render(t, Report{Entries: sampleEntries}, f)
			for _, e := range sampleEntries {
				assert.Contains(t, out, e.Word)
				assert.Contains(t, out, "4")
				assert.Contains(t, out, "2")
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	out := render(t, Report{Entries: sampleEntries}, Text)

	assert.Equal(t, "one\t4\ntwo\t2\n", out)
}

func TestRenderTable(t *testing.T) {
	out := render(t, Report{Entries: sampleEntries}, Table)

	want := strings.Join([]string{
		"+------+-------+",
		"| Word | Count |",
		"+------+-------+",
		"| one  | 4     |",
		"+------+-------+",
		"| two  | 2     |",
		"+------+-------+",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderTableWideRunes(t *testing.T) {
	out := render(t, Report{Entries: rank.List{{Word: "日本", Count: 1}}}, Table)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, cellWidth(lines[0]), cellWidth(line), "misaligned row %q", line)
	}
}

func TestRenderMaxAndNoData(t *testing.T) {
	out := render(t, Report{Entries: sampleEntries, Max: &rank.Entry{Word: "one", Count: 4}}, Text)
	assert.Contains(t, out, "Maximum count\tone\t4\n")

	out = render(t, Report{Entries: rank.List{}, MaxMissing: true}, Table)
	assert.Contains(t, out, "Maximum count")
	assert.Contains(t, out, "no data")
}

func TestRenderSearchHidesEntries(t *testing.T) {
	r := Report{Entries: sampleEntries, Search: &SearchResult{Word: "two", Count: 2}}

	out := render(t, r, Text)

	assert.Equal(t, "Search result\ttwo\t2\n", out)
}

func TestRenderDuration(t *testing.T) {
	r := Report{Entries: sampleEntries, Duration: 1500 * time.Millisecond, Timed: true}

	assert.Contains(t, render(t, r, Text), "Duration: 1500ms")
	assert.Contains(t, render(t, r, Table), "Duration: 1500ms")

	untimed := render(t, Report{Entries: sampleEntries, Duration: time.Second}, Text)
	assert.NotContains(t, untimed, "Duration")
}

func TestRenderJSON(t *testing.T) {
	r := Report{
		Entries:  sampleEntries,
		Max:      &rank.Entry{Word: "one", Count: 4},
		Stats:    &Stats{Words: 6, Unique: 2, Characters: 23},
		Duration: 3 * time.Millisecond,
		Timed:    true,
	}

	var decoded struct {
		Words      []rank.Entry `json:"words"`
		Max        *rank.Entry  `json:"max"`
		Stats      *Stats       `json:"stats"`
		DurationMS *int64       `json:"durationMs"`
	}
	require.NoError(t, json.Unmarshal([]byte(render(t, r, JSON)), &decoded))

	assert.Equal(t, []rank.Entry(sampleEntries), decoded.Words)
	assert.Equal(t, &rank.Entry{Word: "one", Count: 4}, decoded.Max)
	assert.Equal(t, 6, decoded.Stats.Words)
	require.NotNil(t, decoded.DurationMS)
	assert.Equal(t, int64(3), *decoded.DurationMS)
}

func TestRenderJSONEmpty(t *testing.T) {
	out := render(t, Report{}, JSON)

	assert.JSONEq(t, `{"words": []}`, out)
}

func TestRenderMarkdown(t *testing.T) {
	r := Report{Entries: rank.List{{Word: "a|b", Count: 1}}}

	out := render(t, r, Markdown)

	assert.Equal(t, "| Word | Count |\n| --- | --- |\n| a\\|b | 1 |\n", out)
}

func TestRenderStats(t *testing.T) {
	r := Report{Stats: &Stats{Words: 6, Unique: 2, Characters: 23, Tokens: 5}}

	out := render(t, r, Text)

	assert.Contains(t, out, "Total words\t6\n")
	assert.Contains(t, out, "Unique words\t2\n")
	assert.Contains(t, out, "Characters\t23\n")
	assert.Contains(t, out, "Tokens\t5\n")
}
