// Package report renders word frequency results in the formats the CLI supports.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chriscorrea/wordfreq/internal/rank"
)

// Format defines the output format for results
type Format int

const (
	// box-drawn table (default)
	Table Format = iota
	// newline-delimited "word<TAB>count"
	Text
	// JSON object
	JSON
	// Markdown pipe table
	Markdown
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case Table:
		return "Table"
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// noData labels a maximum that could not be computed because there were no words.
const noData = "no data"

// SearchResult is the count of a single searched word.
type SearchResult struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Stats summarizes the counted text.
type Stats struct {
	Words      int `json:"words"`
	Unique     int `json:"unique"`
	Characters int `json:"characters"`
	Tokens     int `json:"tokens,omitempty"` // zero when the token encoding is unavailable
}

// Report is everything a run produced. Nil or zero fields are not rendered.
type Report struct {
	Entries    rank.List
	Max        *rank.Entry
	MaxMissing bool // --max was requested on input without words
	Search     *SearchResult
	Stats      *Stats
	Duration   time.Duration
	Timed      bool
}

// Render writes r to w in format f.
func Render(w io.Writer, r Report, f Format) error {
	switch f {
	case Text:
		return renderText(w, r)
	case JSON:
		return renderJSON(w, r)
	case Markdown:
		return renderMarkdown(w, r)
	default:
		return renderTable(w, r)
	}
}

// summaryRows are the labeled rows shown before the word list.
func summaryRows(r Report) [][]string {
	var rows [][]string
	if r.Stats != nil {
		rows = append(rows,
			[]string{"Total words", strconv.Itoa(r.Stats.Words)},
			[]string{"Unique words", strconv.Itoa(r.Stats.Unique)},
			[]string{"Characters", strconv.Itoa(r.Stats.Characters)},
		)
		if r.Stats.Tokens > 0 {
			rows = append(rows, []string{"Tokens", strconv.Itoa(r.Stats.Tokens)})
		}
	}
	if r.Max != nil {
		rows = append(rows, []string{"Maximum count", r.Max.Word, strconv.Itoa(r.Max.Count)})
	} else if r.MaxMissing {
		rows = append(rows, []string{"Maximum count", noData})
	}
	if r.Search != nil {
		rows = append(rows, []string{"Search result", r.Search.Word, strconv.Itoa(r.Search.Count)})
	}
	return rows
}

func entryRows(entries rank.List) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"Word", "Count"})
	for _, e := range entries {
		rows = append(rows, []string{e.Word, strconv.Itoa(e.Count)})
	}
	return rows
}

// showEntries reports whether the ranked list is part of the output;
// a search run shows only its result.
func showEntries(r Report) bool {
	return r.Search == nil
}

func durationLine(r Report) string {
	return fmt.Sprintf("Duration: %dms", r.Duration.Milliseconds())
}

func renderText(w io.Writer, r Report) error {
	var b strings.Builder
	for _, row := range summaryRows(r) {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	if showEntries(r) {
		for _, e := range r.Entries {
			fmt.Fprintf(&b, "%s\t%d\n", e.Word, e.Count)
		}
	}
	if r.Timed {
		b.WriteString(durationLine(r))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonReport is the wire shape of a Report.
type jsonReport struct {
	Words      rank.List     `json:"words,omitempty"`
	Max        *rank.Entry   `json:"max,omitempty"`
	MaxMissing bool          `json:"maxMissing,omitempty"`
	Search     *SearchResult `json:"search,omitempty"`
	Stats      *Stats        `json:"stats,omitempty"`
	DurationMS *int64        `json:"durationMs,omitempty"`
}

func renderJSON(w io.Writer, r Report) error {
	out := jsonReport{
		Max:        r.Max,
		MaxMissing: r.MaxMissing,
		Search:     r.Search,
		Stats:      r.Stats,
	}
	if showEntries(r) {
		out.Words = r.Entries
		if out.Words == nil {
			out.Words = rank.List{}
		}
	}
	if r.Timed {
		ms := r.Duration.Milliseconds()
		out.DurationMS = &ms
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func renderMarkdown(w io.Writer, r Report) error {
	var b strings.Builder
	escape := strings.NewReplacer("|", `\|`)

	writeTable := func(rows [][]string) {
		for i, row := range rows {
			cells := make([]string, len(row))
			for j, c := range row {
				cells[j] = escape.Replace(c)
			}
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
			if i == 0 {
				b.WriteString("|" + strings.Repeat(" --- |", len(row)) + "\n")
			}
		}
	}

	if summary := summaryRows(r); len(summary) > 0 {
		for _, row := range summary {
			fmt.Fprintf(&b, "- **%s**: %s\n", row[0], escape.Replace(strings.Join(row[1:], " ")))
		}
		b.WriteByte('\n')
	}
	if showEntries(r) {
		writeTable(entryRows(r.Entries))
	}
	if r.Timed {
		b.WriteString("\n" + durationLine(r) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
