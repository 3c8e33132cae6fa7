// Package rank orders word frequencies and answers lookups over them.
//
// Every operation is read-only: a Frequencies map or List passed in is never
// modified. Ties between equal counts have no meaningful order; SortedAscending
// breaks them by word so output is reproducible, and Max may return any of the
// tied entries.
package rank

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/chriscorrea/wordfreq/internal/counter"
)

// ErrNoData is returned by Max when there are no words to rank.
var ErrNoData = errors.New("no data: input contains no words")

// Entry is a single word and its count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// List is a sequence of entries ordered by count.
type List []Entry

// SortedAscending returns all entries of freqs ordered by count, smallest first.
func SortedAscending(freqs counter.Frequencies) List {
	list := make(List, 0, len(freqs))
	for word, count := range freqs {
		list = append(list, Entry{Word: word, Count: count})
	}

	slices.SortFunc(list, func(a, b Entry) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})

	return list
}

// Max returns the entry with the greatest count.
// When several words share the maximum, which one is returned is unspecified.
func Max(freqs counter.Frequencies) (Entry, error) {
	if len(freqs) == 0 {
		return Entry{}, ErrNoData
	}

	var best Entry
	found := false
	for word, count := range freqs {
		if !found || count > best.Count {
			best = Entry{Word: word, Count: count}
			found = true
		}
	}

	return best, nil
}

// Search counts the tokens of text equal to word after both are normalized.
// It re-scans the raw text rather than consulting a precomputed map, so the
// result is independent of how the frequencies were built. A nil norm is Identity.
func Search(text, word string, norm counter.Normalizer) int {
	if norm == nil {
		norm = counter.Identity
	}

	target := norm(word)
	count := 0
	for _, token := range strings.Fields(text) {
		if norm(token) == target {
			count++
		}
	}

	slog.Debug("Search completed", "word", word, "count", count)
	return count
}

// TopN optionally reverses list, then keeps the first n entries.
// n <= 0 yields an empty list; n beyond the list length keeps every entry.
// The returned list never shares its backing array with the input.
func TopN(list List, n int, reverse bool) List {
	if n <= 0 {
		return List{}
	}

	out := slices.Clone(list)
	if out == nil {
		out = List{}
	}
	if reverse {
		slices.Reverse(out)
	}
	if n < len(out) {
		out = out[:n:n]
	}

	return out
}
