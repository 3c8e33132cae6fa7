package counter

import (
	"log/slog"
	"strings"
)

// Frequencies maps each word to the number of times it occurs.
// A Frequencies value is built once by Count and treated as read-only afterwards.
type Frequencies map[string]int

// Total returns the sum of all counts, which equals the number of
// whitespace-delimited tokens the map was built from.
func (f Frequencies) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Unique returns the number of distinct words.
func (f Frequencies) Unique() int {
	return len(f)
}

// Count splits text on runs of Unicode whitespace and tallies each token
// exactly as it appears. Empty text yields an empty, non-nil map.
func Count(text string) Frequencies {
	return CountWith(text, Identity)
}

// CountWith behaves like Count but keys each token by norm(token).
// A nil norm is treated as Identity.
func CountWith(text string, norm Normalizer) Frequencies {
	if norm == nil {
		norm = Identity
	}

	freqs := make(Frequencies)
	for _, token := range strings.Fields(text) {
		freqs[norm(token)]++
	}

	slog.Debug("Word frequencies calculated", "textLength", len(text), "uniqueWords", len(freqs))
	return freqs
}
