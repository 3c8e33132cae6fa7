package counter

import (
	"strings"
	"unicode/utf8"
)

// WordCounter counts whitespace-delimited words, the same tokens Count tallies.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return WordCounter{}
}

// Count returns the number of whitespace-delimited words in text.
func (WordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// Name returns "words".
func (WordCounter) Name() string {
	return "words"
}

// CharCounter counts Unicode characters (runes), not bytes.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return CharCounter{}
}

// Count returns the number of runes in text, whitespace included.
func (CharCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Name returns "characters".
func (CharCounter) Name() string {
	return "characters"
}
