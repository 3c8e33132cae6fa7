// Package counter provides text counting functionality for the wordfreq CLI tool.
//
// The central operation is Count, which tallies every whitespace-delimited word
// of a text into a Frequencies map. Words are taken exactly as they appear:
// "Two" and "two." are different words unless a Normalizer says otherwise.
//
// Usage Example:
//
//	freqs := counter.Count("one one two")
//	// freqs["one"] == 2, freqs["two"] == 1
//
// The package also keeps unit counters (words, characters, and tiktoken tokens)
// behind the Counter interface; these back the summary statistics.
package counter

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens CountingMethod = iota
	// Words counts words using whitespace splitting
	Words
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Tokens:
		return NewTokenCounter()
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	default:
		return NewWordCounter(), nil
	}
}
