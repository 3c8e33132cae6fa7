package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenEncoding is the tiktoken encoding used for summary statistics.
const tokenEncoding = "cl100k_base"

// TokenCounter counts BPE tokens with tiktoken's cl100k_base encoding.
// It reports how large the text would be as model input.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.Mutex
}

// NewTokenCounter loads the cl100k_base encoding.
func NewTokenCounter() (Counter, error) {
	encoding, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", tokenEncoding, err)
	}

	slog.Debug("Token encoding loaded", "encoding", tokenEncoding)
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	return len(tc.encoding.Encode(text, nil, nil))
}

// Name returns the counting method and its encoding.
func (tc *TokenCounter) Name() string {
	return "tokens (" + tokenEncoding + ")"
}
