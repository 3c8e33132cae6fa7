package counter

import (
	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
)

// Normalizer maps a raw token to the key it is counted under.
type Normalizer func(token string) string

// Identity keeps tokens unchanged; this is the default, case-sensitive behavior.
func Identity(token string) string {
	return token
}

// FoldCase applies Unicode case folding so "Two" and "two" share a key.
// A cases.Caser keeps state between calls, so a fresh one is built per token.
func FoldCase(token string) string {
	return cases.Fold().String(token)
}

// Stem reduces a token to its English Snowball stem ("running" -> "run").
// The stemmer lowercases its input; if stemming fails the token is returned as-is.
func Stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}

// Chain composes normalizers, applying them left to right.
// Nil entries are skipped; an empty chain is Identity.
func Chain(norms ...Normalizer) Normalizer {
	var active []Normalizer
	for _, n := range norms {
		if n != nil {
			active = append(active, n)
		}
	}

	switch len(active) {
	case 0:
		return Identity
	case 1:
		return active[0]
	}

	return func(token string) string {
		for _, n := range active {
			token = n(token)
		}
		return token
	}
}
