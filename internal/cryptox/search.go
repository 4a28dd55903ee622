package cryptox

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// DefaultTargetHash is the seed-data hash the dictionary search was first
// pointed at. Its salt is "somesalt".
const DefaultTargetHash = "$argon2id$v=19$m=19456,t=2,p=1$c29tZXNhbHQ$RdescudvJC1OeqEcglpmXw"

var defaultDictionary = []string{
	"password",
	"password123",
	"Password123!",
	"changeme",
	"ChangeMe123",
	"ChangeMe123!",
	"demo",
	"Demo123!",
	"alice",
	"Alice123!",
	"picshare",
	"PicShare123!",
	"welcome",
	"Welcome123!",
	"test",
	"Test123!",
}

// DefaultDictionary returns a copy of the built-in candidate list.
func DefaultDictionary() []string {
	out := make([]string, len(defaultDictionary))
	copy(out, defaultDictionary)
	return out
}

// Attempt is the result of checking one candidate against a target hash.
// Err is set when the hash itself could not be used; a plain mismatch has
// Matched == false and Err == nil.
type Attempt struct {
	Candidate string
	Matched   bool
	Err       error
}

// Search pulls candidates in order and verifies each against encoded,
// reporting every attempt to observe (which may be nil). It stops at the first
// match and returns it; later candidates are never pulled.
func Search(encoded string, candidates iter.Seq[string], observe func(Attempt)) (string, bool) {
	for candidate := range candidates {
		ok, err := Verify(encoded, candidate)
		if observe != nil {
			observe(Attempt{Candidate: candidate, Matched: ok, Err: err})
		}
		if ok {
			return candidate, true
		}
	}
	return "", false
}

// Lines yields the non-blank lines of r, trimmed, one at a time. Reading stops
// when the consumer stops or r is exhausted; read errors end the sequence.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
