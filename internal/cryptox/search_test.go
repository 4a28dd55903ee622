package cryptox

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSeq wraps candidates and records how many were pulled.
func countingSeq(candidates []string, pulled *int) func(func(string) bool) {
	return func(yield func(string) bool) {
		for _, c := range candidates {
			*pulled++
			if !yield(c) {
				return
			}
		}
	}
}

func TestSearch_StopsAtFirstMatch(t *testing.T) {
	target, err := HashWithSalt("alice", []byte("somesalt"), testParams())
	require.NoError(t, err)

	candidates := []string{"password", "demo", "alice", "alice", "bob"}
	var pulled int
	var attempts []Attempt

	found, ok := Search(target, countingSeq(candidates, &pulled), func(a Attempt) {
		attempts = append(attempts, a)
	})

	require.True(t, ok)
	assert.Equal(t, "alice", found)
	assert.Equal(t, 3, pulled, "no candidate after the first match may be pulled")
	require.Len(t, attempts, 3)
	assert.False(t, attempts[0].Matched)
	assert.False(t, attempts[1].Matched)
	assert.True(t, attempts[2].Matched)
	for _, a := range attempts {
		assert.NoError(t, a.Err)
	}
}

func TestSearch_NoMatchReportsEveryCandidate(t *testing.T) {
	candidates := []string{"not-it-1", "not-it-2", "not-it-3"}
	var attempts []Attempt

	found, ok := Search(DefaultTargetHash, slices.Values(candidates), func(a Attempt) {
		attempts = append(attempts, a)
	})

	assert.False(t, ok)
	assert.Empty(t, found)
	require.Len(t, attempts, len(candidates))
	for i, a := range attempts {
		assert.Equal(t, candidates[i], a.Candidate)
		assert.False(t, a.Matched)
		assert.NoError(t, a.Err)
	}
}

func TestSearch_MalformedHashIsReportedPerCandidate(t *testing.T) {
	var attempts []Attempt
	found, ok := Search("$argon2id$broken", slices.Values([]string{"a", "b"}), func(a Attempt) {
		attempts = append(attempts, a)
	})

	assert.False(t, ok)
	assert.Empty(t, found)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.ErrorIs(t, a.Err, ErrInvalidHash)
	}
}

func TestSearch_NilObserver(t *testing.T) {
	target, err := HashWithSalt("x", []byte("somesalt"), testParams())
	require.NoError(t, err)

	found, ok := Search(target, slices.Values([]string{"y", "x"}), nil)
	assert.True(t, ok)
	assert.Equal(t, "x", found)
}

func TestDefaultDictionary(t *testing.T) {
	d := DefaultDictionary()
	require.Len(t, d, 16)
	assert.Equal(t, "password", d[0])
	assert.Equal(t, "Test123!", d[len(d)-1])

	d[0] = "mutated"
	assert.Equal(t, "password", DefaultDictionary()[0])
}

func TestLines(t *testing.T) {
	r := strings.NewReader("alpha\n\n  beta  \r\ngamma\n")
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, slices.Collect(Lines(r)))
}

func TestLines_StopsEarly(t *testing.T) {
	r := strings.NewReader("a\nb\nc\n")
	var got []string
	for line := range Lines(r) {
		got = append(got, line)
		if line == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
