package match

import "errors"

// ErrEmptyPattern is returned when constructing a StringMatcher from an
// empty pattern. An empty pattern has no well-defined containment
// semantics for a boolean query, so we refuse it up front instead of
// picking "always matches" silently.
var ErrEmptyPattern = errors.New("match: empty pattern")

// StringMatcher tests whether a fixed pattern occurs as a contiguous
// substring of arbitrary text, using the Knuth-Morris-Pratt algorithm.
//
// The failure table is computed once at construction and shared by every
// subsequent Contains call, so a matcher is cheap to reuse. A matcher is
// immutable after construction and safe for concurrent use.
type StringMatcher struct {
	pattern string
	// failure[i] is the length of the longest proper prefix of
	// pattern[:i+1] that is also a suffix of it.
	failure []int
}

// NewStringMatcher precomputes the KMP failure table for pattern.
// Returns ErrEmptyPattern if pattern is empty.
func NewStringMatcher(pattern string) (*StringMatcher, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	failure := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}

	return &StringMatcher{pattern: pattern, failure: failure}, nil
}

// Pattern returns the pattern this matcher was built for.
func (m *StringMatcher) Pattern() string {
	return m.pattern
}

// Contains reports whether the pattern occurs in text. It scans text
// left to right, maintaining the length of the currently matched prefix;
// on a mismatch it falls back through the failure table rather than
// restarting from the next text position, so the scan is
// O(len(pattern) + len(text)). Comparison is byte-exact: no case
// folding, no normalization.
func (m *StringMatcher) Contains(text string) bool {
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != m.pattern[k] {
			k = m.failure[k-1]
		}
		if text[i] == m.pattern[k] {
			k++
		}
		if k == len(m.pattern) {
			return true
		}
	}
	return false
}
