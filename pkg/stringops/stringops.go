package stringops

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// FindFirst returns the first element of words that starts with
// prefix. The match is case-sensitive and byte exact; an empty
// prefix matches the first element. The result is absent when
// words is empty or nothing matches.
func FindFirst(words []string, prefix string) Optional[string] {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return Some(w)
		}
	}
	return None[string]()
}

// CountLongerThan returns how many elements of words have a
// character length strictly greater than minLen.
func CountLongerThan(words []string, minLen int) int {
	count := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > minLen {
			count++
		}
	}
	return count
}

// SortByLength reorders words in place into non-decreasing
// character length. Elements of equal length keep their
// relative order.
func SortByLength(words []string) {
	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(
			utf8.RuneCountInString(a),
			utf8.RuneCountInString(b),
		)
	})
}

// JoinStrings concatenates words in order with delimiter between
// each adjacent pair.
func JoinStrings(words []string, delimiter string) string {
	return strings.Join(words, delimiter)
}
