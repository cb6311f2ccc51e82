package stringops

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruits() []string {
	return []string{
		"apple", "fig", "banana", "kiwi", "cherry", "plum", "date",
	}
}

func TestFindFirst(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		prefix  string
		want    string
		present bool
	}{
		{"match", fruits(), "b", "banana", true},
		{"no match", fruits(), "z", "", false},
		{"first of several", fruits(), "d", "date", true},
		{"earliest wins", []string{"ab", "abc", "a"}, "a", "ab", true},
		{"empty prefix", fruits(), "", "apple", true},
		{"case sensitive", fruits(), "B", "", false},
		{"whole word", fruits(), "kiwi", "kiwi", true},
		{"prefix longer than word", fruits(), "figs", "", false},
		{"empty input", nil, "a", "", false},
		{"empty element matches empty prefix", []string{""}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindFirst(tt.words, tt.prefix)
			v, ok := got.Get()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestFindFirst_DoesNotMutate(t *testing.T) {
	words := fruits()
	FindFirst(words, "c")
	assert.Equal(t, fruits(), words)
}

func TestFindFirst_ResultIsEarliestMatch(t *testing.T) {
	words := fruits()
	for _, prefix := range []string{"", "a", "b", "c", "k", "p", "x"} {
		got, ok := FindFirst(words, prefix).Get()
		idx := slices.IndexFunc(words, func(w string) bool {
			return strings.HasPrefix(w, prefix)
		})
		if idx < 0 {
			assert.False(t, ok, prefix)
			continue
		}
		require.True(t, ok, prefix)
		assert.Equal(t, words[idx], got, prefix)
	}
}

func TestCountLongerThan(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		minLen int
		want   int
	}{
		{"threshold 3", fruits(), 3, 6},
		{"threshold 4", fruits(), 4, 3},
		{"threshold 5", fruits(), 5, 2},
		{"threshold 10", fruits(), 10, 0},
		{"threshold 0", fruits(), 0, 7},
		{"negative threshold", []string{"", "a"}, -1, 2},
		{"empty input", nil, 0, 0},
		{"multibyte counts runes", []string{"héllo", "日本"}, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.want, CountLongerThan(tt.words, tt.minLen),
			)
		})
	}
}

func TestCountLongerThan_NonIncreasing(t *testing.T) {
	words := fruits()
	prev := CountLongerThan(words, -2)
	for threshold := -1; threshold <= 8; threshold++ {
		cur := CountLongerThan(words, threshold)
		assert.LessOrEqual(t, cur, prev, "threshold %d", threshold)
		prev = cur
	}
}

func TestSortByLength(t *testing.T) {
	words := []string{"apple", "fig", "banana"}
	SortByLength(words)
	assert.Equal(t, []string{"fig", "apple", "banana"}, words)
}

func TestSortByLength_Stable(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"equal pair", []string{"ab", "cd"}, []string{"ab", "cd"}},
		{
			"mixed ties",
			[]string{"kiwi", "fig", "plum", "ab", "date", "yo"},
			[]string{"ab", "yo", "fig", "kiwi", "plum", "date"},
		},
		{"empty", []string{}, []string{}},
		{"single", []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortByLength(tt.words)
			assert.Equal(t, tt.want, tt.words)
		})
	}
}

func TestSortByLength_IdempotentPermutation(t *testing.T) {
	words := fruits()
	SortByLength(words)
	once := slices.Clone(words)
	SortByLength(words)

	assert.Equal(t, once, words)
	assert.ElementsMatch(t, fruits(), words)
	assert.Equal(t,
		[]string{
			"fig", "kiwi", "plum", "date", "apple", "banana", "cherry",
		},
		words,
	)
}

func TestJoinStrings(t *testing.T) {
	tests := []struct {
		name      string
		words     []string
		delimiter string
		want      string
	}{
		{"comma", []string{"a", "b", "c"}, ", ", "a, b, c"},
		{"single", []string{"hello"}, "-", "hello"},
		{"two", []string{"foo", "bar"}, " | ", "foo | bar"},
		{"empty input", nil, ", ", ""},
		{"empty delimiter", []string{"a", "b"}, "", "ab"},
		{"empty elements", []string{"", ""}, "-", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.want, JoinStrings(tt.words, tt.delimiter),
			)
		})
	}
}

func TestJoinStrings_SplitRoundTrip(t *testing.T) {
	words := fruits()
	joined := JoinStrings(words, ";")
	assert.Equal(t, words, strings.Split(joined, ";"))
}
