package harness

import (
	"errors"
	"fmt"

	"digital.vasic.stringops/pkg/stringops"
)

// Ops is the set of string operations the scripted scenarios
// exercise.
type Ops interface {
	FindFirst(words []string, prefix string) stringops.Optional[string]
	CountLongerThan(words []string, minLen int) int
	SortByLength(words []string)
	JoinStrings(words []string, delimiter string) string
}

// DefaultOps delegates to package stringops.
type DefaultOps struct{}

// FindFirst calls stringops.FindFirst.
func (DefaultOps) FindFirst(
	words []string, prefix string,
) stringops.Optional[string] {
	return stringops.FindFirst(words, prefix)
}

// CountLongerThan calls stringops.CountLongerThan.
func (DefaultOps) CountLongerThan(words []string, minLen int) int {
	return stringops.CountLongerThan(words, minLen)
}

// SortByLength calls stringops.SortByLength.
func (DefaultOps) SortByLength(words []string) {
	stringops.SortByLength(words)
}

// JoinStrings calls stringops.JoinStrings.
func (DefaultOps) JoinStrings(words []string, delimiter string) string {
	return stringops.JoinStrings(words, delimiter)
}

// fruits returns a fresh copy of the shared fixture so no
// operation can observe another's writes.
func fruits() []string {
	return []string{
		"apple", "fig", "banana", "kiwi", "cherry", "plum", "date",
	}
}

// RunScenarios runs every scripted check against ops in a fixed
// order. A failing check never stops later ones; write errors
// are collected and returned together.
func RunScenarios(h *Harness, ops Ops) error {
	var errs []error
	check := func(name string, condition bool, detail string) {
		if err := h.Check(name, condition, detail); err != nil {
			errs = append(errs, err)
		}
	}

	runFindFirst(check, ops)
	runCountLongerThan(check, ops)
	runSortByLength(check, ops)
	runJoinStrings(check, ops)

	return errors.Join(errs...)
}

type checkFunc func(name string, condition bool, detail string)

func runFindFirst(check checkFunc, ops Ops) {
	found := ops.FindFirst(fruits(), "b")
	v, ok := found.Get()
	check("findFirst present", ok, "expected present result")
	check("findFirst value", ok && v == "banana",
		"expected banana, got "+found.OrElse("(empty)"))

	missing := ops.FindFirst(fruits(), "z")
	check("findFirst absent", !missing.IsPresent(),
		"expected absent result, got "+missing.OrElse(""))
}

func runCountLongerThan(check checkFunc, ops Ops) {
	cases := []struct {
		minLen int
		want   int
	}{
		{3, 6},
		{4, 3},
		{5, 2},
		{10, 0},
	}
	for _, c := range cases {
		got := ops.CountLongerThan(fruits(), c.minLen)
		check(
			fmt.Sprintf("countLongerThan %d", c.minLen),
			got == c.want,
			fmt.Sprintf("expected %d, got %d", c.want, got),
		)
	}
}

func runSortByLength(check checkFunc, ops Ops) {
	words := []string{"apple", "fig", "banana"}
	ops.SortByLength(words)

	positions := []string{"first", "second", "third"}
	want := []string{"fig", "apple", "banana"}
	for i, w := range want {
		var got string
		if i < len(words) {
			got = words[i]
		}
		check(
			"sortByLength "+positions[i],
			got == w,
			fmt.Sprintf("expected %s, got %s", w, got),
		)
	}
}

func runJoinStrings(check checkFunc, ops Ops) {
	cases := []struct {
		name      string
		words     []string
		delimiter string
		want      string
	}{
		{"joinStrings comma", []string{"a", "b", "c"}, ", ", "a, b, c"},
		{"joinStrings single", []string{"hello"}, "-", "hello"},
		{"joinStrings two", []string{"foo", "bar"}, " | ", "foo | bar"},
	}
	for _, c := range cases {
		got := ops.JoinStrings(c.words, c.delimiter)
		check(
			c.name,
			got == c.want,
			fmt.Sprintf("expected '%s', got '%s'", c.want, got),
		)
	}
}
