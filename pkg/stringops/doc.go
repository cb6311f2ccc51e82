// Package stringops implements the small set of operations over
// ordered string sequences that the stringops-check harness
// exercises: prefix lookup, length counting, stable length
// ordering and delimiter joining.
//
// All functions except SortByLength are pure. SortByLength
// reorders the caller's slice in place.
package stringops
