// Package assertion holds the check record produced by a single
// named assertion and the pass/fail tally accumulated over a run.
package assertion
