// Package report renders check results and the closing run
// summary for the stringops-check harness.
package report

import (
	"fmt"

	"digital.vasic.stringops/pkg/assertion"
)

// Reporter defines the line-oriented sink that check outcomes and
// the final summary are written to.
type Reporter interface {
	// WriteCheck emits the single line for one check result.
	WriteCheck(result assertion.Result) error

	// WriteSummary emits the closing summary for a run.
	WriteSummary(tally assertion.Tally) error
}

// FormatCheck renders a check result as "[PASS] <name>" or
// "[FAIL] <name>: <detail>", without a trailing newline.
func FormatCheck(result assertion.Result) string {
	if result.Passed {
		return "[PASS] " + result.Name
	}
	return fmt.Sprintf("[FAIL] %s: %s", result.Name, result.Detail)
}

// FormatSummary renders the summary line for a tally.
func FormatSummary(tally assertion.Tally) string {
	return fmt.Sprintf(
		"Results: %d/%d tests passed",
		tally.Passed, tally.Total(),
	)
}
