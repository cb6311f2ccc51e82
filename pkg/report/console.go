package report

import (
	"fmt"
	"io"
	"os"

	"digital.vasic.stringops/pkg/assertion"
)

// ConsoleReporter writes plain check and summary lines to an
// io.Writer, stdout by default.
type ConsoleReporter struct {
	output io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w. A
// nil writer selects os.Stdout.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{output: w}
}

// WriteCheck writes one check line.
func (c *ConsoleReporter) WriteCheck(
	result assertion.Result,
) error {
	if _, err := fmt.Fprintln(
		c.output, FormatCheck(result),
	); err != nil {
		return fmt.Errorf("write check %q: %w", result.Name, err)
	}
	return nil
}

// WriteSummary writes a blank separator line followed by the
// summary line.
func (c *ConsoleReporter) WriteSummary(
	tally assertion.Tally,
) error {
	if _, err := fmt.Fprintf(
		c.output, "\n%s\n", FormatSummary(tally),
	); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
