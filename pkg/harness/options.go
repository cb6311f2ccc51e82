package harness

import (
	"digital.vasic.stringops/pkg/logging"
	"digital.vasic.stringops/pkg/report"
)

// Option configures a Harness.
type Option func(*Harness)

// WithReporter sets the sink that check lines and the summary
// are written to.
func WithReporter(r report.Reporter) Option {
	return func(h *Harness) {
		h.reporter = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(h *Harness) {
		h.runID = id
	}
}
