// Package harness drives named checks against a line-oriented
// reporter, keeps the pass/fail tally for one run and turns it
// into a process exit status.
package harness

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"digital.vasic.stringops/pkg/assertion"
	"digital.vasic.stringops/pkg/logging"
	"digital.vasic.stringops/pkg/report"
)

// State is the lifecycle state of a Harness.
type State string

// Harness lifecycle states. A harness moves from StateRunning to
// StateDone exactly once, in Finish.
const (
	StateRunning State = "running"
	StateDone    State = "done"
)

// ErrFinished is returned by Check and Finish once the harness
// has already printed its summary.
var ErrFinished = errors.New("harness already finished")

// Harness records check outcomes for a single run. It is not
// safe for concurrent use.
type Harness struct {
	runID    string
	reporter report.Reporter
	logger   logging.Logger
	tally    assertion.Tally
	state    State
}

// New creates a running Harness. By default results go to
// stdout, diagnostics are discarded and the run ID is a fresh
// UUID.
func New(opts ...Option) *Harness {
	h := &Harness{
		reporter: report.NewConsoleReporter(nil),
		logger:   logging.NullLogger{},
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.runID == "" {
		h.runID = uuid.NewString()
	}
	h.logger = h.logger.WithFields(
		logging.StringField("run_id", h.runID),
	)
	h.logger.Debug("check run started")
	return h
}

// Check evaluates one named condition. It writes a single PASS
// or FAIL line and then counts the outcome. A write failure is
// returned but the outcome is still counted.
func (h *Harness) Check(
	name string,
	condition bool,
	detail string,
) error {
	if h.state == StateDone {
		return fmt.Errorf("check %q: %w", name, ErrFinished)
	}

	result := assertion.Check(name, condition, detail)
	err := h.reporter.WriteCheck(result)
	h.tally.Record(result)

	if !result.Passed {
		h.logger.Debug("check failed",
			logging.StringField("check", name),
			logging.StringField("detail", detail),
		)
	}
	return err
}

// Finish prints the run summary, moves the harness to StateDone
// and returns the exit status: 0 when no check failed, 1
// otherwise. Calling Finish twice returns ErrFinished.
func (h *Harness) Finish() (int, error) {
	if h.state == StateDone {
		return h.tally.ExitCode(), ErrFinished
	}
	h.state = StateDone

	err := h.reporter.WriteSummary(h.tally)

	fields := []logging.Field{
		logging.IntField("passed", h.tally.Passed),
		logging.IntField("failed", h.tally.Failed),
	}
	if h.tally.AllPassed() {
		h.logger.Info("check run finished", fields...)
	} else {
		h.logger.Warn("check run finished with failures", fields...)
	}

	return h.tally.ExitCode(), err
}

// Tally returns a copy of the current counters.
func (h *Harness) Tally() assertion.Tally {
	return h.tally
}

// State returns the current lifecycle state.
func (h *Harness) State() State {
	return h.state
}

// RunID returns the identifier attached to this run's log
// entries.
func (h *Harness) RunID() string {
	return h.runID
}
