// Command stringops-check runs the scripted string operation
// checks, prints one PASS/FAIL line per check plus a summary on
// stdout, and exits non-zero when any check fails.
package main

import (
	"io"
	"os"

	"digital.vasic.stringops/pkg/harness"
	"digital.vasic.stringops/pkg/logging"
	"digital.vasic.stringops/pkg/report"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	logger := logging.NewConsoleLogger(stderr, false)
	defer logger.Close()

	h := harness.New(
		harness.WithReporter(report.NewConsoleReporter(stdout)),
		harness.WithLogger(logger),
	)

	if err := harness.RunScenarios(h, harness.DefaultOps{}); err != nil {
		logger.Error("writing check results", logging.ErrorField(err))
	}

	code, err := h.Finish()
	if err != nil {
		logger.Error("writing summary", logging.ErrorField(err))
		return 1
	}
	return code
}
