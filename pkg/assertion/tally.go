package assertion

// Tally counts passed and failed checks. The zero value is an
// empty tally. Passed+Failed always equals the number of results
// recorded.
type Tally struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Record increments the counter matching the result's outcome.
func (t *Tally) Record(r Result) {
	if r.Passed {
		t.Passed++
		return
	}
	t.Failed++
}

// Total returns the number of recorded checks.
func (t Tally) Total() int {
	return t.Passed + t.Failed
}

// AllPassed returns true when no recorded check failed.
func (t Tally) AllPassed() bool {
	return t.Failed == 0
}

// ExitCode maps the tally to a process exit status: 0 when
// every check passed, 1 otherwise.
func (t Tally) ExitCode() int {
	if t.Failed > 0 {
		return 1
	}
	return 0
}
