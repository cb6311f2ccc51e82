package assertion

// Result captures the outcome of one named check. Detail is only
// meaningful when Passed is false.
type Result struct {
	// Name is the human-readable check name.
	Name string `json:"name"`

	// Passed indicates whether the check condition held.
	Passed bool `json:"passed"`

	// Detail explains the failure.
	Detail string `json:"detail,omitempty"`
}

// Check builds a Result from a condition. The detail is dropped
// when the condition holds.
func Check(name string, condition bool, detail string) Result {
	if condition {
		return Result{Name: name, Passed: true}
	}
	return Result{Name: name, Passed: false, Detail: detail}
}
