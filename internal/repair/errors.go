// Package repair provides best-effort recovery of JSON from generative-model output.
package repair

import "fmt"

// UnrepairableError indicates model output that could not be coerced into
// valid JSON after one repair attempt.
type UnrepairableError struct {
	Input  string
	Reason string
}

func (e *UnrepairableError) Error() string {
	return fmt.Sprintf("unrepairable model output: %s", e.Reason)
}
