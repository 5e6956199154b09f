// Package autofill enriches a resume Draft with a generated profile for a job title.
package autofill

import "fmt"

// MissingInputError indicates a blank required input; no network call is
// made when it is returned.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("auto-fill requires a non-blank %s", e.Field)
}

// ProviderUnavailableError indicates that no usable model could be reached
// after the full probing sequence.
type ProviderUnavailableError struct {
	Attempted []string
	Cause     error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no working model found after trying %d candidates: %v", len(e.Attempted), e.Cause)
	}
	return fmt.Sprintf("no working model found after trying %d candidates", len(e.Attempted))
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates a provider response that did not parse as
// the expected profile shape even after repair.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("provider returned a malformed profile: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
