// Package submit talks to the resume-rendering backend.
package submit

import "fmt"

// UploadError represents a failed profile-image upload.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image upload error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("image upload error: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// SubmitError represents a failed resume submission.
type SubmitError struct {
	Message string
	Cause   error
}

func (e *SubmitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("submission error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("submission error: %s", e.Message)
}

func (e *SubmitError) Unwrap() error {
	return e.Cause
}
