// Package submit sequences the two network operations of a resume
// submission: the optional profile-image upload followed by the payload
// POST. The upload must finish before the payload is built, because the
// resolved image reference is an input to the transformer.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// Client talks to the resume-rendering backend.
type Client struct {
	baseURL string
	http    *http.Client

	// allowPlaceholder enables the documented degraded mode: when the
	// image upload fails, substitute a timestamped placeholder path and
	// carry on, recording the substitution on the outcome. Off by
	// default; a failed upload then aborts the submission.
	allowPlaceholder bool

	now func() time.Time
}

// Options configures the Client.
type Options struct {
	Timeout          time.Duration
	AllowPlaceholder bool
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:          baseURL,
		http:             &http.Client{Timeout: timeout},
		allowPlaceholder: opts.AllowPlaceholder,
		now:              time.Now,
	}
}

// UploadResult is the resolved image reference for a submission.
type UploadResult struct {
	// ImageURL is the reference returned by the backend, or the
	// placeholder path in degraded mode.
	ImageURL string
	// UsedPlaceholder reports that the upload failed and the placeholder
	// path was substituted. Never set silently: callers surface it.
	UsedPlaceholder bool
}

// uploadResponse mirrors the backend's upload-image response body.
type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}

// UploadImage sends the profile image and returns its resolved reference.
// On failure the error propagates unless placeholder mode is enabled.
func (c *Client) UploadImage(ctx context.Context, filename string, image io.Reader) (*UploadResult, error) {
	result, err := c.uploadImage(ctx, filename, image)
	if err == nil {
		return result, nil
	}
	if c.allowPlaceholder {
		return &UploadResult{
			ImageURL:        fmt.Sprintf("../images/%d.png", c.now().UnixMilli()),
			UsedPlaceholder: true,
		}, nil
	}
	return nil, err
}

func (c *Client) uploadImage(ctx context.Context, filename string, image io.Reader) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, &UploadError{Message: "failed to build multipart body", Cause: err}
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, &UploadError{Message: "failed to read image", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &UploadError{Message: "failed to finalize multipart body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-image", &body)
	if err != nil {
		return nil, &UploadError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UploadError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UploadError{Message: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &UploadError{Message: "failed to decode response", Cause: err}
	}
	if !decoded.Success || decoded.ImageURL == "" {
		return nil, &UploadError{Message: "backend reported upload failure"}
	}

	return &UploadResult{ImageURL: decoded.ImageURL}, nil
}

// Outcome is the backend's answer to a resume submission.
type Outcome struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	PDFPath  string `json:"pdf_path"`
	HTMLPath string `json:"html_path"`

	// UsedPlaceholder is carried over from the upload step so the caller
	// can tell the user the resume went out with a placeholder image.
	UsedPlaceholder bool `json:"used_placeholder,omitempty"`
}

// Submit POSTs the transformed payload to the backend. There is no
// automatic retry; a failed submission is re-triggered by the user.
func (c *Client) Submit(ctx context.Context, payload map[string]any) (*Outcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmitError{Message: "failed to encode payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-resume", bytes.NewReader(body))
	if err != nil {
		return nil, &SubmitError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &SubmitError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SubmitError{Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SubmitError{
			Message: fmt.Sprintf("backend returned status %d: %s", resp.StatusCode, backendDetail(raw)),
		}
	}

	var outcome Outcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return nil, &SubmitError{Message: "failed to decode response", Cause: err}
	}
	if !outcome.Success {
		return nil, &SubmitError{Message: fmt.Sprintf("backend rejected submission: %s", outcome.Message)}
	}

	return &outcome, nil
}

// backendDetail extracts the human-readable detail field from an error body,
// falling back to the raw text.
func backendDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return string(raw)
}
