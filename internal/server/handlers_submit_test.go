package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/transform"
)

// stubBackend records what the rendering backend received.
type stubBackend struct {
	uploadCalls  int
	uploadStatus int
	submitCalls  int
	lastPayload  map[string]any
}

func newStubBackend(t *testing.T) (*stubBackend, *httptest.Server) {
	t.Helper()
	stub := &stubBackend{uploadStatus: http.StatusOK}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/upload-image":
			stub.uploadCalls++
			if stub.uploadStatus != http.StatusOK {
				w.WriteHeader(stub.uploadStatus)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"success": true, "image_url": "/images/uploaded.png"}`)
		case "/create-resume":
			stub.submitCalls++
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &stub.lastPayload)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"success": true, "message": "Resume created", "pdf_path": "/output/resume.pdf", "html_path": "/output/resume.html"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return stub, ts
}

// readySession creates a session and gives its draft the required name.
func readySession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	id := createSession(t, ts)
	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/sessions/%s/draft/basics", ts.URL, id),
		map[string]string{"name": "Ada Lovelace"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return id
}

func TestHandleReview(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	id := readySession(t, ts)

	resp, err := http.Get(fmt.Sprintf("%s/sessions/%s/review", ts.URL, id))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ada Lovelace")
	assert.Contains(t, string(body), "BASIC INFORMATION")
}

func TestHandlePayloadPreview(t *testing.T) {
	t.Run("rich envelope", func(t *testing.T) {
		_, ts := newTestServer(t, Config{Template: "C"})
		id := readySession(t, ts)

		var payload map[string]any
		resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/sessions/%s/payload", ts.URL, id), nil, &payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, "C", payload["template"])
		resume, ok := payload["resume"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada Lovelace", resume["name"])
	})

	t.Run("legacy flat shape", func(t *testing.T) {
		_, ts := newTestServer(t, Config{PayloadFormat: transform.FormatLegacy})
		id := readySession(t, ts)

		var payload map[string]any
		resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/sessions/%s/payload", ts.URL, id), nil, &payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, "Ada Lovelace", payload["name"])
		assert.Equal(t, "No work experience", payload["experience"])
	})
}

func TestHandleSubmit(t *testing.T) {
	t.Run("submits and drops the session", func(t *testing.T) {
		stub, backend := newStubBackend(t)
		s, ts := newTestServer(t, Config{BackendURL: backend.URL})
		id := readySession(t, ts)

		var got SubmitResponse
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), nil, &got)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, got.Success)
		assert.Equal(t, "/output/resume.pdf", got.PDFPath)
		assert.Equal(t, 1, stub.submitCalls)
		assert.Equal(t, 0, stub.uploadCalls)

		resume, ok := stub.lastPayload["resume"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada Lovelace", resume["name"])

		assert.Equal(t, 0, s.sessions.Count())
	})

	t.Run("uploads the image first", func(t *testing.T) {
		stub, backend := newStubBackend(t)
		_, ts := newTestServer(t, Config{BackendURL: backend.URL})
		id := readySession(t, ts)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost,
			fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), &body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, stub.uploadCalls)

		resume, ok := stub.lastPayload["resume"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/images/uploaded.png", resume["image"])
	})

	t.Run("upload failure aborts the submission", func(t *testing.T) {
		stub, backend := newStubBackend(t)
		stub.uploadStatus = http.StatusInternalServerError
		s, ts := newTestServer(t, Config{BackendURL: backend.URL})
		id := readySession(t, ts)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost,
			fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), &body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, 0, stub.submitCalls)
		assert.Equal(t, 1, s.sessions.Count(), "session survives a failed submission")
	})

	t.Run("placeholder fallback when enabled", func(t *testing.T) {
		stub, backend := newStubBackend(t)
		stub.uploadStatus = http.StatusInternalServerError
		_, ts := newTestServer(t, Config{BackendURL: backend.URL, AllowImagePlaceholder: true})
		id := readySession(t, ts)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost,
			fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), &body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got SubmitResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.True(t, got.UsedPlaceholder)
		assert.Equal(t, 1, stub.submitCalls)
	})

	t.Run("unnamed draft fails validation", func(t *testing.T) {
		stub, backend := newStubBackend(t)
		_, ts := newTestServer(t, Config{BackendURL: backend.URL})
		id := createSession(t, ts)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), nil, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, 0, stub.submitCalls)
	})

	t.Run("backend rejection maps to 502", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"detail": "template engine crashed"}`)
		}))
		t.Cleanup(backend.Close)

		s, ts := newTestServer(t, Config{BackendURL: backend.URL})
		id := readySession(t, ts)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/submit", ts.URL, id), nil, nil)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, 1, s.sessions.Count())
	})
}
