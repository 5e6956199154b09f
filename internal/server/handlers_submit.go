package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/review"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/transform"
)

// maxImageUpload caps the profile image size at 5 MB.
const maxImageUpload = 5 << 20

// SubmitResponse is the outcome of a successful submission.
type SubmitResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	PDFPath         string `json:"pdf_path,omitempty"`
	HTMLPath        string `json:"html_path,omitempty"`
	UsedPlaceholder bool   `json:"used_placeholder,omitempty"`
}

// handleReview renders the draft as the plain-text review screen.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	review.NewPresenter(w).PrintDraft(snapshot)
}

// handlePayloadPreview returns the payload exactly as submission would send
// it, without contacting the backend. The preview never includes an image
// reference since the image is only uploaded at submit time.
func (s *Server) handlePayloadPreview(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	payload := s.builder.Build(snapshot, transform.Options{Template: s.template})
	s.jsonResponse(w, http.StatusOK, payload)
}

// handleSubmit uploads the optional profile image, builds the payload and
// sends it to the backend. The session is dropped on success.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	imageURL, usedPlaceholder, ok := s.uploadImage(w, r, session)
	if !ok {
		return
	}

	session.mu.Lock()
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	if err := snapshot.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "draft is not ready to submit: "+err.Error())
		return
	}

	payload := s.builder.Build(snapshot, transform.Options{
		ImageURL: imageURL,
		Template: s.template,
	})

	if s.payloadFormat == transform.FormatRich {
		resume, _ := payload["resume"].(map[string]any)
		if err := schemas.ValidateResume(resume); err != nil {
			log.Printf("Built payload failed schema validation: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "built payload failed validation")
			return
		}
	}

	outcome, err := s.backend.Submit(r.Context(), payload)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.sessions.Delete(session.ID)

	s.jsonResponse(w, http.StatusOK, SubmitResponse{
		Success:         outcome.Success,
		Message:         outcome.Message,
		PDFPath:         outcome.PDFPath,
		HTMLPath:        outcome.HTMLPath,
		UsedPlaceholder: usedPlaceholder,
	})
}

// uploadImage handles the optional multipart "image" part of a submit
// request. Requests without a multipart body submit without an image.
// Returns ok=false after writing the error response.
func (s *Server) uploadImage(w http.ResponseWriter, r *http.Request, session *Session) (imageURL string, usedPlaceholder bool, ok bool) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return "", false, true
	}

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart body: "+err.Error())
		return "", false, false
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", false, true
	}
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return "", false, false
	}
	defer func() { _ = file.Close() }()

	result, err := s.backend.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", false, false
	}

	session.mu.Lock()
	session.Store.SetImagePath(header.Filename)
	session.mu.Unlock()

	if result.UsedPlaceholder {
		log.Printf("Image upload failed, submitting with placeholder %s", result.ImageURL)
	}

	return result.ImageURL, result.UsedPlaceholder, true
}
