package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// AutofillRequest asks the assistant to draft profile fields for a job title.
type AutofillRequest struct {
	JobTitle string `json:"job_title"`
}

// AutofillResponse carries the generated profile and the draft it was
// merged into.
type AutofillResponse struct {
	SessionID string                  `json:"session_id"`
	Profile   *types.GeneratedProfile `json:"profile"`
	Draft     *types.Draft            `json:"draft"`
}

// handleAutofill generates about-me, skills and strengths for the session's
// target job title and merges them into the draft.
func (s *Server) handleAutofill(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "auto-fill is not configured")
		return
	}

	if allowed, info := s.rateLimiter.Allow(s.extractClientID(r)); !allowed {
		s.rateLimitResponse(w, info)
		return
	}

	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req AutofillRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	session.mu.Lock()
	uiLanguage := session.Store.Snapshot().UILanguage
	session.mu.Unlock()

	// The model call runs outside the session lock; only the merge below
	// needs it.
	profile, err := s.generator.Generate(r.Context(), req.JobTitle, uiLanguage)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	session.mu.Lock()
	session.Store.ApplyProfile(*profile)
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, AutofillResponse{
		SessionID: session.ID,
		Profile:   profile,
		Draft:     snapshot,
	})
}
