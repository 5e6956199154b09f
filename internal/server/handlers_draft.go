package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/types"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	CreatedAt string       `json:"created_at"`
	Draft     *types.Draft `json:"draft"`
}

// DraftResponse wraps a draft snapshot.
type DraftResponse struct {
	SessionID string       `json:"session_id"`
	Draft     *types.Draft `json:"draft"`
}

// textEntry is the request body for string-valued collections
// (certifications, achievements).
type textEntry struct {
	Text string `json:"text"`
}

// handleCreateSession starts a new editing session with a fresh draft.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	session := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Draft:     session.Store.Snapshot(),
	})
}

// handleDeleteSession discards a session and its draft.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Get(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleGetDraft returns the current draft snapshot.
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, DraftResponse{SessionID: session.ID, Draft: snapshot})
}

// handleUpdateBasics overwrites the draft's directly-set fields.
func (s *Server) handleUpdateBasics(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var basics draft.Basics
	if err := json.NewDecoder(r.Body).Decode(&basics); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if basics.UILanguage != "" &&
		basics.UILanguage != types.LanguageEnglish && basics.UILanguage != types.LanguageBM {
		verr := &ErrValidation{Field: "ui_language", Message: "must be English or BM"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	session.mu.Lock()
	session.Store.ApplyBasics(basics)
	snapshot := session.Store.Snapshot()
	session.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, DraftResponse{SessionID: session.ID, Draft: snapshot})
}

// handleAddEntry appends a blank entry to the named collection.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch r.PathValue("collection") {
	case draft.CollectionLanguages:
		session.Store.AddLanguage()
	case draft.CollectionExperiences:
		session.Store.AddExperience()
	case draft.CollectionTechnicalSkills:
		session.Store.AddTechnicalSkill()
	case draft.CollectionSoftSkills:
		session.Store.AddSoftSkill()
	case draft.CollectionCertifications:
		session.Store.AddCertification()
	case draft.CollectionAchievements:
		session.Store.AddAchievement()
	case draft.CollectionActivities:
		session.Store.AddActivity()
	default:
		verr := &ErrValidation{Field: "collection", Message: "unknown collection " + r.PathValue("collection")}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, DraftResponse{SessionID: session.ID, Draft: session.Store.Snapshot()})
}

// handleUpdateEntry replaces the entry at {index} in the named collection.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index: "+r.PathValue("index"))
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch collection := r.PathValue("collection"); collection {
	case draft.CollectionLanguages:
		var entry types.LanguageProficiency
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateLanguage(index, entry)
	case draft.CollectionExperiences:
		var entry types.Experience
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateExperience(index, entry)
	case draft.CollectionTechnicalSkills:
		var entry types.Skill
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateTechnicalSkill(index, entry)
	case draft.CollectionSoftSkills:
		var entry types.Skill
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateSoftSkill(index, entry)
	case draft.CollectionCertifications:
		var entry textEntry
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateCertification(index, entry.Text)
	case draft.CollectionAchievements:
		var entry textEntry
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateAchievement(index, entry.Text)
	case draft.CollectionActivities:
		var entry types.ExtracurricularActivity
		if !s.decodeBody(w, r, &entry) {
			return
		}
		err = session.Store.UpdateActivity(index, entry)
	default:
		err = &ErrValidation{Field: "collection", Message: "unknown collection " + collection}
	}

	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, DraftResponse{SessionID: session.ID, Draft: session.Store.Snapshot()})
}

// handleRemoveEntry deletes the entry at {index} in the named collection.
// The last remaining entry of a collection cannot be removed.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index: "+r.PathValue("index"))
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch collection := r.PathValue("collection"); collection {
	case draft.CollectionLanguages:
		err = session.Store.RemoveLanguage(index)
	case draft.CollectionExperiences:
		err = session.Store.RemoveExperience(index)
	case draft.CollectionTechnicalSkills:
		err = session.Store.RemoveTechnicalSkill(index)
	case draft.CollectionSoftSkills:
		err = session.Store.RemoveSoftSkill(index)
	case draft.CollectionCertifications:
		err = session.Store.RemoveCertification(index)
	case draft.CollectionAchievements:
		err = session.Store.RemoveAchievement(index)
	case draft.CollectionActivities:
		err = session.Store.RemoveActivity(index)
	default:
		err = &ErrValidation{Field: "collection", Message: "unknown collection " + collection}
	}

	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, DraftResponse{SessionID: session.ID, Draft: session.Store.Snapshot()})
}

// decodeBody decodes a JSON request body, writing the 400 itself on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
