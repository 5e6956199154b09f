package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/autofill"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestHandleAutofill(t *testing.T) {
	profile := &types.GeneratedProfile{
		AboutMe:         "Engineer with a focus on reliability.",
		TechnicalSkills: []types.Skill{{Skill: "Go", Percentage: 85}},
		SoftSkills:      []types.Skill{{Skill: "Communication", Percentage: 80}},
		Strengths:       "Debugging\nMentoring",
	}

	t.Run("merges the generated profile into the draft", func(t *testing.T) {
		generator := &fakeGenerator{profile: profile}
		_, ts := newTestServer(t, Config{Generator: generator})
		id := createSession(t, ts)

		var got AutofillResponse
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id),
			AutofillRequest{JobTitle: "Site Reliability Engineer"}, &got)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Site Reliability Engineer", generator.gotTitle)
		assert.Equal(t, types.LanguageEnglish, generator.gotLanguage)
		assert.Equal(t, profile.AboutMe, got.Draft.About)
		assert.Equal(t, profile.TechnicalSkills, got.Draft.TechnicalSkills)
		assert.Equal(t, profile.Strengths, got.Draft.Strength)
	})

	t.Run("uses the session's UI language", func(t *testing.T) {
		generator := &fakeGenerator{profile: profile}
		_, ts := newTestServer(t, Config{Generator: generator})
		id := createSession(t, ts)

		doJSON(t, http.MethodPut, fmt.Sprintf("%s/sessions/%s/draft/basics", ts.URL, id),
			map[string]string{"name": "Ada", "ui_language": types.LanguageBM}, nil)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id),
			AutofillRequest{JobTitle: "Jurutera Perisian"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, types.LanguageBM, generator.gotLanguage)
	})

	t.Run("missing job title maps to 400", func(t *testing.T) {
		generator := &fakeGenerator{err: &autofill.MissingInputError{Field: "job title"}}
		_, ts := newTestServer(t, Config{Generator: generator})
		id := createSession(t, ts)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id),
			AutofillRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no working model maps to 503", func(t *testing.T) {
		generator := &fakeGenerator{err: &autofill.ProviderUnavailableError{Attempted: []string{"gemini-2.5-flash"}}}
		_, ts := newTestServer(t, Config{Generator: generator})
		id := createSession(t, ts)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id),
			AutofillRequest{JobTitle: "Engineer"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("not configured", func(t *testing.T) {
		_, ts := newTestServer(t, Config{})
		id := createSession(t, ts)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id),
			AutofillRequest{JobTitle: "Engineer"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("rate limited after repeated calls", func(t *testing.T) {
		generator := &fakeGenerator{profile: profile}
		s, ts := newTestServer(t, Config{Generator: generator})
		id := createSession(t, ts)

		url := fmt.Sprintf("%s/sessions/%s/autofill", ts.URL, id)
		body := AutofillRequest{JobTitle: "Engineer"}

		var lastStatus int
		for i := 0; i < 15; i++ {
			resp := doJSON(t, http.MethodPost, url, body, nil)
			lastStatus = resp.StatusCode
		}
		assert.Equal(t, http.StatusTooManyRequests, lastStatus)
		assert.Less(t, generator.calls, 15)
		assert.Equal(t, 1, s.sessions.Count())
	})
}
