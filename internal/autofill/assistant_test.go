package autofill

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
  "aboutMe": "Experienced engineer.",
  "technicalSkills": [
    {"skill": "Go", "percentage": 85},
    {"skill": "Rust", "percentage": 80}
  ],
  "softSkills": [
    {"skill": "Communication", "percentage": 90},
    {"skill": "Teamwork", "percentage": 85}
  ],
  "strengths": "Focused and dependable."
}`

// fakeClient implements llm.Client for tests.
type fakeClient struct {
	listed   []string
	listErr  error
	broken   map[string]bool // models whose Generate calls fail
	response string
	jsonErr  error

	probes    []string
	jsonCalls int
}

func (f *fakeClient) Generate(_ context.Context, model, _ string) (string, error) {
	f.probes = append(f.probes, model)
	if f.broken[model] {
		return "", fmt.Errorf("429: quota exceeded for %s", model)
	}
	return "ok", nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, model, _ string) (string, error) {
	f.jsonCalls++
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	if f.broken[model] {
		return "", fmt.Errorf("model %s unavailable", model)
	}
	return f.response, nil
}

func (f *fakeClient) ListModelIDs(_ context.Context) ([]string, error) {
	return f.listed, f.listErr
}

func (f *fakeClient) Close() error { return nil }

func TestGenerate_BlankJobTitleFailsFast(t *testing.T) {
	client := &fakeClient{}
	a := New(client, &ModelCache{}, Options{})

	_, err := a.Generate(t.Context(), "   ", types.LanguageEnglish)

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, client.probes, "no network call may happen for a blank job title")
	assert.Zero(t, client.jsonCalls)
}

func TestGenerate_ProbesPreferredOrderAndCaches(t *testing.T) {
	client := &fakeClient{
		listed:   []string{"gemini-2.0-flash", "gemini-2.5-flash", "text-weird"},
		broken:   map[string]bool{"gemini-2.5-flash": true},
		response: validProfileJSON,
	}
	cache := &ModelCache{}
	a := New(client, cache, Options{})

	profile, err := a.Generate(t.Context(), "Software Engineer", types.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, profile)

	// Preferred order: 2.5-flash first (fails), then 2.0-flash (works).
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.0-flash"}, client.probes)
	assert.Equal(t, "gemini-2.0-flash", cache.Get())

	// A second call reuses the cached model without probing again.
	_, err = a.Generate(t.Context(), "Data Analyst", types.LanguageEnglish)
	require.NoError(t, err)
	assert.Len(t, client.probes, 2)
}

func TestGenerate_AllModelsBroken(t *testing.T) {
	broken := map[string]bool{}
	for _, id := range DefaultPreferredModels {
		broken[id] = true
	}
	client := &fakeClient{
		listErr: fmt.Errorf("list failed"),
		broken:  broken,
	}
	a := New(client, &ModelCache{}, Options{})

	_, err := a.Generate(t.Context(), "Engineer", types.LanguageEnglish)

	var unavailable *ProviderUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, DefaultPreferredModels, unavailable.Attempted)
}

func TestGenerate_StaleCacheReprobed(t *testing.T) {
	client := &fakeClient{
		listed:   []string{"gemini-2.5-flash", "gemini-2.0-flash"},
		broken:   map[string]bool{"gemini-2.5-flash": true},
		response: validProfileJSON,
	}
	cache := &ModelCache{}
	cache.Set("gemini-2.5-flash") // cached earlier, now failing
	a := New(client, cache, Options{})

	profile, err := a.Generate(t.Context(), "Engineer", types.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "gemini-2.0-flash", cache.Get())
}

func TestGenerate_TruncatesSkillsToFour(t *testing.T) {
	response := `{
  "aboutMe": "About.",
  "technicalSkills": [
    {"skill": "A", "percentage": 10},
    {"skill": "B", "percentage": 20},
    {"skill": "C", "percentage": 30},
    {"skill": "D", "percentage": 40},
    {"skill": "E", "percentage": 50},
    {"skill": "F", "percentage": 60}
  ],
  "softSkills": [{"skill": "Communication", "percentage": 85}],
  "strengths": "Strong."
}`
	client := &fakeClient{listed: []string{"gemini-2.5-flash"}, response: response}
	a := New(client, &ModelCache{}, Options{})

	profile, err := a.Generate(t.Context(), "Engineer", types.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, profile.TechnicalSkills, 4)
	assert.Equal(t, "D", profile.TechnicalSkills[3].Skill)
}

func TestGenerate_RepairsFencedUnbalancedResponse(t *testing.T) {
	fenced := "```json\n" + `{
  "aboutMe": "About.",
  "technicalSkills": [{"skill": "Go", "percentage": 80}],
  "softSkills": [{"skill": "Teamwork", "percentage": 85}],
  "strengths": "Strong."` + "\n```" // closing brace lost to truncation
	client := &fakeClient{listed: []string{"gemini-2.5-flash"}, response: fenced}
	a := New(client, &ModelCache{}, Options{})

	profile, err := a.Generate(t.Context(), "Engineer", types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "About.", profile.AboutMe)
}

func TestGenerate_MalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "not JSON at all",
			response: "I am unable to help with that.",
		},
		{
			name:     "missing required fields",
			response: `{"aboutMe": "hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{listed: []string{"gemini-2.5-flash"}, response: tt.response}
			a := New(client, &ModelCache{}, Options{})

			_, err := a.Generate(t.Context(), "Engineer", types.LanguageEnglish)

			var malformed *MalformedResponseError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestBuildPrompt_LanguageVariants(t *testing.T) {
	english := buildPrompt("Civil Engineer", types.LanguageEnglish)
	assert.Contains(t, english, "Civil Engineer")
	assert.Contains(t, english, "professional resume writer")

	bm := buildPrompt("Jurutera Awam", types.LanguageBM)
	assert.Contains(t, bm, "Jurutera Awam")
	assert.Contains(t, bm, "penulis resume profesional")
}
