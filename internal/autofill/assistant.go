// Package autofill enriches a resume Draft with a generated profile for a
// job title. A preference-ordered list of candidate models is probed with a
// trivial generation call; the first one that answers is cached for the rest
// of the session and re-probed only after it fails.
package autofill

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/repair"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultPreferredModels is the default probing order, best candidates first.
var DefaultPreferredModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemma-3-4b-it",
	"gemma-3-1b-it",
	"gemini-flash-latest",
}

// DefaultProbeLimit caps how many listed models are probed beyond the
// preferred ones before giving up.
const DefaultProbeLimit = 10

// ModelCache remembers the working model for the lifetime of an Assistant.
// It is injected by the caller so tests can start from a known state, and it
// is explicitly invalidated when the cached model stops answering.
type ModelCache struct {
	mu    sync.Mutex
	model string
}

// Get returns the cached model ID, or empty if none is cached.
func (c *ModelCache) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// Set records a working model ID.
func (c *ModelCache) Set(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Invalidate forgets the cached model so the next call re-probes.
func (c *ModelCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = ""
}

// Options tune the probing behavior of an Assistant.
type Options struct {
	// PreferredModels are probed first, in order. Defaults to
	// DefaultPreferredModels when empty.
	PreferredModels []string
	// ProbeLimit caps how many additional listed models are probed after
	// the preferred ones. Defaults to DefaultProbeLimit when zero.
	ProbeLimit int
}

// Assistant requests generated resume profiles from the model provider.
type Assistant struct {
	client     llm.Client
	cache      *ModelCache
	preferred  []string
	probeLimit int
}

// New creates an Assistant. The cache may be shared across calls to keep the
// probe-once behavior; pass a fresh cache for a clean slate.
func New(client llm.Client, cache *ModelCache, opts Options) *Assistant {
	if cache == nil {
		cache = &ModelCache{}
	}
	preferred := opts.PreferredModels
	if len(preferred) == 0 {
		preferred = DefaultPreferredModels
	}
	limit := opts.ProbeLimit
	if limit <= 0 {
		limit = DefaultProbeLimit
	}
	return &Assistant{
		client:     client,
		cache:      cache,
		preferred:  preferred,
		probeLimit: limit,
	}
}

// Generate requests a profile for the job title in the given form language.
// A blank job title fails fast with *MissingInputError before any network
// call. Provider exhaustion surfaces as *ProviderUnavailableError and an
// unparseable response as *MalformedResponseError.
func (a *Assistant) Generate(ctx context.Context, jobTitle, uiLanguage string) (*types.GeneratedProfile, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return nil, &MissingInputError{Field: "job title"}
	}

	model, err := a.workingModel(ctx)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(jobTitle, uiLanguage)
	text, err := a.client.GenerateJSON(ctx, model, prompt)
	if err != nil {
		// The cached choice went stale; re-probe once and retry.
		a.cache.Invalidate()
		model, probeErr := a.workingModel(ctx)
		if probeErr != nil {
			return nil, probeErr
		}
		text, err = a.client.GenerateJSON(ctx, model, prompt)
		if err != nil {
			return nil, &ProviderUnavailableError{Attempted: []string{model}, Cause: err}
		}
	}

	return parseProfile(text)
}

// workingModel returns the cached working model, probing for one if needed.
func (a *Assistant) workingModel(ctx context.Context) (string, error) {
	if model := a.cache.Get(); model != "" {
		return model, nil
	}

	var attempted []string
	var lastErr error

	for _, candidate := range a.candidates(ctx) {
		attempted = append(attempted, candidate)
		if _, err := a.client.Generate(ctx, candidate, probePrompt); err != nil {
			lastErr = err
			continue
		}
		a.cache.Set(candidate)
		return candidate, nil
	}

	return "", &ProviderUnavailableError{Attempted: attempted, Cause: lastErr}
}

// candidates returns the probing order: preferred models that the provider
// lists, then remaining listed models up to the probe limit, then the
// preferred list verbatim as a final fallback when listing itself failed.
func (a *Assistant) candidates(ctx context.Context) []string {
	listed, err := a.client.ListModelIDs(ctx)
	if err != nil || len(listed) == 0 {
		return a.preferred
	}

	available := make(map[string]bool, len(listed))
	for _, id := range listed {
		available[id] = true
	}

	var order []string
	seen := make(map[string]bool)
	for _, id := range a.preferred {
		if available[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, id := range listed {
		if len(order) >= len(a.preferred)+a.probeLimit {
			break
		}
		if !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	return order
}

// parseProfile repairs and decodes a provider response into a profile,
// truncating the skill lists. Partial profiles are rejected rather than
// guessed at.
func parseProfile(text string) (*types.GeneratedProfile, error) {
	raw, err := repair.Repair(text)
	if err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}

	var profile types.GeneratedProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	if !profile.Complete() {
		return nil, &MalformedResponseError{Cause: fmt.Errorf("response is missing required profile fields")}
	}

	profile.Truncate()
	return &profile, nil
}
