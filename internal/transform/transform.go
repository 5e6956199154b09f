// Package transform shapes an in-memory Draft into the wire payload expected
// by the resume-rendering backend. Two incompatible payload shapes exist for
// historical reasons: the nested "rich" shape used by current backends and
// the flat comma-joined "legacy" shape. Each shape is a separate Builder and
// the two never share formatting rules.
package transform

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Format names for the two supported payload shapes.
const (
	FormatRich   = "rich"
	FormatLegacy = "legacy"
)

// Options carries the submission-time inputs that live outside the Draft.
type Options struct {
	// ImageURL is the already-resolved reference of the uploaded profile
	// image; empty when no image was provided.
	ImageURL string
	// Template is the backend template selector (A-J).
	Template string
}

// Builder converts a Draft into a JSON-serializable payload. Implementations
// are pure: no I/O, no clock, deterministic apart from the submission id.
type Builder interface {
	Build(d *types.Draft, opts Options) map[string]any
}

// New returns the Builder for the named format.
func New(format string) (Builder, error) {
	switch format {
	case FormatRich:
		return &Rich{}, nil
	case FormatLegacy:
		return &Legacy{}, nil
	default:
		return nil, &UnknownFormatError{Format: format}
	}
}

// UnknownFormatError indicates a payload format name that matches neither shape.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown payload format: %q (want %q or %q)", e.Format, FormatRich, FormatLegacy)
}

// providedExperiences applies the presence-of-intent filter: an experience
// counts as provided when its company or title is non-blank. This is also
// the rule behind the "number of jobs" count.
func providedExperiences(exps []types.Experience) []types.Experience {
	var out []types.Experience
	for _, exp := range exps {
		if exp.Provided() {
			out = append(out, exp)
		}
	}
	return out
}

// splitLines breaks a free-text blurb into its non-blank lines.
func splitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// backendLanguage maps the form's language selector to the name the backend
// expects in the rich request envelope.
func backendLanguage(uiLanguage string) string {
	if uiLanguage == types.LanguageBM {
		return "Bahasa Malaysia"
	}
	return "English"
}
