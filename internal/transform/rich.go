package transform

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Rich builds the nested payload shape: `{resume, template, language}` with
// structured sub-records. This is the format current backends consume and
// the one validated against the resume schema before submission.
type Rich struct{}

// Build produces the rich payload for a Draft.
//
// The "adress" key is a contractual misspelling inherited from the backend
// schema; it must not be corrected.
func (b *Rich) Build(d *types.Draft, opts Options) map[string]any {
	experiences := providedExperiences(d.Experiences)

	resume := map[string]any{
		// Display/debug token with no uniqueness guarantee.
		"id":        strconv.Itoa(rand.IntN(10000)),
		"name":      d.Name,
		"title":     d.Title,
		"image":     opts.ImageURL,
		"adress":    d.Address,
		"email":     d.Email,
		"telephone": d.Telephone,
		"linkedin":  d.LinkedIn,
		"about":     d.About,
		"location":  d.Location,

		"language":       richLanguages(d.Languages),
		"experience":     richExperiences(experiences),
		"number of jobs": len(experiences),
		"education":      richEducation(d.Education),
		"strength":       splitLines(d.Strength),
		"reference":      richReference(d.Reference),
		"skills": map[string]any{
			"technical skills": skillMap(d.TechnicalSkills),
			"soft skills":      skillMap(d.SoftSkills),
		},
		"certification":              richCertifications(d.Certifications),
		"achievement":                providedStrings(d.Achievements),
		"extracurricular activities": richActivities(d.ExtracurricularActivities),
	}

	return map[string]any{
		"resume":   resume,
		"template": opts.Template,
		"language": backendLanguage(d.UILanguage),
	}
}

// richLanguages emits an ordered sequence of single-key mappings,
// `{languageName: proficiency}`, not objects with two named fields.
func richLanguages(langs []types.LanguageProficiency) []map[string]string {
	out := []map[string]string{}
	for _, l := range langs {
		if l.Provided() {
			out = append(out, map[string]string{strings.TrimSpace(l.Language): l.Proficiency})
		}
	}
	return out
}

func richExperiences(exps []types.Experience) []map[string]any {
	out := []map[string]any{}
	for _, exp := range exps {
		out = append(out, map[string]any{
			"company":  exp.Company,
			"title":    exp.Title,
			"location": exp.Location,
			"duration": exp.Duration,
			"details":  splitLines(exp.Details),
		})
	}
	return out
}

// richEducation wraps the education singleton in a zero- or one-element
// sequence. The backend names degree "level" and expects the CGPA under
// "grade" with a "CGPA " prefix.
func richEducation(edu types.Education) []map[string]string {
	if !edu.Provided() {
		return []map[string]string{}
	}
	grade := ""
	if strings.TrimSpace(edu.CGPA) != "" {
		grade = "CGPA " + edu.CGPA
	}
	return []map[string]string{{
		"level":       edu.Degree,
		"institution": edu.Institution,
		"duration":    edu.Duration,
		"grade":       grade,
	}}
}

func richReference(ref types.Reference) []map[string]string {
	if !ref.Provided() {
		return []map[string]string{}
	}
	return []map[string]string{{
		"name":     ref.Name,
		"position": ref.Position,
		"company":  ref.Company,
		"contact":  ref.Contact,
	}}
}

// skillMap flattens named skills into a name -> percentage mapping.
// Percentages pass through unchanged.
func skillMap(skills []types.Skill) map[string]int {
	out := map[string]int{}
	for _, s := range skills {
		if s.Provided() {
			out[strings.TrimSpace(s.Skill)] = s.Percentage
		}
	}
	return out
}

// richCertifications emits structured records with issuer and date left
// blank as placeholders for future enrichment.
func richCertifications(certs []string) []map[string]string {
	out := []map[string]string{}
	for _, c := range certs {
		if strings.TrimSpace(c) != "" {
			out = append(out, map[string]string{"title": c, "issuer": "", "date": ""})
		}
	}
	return out
}

func richActivities(activities []types.ExtracurricularActivity) []map[string]string {
	out := []map[string]string{}
	for _, a := range activities {
		if a.Provided() {
			out = append(out, map[string]string{
				"title":   a.Title,
				"date":    a.Date,
				"details": a.Details,
			})
		}
	}
	return out
}

func providedStrings(items []string) []string {
	out := []string{}
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
