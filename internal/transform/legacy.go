package transform

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Legacy builds the flat payload shape consumed by first-generation
// backends: repeatable sections are comma- or semicolon-joined strings
// rather than structured records. Kept behind the payload_format config
// flag; new deployments use Rich.
type Legacy struct{}

// Build produces the legacy payload for a Draft.
//
// The "adress" and "Achivements" keys are contractual misspellings inherited
// from the backend schema; they must not be corrected.
func (b *Legacy) Build(d *types.Draft, opts Options) map[string]any {
	return map[string]any{
		"id":                         rand.IntN(10000),
		"template":                   opts.Template,
		"gdrive_url":                 opts.ImageURL,
		"language_selected":          d.UILanguage,
		"user_image":                 "",
		"name":                       d.Name,
		"adress":                     d.Address,
		"email":                      d.Email,
		"telephone":                  d.Telephone,
		"linkedin":                   d.LinkedIn,
		"title":                      d.Title,
		"about":                      d.About,
		"language":                   legacyLanguages(d.Languages),
		"experience":                 legacyExperiences(d.Experiences),
		"education":                  legacyEducation(d.Education),
		"strength":                   d.Strength,
		"reference":                  legacyReference(d.Reference),
		"technical_skills":           legacySkills(d.TechnicalSkills),
		"soft_skills":                legacySkills(d.SoftSkills),
		"certification":              joinProvided(d.Certifications),
		"Achivements":                joinProvided(d.Achievements),
		"extracurricular_activities": legacyActivities(d.ExtracurricularActivities),
		"location":                   d.Location,
	}
}

func legacyLanguages(langs []types.LanguageProficiency) string {
	var parts []string
	for _, l := range langs {
		if l.Provided() {
			parts = append(parts, fmt.Sprintf("%s %s", l.Language, l.Proficiency))
		}
	}
	return strings.Join(parts, ", ")
}

// legacyExperiences concatenates each provided experience into one
// descriptive sentence, joined with "; ". A draft with no provided
// experiences submits the "No work experience" sentinel.
func legacyExperiences(exps []types.Experience) string {
	provided := providedExperiences(exps)
	if len(provided) == 0 {
		return "No work experience"
	}

	var parts []string
	for _, exp := range provided {
		parts = append(parts, fmt.Sprintf("%s at %s, %s (%s): %s",
			exp.Title, exp.Company, exp.Location, exp.Duration, exp.Details))
	}
	return strings.Join(parts, "; ")
}

func legacyEducation(edu types.Education) string {
	return fmt.Sprintf("%s, %s, CGPA: %s, Duration: %s",
		edu.Degree, edu.Institution, edu.CGPA, edu.Duration)
}

func legacyReference(ref types.Reference) string {
	if !ref.Provided() {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s, %s", ref.Name, ref.Position, ref.Company, ref.Contact)
}

func legacySkills(skills []types.Skill) string {
	var parts []string
	for _, s := range skills {
		if s.Provided() {
			parts = append(parts, fmt.Sprintf("%s %d%%", s.Skill, s.Percentage))
		}
	}
	return strings.Join(parts, ", ")
}

func legacyActivities(activities []types.ExtracurricularActivity) string {
	var parts []string
	for _, a := range activities {
		if a.Provided() {
			parts = append(parts, fmt.Sprintf("%s (%s): %s", a.Title, a.Date, a.Details))
		}
	}
	return strings.Join(parts, ", ")
}

func joinProvided(items []string) string {
	var parts []string
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			parts = append(parts, item)
		}
	}
	return strings.Join(parts, ", ")
}
