// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Proficiency levels accepted for a LanguageProficiency entry.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyProfessional = "professional"
	ProficiencyNative       = "native"
)

// UILanguage selectors supported by the form and the auto-fill prompts.
const (
	LanguageEnglish = "English"
	LanguageBM      = "BM"
)

// Experience represents a single work-experience entry.
type Experience struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	Details  string `json:"details"` // free text, one responsibility per line
}

// Provided reports whether the entry counts as a real experience rather than
// an untouched placeholder row. An entry is provided when either the company
// or the title is non-blank.
func (e Experience) Provided() bool {
	return strings.TrimSpace(e.Company) != "" || strings.TrimSpace(e.Title) != ""
}

// LanguageProficiency represents a spoken-language entry.
type LanguageProficiency struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency" validate:"oneof=beginner intermediate professional native"`
}

// Provided reports whether the entry names a language.
func (l LanguageProficiency) Provided() bool {
	return strings.TrimSpace(l.Language) != ""
}

// Skill represents a named skill with a self-assessed percentage.
// The same shape is used for both technical and soft skills.
type Skill struct {
	Skill      string `json:"skill"`
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
}

// Provided reports whether the skill is named.
func (s Skill) Provided() bool {
	return strings.TrimSpace(s.Skill) != ""
}

// ExtracurricularActivity represents an activity entry.
type ExtracurricularActivity struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

// Provided reports whether the activity has a title.
func (a ExtracurricularActivity) Provided() bool {
	return strings.TrimSpace(a.Title) != ""
}

// Education is the singleton education record of a Draft.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	CGPA        string `json:"cgpa"`
	Duration    string `json:"duration"`
}

// Provided reports whether the record carries a degree or an institution.
func (e Education) Provided() bool {
	return strings.TrimSpace(e.Degree) != "" || strings.TrimSpace(e.Institution) != ""
}

// Reference is the optional singleton reference record of a Draft.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Contact  string `json:"contact"`
}

// Provided reports whether a reference name was given.
func (r Reference) Provided() bool {
	return strings.TrimSpace(r.Name) != ""
}

// Draft is the complete resume-in-progress for one editing session.
// It lives in memory only; a Draft is never persisted.
type Draft struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telephone string `json:"telephone"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Title     string `json:"title"` // target job title
	About     string `json:"about"`
	Strength  string `json:"strength"`
	Location  string `json:"location,omitempty"`
	ImagePath string `json:"image_path,omitempty"` // local path of the uploaded profile image

	Languages                 []LanguageProficiency     `json:"languages" validate:"dive"`
	Experiences               []Experience              `json:"experiences"`
	TechnicalSkills           []Skill                   `json:"technical_skills" validate:"dive"`
	SoftSkills                []Skill                   `json:"soft_skills" validate:"dive"`
	Certifications            []string                  `json:"certifications"`
	Achievements              []string                  `json:"achievements"`
	ExtracurricularActivities []ExtracurricularActivity `json:"extracurricular_activities"`

	Education Education `json:"education"`
	Reference Reference `json:"reference"`

	// UILanguage is the language selector for prompts and submission
	// ("English" or "BM").
	UILanguage string `json:"ui_language" validate:"oneof=English BM"`
}

// NewDraft returns an empty Draft with every repeatable collection seeded
// with one blank entry, matching how the form presents a fresh session.
func NewDraft() *Draft {
	return &Draft{
		Languages:                 []LanguageProficiency{{Proficiency: ProficiencyBeginner}},
		Experiences:               []Experience{{}},
		TechnicalSkills:           []Skill{{Percentage: 50}},
		SoftSkills:                []Skill{{Percentage: 50}},
		Certifications:            []string{""},
		Achievements:              []string{""},
		ExtracurricularActivities: []ExtracurricularActivity{{}},
		UILanguage:                LanguageEnglish,
	}
}

// Validate validates the Draft using the validator.
func (d *Draft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Clone returns a deep copy of the Draft. Callers that hand a Draft across a
// package boundary use Clone so store-owned slices are never aliased.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Languages = append([]LanguageProficiency(nil), d.Languages...)
	c.Experiences = append([]Experience(nil), d.Experiences...)
	c.TechnicalSkills = append([]Skill(nil), d.TechnicalSkills...)
	c.SoftSkills = append([]Skill(nil), d.SoftSkills...)
	c.Certifications = append([]string(nil), d.Certifications...)
	c.Achievements = append([]string(nil), d.Achievements...)
	c.ExtracurricularActivities = append([]ExtracurricularActivity(nil), d.ExtracurricularActivities...)
	return &c
}
