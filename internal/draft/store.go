// Package draft owns the mutable resume Draft for one editing session.
// A Store is single-writer by construction: only the active session mutates
// it, and every read crossing a package boundary is a deep copy.
package draft

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Store holds one session's Draft and exposes the only mutation paths:
// field setters, typed list editors, and the wholesale auto-fill merge.
type Store struct {
	d *types.Draft
}

// NewStore creates a Store around a fresh Draft.
func NewStore() *Store {
	return &Store{d: types.NewDraft()}
}

// Snapshot returns a deep copy of the current Draft for review or
// transformation. Mutating the copy never affects the store.
func (s *Store) Snapshot() *types.Draft {
	return s.d.Clone()
}

// Basics are the directly-set identity and free-text fields of a Draft.
type Basics struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	LinkedIn  string `json:"linkedin"`
	Title     string `json:"title"`
	About     string `json:"about"`
	Strength  string `json:"strength"`
	Location  string `json:"location"`

	Education  types.Education `json:"education"`
	Reference  types.Reference `json:"reference"`
	UILanguage string          `json:"ui_language"`
}

// ApplyBasics overwrites the Draft's directly-set fields.
func (s *Store) ApplyBasics(b Basics) {
	s.d.Name = b.Name
	s.d.Address = b.Address
	s.d.Email = b.Email
	s.d.Telephone = b.Telephone
	s.d.LinkedIn = b.LinkedIn
	s.d.Title = b.Title
	s.d.About = b.About
	s.d.Strength = b.Strength
	s.d.Location = b.Location
	s.d.Education = b.Education
	s.d.Reference = b.Reference
	if b.UILanguage != "" {
		s.d.UILanguage = b.UILanguage
	}
}

// SetImagePath records the local path of the chosen profile image.
func (s *Store) SetImagePath(path string) {
	s.d.ImagePath = path
}

// ApplyProfile merges an auto-fill result into the Draft. The merge is a
// wholesale overwrite of the enriched fields, not field-by-field.
func (s *Store) ApplyProfile(p types.GeneratedProfile) {
	s.d.About = p.AboutMe
	s.d.Strength = p.Strengths
	s.d.TechnicalSkills = append([]types.Skill(nil), p.TechnicalSkills...)
	s.d.SoftSkills = append([]types.Skill(nil), p.SoftSkills...)
}

// AddLanguage appends a blank language entry.
func (s *Store) AddLanguage() {
	s.d.Languages = append(s.d.Languages, types.LanguageProficiency{Proficiency: types.ProficiencyBeginner})
}

// UpdateLanguage replaces the language entry at index i.
func (s *Store) UpdateLanguage(i int, l types.LanguageProficiency) error {
	return updateAt(CollectionLanguages, s.d.Languages, i, l)
}

// RemoveLanguage deletes the language entry at index i.
func (s *Store) RemoveLanguage(i int) error {
	rest, err := removeAt(CollectionLanguages, s.d.Languages, i)
	if err != nil {
		return err
	}
	s.d.Languages = rest
	return nil
}

// AddExperience appends a blank experience entry.
func (s *Store) AddExperience() {
	s.d.Experiences = append(s.d.Experiences, types.Experience{})
}

// UpdateExperience replaces the experience entry at index i.
func (s *Store) UpdateExperience(i int, e types.Experience) error {
	return updateAt(CollectionExperiences, s.d.Experiences, i, e)
}

// RemoveExperience deletes the experience entry at index i.
func (s *Store) RemoveExperience(i int) error {
	rest, err := removeAt(CollectionExperiences, s.d.Experiences, i)
	if err != nil {
		return err
	}
	s.d.Experiences = rest
	return nil
}

// AddTechnicalSkill appends a blank technical skill at the default 50%.
func (s *Store) AddTechnicalSkill() {
	s.d.TechnicalSkills = append(s.d.TechnicalSkills, types.Skill{Percentage: 50})
}

// UpdateTechnicalSkill replaces the technical skill at index i.
func (s *Store) UpdateTechnicalSkill(i int, sk types.Skill) error {
	return updateAt(CollectionTechnicalSkills, s.d.TechnicalSkills, i, sk)
}

// RemoveTechnicalSkill deletes the technical skill at index i.
func (s *Store) RemoveTechnicalSkill(i int) error {
	rest, err := removeAt(CollectionTechnicalSkills, s.d.TechnicalSkills, i)
	if err != nil {
		return err
	}
	s.d.TechnicalSkills = rest
	return nil
}

// AddSoftSkill appends a blank soft skill at the default 50%.
func (s *Store) AddSoftSkill() {
	s.d.SoftSkills = append(s.d.SoftSkills, types.Skill{Percentage: 50})
}

// UpdateSoftSkill replaces the soft skill at index i.
func (s *Store) UpdateSoftSkill(i int, sk types.Skill) error {
	return updateAt(CollectionSoftSkills, s.d.SoftSkills, i, sk)
}

// RemoveSoftSkill deletes the soft skill at index i.
func (s *Store) RemoveSoftSkill(i int) error {
	rest, err := removeAt(CollectionSoftSkills, s.d.SoftSkills, i)
	if err != nil {
		return err
	}
	s.d.SoftSkills = rest
	return nil
}

// AddCertification appends a blank certification line.
func (s *Store) AddCertification() {
	s.d.Certifications = append(s.d.Certifications, "")
}

// UpdateCertification replaces the certification at index i.
func (s *Store) UpdateCertification(i int, text string) error {
	return updateAt(CollectionCertifications, s.d.Certifications, i, text)
}

// RemoveCertification deletes the certification at index i.
func (s *Store) RemoveCertification(i int) error {
	rest, err := removeAt(CollectionCertifications, s.d.Certifications, i)
	if err != nil {
		return err
	}
	s.d.Certifications = rest
	return nil
}

// AddAchievement appends a blank achievement line.
func (s *Store) AddAchievement() {
	s.d.Achievements = append(s.d.Achievements, "")
}

// UpdateAchievement replaces the achievement at index i.
func (s *Store) UpdateAchievement(i int, text string) error {
	return updateAt(CollectionAchievements, s.d.Achievements, i, text)
}

// RemoveAchievement deletes the achievement at index i.
func (s *Store) RemoveAchievement(i int) error {
	rest, err := removeAt(CollectionAchievements, s.d.Achievements, i)
	if err != nil {
		return err
	}
	s.d.Achievements = rest
	return nil
}

// AddActivity appends a blank extracurricular activity.
func (s *Store) AddActivity() {
	s.d.ExtracurricularActivities = append(s.d.ExtracurricularActivities, types.ExtracurricularActivity{})
}

// UpdateActivity replaces the activity at index i.
func (s *Store) UpdateActivity(i int, a types.ExtracurricularActivity) error {
	return updateAt(CollectionActivities, s.d.ExtracurricularActivities, i, a)
}

// RemoveActivity deletes the activity at index i.
func (s *Store) RemoveActivity(i int) error {
	rest, err := removeAt(CollectionActivities, s.d.ExtracurricularActivities, i)
	if err != nil {
		return err
	}
	s.d.ExtracurricularActivities = rest
	return nil
}

// updateAt writes v into items[i] in place.
func updateAt[T any](collection string, items []T, i int, v T) error {
	if i < 0 || i >= len(items) {
		return &OutOfRangeError{Collection: collection, Index: i, Length: len(items)}
	}
	items[i] = v
	return nil
}

// removeAt returns items without element i. Removing the last remaining
// entry is rejected: the form always shows at least one row per collection.
func removeAt[T any](collection string, items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, &OutOfRangeError{Collection: collection, Index: i, Length: len(items)}
	}
	if len(items) == 1 {
		return nil, &LastEntryError{Collection: collection}
	}
	return append(items[:i:i], items[i+1:]...), nil
}
