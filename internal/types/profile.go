// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

// GeneratedProfile is the structured result of an auto-fill generation call.
// The skill lists are capped at MaxGeneratedSkills entries each before the
// profile is handed back to the caller.
type GeneratedProfile struct {
	AboutMe         string  `json:"aboutMe"`
	TechnicalSkills []Skill `json:"technicalSkills"`
	SoftSkills      []Skill `json:"softSkills"`
	Strengths       string  `json:"strengths"`
}

// MaxGeneratedSkills is the cap applied to each generated skill list.
const MaxGeneratedSkills = 4

// Truncate caps both skill lists at MaxGeneratedSkills entries.
func (p *GeneratedProfile) Truncate() {
	if len(p.TechnicalSkills) > MaxGeneratedSkills {
		p.TechnicalSkills = p.TechnicalSkills[:MaxGeneratedSkills]
	}
	if len(p.SoftSkills) > MaxGeneratedSkills {
		p.SoftSkills = p.SoftSkills[:MaxGeneratedSkills]
	}
}

// Complete reports whether every required profile field came back from the
// provider. A partial profile is treated as malformed rather than merged.
func (p *GeneratedProfile) Complete() bool {
	return p.AboutMe != "" && p.Strengths != "" &&
		len(p.TechnicalSkills) > 0 && len(p.SoftSkills) > 0
}
