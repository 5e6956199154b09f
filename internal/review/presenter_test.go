package review

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func render(d *types.Draft) string {
	var buf bytes.Buffer
	NewPresenter(&buf).PrintDraft(d)
	return buf.String()
}

func TestPrintDraft_EmptyDraft(t *testing.T) {
	out := render(types.NewDraft())

	assert.Contains(t, out, "BASIC INFORMATION")
	assert.Contains(t, out, "Not provided")
	assert.Contains(t, out, "No work experience provided")

	// Optional sections stay hidden when empty.
	assert.NotContains(t, out, "LANGUAGES")
	assert.NotContains(t, out, "CERTIFICATIONS")
	assert.NotContains(t, out, "REFERENCE")
	assert.NotContains(t, out, "ABOUT ME")
}

func TestPrintDraft_FullDraft(t *testing.T) {
	d := types.NewDraft()
	d.Name = "Ada Lovelace"
	d.Title = "Engineer"
	d.About = "Pioneer of computing."
	d.Experiences = []types.Experience{
		{Company: "Acme", Title: "Engineer", Location: "KL", Duration: "2020-2022", Details: "Built systems"},
	}
	d.TechnicalSkills = []types.Skill{{Skill: "Rust", Percentage: 80}}
	d.Languages = []types.LanguageProficiency{{Language: "English", Proficiency: types.ProficiencyNative}}
	d.Certifications = []string{"AWS SA"}
	d.Reference = types.Reference{Name: "Dr. Sarah Johnson", Position: "Manager", Company: "Acme", Contact: "s@acme.co"}

	out := render(d)

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Engineer at Acme")
	assert.Contains(t, out, "Rust (80%)")
	assert.Contains(t, out, "English (native)")
	assert.Contains(t, out, "AWS SA")
	assert.Contains(t, out, "Dr. Sarah Johnson")
	assert.Contains(t, out, "ABOUT ME")
}

func TestPrintDraft_ExperienceNeedsCompanyForDisplay(t *testing.T) {
	d := types.NewDraft()
	d.Experiences = []types.Experience{{Title: "Freelancer"}}

	// The review screen keys experience display on company name, as the
	// original form did; submission filtering is broader.
	assert.Contains(t, render(d), "No work experience provided")
}
