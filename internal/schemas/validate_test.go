package schemas

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/transform"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_RichBuilderOutputPasses(t *testing.T) {
	d := types.NewDraft()
	d.Name = "Ada Lovelace"
	d.Address = "KL"
	d.Email = "ada@example.com"
	d.Telephone = "+60 12"
	d.Experiences = []types.Experience{
		{Company: "Acme", Title: "Engineer", Location: "KL", Duration: "2020", Details: "Built systems"},
	}
	d.Languages = []types.LanguageProficiency{{Language: "English", Proficiency: types.ProficiencyNative}}
	d.TechnicalSkills = []types.Skill{{Skill: "Rust", Percentage: 80}}
	d.Education = types.Education{Degree: "BSc", Institution: "UTM", CGPA: "3.75"}
	d.Reference = types.Reference{Name: "Dr. Johnson"}
	d.Certifications = []string{"AWS SA"}

	payload := (&transform.Rich{}).Build(d, transform.Options{Template: "A"})
	resume := payload["resume"].(map[string]any)

	require.NoError(t, ValidateResume(resume))
}

func TestValidateResume_EmptyDraftOutputPasses(t *testing.T) {
	payload := (&transform.Rich{}).Build(types.NewDraft(), transform.Options{Template: "A"})
	resume := payload["resume"].(map[string]any)

	require.NoError(t, ValidateResume(resume))
}

func TestValidateResume_RejectsBadShapes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(resume map[string]any)
	}{
		{
			name: "missing adress key",
			mutate: func(resume map[string]any) {
				delete(resume, "adress")
			},
		},
		{
			name: "percentage above range",
			mutate: func(resume map[string]any) {
				skills := resume["skills"].(map[string]any)
				skills["technical skills"] = map[string]int{"Go": 120}
			},
		},
		{
			name: "language entry with two keys",
			mutate: func(resume map[string]any) {
				resume["language"] = []map[string]string{{"English": "native", "Malay": "native"}}
			},
		},
		{
			name: "negative job count",
			mutate: func(resume map[string]any) {
				resume["number of jobs"] = -1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := (&transform.Rich{}).Build(types.NewDraft(), transform.Options{Template: "A"})
			resume := payload["resume"].(map[string]any)
			tt.mutate(resume)

			err := ValidateResume(resume)
			require.Error(t, err)

			var ve *ValidationError
			if assert.ErrorAs(t, err, &ve) {
				assert.NotEmpty(t, ve.Errors)
			}
		})
	}
}
