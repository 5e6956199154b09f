// Package review renders a read-only summary of a Draft before final
// submission. It reads a Draft snapshot only; nothing here mutates state.
package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the width for formatted section boxes
	boxWidth = 60
	// notProvided is the placeholder shown for blank required fields
	notProvided = "Not provided"
)

// Presenter writes draft summaries to the given writer.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter that writes to the given writer.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to an in-memory buffer or stdout; errors are not recoverable
func (p *Presenter) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDraft outputs the full review of a Draft: every section the form
// collects, with optional sections shown only when they carry content.
func (p *Presenter) PrintDraft(d *types.Draft) {
	p.printBasics(d)
	if d.About != "" {
		p.printBox("ABOUT ME", d.About)
	}
	p.printEducation(d.Education)
	p.printExperiences(d.Experiences)
	p.printSkills(d)
	p.printLanguages(d.Languages)
	p.printLines("CERTIFICATIONS", d.Certifications)
	p.printLines("ACHIEVEMENTS", d.Achievements)
	p.printActivities(d.ExtracurricularActivities)
	p.printReference(d.Reference)
}

func (p *Presenter) printBasics(d *types.Draft) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", orPlaceholder(d.Name)))
	sb.WriteString(fmt.Sprintf("Job Title: %s\n", orPlaceholder(d.Title)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orPlaceholder(d.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orPlaceholder(d.Telephone)))
	sb.WriteString(fmt.Sprintf("Address:   %s\n", orPlaceholder(d.Address)))
	sb.WriteString(fmt.Sprintf("Location:  %s", orPlaceholder(d.Location)))
	if d.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("\nLinkedIn:  %s", d.LinkedIn))
	}
	p.printBox("BASIC INFORMATION", sb.String())
}

func (p *Presenter) printEducation(edu types.Education) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Degree:      %s\n", orPlaceholder(edu.Degree)))
	sb.WriteString(fmt.Sprintf("Institution: %s\n", orPlaceholder(edu.Institution)))
	sb.WriteString(fmt.Sprintf("Duration:    %s\n", orPlaceholder(edu.Duration)))
	sb.WriteString(fmt.Sprintf("CGPA:        %s", orPlaceholder(edu.CGPA)))
	p.printBox("EDUCATION", sb.String())
}

func (p *Presenter) printExperiences(exps []types.Experience) {
	var provided []types.Experience
	for _, exp := range exps {
		if strings.TrimSpace(exp.Company) != "" {
			provided = append(provided, exp)
		}
	}

	if len(provided) == 0 {
		p.printBox("WORK EXPERIENCE", "No work experience provided")
		return
	}

	var sb strings.Builder
	for i, exp := range provided {
		sb.WriteString(fmt.Sprintf("%s at %s\n", exp.Title, exp.Company))
		sb.WriteString(fmt.Sprintf("%s • %s\n", exp.Location, exp.Duration))
		sb.WriteString(exp.Details)
		if i < len(provided)-1 {
			sb.WriteString("\n\n")
		}
	}
	p.printBox("WORK EXPERIENCE", sb.String())
}

func (p *Presenter) printSkills(d *types.Draft) {
	var sb strings.Builder
	sb.WriteString("Technical Skills:\n")
	sb.WriteString(skillLines(d.TechnicalSkills))
	sb.WriteString("\nSoft Skills:\n")
	sb.WriteString(skillLines(d.SoftSkills))
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Presenter) printLanguages(langs []types.LanguageProficiency) {
	var sb strings.Builder
	for _, l := range langs {
		if l.Provided() {
			sb.WriteString(fmt.Sprintf("%s (%s)\n", l.Language, l.Proficiency))
		}
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox("LANGUAGES", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Presenter) printLines(title string, items []string) {
	var sb strings.Builder
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			sb.WriteString(fmt.Sprintf("• %s\n", item))
		}
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Presenter) printActivities(activities []types.ExtracurricularActivity) {
	var sb strings.Builder
	for _, a := range activities {
		if a.Provided() {
			sb.WriteString(fmt.Sprintf("%s (%s)\n", a.Title, a.Date))
			if a.Details != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", a.Details))
			}
		}
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox("EXTRACURRICULAR ACTIVITIES", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Presenter) printReference(ref types.Reference) {
	if !ref.Provided() {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", ref.Name))
	sb.WriteString(fmt.Sprintf("Position: %s\n", ref.Position))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", ref.Company))
	sb.WriteString(fmt.Sprintf("Contact:  %s", ref.Contact))
	p.printBox("REFERENCE", sb.String())
}

func skillLines(skills []types.Skill) string {
	var sb strings.Builder
	for _, s := range skills {
		if s.Provided() {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", s.Skill, s.Percentage))
		}
	}
	return sb.String()
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return notProvided
	}
	return value
}
