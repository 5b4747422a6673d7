package preview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"resumecli/internal/models"
)

// Render writes a plain-text view of the document, honoring the
// resume's section settings: hidden sections are skipped, visible ones
// appear in their configured order, and empty sections are omitted.
func (d *Document) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n", d.Resume.Title, strings.Repeat("=", len(d.Resume.Title)))
	if d.Resume.Summary != "" {
		fmt.Fprintf(w, "%s\n", d.Resume.Summary)
	}

	for _, setting := range d.orderedSettings() {
		if !setting.Visible || d.SectionEmpty(setting.Name) {
			continue
		}
		fmt.Fprintf(w, "\n## %s\n", sectionTitle(setting.Name))
		d.renderSection(w, setting.Name)
	}

	for _, warning := range d.Warnings {
		fmt.Fprintf(w, "\n! %s\n", warning)
	}
}

// orderedSettings sorts the resume's section settings by their order
// field, falling back to the default layout when the server sent none.
func (d *Document) orderedSettings() []models.SectionSetting {
	settings := d.Resume.SectionSettings
	if len(settings) == 0 {
		settings = models.DefaultSectionSettings()
	}
	out := make([]models.SectionSetting, len(settings))
	copy(out, settings)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func sectionTitle(name models.SectionName) string {
	switch name {
	case models.SectionPersonalInfo:
		return "Personal Information"
	case models.SectionSummary:
		return "Summary"
	case models.SectionEducation:
		return "Education"
	case models.SectionExperience:
		return "Experience"
	case models.SectionSkills:
		return "Skills"
	case models.SectionProjects:
		return "Projects"
	}
	return string(name)
}

func (d *Document) renderSection(w io.Writer, name models.SectionName) {
	switch name {
	case models.SectionPersonalInfo:
		p := d.PersonalInfo
		fmt.Fprintf(w, "%s | %s | %s | %s\n", p.FullName, p.Email, p.Phone, p.Location)
		for _, link := range []string{p.LinkedInURL, p.GitHubURL, p.PortfolioURL} {
			if link != "" {
				fmt.Fprintf(w, "%s\n", link)
			}
		}
	case models.SectionSummary:
		fmt.Fprintf(w, "%s\n", d.Summary.Content)
	case models.SectionEducation:
		for _, e := range d.Education {
			fmt.Fprintf(w, "- %s, %s in %s (%s)\n", e.Institution, e.Degree, e.FieldOfStudy, dateRange(e.StartDate, e.EndDate, false))
			if e.GPA != nil {
				fmt.Fprintf(w, "  GPA: %.2f\n", *e.GPA)
			}
			if e.Description != "" {
				fmt.Fprintf(w, "  %s\n", e.Description)
			}
		}
	case models.SectionExperience:
		for _, e := range d.Experience {
			fmt.Fprintf(w, "- %s at %s, %s (%s)\n", e.Position, e.Company, e.Location, dateRange(e.StartDate, e.EndDate, e.Current))
			fmt.Fprintf(w, "  %s\n", e.Description)
			for _, a := range e.Achievements {
				fmt.Fprintf(w, "  * %s\n", a)
			}
		}
	case models.SectionSkills:
		for _, s := range d.Skills {
			line := fmt.Sprintf("- %s (%s, %s)", s.Name, s.Category, s.Proficiency)
			if s.YearsOfExperience != nil {
				line += fmt.Sprintf(", %.0f yrs", *s.YearsOfExperience)
			}
			fmt.Fprintf(w, "%s\n", line)
		}
	case models.SectionProjects:
		for _, p := range d.Projects {
			fmt.Fprintf(w, "- %s (%s)\n", p.Title, dateRange(p.StartDate, p.EndDate, false))
			fmt.Fprintf(w, "  %s\n", p.Description)
			if len(p.Technologies) > 0 {
				fmt.Fprintf(w, "  Tech: %s\n", strings.Join(p.Technologies, ", "))
			}
			if p.URL != "" {
				fmt.Fprintf(w, "  %s\n", p.URL)
			}
		}
	}
}

func dateRange(start, end string, current bool) string {
	switch {
	case current:
		return start + " - present"
	case end != "":
		return start + " - " + end
	default:
		return start
	}
}
