package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resumecli/internal/models"
)

// ParseUpload sends a resume file (PDF or DOCX) to the backend parser
// and, when a resume is open, offers to stage the recognized content
// into its sections. Staged sections still go through 'save'.
func (a *App) ParseUpload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to resume file (.pdf or .docx)", os.Stdout)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	parsed, err := a.client.ParseResume(ctx, filepath.Base(path), file)
	if err != nil {
		return err
	}

	found := parsedSummaryLine(parsed)
	if found == "" {
		fmt.Println("Nothing recognizable was found in the file.")
		return nil
	}
	fmt.Println("Found:", found)

	if a.resume == nil {
		fmt.Println("Open a resume to apply the parsed content.")
		return nil
	}

	apply, err := GetYesNo(a.reader, "Stage the parsed content into the open resume?", os.Stdout)
	if err != nil {
		return err
	}
	if !apply {
		return nil
	}

	staged := 0
	stage := func(name models.SectionName, f func() error) {
		if _, err := a.store.Load(ctx, name); err != nil {
			fmt.Printf("skipping %s: %v\n", name, err)
			return
		}
		if err := f(); err != nil {
			fmt.Printf("skipping %s: %v\n", name, err)
			return
		}
		staged++
	}

	if parsed.PersonalInfo != nil {
		stage(models.SectionPersonalInfo, func() error {
			return a.store.SetObject(models.SectionPersonalInfo, *parsed.PersonalInfo)
		})
	}
	if parsed.Summary != nil {
		stage(models.SectionSummary, func() error {
			return a.store.SetObject(models.SectionSummary, *parsed.Summary)
		})
	}
	for _, e := range parsed.Education {
		stage(models.SectionEducation, func() error {
			return a.store.UpsertEntry(models.SectionEducation, -1, e)
		})
	}
	for _, e := range parsed.Experience {
		stage(models.SectionExperience, func() error {
			return a.store.UpsertEntry(models.SectionExperience, -1, e)
		})
	}
	for _, s := range parsed.Skills {
		stage(models.SectionSkills, func() error {
			return a.store.UpsertEntry(models.SectionSkills, -1, s)
		})
	}
	for _, p := range parsed.Projects {
		stage(models.SectionProjects, func() error {
			return a.store.UpsertEntry(models.SectionProjects, -1, p)
		})
	}

	fmt.Printf("Staged %d item(s). Review with 'show' and persist with 'save'.\n", staged)
	return nil
}

func parsedSummaryLine(p models.ParsedResume) string {
	parts := make([]string, 0, 6)
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	if p.PersonalInfo != nil {
		parts = append(parts, "personal info")
	}
	if p.Summary != nil {
		parts = append(parts, "summary")
	}
	add(len(p.Education), "education entries")
	add(len(p.Experience), "experience entries")
	add(len(p.Skills), "skills")
	add(len(p.Projects), "projects")

	out := ""
	for i, part := range parts {
		if i > 0 {
			out += ", "
		}
		out += part
	}
	return out
}
