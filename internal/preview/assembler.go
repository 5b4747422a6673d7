// Package preview assembles one read-only composite document from a
// resume's metadata and all of its sections, for rendering and export.
package preview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resumecli/internal/api"
	"resumecli/internal/logging"
	"resumecli/internal/models"
)

// Document is the assembled read view of a resume. Sections that are
// missing or failed to load are present as empty values; Warnings names
// the ones that failed for reasons other than "never written".
type Document struct {
	Resume       models.Resume
	PersonalInfo models.PersonalInfo
	Summary      models.Summary
	Education    models.EducationList
	Experience   models.ExperienceList
	Skills       models.SkillList
	Projects     models.ProjectList
	Warnings     []string
}

// Assembler fetches and composes documents. Section fetches run
// concurrently and are individually fault-tolerant: one failing section
// never blocks the rest of the document.
type Assembler struct {
	client api.Client
	logger logging.Logger
}

func NewAssembler(client api.Client, logger logging.Logger) *Assembler {
	return &Assembler{client: client, logger: logger}
}

// Assemble builds the document for one resume. Only a failure to load
// the aggregate root itself is fatal; everything below it degrades to
// an empty block plus a warning. No retries are attempted.
func (a *Assembler) Assemble(ctx context.Context, resumeID string) (*Document, error) {
	resume, err := a.client.FetchResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("fetch resume: %w", err)
	}

	doc := &Document{Resume: resume}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, name := range models.SectionNames {
		wg.Add(1)
		go func(name models.SectionName) {
			defer wg.Done()
			value, err := a.client.FetchSection(ctx, resumeID, name)
			if err != nil {
				if !errors.Is(err, api.ErrNotFound) {
					a.logger.Warn(ctx, "section fetch failed", "resume_id", resumeID, "section", name, "error", err)
					mu.Lock()
					doc.Warnings = append(doc.Warnings, fmt.Sprintf("%s could not be loaded", name))
					mu.Unlock()
				}
				return
			}
			mu.Lock()
			doc.setSection(value)
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	return doc, nil
}

func (d *Document) setSection(value models.SectionValue) {
	switch v := value.(type) {
	case models.PersonalInfo:
		d.PersonalInfo = v
	case models.Summary:
		d.Summary = v
	case models.EducationList:
		d.Education = v
	case models.ExperienceList:
		d.Experience = v
	case models.SkillList:
		d.Skills = v
	case models.ProjectList:
		d.Projects = v
	}
}

// SectionEmpty reports whether the given section holds no content in
// the document, so renderers can skip the block entirely.
func (d *Document) SectionEmpty(name models.SectionName) bool {
	switch name {
	case models.SectionPersonalInfo:
		return d.PersonalInfo == (models.PersonalInfo{})
	case models.SectionSummary:
		return d.Summary.Content == ""
	case models.SectionEducation:
		return len(d.Education) == 0
	case models.SectionExperience:
		return len(d.Experience) == 0
	case models.SectionSkills:
		return len(d.Skills) == 0
	case models.SectionProjects:
		return len(d.Projects) == 0
	}
	return true
}
