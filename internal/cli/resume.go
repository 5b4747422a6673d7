package cli

import (
	"context"
	"fmt"
	"os"

	"resumecli/internal/models"
	"resumecli/internal/store"
	"resumecli/internal/validate"
)

// ListResumes prints the user's resumes with a 1-based number used by
// the open and delete commands.
func (a *App) ListResumes(ctx context.Context) error {
	resumes, err := a.client.ListResumes(ctx, a.session.UserID())
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Println("No resumes yet. Use 'create' to start one.")
		return nil
	}
	for i, r := range resumes {
		fmt.Printf("%d. %s (updated %s)\n", i+1, r.Title, r.UpdatedAt)
	}
	return nil
}

// CreateResume prompts for a title and optional summary and creates an
// empty resume with the default section layout. Creation requires a
// logged-in user; the draft carries their id.
func (a *App) CreateResume(ctx context.Context) error {
	userID := a.session.UserID()
	if userID == "" {
		return fmt.Errorf("login required before creating a resume")
	}

	title, err := getSimpleText(a.reader, "Enter resume title", os.Stdout)
	if err != nil {
		return err
	}
	summary, err := GetMultiline(a.reader, "Enter a short summary (optional)", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.ResumeDraft{
		UserID:          userID,
		Title:           title,
		Summary:         summary,
		SectionSettings: models.DefaultSectionSettings(),
	}
	if err := validate.ResumeDraft(draft); err != nil {
		return err
	}

	resume, err := a.client.CreateResume(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created %q\n", resume.Title)
	a.open(resume)
	return nil
}

// OpenResume selects a resume by its list number and makes it the
// editing target for the section commands.
func (a *App) OpenResume(ctx context.Context) error {
	resumes, err := a.client.ListResumes(ctx, a.session.UserID())
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Println("No resumes to open.")
		return nil
	}
	for i, r := range resumes {
		fmt.Printf("%d. %s\n", i+1, r.Title)
	}

	idx, err := GetIndex(a.reader, "Open which resume?", os.Stdout)
	if err != nil {
		return err
	}
	if idx >= len(resumes) {
		return fmt.Errorf("no resume number %d", idx+1)
	}

	a.open(resumes[idx])
	fmt.Printf("Opened %q\n", a.resume.Title)
	return nil
}

func (a *App) open(r models.Resume) {
	a.resume = &r
	a.store = store.New(a.client, r.ID)
}

// RenameResume updates the open resume's title.
func (a *App) RenameResume(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.client.UpdateResume(ctx, a.resume.ID, models.ResumeUpdate{Title: &title})
	if err != nil {
		return err
	}

	a.resume = &updated
	fmt.Printf("Renamed to %q\n", updated.Title)
	return nil
}

// DeleteResume removes a resume by its list number, asking for
// confirmation first. Deleting the open resume closes it.
func (a *App) DeleteResume(ctx context.Context) error {
	resumes, err := a.client.ListResumes(ctx, a.session.UserID())
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Println("No resumes to delete.")
		return nil
	}
	for i, r := range resumes {
		fmt.Printf("%d. %s\n", i+1, r.Title)
	}

	idx, err := GetIndex(a.reader, "Delete which resume?", os.Stdout)
	if err != nil {
		return err
	}
	if idx >= len(resumes) {
		return fmt.Errorf("no resume number %d", idx+1)
	}

	target := resumes[idx]
	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete %q? This cannot be undone", target.Title), os.Stdout)
	if err != nil {
		return err
	}
	if !sure {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.client.DeleteResume(ctx, target.ID); err != nil {
		return err
	}
	if a.resume != nil && a.resume.ID == target.ID {
		a.resume = nil
		a.store = nil
	}
	fmt.Printf("Deleted %q\n", target.Title)
	return nil
}

// CloseResume drops the editing state. Unsaved section drafts are lost;
// the user is warned when any exist.
func (a *App) CloseResume(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	dirty := make([]string, 0)
	for _, name := range models.SectionNames {
		if a.store.Dirty(name) {
			dirty = append(dirty, string(name))
		}
	}
	if len(dirty) > 0 {
		sure, err := GetYesNo(a.reader, fmt.Sprintf("Unsaved changes in %v will be lost. Close anyway?", dirty), os.Stdout)
		if err != nil {
			return err
		}
		if !sure {
			return nil
		}
	}

	a.resume = nil
	a.store = nil
	fmt.Println("Closed.")
	return nil
}
