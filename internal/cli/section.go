package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"resumecli/internal/models"
	"resumecli/internal/store"
	"resumecli/internal/validate"
)

// promptSection lists the section names and reads one from the user.
func (a *App) promptSection() (models.SectionName, error) {
	names := make([]string, 0, len(models.SectionNames))
	for _, n := range models.SectionNames {
		names = append(names, string(n))
	}
	text, err := getSimpleText(a.reader, "Section ("+strings.Join(names, ", ")+")", os.Stdout)
	if err != nil {
		return "", err
	}
	return models.ParseSectionName(text)
}

// ShowSection displays one section as the editor currently sees it,
// local edits included.
func (a *App) ShowSection(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}

	value, err := a.store.Load(ctx, name)
	if err != nil {
		return err
	}

	printSection(value)
	if a.store.Dirty(name) {
		fmt.Println("(unsaved changes; use 'save' to persist)")
	}
	return nil
}

// AddEntry appends an entry to a list section, or fills in a singleton
// section wholesale. The change is staged locally until 'save'.
func (a *App) AddEntry(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}
	if _, err := a.store.Load(ctx, name); err != nil {
		return err
	}

	if !name.IsList() {
		value, err := a.promptSingleton(name)
		if err != nil {
			return err
		}
		if err := validate.Entry(value); err != nil {
			return err
		}
		if err := a.store.SetObject(name, value); err != nil {
			return err
		}
	} else {
		entry, err := a.promptEntry(name)
		if err != nil {
			return err
		}
		if err := validate.Entry(entry); err != nil {
			return err
		}
		if err := a.store.UpsertEntry(name, -1, entry); err != nil {
			return err
		}
	}

	fmt.Println("Staged. Use 'save' to persist.")
	return nil
}

// EditEntry replaces one entry of a list section in place. For singleton
// sections it behaves like 'add'.
func (a *App) EditEntry(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}

	value, err := a.store.Load(ctx, name)
	if err != nil {
		return err
	}

	if !name.IsList() {
		updated, err := a.promptSingleton(name)
		if err != nil {
			return err
		}
		if err := validate.Entry(updated); err != nil {
			return err
		}
		if err := a.store.SetObject(name, updated); err != nil {
			return err
		}
		fmt.Println("Staged. Use 'save' to persist.")
		return nil
	}

	if models.Len(value) == 0 {
		fmt.Println("Section is empty; use 'add' instead.")
		return nil
	}
	printSection(value)

	idx, err := GetIndex(a.reader, "Edit which entry?", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.promptEntry(name)
	if err != nil {
		return err
	}
	if err := validate.Entry(entry); err != nil {
		return err
	}
	if err := a.store.UpsertEntry(name, idx, entry); err != nil {
		return err
	}

	fmt.Println("Staged. Use 'save' to persist.")
	return nil
}

// RemoveEntry deletes one entry of a list section. Unlike add and edit,
// the shortened list is persisted immediately.
func (a *App) RemoveEntry(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}

	value, err := a.store.Load(ctx, name)
	if err != nil {
		return err
	}
	if models.Len(value) == 0 {
		fmt.Println("Section is empty.")
		return nil
	}
	printSection(value)

	idx, err := GetIndex(a.reader, "Remove which entry?", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.store.RemoveEntry(ctx, name, idx); err != nil {
		return err
	}
	fmt.Println("Removed and saved.")
	return nil
}

// SaveSection validates and persists a section's local edits. The server
// response becomes the new local value.
func (a *App) SaveSection(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}
	if !a.store.Dirty(name) {
		fmt.Println("Nothing to save.")
		return nil
	}

	if _, err := a.store.Commit(ctx, name); err != nil {
		if errors.Is(err, store.ErrCommitInFlight) {
			fmt.Println("A save for this section is still running; try again shortly.")
			return nil
		}
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			fmt.Println("Cannot save, fix these fields first:")
			for _, fe := range fieldErrs {
				fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
			}
			return nil
		}
		return err
	}

	fmt.Println("Saved.")
	return nil
}

// DiscardSection drops the local edits of one section.
func (a *App) DiscardSection(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}
	name, err := a.promptSection()
	if err != nil {
		return err
	}
	if !a.store.Dirty(name) {
		fmt.Println("No local changes.")
		return nil
	}
	a.store.Discard(name)
	fmt.Println("Discarded.")
	return nil
}

// printSection writes a numbered, human-readable view of a section.
func printSection(value models.SectionValue) {
	switch v := value.(type) {
	case models.PersonalInfo:
		if v == (models.PersonalInfo{}) {
			fmt.Println("(empty)")
			return
		}
		fmt.Printf("%s | %s | %s | %s\n", v.FullName, v.Email, v.Phone, v.Location)
		for _, link := range []string{v.LinkedInURL, v.GitHubURL, v.PortfolioURL} {
			if link != "" {
				fmt.Println(link)
			}
		}
	case models.Summary:
		if v.Content == "" {
			fmt.Println("(empty)")
			return
		}
		fmt.Println(v.Content)
	case models.EducationList:
		if len(v) == 0 {
			fmt.Println("(empty)")
			return
		}
		for i, e := range v {
			fmt.Printf("%d. %s, %s in %s\n", i+1, e.Institution, e.Degree, e.FieldOfStudy)
		}
	case models.ExperienceList:
		if len(v) == 0 {
			fmt.Println("(empty)")
			return
		}
		for i, e := range v {
			fmt.Printf("%d. %s at %s\n", i+1, e.Position, e.Company)
		}
	case models.SkillList:
		if len(v) == 0 {
			fmt.Println("(empty)")
			return
		}
		for i, s := range v {
			fmt.Printf("%d. %s (%s)\n", i+1, s.Name, s.Proficiency)
		}
	case models.ProjectList:
		if len(v) == 0 {
			fmt.Println("(empty)")
			return
		}
		for i, p := range v {
			fmt.Printf("%d. %s\n", i+1, p.Title)
		}
	}
}
