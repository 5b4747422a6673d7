package cli

import (
	"context"
	"fmt"
	"os"

	"resumecli/internal/filex"
)

// Export downloads the rendered resume and writes it to the export
// directory. Format and template default to the server's standard PDF.
func (a *App) Export(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	format, err := getSimpleText(a.reader, "Format (default pdf)", os.Stdout)
	if err != nil {
		return err
	}
	template, err := getSimpleText(a.reader, "Template (default modern)", os.Stdout)
	if err != nil {
		return err
	}

	content, filename, err := a.client.Export(ctx, a.resume.ID, format, template)
	if err != nil {
		return err
	}

	return a.saveExport(filename, content)
}

// ExportATS downloads the plain ATS-friendly rendering.
func (a *App) ExportATS(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	content, filename, err := a.client.ExportATS(ctx, a.resume.ID)
	if err != nil {
		return err
	}

	return a.saveExport(filename, content)
}

func (a *App) saveExport(filename string, content []byte) error {
	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return err
	}
	path, err := filex.SaveDownload(dir, filename, content)
	if err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", path)
	return nil
}
