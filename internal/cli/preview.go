package cli

import (
	"context"
	"fmt"
	"os"
)

// Preview assembles the open resume with all of its sections and renders
// it as text. Sections that fail to load show up as warnings instead of
// aborting the preview.
func (a *App) Preview(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	doc, err := a.assembler.Assemble(ctx, a.resume.ID)
	if err != nil {
		return err
	}

	fmt.Println()
	doc.Render(os.Stdout)
	fmt.Println()
	return nil
}
