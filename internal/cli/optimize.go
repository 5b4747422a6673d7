package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"resumecli/internal/models"
	"resumecli/internal/validate"
)

// Optimize scores the open resume against a job description and prints
// the report. An empty job description is refused locally, no request is
// made for it.
func (a *App) Optimize(ctx context.Context) error {
	if err := a.requireResume(); err != nil {
		return err
	}

	jobDescription, err := GetMultiline(a.reader, "Paste the job description", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobDescription) == "" {
		fmt.Println("A job description is required.")
		return nil
	}

	level, err := getSimpleText(a.reader, "Level (light, moderate, aggressive; default moderate)", os.Stdout)
	if err != nil {
		return err
	}
	if level == "" {
		level = string(models.OptimizationModerate)
	}
	parsedLevel, err := models.ParseOptimizationLevel(level)
	if err != nil {
		return err
	}

	req := models.OptimizationRequest{JobDescription: jobDescription, Level: parsedLevel}
	if err := validate.OptimizationRequest(req); err != nil {
		return err
	}

	report, err := a.client.Optimize(ctx, a.resume.ID, req)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(report models.OptimizationReport) {
	opt := report.Optimization
	fmt.Printf("\nMatch score: %.0f%%\n", opt.Score)
	if opt.Feedback != "" {
		fmt.Printf("\n%s\n", opt.Feedback)
	}
	if len(opt.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range opt.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(opt.MissingSkills) > 0 {
		fmt.Println("\nMissing skills:")
		for _, s := range opt.MissingSkills {
			fmt.Printf("  - %s\n", s)
		}
	}
	if opt.OptimizedSummary != "" {
		fmt.Printf("\nSuggested summary:\n%s\n", opt.OptimizedSummary)
	}
	if opt.ResumeBoostParagraph != "" {
		fmt.Printf("\nBoost paragraph:\n%s\n", opt.ResumeBoostParagraph)
	}

	advice := report.ImprovementAdvice
	if advice.Summary != "" || advice.Skills != "" || advice.Projects != "" {
		fmt.Println("\nImprovement advice:")
		if advice.Summary != "" {
			fmt.Printf("  Summary: %s\n", advice.Summary)
		}
		if advice.Skills != "" {
			fmt.Printf("  Skills: %s\n", advice.Skills)
		}
		if advice.Projects != "" {
			fmt.Printf("  Projects: %s\n", advice.Projects)
		}
	}
	fmt.Println()
}
