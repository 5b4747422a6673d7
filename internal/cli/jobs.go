package cli

import (
	"context"
	"fmt"
	"os"
)

// Recommend prints job titles the backend suggests for the user's
// skill profile.
func (a *App) Recommend(ctx context.Context) error {
	titles, err := a.client.Recommend(ctx, a.session.UserID())
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Println("No recommendations yet. Add skills to your resume first.")
		return nil
	}
	fmt.Println("Recommended job titles:")
	for _, t := range titles {
		fmt.Printf("  - %s\n", t)
	}
	return nil
}

// RunScraper kicks off a backend scraping run for the user's
// recommended titles in a given location.
func (a *App) RunScraper(ctx context.Context) error {
	location, err := getSimpleText(a.reader, "Location (e.g. remote, Berlin)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.RunScraper(ctx, a.session.UserID(), location); err != nil {
		return err
	}
	fmt.Println("Scraper started. Use 'jobs' to see results once it finishes.")
	return nil
}

// Jobs lists the scraped job postings.
func (a *App) Jobs(ctx context.Context) error {
	postings, err := a.client.ScrapedJobs(ctx)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		fmt.Println("No job postings yet. Use 'scrape' to collect some.")
		return nil
	}
	for i, p := range postings {
		fmt.Printf("%d. %s at %s (%s)\n", i+1, p.Title, p.Company, p.Location)
		if p.Salary != "" {
			fmt.Printf("   %s\n", p.Salary)
		}
		if p.Link != "" {
			fmt.Printf("   %s\n", p.Link)
		}
	}
	return nil
}
