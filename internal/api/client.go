package api

import (
	"context"
	"io"

	"resumecli/internal/models"
)

// Client is the API contract against the resume backend. Every call
// issues exactly one request and honors context cancellation.
type Client interface {
	// Auth. Login returns the bearer token plus the user record; the
	// caller owns persisting them into the session.
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Resume aggregate root.
	CreateResume(ctx context.Context, draft models.ResumeDraft) (models.Resume, error)
	ListResumes(ctx context.Context, userID string) ([]models.Resume, error)
	FetchResume(ctx context.Context, resumeID string) (models.Resume, error)
	UpdateResume(ctx context.Context, resumeID string, update models.ResumeUpdate) (models.Resume, error)
	DeleteResume(ctx context.Context, resumeID string) error

	// Sections. WriteSection must only receive values that already
	// passed local validation; it returns the server's canonical
	// stored value, which the caller adopts as new local state.
	FetchSection(ctx context.Context, resumeID string, name models.SectionName) (models.SectionValue, error)
	WriteSection(ctx context.Context, resumeID string, value models.SectionValue) (models.SectionValue, error)

	// Remote services reached through the same backend.
	ParseResume(ctx context.Context, filename string, file io.Reader) (models.ParsedResume, error)
	Optimize(ctx context.Context, resumeID string, req models.OptimizationRequest) (models.OptimizationReport, error)
	Export(ctx context.Context, resumeID, format, template string) ([]byte, string, error)
	ExportATS(ctx context.Context, resumeID string) ([]byte, string, error)
	Recommend(ctx context.Context, userID string) ([]string, error)
	RunScraper(ctx context.Context, userID, location string) error
	ScrapedJobs(ctx context.Context) ([]models.JobPosting, error)
}

// TokenSource supplies the bearer token attached to authenticated
// requests. An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}
