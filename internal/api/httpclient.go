package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"resumecli/internal/logging"
	"resumecli/internal/models"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRPS     = 4
)

// Options tunes the HTTP client. Zero values fall back to defaults.
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
}

// HTTPClient is the concrete Client over the backend's JSON API. It
// attaches the bearer token from its TokenSource, tags every request
// with an id, rate-limits outbound calls, and maps response statuses
// to the package's sentinel errors.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	logger  logging.Logger
	timeout time.Duration
}

var _ Client = (*HTTPClient)(nil)

func New(baseURL string, tokens TokenSource, logger logging.Logger, opts Options) *HTTPClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
		timeout: timeout,
	}
}

// do issues one request and returns the raw response body. Non-2xx
// statuses are converted into typed failures; the body never reaches
// the caller in that case.
func (c *HTTPClient) do(ctx context.Context, method, path string, contentType string, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.mapStatus(resp.StatusCode, data)
	}
	return data, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, "application/json", body)
}

// mapStatus converts an error response into the package taxonomy. The
// backend reports problems as {"error": "..."}.
func (c *HTTPClient) mapStatus(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &ValidationError{Status: status, Message: payload.Error}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	if payload.Error != "" {
		return fmt.Errorf("server error (status %d): %s", status, payload.Error)
	}
	return fmt.Errorf("server error (status %d)", status)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", models.User{}, err
	}
	// Different backend revisions name the token field differently.
	var resp struct {
		Token       string      `json:"token"`
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", models.User{}, &DecodeError{Reason: "login response is not valid JSON", Err: err}
	}
	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return "", models.User{}, &DecodeError{Reason: "login response carries no token"}
	}
	return token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (models.User, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, &DecodeError{Reason: "user response is not valid JSON", Err: err}
	}
	return user, nil
}

func (c *HTTPClient) CreateResume(ctx context.Context, draft models.ResumeDraft) (models.Resume, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/resumes", draft)
	if err != nil {
		return models.Resume{}, err
	}
	return decodeResume(raw)
}

func (c *HTTPClient) ListResumes(ctx context.Context, userID string) ([]models.Resume, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/resumes", nil)
	if err != nil {
		return nil, err
	}
	var resumes []models.Resume
	if err := json.Unmarshal(raw, &resumes); err != nil {
		return nil, &DecodeError{Reason: "resume list is not valid JSON", Err: err}
	}
	return resumes, nil
}

func (c *HTTPClient) FetchResume(ctx context.Context, resumeID string) (models.Resume, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/resumes/"+url.PathEscape(resumeID), nil)
	if err != nil {
		return models.Resume{}, err
	}
	return decodeResume(raw)
}

func (c *HTTPClient) UpdateResume(ctx context.Context, resumeID string, update models.ResumeUpdate) (models.Resume, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/resumes/"+url.PathEscape(resumeID), update)
	if err != nil {
		return models.Resume{}, err
	}
	return decodeResume(raw)
}

func (c *HTTPClient) DeleteResume(ctx context.Context, resumeID string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/resumes/"+url.PathEscape(resumeID), nil)
	return err
}

func (c *HTTPClient) FetchSection(ctx context.Context, resumeID string, name models.SectionName) (models.SectionValue, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, sectionPath(resumeID, name), nil)
	if err != nil {
		return nil, err
	}
	return decodeSection(name, raw)
}

func (c *HTTPClient) WriteSection(ctx context.Context, resumeID string, value models.SectionValue) (models.SectionValue, error) {
	name := value.Section()
	raw, err := c.doJSON(ctx, http.MethodPut, sectionPath(resumeID, name), value)
	if err != nil {
		return nil, err
	}
	return decodeSection(name, raw)
}

func (c *HTTPClient) ParseResume(ctx context.Context, filename string, file io.Reader) (models.ParsedResume, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume_file", filename)
	if err != nil {
		return models.ParsedResume{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.ParsedResume{}, err
	}
	if err := mw.Close(); err != nil {
		return models.ParsedResume{}, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/resumes/parse", mw.FormDataContentType(), &buf)
	if err != nil {
		return models.ParsedResume{}, err
	}
	var parsed models.ParsedResume
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.ParsedResume{}, &DecodeError{Reason: "parsed resume is not valid JSON", Err: err}
	}
	return parsed, nil
}

func (c *HTTPClient) Optimize(ctx context.Context, resumeID string, req models.OptimizationRequest) (models.OptimizationReport, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/resumes/"+url.PathEscape(resumeID)+"/optimize", req)
	if err != nil {
		return models.OptimizationReport{}, err
	}
	return decodeOptimization(raw)
}

func (c *HTTPClient) Export(ctx context.Context, resumeID, format, template string) ([]byte, string, error) {
	if format == "" {
		format = "pdf"
	}
	if template == "" {
		template = "modern"
	}
	q := url.Values{"format": {format}, "template": {template}}
	path := "/resumes/" + url.PathEscape(resumeID) + "/export?" + q.Encode()
	return c.download(ctx, path, "resume."+format)
}

func (c *HTTPClient) ExportATS(ctx context.Context, resumeID string) ([]byte, string, error) {
	path := "/resumes/" + url.PathEscape(resumeID) + "/export-ats?format=pdf"
	return c.download(ctx, path, "resume-ats.pdf")
}

// download fetches a binary response and derives the filename from
// Content-Disposition, falling back to a unique default.
func (c *HTTPClient) download(ctx context.Context, path, fallback string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return nil, "", c.mapStatus(resp.StatusCode, data)
	}

	filename := fallback
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	if filename == "" {
		filename = fmt.Sprintf("resume-%s.pdf", uuid.NewString())
	}
	return data, filename, nil
}

func (c *HTTPClient) Recommend(ctx context.Context, userID string) ([]string, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/recommend", map[string]string{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return decodeRecommendations(raw)
}

func (c *HTTPClient) RunScraper(ctx context.Context, userID, location string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/run-scraper", map[string]string{
		"user_id":  userID,
		"location": location,
	})
	return err
}

func (c *HTTPClient) ScrapedJobs(ctx context.Context) ([]models.JobPosting, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/recommended_jobs.json", nil)
	if err != nil {
		return nil, err
	}
	var jobs []models.JobPosting
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, &DecodeError{Reason: "scraped jobs feed is not valid JSON", Err: err}
	}
	return jobs, nil
}

func sectionPath(resumeID string, name models.SectionName) string {
	return "/resumes/" + url.PathEscape(resumeID) + "/sections/" + string(name)
}

func decodeResume(raw []byte) (models.Resume, error) {
	var resume models.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return models.Resume{}, &DecodeError{Reason: "resume is not valid JSON", Err: err}
	}
	if resume.ID == "" {
		return models.Resume{}, &DecodeError{Reason: "resume carries no id"}
	}
	return resume, nil
}
