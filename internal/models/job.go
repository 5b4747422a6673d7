package models

// JobPosting is one scraped job listing from the recommendation feed.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	Salary      string `json:"salary,omitempty"`
}
