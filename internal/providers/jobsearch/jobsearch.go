package jobsearch

import "context"

// Result is one raw hit from the external search API, before mapping into
// the shape stored on profiles.
type Result struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"job_title"`
	Employer    string   `json:"employer_name"`
	City        string   `json:"job_city"`
	Country     string   `json:"job_country"`
	IsRemote    bool     `json:"job_is_remote"`
	MinSalary   *float64 `json:"job_min_salary"`
	MaxSalary   *float64 `json:"job_max_salary"`
	Description string   `json:"job_description"`
	ApplyLink   string   `json:"job_apply_link"`
	PostedAt    string   `json:"job_posted_at_datetime_utc"`
}

// Searcher queries an external job-search API. One page, no date filter.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
