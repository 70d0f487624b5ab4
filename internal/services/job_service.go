package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/providers/jobsearch"
	mongorepo "github.com/resumatch/backend/internal/repositories/mongo"
	"github.com/resumatch/backend/internal/utils"
)

const (
	// JobCacheTTL is the window during which cached results are served
	// without re-querying the external API.
	JobCacheTTL = 24 * time.Hour

	descriptionLimit = 200
)

// JobsResult is what GET /api/jobs returns: the mapped jobs, the query that
// produced them and whether they came from the profile cache.
type JobsResult struct {
	Jobs     []models.JobResult `json:"jobs"`
	Keywords string             `json:"keywords"`
	Cached   bool               `json:"cached,omitempty"`
}

type JobService interface {
	GetJobs(ctx context.Context, userID string) (*JobsResult, error)
}

type jobService struct {
	profiles mongorepo.ProfileRepository
	searcher jobsearch.Searcher // nil when no API key is configured
	now      func() time.Time
}

func NewJobService(profiles mongorepo.ProfileRepository, searcher jobsearch.Searcher) JobService {
	return &jobService{profiles: profiles, searcher: searcher, now: time.Now}
}

func (s *jobService) GetJobs(ctx context.Context, userID string) (*JobsResult, error) {
	const op = "JobService.GetJobs"

	uid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "No skills found. Please upload your CV first.", err)
		}
		return nil, utils.E(utils.CodeDatabase, op, "Failed to fetch profile", err)
	}
	if len(profile.Skills) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "No skills found. Please upload your CV first.", nil)
	}

	if len(profile.CachedJobs) > 0 && profile.JobsCachedAt != nil &&
		s.now().Sub(*profile.JobsCachedAt) < JobCacheTTL {
		return &JobsResult{
			Jobs:     profile.CachedJobs,
			Keywords: profile.JobsKeyword,
			Cached:   true,
		}, nil
	}

	if s.searcher == nil {
		return nil, utils.E(utils.CodeExternalService, op, "Job search is not configured", nil)
	}

	query := DeriveQuery(profile.Skills, profile.Experience)

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, utils.E(utils.CodeExternalService, op, "Failed to fetch jobs", err)
	}

	jobs := make([]models.JobResult, 0, len(results))
	for _, r := range results {
		jobs = append(jobs, MapResult(r))
	}

	// Cache fields are only overwritten on success, so a failed refresh
	// never clears a stale cache.
	if err := s.profiles.UpdateJobCache(ctx, uid, jobs, s.now(), query); err != nil {
		return nil, utils.E(utils.CodeDatabase, op, "Failed to cache jobs", err)
	}

	return &JobsResult{Jobs: jobs, Keywords: query}, nil
}

// extraction noise that sometimes ends up in the skills list
var headerWords = map[string]struct{}{
	"skills":     {},
	"experience": {},
	"education":  {},
	"summary":    {},
}

var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// DeriveQuery composes the external search query from profile fields:
// first experience title, else the first cleaned skill, else "developer".
func DeriveQuery(skills []string, experience []models.ExperienceItem) string {
	var cleaned []string
	for _, s := range skills {
		if _, ok := headerWords[strings.ToLower(strings.TrimSpace(s))]; ok {
			continue
		}
		c := strings.TrimSpace(nonAlnumRe.ReplaceAllString(s, ""))
		if len(c) > 2 {
			cleaned = append(cleaned, c)
		}
	}

	term := "developer"
	switch {
	case len(experience) > 0 && strings.TrimSpace(experience[0].Title) != "":
		term = strings.TrimSpace(experience[0].Title)
	case len(cleaned) > 0:
		term = cleaned[0]
	}

	return term + " developer"
}

// MapResult converts a raw search hit into the shape cached on profiles.
func MapResult(r jobsearch.Result) models.JobResult {
	company := r.Employer
	if company == "" {
		company = "Unknown"
	}

	location := "Remote"
	switch {
	case r.City != "":
		location = r.City + ", " + r.Country
	case r.Country != "":
		location = r.Country
	}

	salary := "Not specified"
	if r.MinSalary != nil {
		max := *r.MinSalary
		if r.MaxSalary != nil {
			max = *r.MaxSalary
		}
		salary = fmt.Sprintf("$%d - $%d", int64(math.Round(*r.MinSalary)), int64(math.Round(max)))
	}

	description := r.Description
	if runes := []rune(description); len(runes) > descriptionLimit {
		description = string(runes[:descriptionLimit]) + "..."
	}

	return models.JobResult{
		ID:          r.JobID,
		Title:       r.Title,
		Company:     company,
		Location:    location,
		IsRemote:    r.IsRemote,
		Salary:      salary,
		Description: description,
		URL:         r.ApplyLink,
		Posted:      r.PostedAt,
	}
}
