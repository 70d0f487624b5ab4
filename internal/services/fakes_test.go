package services_test

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/providers/jobsearch"
	mongorepo "github.com/resumatch/backend/internal/repositories/mongo"
	"github.com/resumatch/backend/internal/utils"
)

// fakeUserRepo mimics the users collection with its unique email index.
type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return mongorepo.ErrDuplicateEmail
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

// fakeProfileRepo mimics the profiles collection keyed by user id.
type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*models.Profile
	err      error // forced error for every call when set
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) ReplaceExtraction(_ context.Context, userID primitive.ObjectID, cvURL, summary string,
	skills []string, experience []models.ExperienceItem, education []models.EducationItem) (*models.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	now := time.Now().UTC()
	p, ok := r.profiles[userID]
	if !ok {
		p = &models.Profile{ID: primitive.NewObjectID(), UserID: userID, CreatedAt: now}
		r.profiles[userID] = p
	}
	p.CVURL = cvURL
	p.Summary = summary
	p.Skills = skills
	p.Experience = experience
	p.Education = education
	p.CachedJobs = []models.JobResult{}
	p.JobsCachedAt = nil
	p.JobsKeyword = ""
	p.UpdatedAt = now
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) UpdateJobCache(_ context.Context, userID primitive.ObjectID, jobs []models.JobResult, cachedAt time.Time, keyword string) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil
	}
	at := cachedAt.UTC()
	p.CachedJobs = jobs
	p.JobsCachedAt = &at
	p.JobsKeyword = keyword
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	delete(r.profiles, userID)
	return p, nil
}

// fakeSearcher records queries and replays canned results.
type fakeSearcher struct {
	results []jobsearch.Result
	err     error
	queries []string
}

func (s *fakeSearcher) Search(_ context.Context, query string) ([]jobsearch.Result, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

// fakeSink records saves and deletes.
type fakeSink struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *fakeSink) Save(_ context.Context, objectName, _ string, _ io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, objectName)
	return objectName, nil
}

func (s *fakeSink) Delete(_ context.Context, ref string) error {
	s.deleted = append(s.deleted, ref)
	return nil
}
