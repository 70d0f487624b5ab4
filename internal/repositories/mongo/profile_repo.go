package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/utils"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	// ReplaceExtraction upserts the profile for userID, replacing every
	// extraction field and resetting the job cache. Returns the updated doc.
	ReplaceExtraction(ctx context.Context, userID primitive.ObjectID, cvURL, summary string,
		skills []string, experience []models.ExperienceItem, education []models.EducationItem) (*models.Profile, error)
	// UpdateJobCache overwrites the cache fields only.
	UpdateJobCache(ctx context.Context, userID primitive.ObjectID, jobs []models.JobResult, cachedAt time.Time, keyword string) error
	// Delete removes the profile and returns the removed doc, or
	// utils.ErrNotFound if none existed.
	Delete(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
}

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{col: db.Collection("profiles")}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) ReplaceExtraction(ctx context.Context, userID primitive.ObjectID, cvURL, summary string,
	skills []string, experience []models.ExperienceItem, education []models.EducationItem) (*models.Profile, error) {

	if skills == nil {
		skills = []string{}
	}
	if experience == nil {
		experience = []models.ExperienceItem{}
	}
	if education == nil {
		education = []models.EducationItem{}
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"cv_url":     cvURL,
			"summary":    summary,
			"skills":     skills,
			"experience": experience,
			"education":  education,
			// a new CV invalidates any cached search results
			"cached_jobs":    []models.JobResult{},
			"jobs_cached_at": nil,
			"jobs_keyword":   "",
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.Profile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) UpdateJobCache(ctx context.Context, userID primitive.ObjectID, jobs []models.JobResult, cachedAt time.Time, keyword string) error {
	if jobs == nil {
		jobs = []models.JobResult{}
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"cached_jobs":    jobs,
			"jobs_cached_at": cachedAt.UTC(),
			"jobs_keyword":   keyword,
			"updated_at":     time.Now().UTC(),
		}},
	)
	return err
}

func (r *profileRepo) Delete(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOneAndDelete(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
