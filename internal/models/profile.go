package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceItem struct {
	Title    string `bson:"title" json:"title"`
	Company  string `bson:"company" json:"company"`
	Duration string `bson:"duration" json:"duration"`
}

type EducationItem struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        string `bson:"year" json:"year"`
}

// Profile holds the parsed CV data for one user plus the cached job-search
// results. At most one profile exists per user (unique index on user_id).
type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	CVURL      string             `bson:"cv_url,omitempty" json:"cvUrl,omitempty"`
	Summary    string             `bson:"summary" json:"summary"`
	Skills     []string           `bson:"skills" json:"skills"`
	Experience []ExperienceItem   `bson:"experience" json:"experience"`
	Education  []EducationItem    `bson:"education" json:"education"`

	// Cached jobs to save external API requests.
	CachedJobs   []JobResult `bson:"cached_jobs" json:"cachedJobs"`
	JobsCachedAt *time.Time  `bson:"jobs_cached_at,omitempty" json:"jobsCachedAt,omitempty"`
	JobsKeyword  string      `bson:"jobs_keyword,omitempty" json:"jobsKeyword,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
