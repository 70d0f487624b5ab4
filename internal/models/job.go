package models

// JobResult is one mapped external search hit, immutable once cached.
// The cached set on a profile is always replaced whole, never merged.
type JobResult struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Company     string `bson:"company" json:"company"`
	Location    string `bson:"location" json:"location"`
	IsRemote    bool   `bson:"is_remote" json:"isRemote"`
	Salary      string `bson:"salary" json:"salary"` // "$min - $max" or "Not specified"
	Description string `bson:"description" json:"description"`
	URL         string `bson:"url" json:"url"`
	Posted      string `bson:"posted" json:"posted"`
}
