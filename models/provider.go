package models

// Provider is a directory entry for a service professional. Rating and
// job counts are maintained elsewhere and read-only to the booking engine.
type Provider struct {
	ID             string  `bson:"id" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Email          string  `bson:"email" json:"email,omitempty"`
	Phone          string  `bson:"phone" json:"phone,omitempty"`
	Specialization string  `bson:"specialization" json:"specialization"` // Single category string
	Location       string  `bson:"location" json:"location,omitempty"`
	Active         bool    `bson:"active" json:"active"`
	Rating         float64 `bson:"rating" json:"rating,omitempty"`
	TotalJobs      int     `bson:"total_jobs" json:"total_jobs,omitempty"`
}
