package model

import "time"

// Contractor is a contractor profile. Profiles are read-only through the API
// today; rows are provisioned out of band (see the seed migration).
type Contractor struct {
	ID            int64     `json:"id"             db:"id"`
	Name          string    `json:"name"           db:"name"`
	Company       string    `json:"company"        db:"company"`
	Role          string    `json:"role"           db:"role"`
	Location      string    `json:"location"       db:"location"`
	Rating        float64   `json:"rating"         db:"rating"`
	Reviews       int       `json:"reviews"        db:"reviews"`
	Email         string    `json:"email"          db:"email"`
	Phone         string    `json:"phone"          db:"phone"`
	Bio           string    `json:"bio"            db:"bio"`
	CompletedJobs int       `json:"completed_jobs" db:"completed_jobs"`
	Skills        []string  `json:"skills"         db:"skills"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}
