package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Job statuses.
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
)

// Inquiry statuses.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Categories is the fixed set of job categories the public site filters on.
// It is not enforced at storage level.
var Categories = []string{"gulf", "europe", "asia", "healthcare"}

// ValidJobStatus reports whether s is a recognized job status.
func ValidJobStatus(s string) bool {
	return s == JobStatusActive || s == JobStatusInactive
}

// ValidInquiryStatus reports whether s is a recognized inquiry status.
func ValidInquiryStatus(s string) bool {
	return s == InquiryStatusNew || s == InquiryStatusContacted || s == InquiryStatusClosed
}

type Job struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Category     string `json:"category" db:"category"`
	Location     string `json:"location" db:"location"`
	SalaryRange  string `json:"salary_range,omitempty" db:"salary_range"`
	Contact      string `json:"contact" db:"contact"`
	Description  string `json:"description" db:"description"`
	Requirements string `json:"requirements,omitempty" db:"requirements"`
	Status       string `json:"status" db:"status"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
	UpdatedAt    int64  `json:"updated_at" db:"updated_at"`
}

// JobPatch carries a partial update: nil fields keep their stored value.
type JobPatch struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	Location     *string `json:"location"`
	SalaryRange  *string `json:"salary_range"`
	Contact      *string `json:"contact"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status"`
}

// JobFilter narrows a job listing. Zero values impose no constraint.
type JobFilter struct {
	Category string
	Status   string
}

type Inquiry struct {
	ID       int64  `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Phone    string `json:"phone,omitempty" db:"phone"`
	JobID    *int64 `json:"job_id,omitempty" db:"job_id"`
	// JobTitle is populated on admin listings via a join; empty when the
	// inquiry is not tied to a job.
	JobTitle  string `json:"job_title,omitempty" db:"job_title"`
	Message   string `json:"message" db:"message"`
	Status    string `json:"status" db:"status"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}
