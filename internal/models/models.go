package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire and storage format for applied_date / interview_date.
const DateLayout = "2006-01-02"

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `json:"full_name"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Job struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owner. Every query and mutation must be scoped to this field.
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `json:"-"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Company string `gorm:"size:255;not null" json:"company"`

	Location    string `json:"location,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	JobURL      string `json:"job_url,omitempty"`
	// ExternalID is the job board's own id, used for duplicate suppression.
	// Uniqueness of (user_id, external_id) is enforced by a partial unique
	// index created in database.Connect.
	ExternalID string `json:"external_id,omitempty"`
	Source     string `json:"source,omitempty"`

	Status         Status `gorm:"size:32;default:'wishlist'" json:"status"`
	WorkType       string `gorm:"size:16" json:"work_type,omitempty"`
	EmploymentType string `gorm:"size:16" json:"employment_type,omitempty"`

	SalaryMin *int   `json:"salary_min,omitempty"`
	SalaryMax *int   `json:"salary_max,omitempty"`
	Currency  string `gorm:"size:8;default:'BRL'" json:"currency"`

	Requirements string `gorm:"type:text" json:"requirements,omitempty"`
	Benefits     string `gorm:"type:text" json:"benefits,omitempty"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`

	Priority int `gorm:"default:3" json:"priority"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	// Dates travel as YYYY-MM-DD strings end to end.
	AppliedDate   Date `gorm:"type:date" json:"applied_date"`
	InterviewDate Date `gorm:"type:date" json:"interview_date"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// AfterFind lifts benefits out of the legacy notes encoding for rows written
// before benefits became its own column.
func (j *Job) AfterFind(tx *gorm.DB) error {
	if j.Benefits == "" && j.Notes != "" {
		j.Benefits, j.Notes = DecodeLegacyNotes(j.Notes)
	}
	return nil
}
