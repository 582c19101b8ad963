package dtos

import "github.com/tracking-jobs/backend/internal/models"

// CaptureRequest is the payload the browser extension POSTs to
// /api/jobs/capture. Required fields are validated in the capture service,
// not with binding tags, so the endpoint can answer with the exact error
// body the extension expects.
type CaptureRequest struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Company string `json:"company"`

	// Optional Fields
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ExternalID  string `json:"external_id"`
	Status      string `json:"status"` // Defaults to "applied" if empty
	AppliedDate string `json:"applied_date"`
}

// JobExtractionRequest feeds raw page HTML to the AI extractor.
type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

type JobCreationRequest struct {
	Title   string `json:"title" binding:"required"`
	Company string `json:"company" binding:"required"`

	// Optional Fields
	Location       string `json:"location"`
	WorkType       string `json:"work_type"`
	EmploymentType string `json:"employment_type"`
	SalaryMin      *int   `json:"salary_min"`
	SalaryMax      *int   `json:"salary_max"`
	Currency       string `json:"currency"` // Defaults to "BRL" if empty
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Benefits       string `json:"benefits"`
	Notes          string `json:"notes"`
	JobURL         string `json:"job_url"`
	Source         string `json:"source"`
	Priority       int    `json:"priority"` // 1-5, defaults to 3
	Status         string `json:"status"`   // Defaults to "wishlist" if empty
	ContactName    string `json:"contact_name"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
}

// JobUpdateRequest carries a partial update; nil fields are left untouched.
type JobUpdateRequest struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	WorkType       *string `json:"work_type"`
	EmploymentType *string `json:"employment_type"`
	SalaryMin      *int    `json:"salary_min"`
	SalaryMax      *int    `json:"salary_max"`
	Currency       *string `json:"currency"`
	Description    *string `json:"description"`
	Requirements   *string `json:"requirements"`
	Benefits       *string `json:"benefits"`
	Notes          *string `json:"notes"`
	JobURL         *string `json:"job_url"`
	Source         *string `json:"source"`
	Priority       *int    `json:"priority"`
	ContactName    *string `json:"contact_name"`
	ContactEmail   *string `json:"contact_email"`
	ContactPhone   *string `json:"contact_phone"`
	AppliedDate    *string `json:"applied_date"`
	InterviewDate  *string `json:"interview_date"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// JobListQuery mirrors the list view's filters.
type JobListQuery struct {
	Status   string `form:"status"`
	WorkType string `form:"work_type"`
	Search   string `form:"q"`
}

type DashboardStats struct {
	TotalJobs          int `json:"totalJobs"`
	ActiveApplications int `json:"activeApplications"`
	Interviews         int `json:"interviews"`
	Offers             int `json:"offers"`
	ResponseRate       int `json:"responseRate"`
}

type DashboardResponse struct {
	Stats              DashboardStats `json:"stats"`
	RecentJobs         []models.Job   `json:"recent_jobs"`
	UpcomingInterviews []models.Job   `json:"upcoming_interviews"`
}
