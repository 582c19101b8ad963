package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracking-jobs/backend/internal/dtos"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

// JobService mediates all reads and writes on the jobs table. Every
// operation is scoped to the owning user; a job belonging to someone else
// behaves exactly like a missing job.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) Create(ctx context.Context, userID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	status := models.StatusWishlist
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "BRL"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 3
	}

	job := &models.Job{
		UserID:         userID,
		Title:          truncate(req.Title, 255),
		Company:        truncate(req.Company, 255),
		Location:       req.Location,
		WorkType:       req.WorkType,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Currency:       currency,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
		Notes:          req.Notes,
		JobURL:         req.JobURL,
		Source:         req.Source,
		Priority:       priority,
		Status:         status,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("inserting job: %w", err)
	}
	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, userID, jobID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		First(&job, "id = ? AND user_id = ?", jobID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("loading job: %w", err)
	}
	return &job, nil
}

// List returns the user's jobs, newest first, optionally narrowed by the
// list view's filters.
func (s *JobService) List(ctx context.Context, userID string, query *dtos.JobListQuery) ([]models.Job, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if query != nil {
		if query.Status != "" && query.Status != "all" {
			q = q.Where("status = ?", query.Status)
		}
		if query.WorkType != "" && query.WorkType != "all" {
			q = q.Where("work_type = ?", query.WorkType)
		}
		if query.Search != "" {
			pattern := "%" + query.Search + "%"
			q = q.Where("title LIKE ? OR company LIKE ?", pattern, pattern)
		}
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update. Status is excluded on purpose: status
// moves through UpdateStatus so the applied_date rule cannot be bypassed.
func (s *JobService) Update(ctx context.Context, userID, jobID string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.GetByID(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	if req.Notes != nil && req.Benefits == nil {
		// Legacy rows carry benefits encoded inside notes; AfterFind decoded
		// them into job.Benefits. Rewriting notes alone would drop that
		// encoded text, so materialize the decoded value into its column.
		updates["benefits"] = job.Benefits
	}
	setString("location", req.Location)
	setString("work_type", req.WorkType)
	setString("employment_type", req.EmploymentType)
	setString("currency", req.Currency)
	setString("description", req.Description)
	setString("requirements", req.Requirements)
	setString("benefits", req.Benefits)
	setString("notes", req.Notes)
	setString("job_url", req.JobURL)
	setString("source", req.Source)
	setString("contact_name", req.ContactName)
	setString("contact_email", req.ContactEmail)
	setString("contact_phone", req.ContactPhone)
	if req.Title != nil {
		updates["title"] = truncate(*req.Title, 255)
	}
	if req.Company != nil {
		updates["company"] = truncate(*req.Company, 255)
	}
	if req.SalaryMin != nil {
		updates["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		updates["salary_max"] = *req.SalaryMax
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.AppliedDate != nil {
		updates["applied_date"] = nullableDate(*req.AppliedDate)
	}
	if req.InterviewDate != nil {
		updates["interview_date"] = nullableDate(*req.InterviewDate)
	}

	if len(updates) == 0 {
		return job, nil
	}
	if err := s.DB.WithContext(ctx).Model(job).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating job: %w", err)
	}
	return s.GetByID(ctx, userID, jobID)
}

// UpdateStatus moves a job to a new pipeline status. Any status can reach
// any other status; the one mechanized rule is the applied_date stamp:
// moving into "applied" records today, moving anywhere else clears it.
func (s *JobService) UpdateStatus(ctx context.Context, userID, jobID string, status models.Status) (*models.Job, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	job, err := s.GetByID(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.StatusApplied {
		updates["applied_date"] = models.Today()
	} else {
		updates["applied_date"] = nil
	}

	if err := s.DB.WithContext(ctx).Model(job).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating job status: %w", err)
	}
	return s.GetByID(ctx, userID, jobID)
}

// Delete removes the job permanently. There is no soft delete.
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).
		Delete(&models.Job{})
	if res.Error != nil {
		return fmt.Errorf("deleting job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// nullableDate maps an empty date string to SQL NULL.
func nullableDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return models.Date(s)
}
