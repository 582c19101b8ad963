package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracking-jobs/backend/internal/dtos"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

// CaptureService persists jobs pushed by the browser extension: exactly one
// stored job per (user, external_id).
type CaptureService struct {
	DB *gorm.DB
}

func NewCaptureService(db *gorm.DB) *CaptureService {
	return &CaptureService{DB: db}
}

// Capture validates the payload, checks ownership and inserts the job.
// Duplicate suppression is atomic: the insert itself hits the partial unique
// index on (user_id, external_id), so concurrent captures of the same posting
// cannot both land. The existence check before the insert is only a fast path
// that spares the extension a failed write on plain retries.
func (s *CaptureService) Capture(ctx context.Context, req *dtos.CaptureRequest) (*models.Job, error) {
	if req.UserID == "" || req.Title == "" || req.Company == "" {
		return nil, ErrMissingFields
	}

	var user models.User
	err := s.DB.WithContext(ctx).Select("id").First(&user, "id = ?", req.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidUser
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if req.ExternalID != "" {
		var count int64
		err := s.DB.WithContext(ctx).Model(&models.Job{}).
			Where("user_id = ? AND external_id = ?", req.UserID, req.ExternalID).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("checking for existing job: %w", err)
		}
		if count > 0 {
			return nil, ErrDuplicateJob
		}
	}

	status := models.StatusApplied
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	appliedDate := models.Date(req.AppliedDate)
	if appliedDate.IsZero() {
		appliedDate = models.Today()
	}

	job := &models.Job{
		UserID:      req.UserID,
		Title:       truncate(req.Title, 255),
		Company:     truncate(req.Company, 255),
		Location:    req.Location,
		Description: req.Description,
		JobURL:      req.URL,
		ExternalID:  req.ExternalID,
		Status:      status,
		AppliedDate: appliedDate,
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateJob
		}
		return nil, fmt.Errorf("inserting job: %w", err)
	}
	return job, nil
}

// truncate cuts s to at most max characters, so an oversized scrape still
// fits the varchar(255) columns.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
