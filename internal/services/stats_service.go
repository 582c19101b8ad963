package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tracking-jobs/backend/internal/dtos"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

// StatsService computes the dashboard numbers for one user. Counts come from
// a single scan of the user's full job set; at tens or hundreds of rows per
// user there is nothing to gain from incremental aggregation.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) DashboardStats(ctx context.Context, userID string) (*dtos.DashboardStats, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).Find(&jobs, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("loading jobs for stats: %w", err)
	}

	stats := &dtos.DashboardStats{TotalJobs: len(jobs)}
	for _, job := range jobs {
		if job.Status.IsActive() {
			stats.ActiveApplications++
		}
		switch job.Status {
		case models.StatusInterview:
			stats.Interviews++
		case models.StatusOffer:
			stats.Offers++
		}
	}
	if stats.TotalJobs > 0 {
		rate := float64(stats.ActiveApplications) / float64(stats.TotalJobs) * 100
		stats.ResponseRate = int(math.Round(rate))
	}
	return stats, nil
}

// RecentJobs returns the 5 most recently applied jobs. NULLS LAST is
// explicit: postgres and sqlite disagree on the default NULL position, and a
// job that was never applied should not crowd out actual applications.
func (s *StatsService) RecentJobs(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date DESC NULLS LAST").
		Limit(5).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("loading recent jobs: %w", err)
	}
	return jobs, nil
}

// UpcomingInterviews returns up to 5 jobs in interview stage with an
// interview date today or later, soonest first.
func (s *StatsService) UpcomingInterviews(ctx context.Context, userID string) ([]models.Job, error) {
	today := time.Now().Format(models.DateLayout)

	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND status = ? AND interview_date >= ?", userID, models.StatusInterview, today).
		Order("interview_date ASC").
		Limit(5).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("loading upcoming interviews: %w", err)
	}
	return jobs, nil
}
