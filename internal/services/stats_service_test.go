package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

func seedJob(t *testing.T, db *gorm.DB, userID string, status models.Status, appliedDate, interviewDate string) *models.Job {
	t.Helper()

	job := &models.Job{
		UserID:        userID,
		Title:         "Dev",
		Company:       "Acme",
		Status:        status,
		AppliedDate:   models.Date(appliedDate),
		InterviewDate: models.Date(interviewDate),
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	svc := NewStatsService(db)

	for _, status := range []models.Status{
		models.StatusApplied, models.StatusApplied, models.StatusInterview,
		models.StatusOffer, models.StatusRejected,
	} {
		seedJob(t, db, "u1", status, "", "")
	}

	stats, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalJobs)
	assert.Equal(t, 3, stats.ActiveApplications)
	assert.Equal(t, 1, stats.Interviews)
	assert.Equal(t, 1, stats.Offers)
	assert.Equal(t, 60, stats.ResponseRate)
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	svc := NewStatsService(db)

	stats, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalJobs)
	assert.Equal(t, 0, stats.ResponseRate)
}

func TestDashboardStatsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	createUser(t, db, "u2")
	svc := NewStatsService(db)

	seedJob(t, db, "u1", models.StatusApplied, "", "")
	seedJob(t, db, "u2", models.StatusOffer, "", "")

	stats, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalJobs)
	assert.Equal(t, 0, stats.Offers)
}

func TestRecentJobsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	svc := NewStatsService(db)

	dates := []string{"2025-01-01", "2025-03-01", "2025-02-01", "2025-06-01", "2025-05-01", "2025-04-01"}
	for _, d := range dates {
		seedJob(t, db, "u1", models.StatusApplied, d, "")
	}

	recent, err := svc.RecentJobs(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, models.Date("2025-06-01"), recent[0].AppliedDate)
	assert.Equal(t, models.Date("2025-05-01"), recent[1].AppliedDate)
	// The oldest application falls off the list.
	for _, job := range recent {
		assert.NotEqual(t, models.Date("2025-01-01"), job.AppliedDate)
	}
}

// Jobs that were never applied to sort after every dated application,
// whatever the driver's default NULL position is.
func TestRecentJobsNeverAppliedSortLast(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	svc := NewStatsService(db)

	seedJob(t, db, "u1", models.StatusWishlist, "", "")
	seedJob(t, db, "u1", models.StatusApplied, "2025-02-01", "")
	seedJob(t, db, "u1", models.StatusApplied, "2025-03-01", "")

	recent, err := svc.RecentJobs(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, models.Date("2025-03-01"), recent[0].AppliedDate)
	assert.Equal(t, models.Date("2025-02-01"), recent[1].AppliedDate)
	assert.True(t, recent[2].AppliedDate.IsZero())
}

func TestUpcomingInterviews(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1")
	svc := NewStatsService(db)

	today := time.Now().Format(models.DateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(models.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	lastWeek := time.Now().AddDate(0, 0, -7).Format(models.DateLayout)

	seedJob(t, db, "u1", models.StatusInterview, "", nextWeek)
	seedJob(t, db, "u1", models.StatusInterview, "", tomorrow)
	seedJob(t, db, "u1", models.StatusInterview, "", today)
	// Excluded: past interview, wrong status, no date.
	seedJob(t, db, "u1", models.StatusInterview, "", lastWeek)
	seedJob(t, db, "u1", models.StatusOffer, "", nextWeek)
	seedJob(t, db, "u1", models.StatusInterview, "", "")

	upcoming, err := svc.UpcomingInterviews(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, models.Date(today), upcoming[0].InterviewDate)
	assert.Equal(t, models.Date(tomorrow), upcoming[1].InterviewDate)
	assert.Equal(t, models.Date(nextWeek), upcoming[2].InterviewDate)
}
