package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepositoryGetFullReportMissingActivity(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery("SELECT id, activity_type, sub_category").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	report, err := repo.GetFullReport(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryGetFullReport(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, activity_type, sub_category").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "activity_type", "sub_category", "sub_category_other",
			"start_date", "end_date", "start_time", "end_time",
			"venue", "collaboration_sponsor", "highlights",
			"key_takeaway", "summary", "follow_up_plan",
			"created_at", "updated_at",
		}).AddRow(int64(1), "Workshop", "", "", "2025-03-10", "", "", "", "Hall", "", "", "", "", "", now, now))
	mock.ExpectQuery("SELECT id, activity_id, name").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "activity_id", "name", "title_position", "organization",
			"contact_info", "presentation_title", "profile_image_path", "profile_text",
		}).AddRow(int64(2), int64(1), "Dr. Rao", "", "", "", "", "", ""))
	mock.ExpectQuery("SELECT id, activity_id, participant_type").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_id", "participant_type", "count"}).
			AddRow(int64(3), int64(1), "faculty", 3).
			AddRow(int64(4), int64(1), "student", 40))
	mock.ExpectQuery("SELECT id, activity_id, name, designation").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_id", "name", "designation", "signature_image_path"}).
			AddRow(int64(5), int64(1), "Prof. Mehta", "HoD", ""))
	mock.ExpectQuery("SELECT id, activity_id, photo_path").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_id", "photo_path", "photo_type", "caption"}).
			AddRow(int64(6), int64(1), "activities/1/a.jpg", "activity", ""))

	report, err := repo.GetFullReport(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "Workshop", report.Activity.ActivityType)
	assert.Len(t, report.Speakers, 1)
	assert.Equal(t, 43, report.TotalParticipants())
	assert.Len(t, report.Preparers, 1)
	assert.Len(t, report.Photos, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
