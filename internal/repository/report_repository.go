package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// ReportRepository assembles the ephemeral ActivityReport aggregate from the
// parent record and its four child collections.
type ReportRepository struct {
	activities   *ActivityRepository
	speakers     *SpeakerRepository
	participants *ParticipantRepository
	preparers    *PreparerRepository
	photos       *PhotoRepository
}

// NewReportRepository constructs the aggregate reader.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{
		activities:   NewActivityRepository(db),
		speakers:     NewSpeakerRepository(db),
		participants: NewParticipantRepository(db),
		preparers:    NewPreparerRepository(db),
		photos:       NewPhotoRepository(db),
	}
}

// GetFullReport loads one activity with all child collections in stored
// order, or nil when the activity does not exist.
func (r *ReportRepository) GetFullReport(ctx context.Context, activityID int64) (*models.ActivityReport, error) {
	activity, err := r.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, nil
	}

	speakers, err := r.speakers.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	participants, err := r.participants.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	preparers, err := r.preparers.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	photos, err := r.photos.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	return &models.ActivityReport{
		Activity:     *activity,
		Speakers:     speakers,
		Participants: participants,
		Preparers:    preparers,
		Photos:       photos,
	}, nil
}
