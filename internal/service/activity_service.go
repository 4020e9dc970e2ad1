package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/amlds-dept/activity-reporter/internal/models"
	"github.com/amlds-dept/activity-reporter/internal/validation"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
)

type activityStore interface {
	Create(ctx context.Context, a *models.Activity) error
	Update(ctx context.Context, a *models.Activity) error
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	List(ctx context.Context) ([]models.ActivitySummary, error)
}

// Synopsis carries the four long-form narrative fields captured by the
// synopsis section.
type Synopsis struct {
	Highlights   string
	KeyTakeaway  string
	Summary      string
	FollowUpPlan string
}

// ActivityService manages the parent activity record. The record is created
// on the first successful save of the general-info section and mutated in
// place thereafter, never recreated.
type ActivityService struct {
	repo   activityStore
	logger *zap.Logger
}

// NewActivityService constructs the service.
func NewActivityService(repo activityStore, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, logger: logger}
}

// SaveGeneralInfo validates and persists the parent record. The assigned
// identifier is available on the passed activity after a first save.
func (s *ActivityService) SaveGeneralInfo(ctx context.Context, a *models.Activity) error {
	if problems := validation.ValidateActivity(*a); len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if a.ID == 0 {
		if err := s.repo.Create(ctx, a); err != nil {
			return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to create activity")
		}
		s.logger.Sugar().Infow("activity created", "activity_id", a.ID, "type", a.ActivityType)
		return nil
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to update activity")
	}
	s.logger.Sugar().Infow("activity updated", "activity_id", a.ID)
	return nil
}

// SaveSynopsis updates the narrative fields on an existing activity.
func (s *ActivityService) SaveSynopsis(ctx context.Context, activityID int64, syn Synopsis) error {
	if activityID == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before the synopsis")
	}

	a, err := s.repo.GetByID(ctx, activityID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load activity")
	}
	if a == nil {
		return appErrors.ErrNotFound
	}

	a.Highlights = syn.Highlights
	a.KeyTakeaway = syn.KeyTakeaway
	a.Summary = syn.Summary
	a.FollowUpPlan = syn.FollowUpPlan

	if problems := validation.ValidateActivity(*a); len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to update synopsis")
	}
	s.logger.Sugar().Infow("synopsis saved", "activity_id", activityID)
	return nil
}

// Get loads one activity.
func (s *ActivityService) Get(ctx context.Context, activityID int64) (*models.Activity, error) {
	a, err := s.repo.GetByID(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load activity")
	}
	if a == nil {
		return nil, appErrors.ErrNotFound
	}
	return a, nil
}

// List returns summaries of all captured activities, newest first.
func (s *ActivityService) List(ctx context.Context) ([]models.ActivitySummary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to list activities")
	}
	return items, nil
}
