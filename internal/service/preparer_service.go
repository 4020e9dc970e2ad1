package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amlds-dept/activity-reporter/internal/models"
	"github.com/amlds-dept/activity-reporter/internal/validation"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
	"github.com/amlds-dept/activity-reporter/pkg/storage"
)

type preparerStore interface {
	Replace(ctx context.Context, activityID int64, preparers []models.ReportPreparer) error
	ListByActivity(ctx context.Context, activityID int64) ([]models.ReportPreparer, error)
}

// PreparerService manages the report-prepared-by section. Designation is not
// required to save a row; the whole-report check enforces it before export.
type PreparerService struct {
	repo     preparerStore
	assets   assetImporter
	maxImage int64
	logger   *zap.Logger
}

// NewPreparerService constructs the service.
func NewPreparerService(repo preparerStore, assets assetImporter, maxImageBytes int64, logger *zap.Logger) *PreparerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreparerService{repo: repo, assets: assets, maxImage: maxImageBytes, logger: logger}
}

// Save validates and replaces the full preparer set for the activity.
func (s *PreparerService) Save(ctx context.Context, activityID int64, preparers []models.ReportPreparer) error {
	if activityID == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before adding report preparers")
	}
	if len(preparers) > models.MaxPreparers {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d report preparers are allowed", models.MaxPreparers))
	}

	var problems []string
	for i, preparer := range preparers {
		for _, problem := range validation.ValidatePreparer(preparer) {
			problems = append(problems, fmt.Sprintf("Report Preparer %d: %s", i+1, problem))
		}
	}
	if len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if err := s.repo.Replace(ctx, activityID, preparers); err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to save report preparers")
	}
	s.logger.Sugar().Infow("report preparers saved", "activity_id", activityID, "count", len(preparers))
	return nil
}

// List returns the stored preparers in insertion order.
func (s *PreparerService) List(ctx context.Context, activityID int64) ([]models.ReportPreparer, error) {
	preparers, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load report preparers")
	}
	return preparers, nil
}

// AttachSignature imports a signature image into managed storage and returns
// the stored reference.
func (s *PreparerService) AttachSignature(srcPath string) (string, error) {
	if s.assets == nil {
		return "", appErrors.Clone(appErrors.ErrInternal, "asset storage not configured")
	}
	ref, err := s.assets.ImportImage(srcPath, storage.AssetSignature, 0, s.maxImage)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.KindAsset, appErrors.ErrAsset.Code, "failed to import signature image")
	}
	return ref, nil
}
