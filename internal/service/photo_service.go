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

type photoStore interface {
	Replace(ctx context.Context, activityID int64, photos []models.ActivityPhoto) error
	ListByActivity(ctx context.Context, activityID int64) ([]models.ActivityPhoto, error)
}

// PhotoService manages the activity-photos section.
type PhotoService struct {
	repo     photoStore
	assets   assetImporter
	maxImage int64
	logger   *zap.Logger
}

// NewPhotoService constructs the service.
func NewPhotoService(repo photoStore, assets assetImporter, maxImageBytes int64, logger *zap.Logger) *PhotoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoService{repo: repo, assets: assets, maxImage: maxImageBytes, logger: logger}
}

// Save validates and replaces the full photo set for the activity. The
// two-photo minimum is an export-readiness rule, not a save rule, so fewer
// rows are accepted here.
func (s *PhotoService) Save(ctx context.Context, activityID int64, photos []models.ActivityPhoto) error {
	if activityID == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before adding photos")
	}
	if len(photos) > models.MaxPhotos {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d photos are allowed", models.MaxPhotos))
	}

	var problems []string
	for i, photo := range photos {
		for _, problem := range validation.ValidatePhoto(photo) {
			problems = append(problems, fmt.Sprintf("Photo %d: %s", i+1, problem))
		}
	}
	if len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if err := s.repo.Replace(ctx, activityID, photos); err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to save photos")
	}
	s.logger.Sugar().Infow("photos saved", "activity_id", activityID, "count", len(photos))
	return nil
}

// List returns the stored photos in insertion order.
func (s *PhotoService) List(ctx context.Context, activityID int64) ([]models.ActivityPhoto, error) {
	photos, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load photos")
	}
	return photos, nil
}

// AttachPhoto imports an external image into managed storage scoped to the
// activity and returns the row ready for the next Save.
func (s *PhotoService) AttachPhoto(activityID int64, srcPath string, photoType models.PhotoType, caption string) (models.ActivityPhoto, error) {
	if s.assets == nil {
		return models.ActivityPhoto{}, appErrors.Clone(appErrors.ErrInternal, "asset storage not configured")
	}
	if photoType == "" {
		photoType = models.PhotoActivity
	}
	ref, err := s.assets.ImportImage(srcPath, storage.AssetActivityPhoto, activityID, s.maxImage)
	if err != nil {
		return models.ActivityPhoto{}, appErrors.Wrap(err, appErrors.KindAsset, appErrors.ErrAsset.Code, "failed to import photo")
	}
	return models.ActivityPhoto{
		ActivityID: activityID,
		PhotoPath:  ref,
		PhotoType:  photoType,
		Caption:    caption,
	}, nil
}
