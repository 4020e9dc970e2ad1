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

type speakerStore interface {
	Replace(ctx context.Context, activityID int64, speakers []models.Speaker) error
	ListByActivity(ctx context.Context, activityID int64) ([]models.Speaker, error)
}

type assetImporter interface {
	ImportImage(srcPath string, class storage.AssetClass, activityID int64, maxBytes int64) (string, error)
}

// SpeakerService manages the speakers section.
type SpeakerService struct {
	repo     speakerStore
	assets   assetImporter
	maxImage int64
	logger   *zap.Logger
}

// NewSpeakerService constructs the service.
func NewSpeakerService(repo speakerStore, assets assetImporter, maxImageBytes int64, logger *zap.Logger) *SpeakerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeakerService{repo: repo, assets: assets, maxImage: maxImageBytes, logger: logger}
}

// Save validates and replaces the full speaker set for the activity.
func (s *SpeakerService) Save(ctx context.Context, activityID int64, speakers []models.Speaker) error {
	if activityID == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before adding speakers")
	}
	if len(speakers) > models.MaxSpeakers {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d speakers are allowed", models.MaxSpeakers))
	}

	var problems []string
	for i, speaker := range speakers {
		for _, problem := range validation.ValidateSpeaker(speaker) {
			problems = append(problems, fmt.Sprintf("Speaker %d: %s", i+1, problem))
		}
	}
	if len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if err := s.repo.Replace(ctx, activityID, speakers); err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to save speakers")
	}
	s.logger.Sugar().Infow("speakers saved", "activity_id", activityID, "count", len(speakers))
	return nil
}

// List returns the stored speakers in insertion order.
func (s *SpeakerService) List(ctx context.Context, activityID int64) ([]models.Speaker, error) {
	speakers, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load speakers")
	}
	return speakers, nil
}

// AttachProfileImage imports an external image into managed storage and
// returns the stored reference for the speaker row.
func (s *SpeakerService) AttachProfileImage(srcPath string) (string, error) {
	if s.assets == nil {
		return "", appErrors.Clone(appErrors.ErrInternal, "asset storage not configured")
	}
	ref, err := s.assets.ImportImage(srcPath, storage.AssetSpeakerProfile, 0, s.maxImage)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.KindAsset, appErrors.ErrAsset.Code, "failed to import profile image")
	}
	return ref, nil
}
