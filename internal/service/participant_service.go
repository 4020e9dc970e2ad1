package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amlds-dept/activity-reporter/internal/models"
	"github.com/amlds-dept/activity-reporter/internal/validation"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
)

type participantStore interface {
	Replace(ctx context.Context, activityID int64, participants []models.Participant) error
	ListByActivity(ctx context.Context, activityID int64) ([]models.Participant, error)
}

// ParticipantService manages the participants section. Rows with a
// non-positive count or a duplicated type are rejected before they reach
// the store.
type ParticipantService struct {
	repo   participantStore
	logger *zap.Logger
}

// NewParticipantService constructs the service.
func NewParticipantService(repo participantStore, logger *zap.Logger) *ParticipantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParticipantService{repo: repo, logger: logger}
}

// Save validates and replaces the full participant set for the activity.
func (s *ParticipantService) Save(ctx context.Context, activityID int64, participants []models.Participant) error {
	if activityID == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before adding participants")
	}
	if len(participants) > models.MaxParticipantRows {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d participant rows are allowed", models.MaxParticipantRows))
	}

	var problems []string
	seen := map[models.ParticipantType]bool{}
	for i, participant := range participants {
		for _, problem := range validation.ValidateParticipant(participant) {
			problems = append(problems, fmt.Sprintf("Participant Type %d: %s", i+1, problem))
		}
		if participant.ParticipantType != "" {
			if seen[participant.ParticipantType] {
				problems = append(problems, fmt.Sprintf("Duplicate participant type %q", participant.ParticipantType))
			}
			seen[participant.ParticipantType] = true
		}
	}
	if len(problems) > 0 {
		return appErrors.Validation(problems)
	}

	if err := s.repo.Replace(ctx, activityID, participants); err != nil {
		return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to save participants")
	}
	s.logger.Sugar().Infow("participants saved", "activity_id", activityID, "rows", len(participants))
	return nil
}

// List returns the stored participant rows in insertion order.
func (s *ParticipantService) List(ctx context.Context, activityID int64) ([]models.Participant, error) {
	participants, err := s.repo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load participants")
	}
	return participants, nil
}
