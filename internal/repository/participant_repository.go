package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// ParticipantRepository persists the participant-type rows.
type ParticipantRepository struct {
	db *sqlx.DB
}

// NewParticipantRepository constructs the repository.
func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Replace swaps the full participant set for the activity in one transaction.
func (r *ParticipantRepository) Replace(ctx context.Context, activityID int64, participants []models.Participant) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin participants transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM participants WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("clear participants: %w", err)
	}

	const insertQuery = `INSERT INTO participants (activity_id, participant_type, count) VALUES (?, ?, ?)`
	for i := range participants {
		res, execErr := tx.ExecContext(ctx, insertQuery, activityID, participants[i].ParticipantType, participants[i].Count)
		if execErr != nil {
			err = fmt.Errorf("insert participant: %w", execErr)
			return err
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			participants[i].ID = id
		}
		participants[i].ActivityID = activityID
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit participants: %w", err)
	}
	return nil
}

// ListByActivity returns the stored participant rows in insertion order.
func (r *ParticipantRepository) ListByActivity(ctx context.Context, activityID int64) ([]models.Participant, error) {
	const query = `SELECT id, activity_id, participant_type, count
FROM participants WHERE activity_id = ? ORDER BY id ASC`

	var participants []models.Participant
	if err := r.db.SelectContext(ctx, &participants, query, activityID); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
