package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// SpeakerRepository persists the speakers child collection.
type SpeakerRepository struct {
	db *sqlx.DB
}

// NewSpeakerRepository constructs the repository.
func NewSpeakerRepository(db *sqlx.DB) *SpeakerRepository {
	return &SpeakerRepository{db: db}
}

// Replace swaps the full speaker set for the activity inside one transaction.
// A crash mid-save leaves either the old set or the new set, never a mix.
func (r *SpeakerRepository) Replace(ctx context.Context, activityID int64, speakers []models.Speaker) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin speakers transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM speakers WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("clear speakers: %w", err)
	}

	const insertQuery = `INSERT INTO speakers (
	activity_id, name, title_position, organization,
	contact_info, presentation_title, profile_image_path, profile_text
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for i := range speakers {
		res, execErr := tx.ExecContext(ctx, insertQuery,
			activityID, speakers[i].Name, speakers[i].TitlePosition, speakers[i].Organization,
			speakers[i].ContactInfo, speakers[i].PresentationTitle, speakers[i].ProfileImagePath, speakers[i].ProfileText,
		)
		if execErr != nil {
			err = fmt.Errorf("insert speaker: %w", execErr)
			return err
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			speakers[i].ID = id
		}
		speakers[i].ActivityID = activityID
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit speakers: %w", err)
	}
	return nil
}

// ListByActivity returns the stored speakers in insertion order.
func (r *SpeakerRepository) ListByActivity(ctx context.Context, activityID int64) ([]models.Speaker, error) {
	const query = `SELECT id, activity_id, name, title_position, organization,
	contact_info, presentation_title, profile_image_path, profile_text
FROM speakers WHERE activity_id = ? ORDER BY id ASC`

	var speakers []models.Speaker
	if err := r.db.SelectContext(ctx, &speakers, query, activityID); err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}
