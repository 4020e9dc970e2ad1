package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// PhotoRepository persists the activity-photo rows.
type PhotoRepository struct {
	db *sqlx.DB
}

// NewPhotoRepository constructs the repository.
func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Replace swaps the full photo set for the activity in one transaction.
func (r *PhotoRepository) Replace(ctx context.Context, activityID int64, photos []models.ActivityPhoto) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin photos transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM activity_photos WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("clear photos: %w", err)
	}

	const insertQuery = `INSERT INTO activity_photos (activity_id, photo_path, photo_type, caption)
VALUES (?, ?, ?, ?)`
	for i := range photos {
		photoType := photos[i].PhotoType
		if photoType == "" {
			photoType = models.PhotoActivity
		}
		res, execErr := tx.ExecContext(ctx, insertQuery, activityID, photos[i].PhotoPath, photoType, photos[i].Caption)
		if execErr != nil {
			err = fmt.Errorf("insert photo: %w", execErr)
			return err
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			photos[i].ID = id
		}
		photos[i].ActivityID = activityID
		photos[i].PhotoType = photoType
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit photos: %w", err)
	}
	return nil
}

// ListByActivity returns the stored photos in insertion order.
func (r *PhotoRepository) ListByActivity(ctx context.Context, activityID int64) ([]models.ActivityPhoto, error) {
	const query = `SELECT id, activity_id, photo_path, photo_type, caption
FROM activity_photos WHERE activity_id = ? ORDER BY id ASC`

	var photos []models.ActivityPhoto
	if err := r.db.SelectContext(ctx, &photos, query, activityID); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}
