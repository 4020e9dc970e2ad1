package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// PreparerRepository persists the report-preparer rows.
type PreparerRepository struct {
	db *sqlx.DB
}

// NewPreparerRepository constructs the repository.
func NewPreparerRepository(db *sqlx.DB) *PreparerRepository {
	return &PreparerRepository{db: db}
}

// Replace swaps the full preparer set for the activity in one transaction.
func (r *PreparerRepository) Replace(ctx context.Context, activityID int64, preparers []models.ReportPreparer) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin preparers transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM report_preparers WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("clear preparers: %w", err)
	}

	const insertQuery = `INSERT INTO report_preparers (activity_id, name, designation, signature_image_path)
VALUES (?, ?, ?, ?)`
	for i := range preparers {
		res, execErr := tx.ExecContext(ctx, insertQuery,
			activityID, preparers[i].Name, preparers[i].Designation, preparers[i].SignatureImagePath,
		)
		if execErr != nil {
			err = fmt.Errorf("insert preparer: %w", execErr)
			return err
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			preparers[i].ID = id
		}
		preparers[i].ActivityID = activityID
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit preparers: %w", err)
	}
	return nil
}

// ListByActivity returns the stored preparers in insertion order.
func (r *PreparerRepository) ListByActivity(ctx context.Context, activityID int64) ([]models.ReportPreparer, error) {
	const query = `SELECT id, activity_id, name, designation, signature_image_path
FROM report_preparers WHERE activity_id = ? ORDER BY id ASC`

	var preparers []models.ReportPreparer
	if err := r.db.SelectContext(ctx, &preparers, query, activityID); err != nil {
		return nil, fmt.Errorf("list preparers: %w", err)
	}
	return preparers, nil
}
