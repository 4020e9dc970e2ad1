package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// ActivityRepository persists the parent activity record.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs the repository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity and assigns its identifier.
func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	now := time.Now().UTC()
	const query = `INSERT INTO activities (
	activity_type, sub_category, sub_category_other,
	start_date, end_date, start_time, end_time,
	venue, collaboration_sponsor, highlights,
	key_takeaway, summary, follow_up_plan,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		a.ActivityType, a.SubCategory, a.SubCategoryOther,
		a.StartDate, a.EndDate, a.StartTime, a.EndTime,
		a.Venue, a.CollaborationSponsor, a.Highlights,
		a.KeyTakeaway, a.Summary, a.FollowUpPlan,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("resolve activity id: %w", err)
	}
	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// Update mutates an existing activity in place and refreshes updated_at.
func (r *ActivityRepository) Update(ctx context.Context, a *models.Activity) error {
	if a.ID == 0 {
		return fmt.Errorf("update activity: missing id")
	}
	now := time.Now().UTC()
	const query = `UPDATE activities SET
	activity_type = ?, sub_category = ?, sub_category_other = ?,
	start_date = ?, end_date = ?, start_time = ?, end_time = ?,
	venue = ?, collaboration_sponsor = ?, highlights = ?,
	key_takeaway = ?, summary = ?, follow_up_plan = ?,
	updated_at = ?
WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		a.ActivityType, a.SubCategory, a.SubCategoryOther,
		a.StartDate, a.EndDate, a.StartTime, a.EndTime,
		a.Venue, a.CollaborationSponsor, a.Highlights,
		a.KeyTakeaway, a.Summary, a.FollowUpPlan,
		now, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	a.UpdatedAt = now
	return nil
}

// GetByID fetches one activity, or nil when absent.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	const query = `SELECT id, activity_type, sub_category, sub_category_other,
	start_date, end_date, start_time, end_time,
	venue, collaboration_sponsor, highlights,
	key_takeaway, summary, follow_up_plan,
	created_at, updated_at
FROM activities WHERE id = ?`

	var a models.Activity
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// List returns activity summaries, newest first.
func (r *ActivityRepository) List(ctx context.Context) ([]models.ActivitySummary, error) {
	const query = `SELECT id, activity_type, start_date, venue, created_at
FROM activities
ORDER BY created_at DESC`

	var items []models.ActivitySummary
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return items, nil
}

// Delete removes an activity; child rows cascade at the schema level.
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}
