package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS activities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity_type VARCHAR(50) NOT NULL,
	sub_category VARCHAR(50),
	sub_category_other TEXT,
	start_date DATE NOT NULL,
	end_date DATE,
	start_time TIME,
	end_time TIME,
	venue VARCHAR(200),
	collaboration_sponsor TEXT,
	highlights TEXT,
	key_takeaway TEXT,
	summary TEXT,
	follow_up_plan TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS speakers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity_id INTEGER NOT NULL,
	name VARCHAR(100) NOT NULL,
	title_position VARCHAR(100),
	organization VARCHAR(150),
	contact_info VARCHAR(200),
	presentation_title VARCHAR(200),
	profile_image_path VARCHAR(500),
	profile_text TEXT,
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS participants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity_id INTEGER NOT NULL,
	participant_type VARCHAR(20) NOT NULL,
	count INTEGER NOT NULL,
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS report_preparers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity_id INTEGER NOT NULL,
	name VARCHAR(100) NOT NULL,
	designation VARCHAR(100),
	signature_image_path VARCHAR(500),
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS activity_photos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity_id INTEGER NOT NULL,
	photo_path VARCHAR(500) NOT NULL,
	photo_type VARCHAR(20) DEFAULT 'activity',
	caption TEXT,
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
)`,
}

// InitSchema creates the report tables when they do not yet exist.
// Safe to run on every process launch.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
	}
	return nil
}
