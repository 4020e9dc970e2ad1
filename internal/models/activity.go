package models

import "time"

// Activity is the parent record describing one academic event. Optional text
// fields use the empty string as their explicit absent marker; dates and
// times are stored in their canonical string forms (2006-01-02 / 15:04).
type Activity struct {
	ID                   int64     `db:"id" json:"id"`
	ActivityType         string    `db:"activity_type" json:"activity_type"`
	SubCategory          string    `db:"sub_category" json:"sub_category"`
	SubCategoryOther     string    `db:"sub_category_other" json:"sub_category_other"`
	StartDate            string    `db:"start_date" json:"start_date"`
	EndDate              string    `db:"end_date" json:"end_date"`
	StartTime            string    `db:"start_time" json:"start_time"`
	EndTime              string    `db:"end_time" json:"end_time"`
	Venue                string    `db:"venue" json:"venue"`
	CollaborationSponsor string    `db:"collaboration_sponsor" json:"collaboration_sponsor"`
	Highlights           string    `db:"highlights" json:"highlights"`
	KeyTakeaway          string    `db:"key_takeaway" json:"key_takeaway"`
	Summary              string    `db:"summary" json:"summary"`
	FollowUpPlan         string    `db:"follow_up_plan" json:"follow_up_plan"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// ActivitySummary is the listing projection for previously captured reports.
type ActivitySummary struct {
	ID           int64     `db:"id" json:"id"`
	ActivityType string    `db:"activity_type" json:"activity_type"`
	StartDate    string    `db:"start_date" json:"start_date"`
	Venue        string    `db:"venue" json:"venue"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
