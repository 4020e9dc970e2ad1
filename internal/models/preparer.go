package models

// ReportPreparer identifies who compiled the report. Designation is optional
// at row creation but required for the report to validate as a whole.
type ReportPreparer struct {
	ID                 int64  `db:"id" json:"id"`
	ActivityID         int64  `db:"activity_id" json:"activity_id"`
	Name               string `db:"name" json:"name"`
	Designation        string `db:"designation" json:"designation"`
	SignatureImagePath string `db:"signature_image_path" json:"signature_image_path"`
}
