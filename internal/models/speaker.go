package models

// Speaker is a resource person attached to one activity. Rows are owned by
// the activity and fully replaced on each save of the speakers section.
type Speaker struct {
	ID                int64  `db:"id" json:"id"`
	ActivityID        int64  `db:"activity_id" json:"activity_id"`
	Name              string `db:"name" json:"name"`
	TitlePosition     string `db:"title_position" json:"title_position"`
	Organization      string `db:"organization" json:"organization"`
	ContactInfo       string `db:"contact_info" json:"contact_info"`
	PresentationTitle string `db:"presentation_title" json:"presentation_title"`
	ProfileImagePath  string `db:"profile_image_path" json:"profile_image_path"`
	ProfileText       string `db:"profile_text" json:"profile_text"`
}
