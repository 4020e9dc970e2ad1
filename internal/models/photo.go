package models

// PhotoType classifies an uploaded image.
type PhotoType string

const (
	PhotoActivity PhotoType = "activity"
	PhotoSpeaker  PhotoType = "speaker"
	PhotoOther    PhotoType = "other"
)

// Valid reports whether the type belongs to the closed set.
func (t PhotoType) Valid() bool {
	switch t {
	case PhotoActivity, PhotoSpeaker, PhotoOther:
		return true
	default:
		return false
	}
}

// ActivityPhoto references an image stored for the activity.
type ActivityPhoto struct {
	ID         int64     `db:"id" json:"id"`
	ActivityID int64     `db:"activity_id" json:"activity_id"`
	PhotoPath  string    `db:"photo_path" json:"photo_path"`
	PhotoType  PhotoType `db:"photo_type" json:"photo_type"`
	Caption    string    `db:"caption" json:"caption"`
}
