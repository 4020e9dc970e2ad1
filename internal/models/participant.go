package models

// ParticipantType enumerates the closed set of audience categories.
type ParticipantType string

const (
	ParticipantFaculty         ParticipantType = "faculty"
	ParticipantStudent         ParticipantType = "student"
	ParticipantResearchScholar ParticipantType = "research_scholar"
)

// MaxParticipantCount bounds a single participant-type row.
const MaxParticipantCount = 9999

// Valid reports whether the type belongs to the closed set.
func (t ParticipantType) Valid() bool {
	switch t {
	case ParticipantFaculty, ParticipantStudent, ParticipantResearchScholar:
		return true
	default:
		return false
	}
}

// Participant records how many attendees of one type joined the activity.
// Each type appears at most once per activity.
type Participant struct {
	ID              int64           `db:"id" json:"id"`
	ActivityID      int64           `db:"activity_id" json:"activity_id"`
	ParticipantType ParticipantType `db:"participant_type" json:"participant_type"`
	Count           int             `db:"count" json:"count"`
}
