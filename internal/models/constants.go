package models

// ActivityTypes is the dropdown vocabulary for the activity type field.
var ActivityTypes = []string{
	"Seminar",
	"Workshop",
	"Conference",
	"Technical Talk",
	"Guest Talk",
	"Industry Visit",
	"Sports",
	"Cultural Competition",
	"Technical fest/ Academic fests",
	"CAADS",
	"Research Clubs / or any other Clubs",
	"Newsletter",
	"Alumni",
	"Faculty Development Program",
	"Quality Improvement Program",
	"Refresher Course",
	"MoU",
	"Outreach Activity",
	"International Event",
}

// SubCategories is the dropdown vocabulary for the optional sub-category.
// "Other" enables the free-text override.
var SubCategories = []string{
	"Competitive Exam",
	"Career Guidance",
	"Skill Development",
	"Communication Skills",
	"Women Event",
	"Emerging Trends and Technology",
	"Life Skills",
	"Soft Skills/ Skill Development",
	"Other",
}

// SubCategoryOther is the sub-category value that requires the override text.
const SubCategoryOther = "Other"

// Character limits per free-text field.
const (
	MaxLenSpeakerName       = 100
	MaxLenTitlePosition     = 100
	MaxLenOrganization      = 150
	MaxLenContactInfo       = 200
	MaxLenPresentationTitle = 200
	MaxLenVenue             = 200
	MaxLenCollaboration     = 500
	MaxLenPreparerName      = 100
	MaxLenDesignation       = 100
	MaxLenHighlights        = 2000
	MaxLenKeyTakeaway       = 2000
	MaxLenSummary           = 3000
	MaxLenFollowUpPlan      = 2000
	MaxLenSpeakerProfile    = 1000
	MaxLenPhotoCaption      = 100
)

// Section cardinality limits.
const (
	MinSpeakers        = 1
	MaxSpeakers        = 10
	MinParticipantRows = 1
	MaxParticipantRows = 10
	MinPreparers       = 1
	MaxPreparers       = 5
	MinPhotos          = 2
	MaxPhotos          = 10
	RecommendedPhotos  = 4
	RenderPhotoCap     = 10
)

// University header rendered on every report.
const (
	UniversityName = "Christ(Deemed to be University)"
	SchoolName     = "School of Engineering and Technology"
	DepartmentName = "Department of AI, ML & Data Science"
)
