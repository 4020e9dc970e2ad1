package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

func TestIsValidContactInfo(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"email", "a@b.com", true},
		{"plain phone", "9876543210", true},
		{"formatted phone", "(987) 654-3210", true},
		{"phone too short", "12345", false},
		{"phone too long", "1234567890123456", false},
		{"neither", "not-an-email-or-phone", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidContactInfo(tc.value))
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	ok, reason := ValidateDateRange("2025-03-10", "2025-03-12")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = ValidateDateRange("2025-03-10", "2025-03-10")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = ValidateDateRange("2025-03-12", "2025-03-10")
	assert.False(t, ok)
	assert.Equal(t, "End date cannot be before start date", reason)

	ok, reason = ValidateDateRange("12-03-2025", "2025-03-10")
	assert.False(t, ok)
	assert.Equal(t, "Invalid start date format", reason)
}

func TestValidateTimeRange(t *testing.T) {
	ok, _ := ValidateTimeRange("09:00", "16:30")
	assert.True(t, ok)

	ok, reason := ValidateTimeRange("16:30", "09:00")
	assert.False(t, ok)
	assert.Equal(t, "End time cannot be before start time", reason)

	ok, reason = ValidateTimeRange("9am", "16:00")
	assert.False(t, ok)
	assert.Equal(t, "Invalid start time format", reason)
}

func TestValidateActivityRequiredFields(t *testing.T) {
	problems := ValidateActivity(models.Activity{})
	assert.Contains(t, problems, "Activity type is required")
	assert.Contains(t, problems, "Start date is required")
}

func TestValidateActivityDateOrdering(t *testing.T) {
	problems := ValidateActivity(models.Activity{
		ActivityType: "Workshop",
		StartDate:    "2025-03-12",
		EndDate:      "2025-03-10",
	})
	assert.Contains(t, problems, "End date cannot be before start date")
}

func TestValidateActivityTimeOrderingSameDayOnly(t *testing.T) {
	sameDay := models.Activity{
		ActivityType: "Workshop",
		StartDate:    "2025-03-10",
		EndDate:      "2025-03-10",
		StartTime:    "16:00",
		EndTime:      "09:00",
	}
	assert.Contains(t, ValidateActivity(sameDay), "End time cannot be before start time")

	multiDay := sameDay
	multiDay.EndDate = "2025-03-11"
	assert.NotContains(t, ValidateActivity(multiDay), "End time cannot be before start time")
}

func TestValidateActivityLengthLimit(t *testing.T) {
	problems := ValidateActivity(models.Activity{
		ActivityType: "Workshop",
		StartDate:    "2025-03-10",
		Venue:        strings.Repeat("v", models.MaxLenVenue+1),
	})
	assert.Contains(t, problems, "Venue exceeds maximum length of 200 characters")
}

func TestValidateActivitySubCategoryOther(t *testing.T) {
	problems := ValidateActivity(models.Activity{
		ActivityType: "Workshop",
		StartDate:    "2025-03-10",
		SubCategory:  models.SubCategoryOther,
	})
	assert.Contains(t, problems, "Please specify sub category when 'Other' is selected")

	problems = ValidateActivity(models.Activity{
		ActivityType:     "Workshop",
		StartDate:        "2025-03-10",
		SubCategory:      models.SubCategoryOther,
		SubCategoryOther: "Hackathon",
	})
	assert.NotContains(t, problems, "Please specify sub category when 'Other' is selected")
}

func TestValidateSpeaker(t *testing.T) {
	assert.Contains(t, ValidateSpeaker(models.Speaker{}), "Name is required")

	problems := ValidateSpeaker(models.Speaker{Name: "Dr. Rao", ContactInfo: "not-an-email-or-phone"})
	assert.Contains(t, problems, "Contact information should be a valid email address or phone number")

	assert.Empty(t, ValidateSpeaker(models.Speaker{Name: "Dr. Rao", ContactInfo: "a@b.com"}))
	assert.Empty(t, ValidateSpeaker(models.Speaker{Name: "Dr. Rao", ContactInfo: "9876543210"}))
}

func TestValidateParticipant(t *testing.T) {
	cases := []struct {
		name string
		in   models.Participant
		want []string
	}{
		{"valid", models.Participant{ParticipantType: models.ParticipantFaculty, Count: 3}, nil},
		{"missing type", models.Participant{Count: 3}, []string{"Participant type is required"}},
		{"unknown type", models.Participant{ParticipantType: "alumni", Count: 3}, []string{`Unknown participant type "alumni"`}},
		{"zero count", models.Participant{ParticipantType: models.ParticipantStudent}, []string{"Participant count must be a positive integer"}},
		{"count too large", models.Participant{ParticipantType: models.ParticipantStudent, Count: 10000}, []string{"Participant count cannot exceed 9999"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateParticipant(tc.in))
		})
	}
}

func TestValidatePreparer(t *testing.T) {
	assert.Contains(t, ValidatePreparer(models.ReportPreparer{}), "Name is required")
	// Designation stays optional at the row level.
	assert.Empty(t, ValidatePreparer(models.ReportPreparer{Name: "Prof. Mehta"}))
}

func TestValidatePhoto(t *testing.T) {
	assert.Contains(t, ValidatePhoto(models.ActivityPhoto{}), "Photo path is required")
	assert.Contains(t, ValidatePhoto(models.ActivityPhoto{PhotoPath: "a.jpg", PhotoType: "banner"}), `Unknown photo type "banner"`)
	assert.Empty(t, ValidatePhoto(models.ActivityPhoto{PhotoPath: "a.jpg", PhotoType: models.PhotoActivity}))
}
