package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// Canonical layouts for stored dates and times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var validate = validator.New()

// IsValidEmail reports whether the value is a well-formed email address.
func IsValidEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// IsValidPhone reports whether the value is a phone number of 10 to 15
// digits after stripping common separators.
func IsValidPhone(value string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
	if len(clean) < 10 || len(clean) > 15 {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidContactInfo accepts an email address or a phone number.
func IsValidContactInfo(value string) bool {
	return IsValidEmail(value) || IsValidPhone(value)
}

// IsValidDate reports whether the value parses under the canonical layout.
// Any other string is invalid, never an error.
func IsValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// IsValidTime reports whether the value parses under the canonical layout.
func IsValidTime(value string) bool {
	_, err := time.Parse(TimeLayout, value)
	return err == nil
}

// ValidateDateRange checks end >= start. Unparseable input is itself a
// failure with a format reason.
func ValidateDateRange(start, end string) (bool, string) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return false, "Invalid start date format"
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return false, "Invalid end date format"
	}
	if endDate.Before(startDate) {
		return false, "End date cannot be before start date"
	}
	return true, ""
}

// ValidateTimeRange checks end >= start within one day.
func ValidateTimeRange(start, end string) (bool, string) {
	startTime, err := time.Parse(TimeLayout, start)
	if err != nil {
		return false, "Invalid start time format"
	}
	endTime, err := time.Parse(TimeLayout, end)
	if err != nil {
		return false, "Invalid end time format"
	}
	if endTime.Before(startTime) {
		return false, "End time cannot be before start time"
	}
	return true, ""
}

// CheckLength returns a problem string when the value exceeds the maximum,
// otherwise the empty string. The capture layer may truncate proactively;
// here an overlong value is a blocking failure, never a silent truncation.
func CheckLength(label, value string, max int) string {
	if len([]rune(value)) > max {
		return fmt.Sprintf("%s exceeds maximum length of %d characters", label, max)
	}
	return ""
}

// ValidateActivity checks the parent record's fields, returning a list of
// problems in field order. An empty list means the record is valid.
func ValidateActivity(a models.Activity) []string {
	var problems []string

	if a.ActivityType == "" {
		problems = append(problems, "Activity type is required")
	}
	if a.StartDate == "" {
		problems = append(problems, "Start date is required")
	}

	startOK := a.StartDate != "" && IsValidDate(a.StartDate)
	if a.StartDate != "" && !startOK {
		problems = append(problems, "Invalid start date format")
	}
	endOK := a.EndDate != "" && IsValidDate(a.EndDate)
	if a.EndDate != "" && !endOK {
		problems = append(problems, "Invalid end date format")
	}
	if startOK && endOK {
		if ok, reason := ValidateDateRange(a.StartDate, a.EndDate); !ok {
			problems = append(problems, reason)
		}
	}

	startTimeOK := a.StartTime != "" && IsValidTime(a.StartTime)
	if a.StartTime != "" && !startTimeOK {
		problems = append(problems, "Invalid start time format")
	}
	endTimeOK := a.EndTime != "" && IsValidTime(a.EndTime)
	if a.EndTime != "" && !endTimeOK {
		problems = append(problems, "Invalid end time format")
	}
	// Time ordering only applies when the activity starts and ends on the
	// same day; multi-day activities skip it.
	if a.StartDate == a.EndDate && startTimeOK && endTimeOK {
		if ok, reason := ValidateTimeRange(a.StartTime, a.EndTime); !ok {
			problems = append(problems, reason)
		}
	}

	for _, check := range []struct {
		label string
		value string
		max   int
	}{
		{"Venue", a.Venue, models.MaxLenVenue},
		{"Collaboration sponsor", a.CollaborationSponsor, models.MaxLenCollaboration},
		{"Highlights", a.Highlights, models.MaxLenHighlights},
		{"Key takeaway", a.KeyTakeaway, models.MaxLenKeyTakeaway},
		{"Summary", a.Summary, models.MaxLenSummary},
		{"Follow up plan", a.FollowUpPlan, models.MaxLenFollowUpPlan},
	} {
		if problem := CheckLength(check.label, check.value, check.max); problem != "" {
			problems = append(problems, problem)
		}
	}

	if a.SubCategory == models.SubCategoryOther && a.SubCategoryOther == "" {
		problems = append(problems, "Please specify sub category when 'Other' is selected")
	}

	return problems
}

// ValidateSpeaker checks one speaker row.
func ValidateSpeaker(s models.Speaker) []string {
	var problems []string

	if s.Name == "" {
		problems = append(problems, "Name is required")
	}

	for _, check := range []struct {
		label string
		value string
		max   int
	}{
		{"Name", s.Name, models.MaxLenSpeakerName},
		{"Title position", s.TitlePosition, models.MaxLenTitlePosition},
		{"Organization", s.Organization, models.MaxLenOrganization},
		{"Contact info", s.ContactInfo, models.MaxLenContactInfo},
		{"Presentation title", s.PresentationTitle, models.MaxLenPresentationTitle},
		{"Profile text", s.ProfileText, models.MaxLenSpeakerProfile},
	} {
		if problem := CheckLength(check.label, check.value, check.max); problem != "" {
			problems = append(problems, problem)
		}
	}

	if s.ContactInfo != "" && !IsValidContactInfo(s.ContactInfo) {
		problems = append(problems, "Contact information should be a valid email address or phone number")
	}

	return problems
}

// ValidateParticipant checks one participant-type row.
func ValidateParticipant(p models.Participant) []string {
	var problems []string

	if p.ParticipantType == "" {
		problems = append(problems, "Participant type is required")
	} else if !p.ParticipantType.Valid() {
		problems = append(problems, fmt.Sprintf("Unknown participant type %q", p.ParticipantType))
	}

	if p.Count <= 0 {
		problems = append(problems, "Participant count must be a positive integer")
	} else if p.Count > models.MaxParticipantCount {
		problems = append(problems, fmt.Sprintf("Participant count cannot exceed %d", models.MaxParticipantCount))
	}

	return problems
}

// ValidatePreparer checks one report-preparer row. Designation is allowed to
// be empty here; the whole-report check enforces it before export.
func ValidatePreparer(p models.ReportPreparer) []string {
	var problems []string

	if p.Name == "" {
		problems = append(problems, "Name is required")
	}

	for _, check := range []struct {
		label string
		value string
		max   int
	}{
		{"Name", p.Name, models.MaxLenPreparerName},
		{"Designation", p.Designation, models.MaxLenDesignation},
	} {
		if problem := CheckLength(check.label, check.value, check.max); problem != "" {
			problems = append(problems, problem)
		}
	}

	return problems
}

// ValidatePhoto checks one photo row.
func ValidatePhoto(p models.ActivityPhoto) []string {
	var problems []string

	if p.PhotoPath == "" {
		problems = append(problems, "Photo path is required")
	}
	if p.PhotoType != "" && !p.PhotoType.Valid() {
		problems = append(problems, fmt.Sprintf("Unknown photo type %q", p.PhotoType))
	}
	if problem := CheckLength("Caption", p.Caption, models.MaxLenPhotoCaption); problem != "" {
		problems = append(problems, problem)
	}

	return problems
}
