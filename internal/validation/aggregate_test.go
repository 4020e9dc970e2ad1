package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

func readyReport() models.ActivityReport {
	return models.ActivityReport{
		Activity: models.Activity{
			ID:           1,
			ActivityType: "Workshop",
			StartDate:    "2025-03-10",
			EndDate:      "2025-03-10",
			StartTime:    "09:00",
			EndTime:      "16:00",
			Venue:        "Seminar Hall",
			Highlights:   "Hands-on sessions",
			KeyTakeaway:  "Practical exposure",
		},
		Speakers: []models.Speaker{{Name: "Dr. Rao"}},
		Participants: []models.Participant{
			{ParticipantType: models.ParticipantFaculty, Count: 3},
		},
		Preparers: []models.ReportPreparer{{Name: "Prof. Mehta", Designation: "HoD"}},
		Photos: []models.ActivityPhoto{
			{PhotoPath: "activities/1/a.jpg"},
			{PhotoPath: "activities/1/b.jpg"},
		},
	}
}

func TestValidateReportReady(t *testing.T) {
	result := ValidateReport(readyReport())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateReportPhotoFloorIsOnlyError(t *testing.T) {
	report := readyReport()
	report.Photos = report.Photos[:1]

	result := ValidateReport(report)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, MinPhotosMessage, result.Errors[0])

	report.Photos = append(report.Photos, models.ActivityPhoto{PhotoPath: "activities/1/b.jpg"})
	result = ValidateReport(report)
	assert.True(t, result.Valid)
}

func TestValidateReportPhotoRecommendationWarning(t *testing.T) {
	result := ValidateReport(readyReport())
	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "Only 2 photo(s) uploaded. At least 4 recommended for a complete report")
}

func TestValidateReportMissingSections(t *testing.T) {
	report := readyReport()
	report.Speakers = nil
	report.Participants = nil
	report.Preparers = nil

	result := ValidateReport(report)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "At least one speaker is required")
	assert.Contains(t, result.Errors, "At least one participant type is required")
	assert.Contains(t, result.Errors, "At least one report preparer is required")
}

func TestValidateReportPreparerDesignationRequired(t *testing.T) {
	report := readyReport()
	report.Preparers[0].Designation = ""

	result := ValidateReport(report)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Report Preparer 1: Designation is required")
}

func TestValidateReportDuplicateParticipantType(t *testing.T) {
	report := readyReport()
	report.Participants = append(report.Participants, models.Participant{ParticipantType: models.ParticipantFaculty, Count: 5})

	result := ValidateReport(report)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, `Duplicate participant type "faculty"`)
}

func TestValidateReportSectionOrder(t *testing.T) {
	report := readyReport()
	report.Activity.ActivityType = ""
	report.Speakers = []models.Speaker{{}}
	report.Photos = nil

	result := ValidateReport(report)
	require.GreaterOrEqual(t, len(result.Errors), 3)
	assert.Equal(t, "Activity type is required", result.Errors[0])
	assert.Equal(t, "Speaker 1: Name is required", result.Errors[1])
	assert.Equal(t, MinPhotosMessage, result.Errors[len(result.Errors)-1])
}

func TestValidateReportWarningsDoNotBlock(t *testing.T) {
	report := readyReport()
	report.Activity.Venue = ""
	report.Activity.Highlights = ""
	report.Activity.Summary = ""
	report.Activity.KeyTakeaway = ""

	result := ValidateReport(report)
	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "Venue not specified - recommended for complete report")
	assert.Contains(t, result.Warnings, "No highlights or summary provided - recommended for complete report")
	assert.Contains(t, result.Warnings, "No key takeaways provided - recommended for complete report")
}
