package validation

import (
	"fmt"

	"github.com/amlds-dept/activity-reporter/internal/models"
)

// Result is the outcome of whole-report validation. Errors block PDF
// generation; warnings do not.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// MinPhotosMessage is the blocking error for the photo hard floor.
const MinPhotosMessage = "At least 2 activity photos are required for PDF generation"

// ValidateReport runs the whole-report readiness check. Errors accumulate in
// a fixed section order (activity, speakers, participants, preparers,
// photos) so the output is deterministic for the same input.
func ValidateReport(r models.ActivityReport) Result {
	var errs []string
	var warnings []string

	errs = append(errs, ValidateActivity(r.Activity)...)

	if len(r.Speakers) == 0 {
		errs = append(errs, "At least one speaker is required")
	} else {
		for i, speaker := range r.Speakers {
			for _, problem := range ValidateSpeaker(speaker) {
				errs = append(errs, fmt.Sprintf("Speaker %d: %s", i+1, problem))
			}
		}
	}

	if len(r.Participants) == 0 {
		errs = append(errs, "At least one participant type is required")
	} else {
		for i, participant := range r.Participants {
			for _, problem := range ValidateParticipant(participant) {
				errs = append(errs, fmt.Sprintf("Participant Type %d: %s", i+1, problem))
			}
		}
		seen := map[models.ParticipantType]bool{}
		for _, participant := range r.Participants {
			if participant.ParticipantType == "" {
				continue
			}
			if seen[participant.ParticipantType] {
				errs = append(errs, fmt.Sprintf("Duplicate participant type %q", participant.ParticipantType))
			}
			seen[participant.ParticipantType] = true
		}
	}

	if len(r.Preparers) == 0 {
		errs = append(errs, "At least one report preparer is required")
	} else {
		for i, preparer := range r.Preparers {
			for _, problem := range ValidatePreparer(preparer) {
				errs = append(errs, fmt.Sprintf("Report Preparer %d: %s", i+1, problem))
			}
			// Designation is optional at row creation but mandatory for the
			// finished document.
			if preparer.Designation == "" {
				errs = append(errs, fmt.Sprintf("Report Preparer %d: Designation is required", i+1))
			}
		}
	}

	if len(r.Photos) < models.MinPhotos {
		errs = append(errs, MinPhotosMessage)
	} else if len(r.Photos) < models.RecommendedPhotos {
		warnings = append(warnings, fmt.Sprintf("Only %d photo(s) uploaded. At least %d recommended for a complete report", len(r.Photos), models.RecommendedPhotos))
	}

	if r.Activity.Venue == "" {
		warnings = append(warnings, "Venue not specified - recommended for complete report")
	}
	if r.Activity.Highlights == "" && r.Activity.Summary == "" {
		warnings = append(warnings, "No highlights or summary provided - recommended for complete report")
	}
	if r.Activity.KeyTakeaway == "" {
		warnings = append(warnings, "No key takeaways provided - recommended for complete report")
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
