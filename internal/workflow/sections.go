package workflow

// Section identifies one logical capture step in the data-entry workflow.
type Section string

const (
	SectionGeneralInfo    Section = "general_info"
	SectionSpeakerDetails Section = "speaker_details"
	SectionParticipants   Section = "participants"
	SectionSynopsis       Section = "synopsis"
	SectionPreparers      Section = "report_prepared_by"
	SectionSpeakerProfile Section = "speaker_profile"
	SectionPhotos         Section = "activity_photos"
	SectionGenerate       Section = "generate_pdf"
)

// SectionOrder is the fixed capture sequence shown in the sidebar.
var SectionOrder = []Section{
	SectionGeneralInfo,
	SectionSpeakerDetails,
	SectionParticipants,
	SectionSynopsis,
	SectionPreparers,
	SectionSpeakerProfile,
	SectionPhotos,
	SectionGenerate,
}

// Known reports whether the section belongs to the workflow.
func (s Section) Known() bool {
	for _, known := range SectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Title returns the human sidebar label.
func (s Section) Title() string {
	switch s {
	case SectionGeneralInfo:
		return "General Information"
	case SectionSpeakerDetails:
		return "Speaker Details"
	case SectionParticipants:
		return "Participants"
	case SectionSynopsis:
		return "Synopsis"
	case SectionPreparers:
		return "Report Prepared By"
	case SectionSpeakerProfile:
		return "Speaker Profile"
	case SectionPhotos:
		return "Activity Photos"
	case SectionGenerate:
		return "Generate PDF"
	default:
		return string(s)
	}
}
