package assemble

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/amlds-dept/activity-reporter/internal/models"
	"github.com/amlds-dept/activity-reporter/internal/validation"
)

// DisplayDateLayout is the long human date format used on the report.
const DisplayDateLayout = "02 January 2006"

var participantLabels = map[models.ParticipantType]string{
	models.ParticipantFaculty:         "Faculty",
	models.ParticipantStudent:         "Students",
	models.ParticipantResearchScholar: "Research Scholars",
}

// Document is the render-ready model. Every optional field is either a
// concrete value or the empty string; the renderer applies no business logic.
type Document struct {
	UniversityName string
	SchoolName     string
	DepartmentName string
	GenerationDate string

	Activity ActivityView

	Speakers                []SpeakerView
	Participants            []ParticipantView
	TotalParticipants       int
	ParticipantTypesDisplay string
	Preparers               []PreparerView
	Photos                  []PhotoView
}

// ActivityView carries the parent record's display fields.
type ActivityView struct {
	ActivityType         string
	SubCategory          string
	StartDateDisplay     string
	EndDateDisplay       string
	DateDisplay          string
	TimeDisplay          string
	Venue                string
	CollaborationSponsor string
	Highlights           string
	KeyTakeaway          string
	Summary              string
	FollowUpPlan         string
}

// SpeakerView is one speaker ready for rendering.
type SpeakerView struct {
	DisplayName       string
	TitlePosition     string
	Organization      string
	ContactInfo       string
	PresentationTitle string
	ProfileImagePath  string
	ProfileText       string
}

// ParticipantView is one participant row with its resolved label.
type ParticipantView struct {
	Label string
	Count int
}

// PreparerView is one report preparer ready for rendering.
type PreparerView struct {
	Name               string
	Designation        string
	SignatureImagePath string
}

// PhotoView is one photo reference ready for rendering.
type PhotoView struct {
	PhotoPath string
	PhotoType string
	Caption   string
}

// Assembler merges a validated aggregate into a Document.
type Assembler struct {
	photoLimit int
	now        func() time.Time
}

// Option tunes assembler behaviour.
type Option func(*Assembler)

// WithPhotoLimit caps how many photos reach the renderer.
func WithPhotoLimit(limit int) Option {
	return func(a *Assembler) {
		if limit > 0 {
			a.photoLimit = limit
		}
	}
}

// WithClock overrides the generation-date clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAssembler constructs an assembler with default limits.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		photoLimit: models.RenderPhotoCap,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble transforms the aggregate into a render-ready document.
func (a *Assembler) Assemble(r models.ActivityReport) Document {
	doc := Document{
		UniversityName: models.UniversityName,
		SchoolName:     models.SchoolName,
		DepartmentName: models.DepartmentName,
		GenerationDate: a.now().Format(DisplayDateLayout),
		Activity:       buildActivityView(r.Activity),
	}

	for _, s := range r.Speakers {
		doc.Speakers = append(doc.Speakers, SpeakerView{
			// Display name is intentionally just the stored name; formatting
			// extensions hang off this seam.
			DisplayName:       s.Name,
			TitlePosition:     s.TitlePosition,
			Organization:      s.Organization,
			ContactInfo:       s.ContactInfo,
			PresentationTitle: s.PresentationTitle,
			ProfileImagePath:  s.ProfileImagePath,
			ProfileText:       s.ProfileText,
		})
	}

	fragments := make([]string, 0, len(r.Participants))
	for _, p := range r.Participants {
		label := ParticipantLabel(p.ParticipantType)
		doc.Participants = append(doc.Participants, ParticipantView{Label: label, Count: p.Count})
		doc.TotalParticipants += p.Count
		fragments = append(fragments, fmt.Sprintf("%d %s", p.Count, label))
	}
	doc.ParticipantTypesDisplay = strings.Join(fragments, ", ")

	for _, p := range r.Preparers {
		doc.Preparers = append(doc.Preparers, PreparerView{
			Name:               p.Name,
			Designation:        p.Designation,
			SignatureImagePath: p.SignatureImagePath,
		})
	}

	photos := r.Photos
	if len(photos) > a.photoLimit {
		// Prefix cap in stored order bounds the document size; there is no
		// relevance ranking.
		photos = photos[:a.photoLimit]
	}
	for _, p := range photos {
		doc.Photos = append(doc.Photos, PhotoView{
			PhotoPath: p.PhotoPath,
			PhotoType: string(p.PhotoType),
			Caption:   p.Caption,
		})
	}

	return doc
}

// ParticipantLabel resolves the display label for a participant type.
// Unrecognized types fall back to a title-cased form of the raw value.
func ParticipantLabel(t models.ParticipantType) string {
	if label, ok := participantLabels[t]; ok {
		return label
	}
	return titleCase(string(t))
}

// FormatDate renders a stored date in the long display format, returning the
// raw value unchanged when it does not parse.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(validation.DateLayout, value)
	if err != nil {
		return value
	}
	return parsed.Format(DisplayDateLayout)
}

func buildActivityView(a models.Activity) ActivityView {
	view := ActivityView{
		ActivityType:         a.ActivityType,
		SubCategory:          a.SubCategory,
		StartDateDisplay:     FormatDate(a.StartDate),
		EndDateDisplay:       FormatDate(a.EndDate),
		Venue:                a.Venue,
		CollaborationSponsor: a.CollaborationSponsor,
		Highlights:           a.Highlights,
		KeyTakeaway:          a.KeyTakeaway,
		Summary:              a.Summary,
		FollowUpPlan:         a.FollowUpPlan,
	}

	if a.SubCategory == models.SubCategoryOther && a.SubCategoryOther != "" {
		view.SubCategory = a.SubCategoryOther
	}

	view.DateDisplay = view.StartDateDisplay
	if view.EndDateDisplay != "" && view.EndDateDisplay != view.StartDateDisplay {
		view.DateDisplay = view.StartDateDisplay + " to " + view.EndDateDisplay
	}

	switch {
	case a.StartTime != "" && a.EndTime != "":
		view.TimeDisplay = a.StartTime + " to " + a.EndTime
	case a.StartTime != "":
		view.TimeDisplay = a.StartTime
	}

	return view
}

func titleCase(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
