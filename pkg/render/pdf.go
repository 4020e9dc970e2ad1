package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/amlds-dept/activity-reporter/internal/assemble"
)

// AssetResolver maps stored image references to readable absolute paths.
type AssetResolver interface {
	Path(ref string) string
	Exists(ref string) bool
}

// PDFRenderer turns an assembled document into a paginated PDF. Output is a
// pure function of the document (plus the generation date the assembler
// already stamped); no hidden global state.
type PDFRenderer struct {
	assets AssetResolver
}

// NewPDFRenderer constructs a renderer. A nil resolver treats photo paths as
// plain filesystem paths.
func NewPDFRenderer(assets AssetResolver) *PDFRenderer {
	return &PDFRenderer{assets: assets}
}

// Render produces the PDF bytes. A referenced image that is missing or
// unreadable is omitted with a warning rather than aborting the render;
// warnings describe every omission.
func (r *PDFRenderer) Render(doc assemble.Document) ([]byte, []string, error) {
	var warnings []string

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Times", "", 10)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// University header
	pdf.SetFont("Times", "B", 14)
	for _, line := range []string{doc.UniversityName, doc.SchoolName, doc.DepartmentName} {
		pdf.CellFormat(0, 7, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Times", "BU", 16)
	pdf.CellFormat(0, 10, "ACTIVITY REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.sectionTitle(pdf, "General Information")
	r.field(pdf, "Type of Activity", doc.Activity.ActivityType)
	r.field(pdf, "Sub Category", doc.Activity.SubCategory)
	r.field(pdf, "Date", doc.Activity.DateDisplay)
	r.field(pdf, "Time", doc.Activity.TimeDisplay)
	r.field(pdf, "Venue", doc.Activity.Venue)
	r.field(pdf, "Collaboration / Sponsor", doc.Activity.CollaborationSponsor)
	pdf.Ln(4)

	if len(doc.Speakers) > 0 {
		r.sectionTitle(pdf, "Speaker Details")
		for i, speaker := range doc.Speakers {
			pdf.SetFont("Times", "B", 12)
			pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s", i+1, speaker.DisplayName), "", 1, "L", false, 0, "")
			pdf.SetFont("Times", "", 12)
			if line := joinNonEmpty(speaker.TitlePosition, speaker.Organization); line != "" {
				pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
			}
			if speaker.PresentationTitle != "" {
				pdf.CellFormat(0, 6, "Topic: "+speaker.PresentationTitle, "", 1, "L", false, 0, "")
			}
			if speaker.ProfileText != "" {
				pdf.MultiCell(0, 6, speaker.ProfileText, "", "J", false)
			}
			pdf.Ln(3)
		}
	}

	if len(doc.Participants) > 0 {
		r.sectionTitle(pdf, "Participants Profile")
		pdf.SetFont("Times", "", 12)
		for _, participant := range doc.Participants {
			pdf.CellFormat(0, 6, fmt.Sprintf("%d %s", participant.Count, participant.Label), "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Times", "B", 12)
		pdf.CellFormat(0, 6, fmt.Sprintf("Total Participants: %d", doc.TotalParticipants), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	r.paragraphs(pdf, map[string]string{
		"Highlights":     doc.Activity.Highlights,
		"Key Takeaway":   doc.Activity.KeyTakeaway,
		"Summary":        doc.Activity.Summary,
		"Follow-up Plan": doc.Activity.FollowUpPlan,
	})

	if len(doc.Preparers) > 0 {
		pdf.Ln(6)
		r.sectionTitle(pdf, "Report Prepared By")
		for _, preparer := range doc.Preparers {
			if preparer.SignatureImagePath != "" {
				if ok := r.placeImage(pdf, preparer.SignatureImagePath, 40); !ok {
					warnings = append(warnings, fmt.Sprintf("signature %s missing or unreadable, omitted from report", preparer.SignatureImagePath))
				}
			}
			pdf.SetFont("Times", "B", 12)
			pdf.CellFormat(0, 6, preparer.Name, "", 1, "L", false, 0, "")
			if preparer.Designation != "" {
				pdf.SetFont("Times", "", 12)
				pdf.CellFormat(0, 6, preparer.Designation, "", 1, "L", false, 0, "")
			}
			pdf.Ln(3)
		}
	}

	if len(doc.Photos) > 0 {
		pdf.AddPage()
		r.sectionTitle(pdf, "Activity Photos")
		for _, photo := range doc.Photos {
			if ok := r.placeImage(pdf, photo.PhotoPath, 120); !ok {
				warnings = append(warnings, fmt.Sprintf("photo %s missing or unreadable, omitted from report", photo.PhotoPath))
				continue
			}
			if photo.Caption != "" {
				pdf.SetFont("Times", "I", 11)
				pdf.CellFormat(0, 6, photo.Caption, "", 1, "C", false, 0, "")
			}
			pdf.Ln(4)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Times", "I", 10)
	pdf.CellFormat(0, 6, "Generated on "+doc.GenerationDate, "", 1, "R", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, warnings, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), warnings, nil
}

func (r *PDFRenderer) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Times", "BU", 14)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func (r *PDFRenderer) field(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(0, 6, label+":", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 12)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func (r *PDFRenderer) paragraphs(pdf *gofpdf.Fpdf, sections map[string]string) {
	for _, title := range []string{"Highlights", "Key Takeaway", "Summary", "Follow-up Plan"} {
		body := sections[title]
		if body == "" {
			continue
		}
		r.sectionTitle(pdf, title)
		pdf.SetFont("Times", "", 12)
		pdf.MultiCell(0, 6, body, "", "J", false)
		pdf.Ln(4)
	}
}

// placeImage draws the referenced image at the given width, returning false
// when the file cannot be read or does not decode as an image.
func (r *PDFRenderer) placeImage(pdf *gofpdf.Fpdf, ref string, width float64) bool {
	path := ref
	if r.assets != nil {
		if !r.assets.Exists(ref) {
			return false
		}
		path = r.assets.Path(ref)
	} else if _, err := os.Stat(path); err != nil {
		return false
	}
	// A corrupt file handed to gofpdf would poison the document's sticky
	// error state and abort the whole render, so decode-check it first.
	if !decodable(path) {
		return false
	}
	opts := gofpdf.ImageOptions{ReadDpi: true}
	pdf.ImageOptions(path, pdf.GetX(), pdf.GetY(), width, 0, true, opts, 0, "")
	return true
}

func decodable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck
	_, _, err = image.DecodeConfig(f)
	return err == nil
}

func joinNonEmpty(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + ", " + b
	case a != "":
		return a
	default:
		return b
	}
}
