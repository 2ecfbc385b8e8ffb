package export

import (
	"antenna_ops/internal/domain/entities"
	"io"
)

type Signatory struct {
	Name         string `json:"name"`
	TitleAmharic string `json:"titleAmharic"`
	Title        string `json:"title"`
}

var certificateSignatories = []Signatory{
	{Name: "ቸርነት ጥላሁን", TitleAmharic: "ዋና ስራ አስኪያጅ", Title: "General Manager"},
	{Name: "ዮሃንስ እሸቱ", TitleAmharic: "የስልጠና አስተባባሪ", Title: "Training Coordinator"},
}

// CertificateView is the bilingual content of a generated training certificate.
type CertificateView struct {
	OrganizationAmharic string        `json:"organizationAmharic"`
	Organization        string        `json:"organization"`
	TitleAmharic        string        `json:"titleAmharic"`
	Title               string        `json:"title"`
	PresentedToAmharic  string        `json:"presentedToAmharic"`
	RecipientName       string        `json:"recipientName"`
	BodyAmharicPrefix   string        `json:"bodyAmharicPrefix"`
	TrainingType        string        `json:"trainingType"`
	BodyAmharicSuffix   string        `json:"bodyAmharicSuffix"`
	Statement           string        `json:"statement"`
	Signatories         []Signatory   `json:"signatories"`
	IssueDate           entities.Date `json:"issueDate"`
	CertificateID       string        `json:"certificateId"`
}

// NewCertificateView fills the template for a generated certificate. A missing issue date
// falls back to today and a missing certificate id to the training id.
func NewCertificateView(t entities.Training, today entities.Date) (CertificateView, error) {
	if t.Certificate.Kind != entities.CertificateGenerated {
		return CertificateView{}, ErrNoCertificate
	}
	issued := t.Certificate.IssueDate
	if issued == "" {
		issued = today
	}
	certID := t.Certificate.ID
	if certID == "" {
		certID = t.ID
	}
	return CertificateView{
		OrganizationAmharic: "አንቴና ማኑፋክቸሪንግ እና ቢዝነስ አማካሪ",
		Organization:        CompanyName,
		TitleAmharic:        "የስልጠና የምስክር ወረቀት",
		Title:               "Certificate of Completion",
		PresentedToAmharic:  "ይህ የምስክር ወረቀት የተሰጠው ለ",
		RecipientName:       t.Name,
		BodyAmharicPrefix:   "የተባሉ ግለሰብ በድርጅታችን በ አንቴና ማኑፋክቸሪንግ እና ቢዝነስ አማካሪ የ",
		TrainingType:        t.TrainingType,
		BodyAmharicSuffix:   "ስልጠና መውሰዳቸውን በዚህ ሰርተፍኬት ልናረጋግጥ እንወዳለን።",
		Statement:           "This is to certify that the above mentioned individual has successfully completed the training course.",
		Signatories:         append([]Signatory(nil), certificateSignatories...),
		IssueDate:           issued,
		CertificateID:       certID,
	}, nil
}

// Footer is the line printed at the bottom of the certificate.
func (v CertificateView) Footer() string {
	return "Date: " + v.IssueDate.String() + " | Cert ID: " + v.CertificateID
}

// WriteCertificatePDF renders the certificate on a landscape A4 page without letterhead.
// Ethiopic lines are printed only when the renderer has a Unicode font.
func (r *Renderer) WriteCertificatePDF(w io.Writer, v CertificateView) error {
	d := r.newDocument("L", false)
	pdf := d.pdf
	pdf.SetAutoPageBreak(false, 0)
	pageW, pageH := pdf.GetPageSize()

	pdf.SetDrawColor(43, 108, 176)
	pdf.SetLineWidth(1.5)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.4)
	pdf.Rect(12, 12, pageW-24, pageH-24, "D")

	center := func(style string, size, h float64, text string) {
		pdf.SetFont(d.family, style, size)
		pdf.CellFormat(0, h, d.tr(text), "", 1, "C", false, 0, "")
	}

	pdf.SetY(24)
	pdf.SetTextColor(55, 65, 81)
	if r.Unicode() {
		center("B", 22, 11, v.OrganizationAmharic)
	}
	pdf.SetTextColor(107, 114, 128)
	center("", 13, 8, v.Organization)
	pdf.Ln(6)

	pdf.SetTextColor(30, 58, 138)
	if r.Unicode() {
		center("B", 28, 13, v.TitleAmharic)
	}
	pdf.SetTextColor(107, 114, 128)
	center("", 18, 10, v.Title)
	pdf.Ln(8)

	if r.Unicode() {
		center("", 14, 8, v.PresentedToAmharic)
	} else {
		center("", 14, 8, "This certificate is presented to")
	}
	pdf.SetTextColor(31, 41, 55)
	center("B", 26, 14, v.RecipientName)
	pdf.SetDrawColor(209, 213, 219)
	y := pdf.GetY() + 1
	pdf.Line(pageW/2-70, y, pageW/2+70, y)
	pdf.Ln(8)

	pdf.SetTextColor(75, 85, 99)
	if r.Unicode() {
		pdf.SetFont(d.family, "", 13)
		pdf.SetX(40)
		pdf.MultiCell(pageW-80, 7, v.BodyAmharicPrefix+" "+v.TrainingType+" "+v.BodyAmharicSuffix, "", "C", false)
	} else {
		center("B", 15, 8, v.TrainingType)
	}
	pdf.SetFont(d.family, "", 11)
	pdf.SetX(40)
	pdf.MultiCell(pageW-80, 6, d.tr(v.Statement), "", "C", false)

	sigY := pageH - 50
	colW := (pageW - 60) / float64(len(v.Signatories))
	for i, s := range v.Signatories {
		x := 30 + float64(i)*colW
		pdf.SetDrawColor(156, 163, 175)
		pdf.Line(x+15, sigY, x+colW-15, sigY)
		pdf.SetXY(x, sigY+2)
		pdf.SetTextColor(55, 65, 81)
		if r.Unicode() {
			pdf.SetFont(d.family, "B", 13)
			pdf.CellFormat(colW, 7, s.Name, "", 2, "C", false, 0, "")
			pdf.SetFont(d.family, "", 10)
			pdf.CellFormat(colW, 6, s.TitleAmharic+" ("+s.Title+")", "", 2, "C", false, 0, "")
		} else {
			pdf.SetFont(d.family, "", 11)
			pdf.CellFormat(colW, 7, d.tr(s.Title), "", 2, "C", false, 0, "")
		}
	}

	pdf.SetXY(12, pageH-22)
	pdf.SetTextColor(156, 163, 175)
	pdf.SetFont(d.family, "", 8)
	pdf.CellFormat(pageW-24, 5, d.tr(v.Footer()), "", 0, "C", false, 0, "")
	return d.output(w)
}
