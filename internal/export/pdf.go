package export

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/views"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/go-pdf/fpdf"
)

const (
	CompanyName    = "Antenna Manufacturing & Business Consultancy"
	companyTagline = "Machine Manufacturing | Raw Material Supply | Machinery Import | Business Consultancy | Training"

	marginLeft  = 14.0
	marginRight = 14.0
	// topMargin leaves room for the letterhead drawn on every page.
	topMargin    = 40.0
	bottomMargin = 18.0
	lineHeight   = 7.0
	imageSize    = 60.0
	keyWidth     = 60.0
	utf8Family   = "ethiopic"
	coreFamily   = "Helvetica"
)

var ErrNoCertificate = errors.New("training has no certificate")

// Renderer builds the printable documents. With a TTF font path the documents use that
// font for all text, which is required for Ethiopic script; otherwise the PDF core
// font is used and only the English lines of bilingual content are printed.
type Renderer struct {
	fontPath string
	compress bool
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: strings.TrimSpace(fontPath), compress: true}
}

// Unicode reports whether documents can print non-Latin text.
func (r *Renderer) Unicode() bool {
	return r.fontPath != ""
}

type document struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	family string
}

func (r *Renderer) newDocument(orientation string, letterhead bool) *document {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	d := &document{pdf: pdf, tr: func(s string) string { return s }, family: coreFamily}
	if r.fontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", r.fontPath)
		pdf.AddUTF8Font(utf8Family, "B", r.fontPath)
		d.family = utf8Family
	} else {
		d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetCreator("antenna_ops", true)
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(true, bottomMargin)
	if letterhead {
		pdf.SetMargins(marginLeft, topMargin, marginRight)
		pdf.SetHeaderFunc(d.letterhead)
	} else {
		pdf.SetMargins(marginLeft, marginLeft, marginRight)
	}
	pdf.AddPage()
	return d
}

// letterhead is repeated on every page.
func (d *document) letterhead() {
	pdf := d.pdf
	pageW, _ := pdf.GetPageSize()
	pdf.SetY(10)
	pdf.SetTextColor(37, 53, 71)
	pdf.SetFont(d.family, "B", 16)
	pdf.CellFormat(0, 8, d.tr(CompanyName), "", 1, "C", false, 0, "")
	pdf.SetFont(d.family, "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, d.tr(companyTagline), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(37, 53, 71)
	pdf.SetLineWidth(0.6)
	pdf.Line(marginLeft, 26, pageW-marginRight, 26)
	pdf.SetLineWidth(0.2)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(topMargin)
}

func (d *document) title(text string) {
	d.pdf.SetFont(d.family, "B", 18)
	d.pdf.MultiCell(0, 9, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) line(size float64, text string) {
	d.pdf.SetFont(d.family, "", size)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
}

func (d *document) contentWidth() float64 {
	pageW, _ := d.pdf.GetPageSize()
	return pageW - marginLeft - marginRight
}

// ensureSpace starts a new page when h millimetres no longer fit.
func (d *document) ensureSpace(h float64) {
	_, pageH := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageH-bottomMargin {
		d.pdf.AddPage()
	}
}

func (d *document) head(cells []string, widths []float64) {
	d.pdf.SetFont(d.family, "B", 10)
	d.pdf.SetFillColor(37, 53, 71)
	d.pdf.SetTextColor(255, 255, 255)
	for i, c := range cells {
		d.pdf.CellFormat(widths[i], lineHeight, d.tr(c), "1", 0, "L", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetTextColor(0, 0, 0)
}

// keyValues draws a two-column striped section. Long values wrap.
func (d *document) keyValues(heading, valueHeading string, rows [][2]string) {
	valueW := d.contentWidth() - keyWidth
	d.ensureSpace(2 * lineHeight)
	d.head([]string{heading, valueHeading}, []float64{keyWidth, valueW})
	d.pdf.SetFont(d.family, "", 10)
	for i, row := range rows {
		value := d.tr(row[1])
		lines := 1 + int(d.pdf.GetStringWidth(value)/(valueW-2)) + strings.Count(value, "\n")
		d.ensureSpace(float64(lines) * lineHeight)

		fill := i%2 == 1
		d.pdf.SetFillColor(240, 243, 247)
		y := d.pdf.GetY()
		d.pdf.SetX(marginLeft + keyWidth)
		d.pdf.MultiCell(valueW, lineHeight, value, "1", "L", fill)
		h := d.pdf.GetY() - y
		d.pdf.SetXY(marginLeft, y)
		d.pdf.CellFormat(keyWidth, h, d.tr(row[0]), "1", 1, "L", fill, 0, "")
	}
	d.pdf.Ln(6)
}

// table draws a grid with single-line cells.
func (d *document) table(head []string, weights []float64, rows [][]string) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = d.contentWidth() * w / total
	}
	d.ensureSpace(2 * lineHeight)
	d.head(head, widths)
	d.pdf.SetFont(d.family, "", 9)
	for _, row := range rows {
		if d.pdf.GetY()+lineHeight > pageBottom(d.pdf) {
			d.pdf.AddPage()
			d.head(head, widths)
			d.pdf.SetFont(d.family, "", 9)
		}
		for i, c := range row {
			d.pdf.CellFormat(widths[i], lineHeight, d.tr(c), "1", 0, "L", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(6)
}

func pageBottom(pdf *fpdf.Fpdf) float64 {
	_, h := pdf.GetPageSize()
	return h - bottomMargin
}

// AttachedFile is one document field listed in the attachments section.
type AttachedFile struct {
	Label    string
	File     entities.Attachment
	FileName string
}

// attachments embeds images and lists every other present file. Absent files are skipped.
func (d *document) attachments(heading string, files []AttachedFile) {
	present := files[:0:0]
	for _, f := range files {
		if f.File.Present() {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return
	}
	d.ensureSpace(3 * lineHeight)
	d.pdf.SetFont(d.family, "B", 14)
	d.pdf.CellFormat(0, 10, d.tr(heading), "", 1, "L", false, 0, "")

	for i, f := range present {
		d.ensureSpace(lineHeight + imageSize)
		d.pdf.SetFont(d.family, "B", 11)
		d.pdf.CellFormat(0, lineHeight, d.tr(f.Label), "", 1, "L", false, 0, "")
		d.pdf.SetFont(d.family, "", 10)
		if f.File.Kind() == entities.AttachmentKindImage {
			if d.embedImage(fmt.Sprintf("attachment-%d", i), f.File) {
				continue
			}
			d.pdf.CellFormat(0, lineHeight, "Could not embed image.", "", 1, "L", false, 0, "")
			continue
		}
		name := f.FileName
		if name == "" {
			name = "file.pdf"
		}
		d.pdf.CellFormat(0, lineHeight, d.tr("- A file is attached ("+name+"). Preview in app."), "", 1, "L", false, 0, "")
	}
}

// embedImage draws a square thumbnail. Formats the PDF writer cannot read are refused
// before registration so a bad upload never poisons the document.
func (d *document) embedImage(name string, file entities.Attachment) bool {
	data, _, err := file.Decode()
	if err != nil {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return false
	}
	opts := fpdf.ImageOptions{ImageType: imageType}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if !d.pdf.Ok() {
		return false
	}
	y := d.pdf.GetY()
	d.pdf.ImageOptions(name, marginLeft, y, imageSize, imageSize, false, opts, 0, "")
	d.pdf.SetY(y + imageSize + 5)
	return true
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		log.Printf("[export][pdf] render failed err=%v", err)
		return err
	}
	return nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// AmountInWords spells a whole-birr amount, e.g. "one hundred fifty thousand birr".
func AmountInWords(n int64) string {
	if n < 0 {
		return "minus " + AmountInWords(-n)
	}
	return num2words.Convert(int(n)) + " birr"
}

// WriteOrderPDF renders an order summary with its balance and payment history.
func (r *Renderer) WriteOrderPDF(w io.Writer, o entities.Order) error {
	d := r.newDocument("P", true)
	completed := o.Status == entities.OrderStatusCompleted
	if completed {
		d.title("Order Summary - ID: " + o.ID)
	} else {
		d.title("Pending Order Summary - ID: " + o.ID)
	}

	d.keyValues("Customer Details", "", [][2]string{
		{"Name", o.CustomerName()},
		{"Primary Phone", o.Phone1},
		{"Secondary Phone", orNA(o.Phone2)},
	})

	details := [][2]string{
		{"Machine Type", o.MachineType},
		{"Description", o.Description},
		{"Salesperson", orNA(o.Salesperson)},
		{"Delivery Date", o.DeliveryDate.String()},
	}
	if completed {
		d.keyValues("Order Details", "", details)
		d.keyValues("Payment Summary", "Amount", orderPaymentRows(o))
	} else {
		d.keyValues("Order & Payment Details", "", append(details, orderPaymentRows(o)...))
	}
	if rows := paymentHistoryRows(o.PaymentHistory); len(rows) > 0 {
		d.line(12, "Payment History")
		d.table([]string{"#", "Paid On", "Amount", "Receipt"}, []float64{1, 3, 3, 5}, rows)
	}

	files := []AttachedFile{
		{Label: "Customer ID Card", File: o.CustomerIDCard},
		{Label: "Machine Image", File: o.MachineImage},
		{Label: "Prepayment Receipt", File: o.PrepaymentReceipt},
		{Label: "Final Payment Receipt", File: o.RestOfPaymentReceipt},
		{Label: "Contract File", File: o.ContractFile, FileName: "contract.pdf"},
		{Label: "Warranty File", File: o.WarrantyFile, FileName: "warranty.pdf"},
		{Label: "Certification File", File: o.CertificationFile, FileName: "certification.pdf"},
	}
	for i, p := range o.PaymentHistory {
		files = append(files, AttachedFile{
			Label: "Payment Receipt " + strconv.Itoa(i+1) + " (" + p.Date.String() + ")", File: p.Receipt, FileName: p.ReceiptName,
		})
	}
	d.attachments("Attached Files", files)
	return d.output(w)
}

func orderPaymentRows(o entities.Order) [][2]string {
	completed := o.Status == entities.OrderStatusCompleted
	paymentDate := "Payment Date"
	if completed {
		paymentDate = "Final Payment Date"
	}
	rows := [][2]string{
		{"Machine Price", views.FormatETB(o.MachinePrice)},
		{"Prepayment", views.FormatETB(o.Prepayment)},
		{"Total Paid", views.FormatETB(o.TotalPaid())},
		{"Remaining Balance", views.FormatETB(o.RemainingBalance())},
		{paymentDate, orNA(o.PaymentDate.String())},
	}
	if completed {
		return append(rows, [2]string{"Machine Price (in words)", AmountInWords(o.MachinePrice)})
	}
	return append(rows, [2]string{"Remaining Balance (in words)", AmountInWords(o.RemainingBalance())})
}

func paymentHistoryRows(history []entities.Payment) [][]string {
	rows := make([][]string, 0, len(history))
	for i, p := range history {
		receipt := "None"
		switch {
		case p.ReceiptName != "":
			receipt = p.ReceiptName
		case p.Receipt.Present():
			receipt = "Attached"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), orNA(p.Date.String()), views.FormatETB(p.Amount), receipt})
	}
	return rows
}

func (r *Renderer) WriteTrainingPDF(w io.Writer, t entities.Training) error {
	d := r.newDocument("P", true)
	d.title("Training Registration Summary")
	rows := [][2]string{
		{"ID", orNA(t.ID)},
		{"Name", t.Name},
		{"Phone", t.Phone},
		{"Training Type", t.TrainingType},
		{"Specific Focus", orNA(t.TrainingCategory)},
		{"Due Date", t.DueDate.String()},
		{"Payment Status", string(t.Payment)},
		{"Training Status", string(t.Status)},
	}
	switch t.Certificate.Kind {
	case entities.CertificateGenerated:
		rows = append(rows,
			[2]string{"Certificate", "Generated"},
			[2]string{"Certificate Issue Date", orNA(t.Certificate.IssueDate.String())},
			[2]string{"Certificate ID", orNA(t.Certificate.ID)},
		)
	case entities.CertificateUploaded:
		rows = append(rows, [2]string{"Certificate", "Uploaded"})
	}
	d.keyValues("Trainee Details", "", rows)

	files := []AttachedFile{{Label: "Payment Receipt", File: t.PaymentReceipt, FileName: t.Name + "_receipt"}}
	if t.Certificate.Kind == entities.CertificateUploaded {
		files = append(files, AttachedFile{Label: "Certificate File", File: t.Certificate.File, FileName: t.Name + "_certificate"})
	}
	d.attachments("Attached Files", files)
	return d.output(w)
}

func (r *Renderer) WriteLetterPDF(w io.Writer, l entities.Letter) error {
	d := r.newDocument("P", true)
	d.title("Letter Summary - " + l.Subject)
	d.keyValues("Letter Details", "", [][2]string{
		{"ID", orNA(l.ID)},
		{"Sender Name", l.SenderName},
		{"Sender Phone", l.SenderPhone},
		{"Subject", l.Subject},
		{"Date Received", l.DateReceived.String()},
		{"Status", string(l.Status)},
		{"Notes", orNA(l.Notes)},
		{"Attached File", orNA(l.FileName)},
	})
	d.attachments("Attached Letter", []AttachedFile{{Label: "Letter", File: l.LetterFile, FileName: l.FileName}})
	return d.output(w)
}

func (r *Renderer) WriteProductPDF(w io.Writer, p entities.Product) error {
	d := r.newDocument("P", true)
	d.title(p.Name)
	price := "On request"
	if p.Price != nil {
		price = views.FormatETB(*p.Price)
	}
	d.keyValues("Product Details", "", [][2]string{
		{"Sector", string(p.Sector)},
		{"Category", p.Category},
		{"Item Group", p.ItemGroup},
		{"Model", orNA(p.Model)},
		{"Price", price},
		{"Summary", orNA(p.ShortDescription)},
		{"Description", orNA(p.FullDescription)},
		{"Video", orNA(videoLabel(p))},
	})
	if len(p.Specifications) > 0 {
		specs := make([][2]string, 0, len(p.Specifications))
		for _, s := range p.Specifications {
			specs = append(specs, [2]string{s.Label, s.Value})
		}
		d.keyValues("Specifications", "", specs)
	}
	if len(p.Features) > 0 {
		d.keyValues("Features", "", numbered(p.Features))
	}
	if len(p.UseCases) > 0 {
		d.keyValues("Use Cases", "", numbered(p.UseCases))
	}
	if strings.TrimSpace(p.Troubleshooting) != "" {
		d.keyValues("Troubleshooting", "", [][2]string{{"Notes", p.Troubleshooting}})
	}

	var files []AttachedFile
	for _, doc := range p.Documents() {
		name := ""
		if doc.Label == "Catalog" {
			name = p.CatalogFileName
		}
		files = append(files, AttachedFile{Label: doc.Label, File: doc.File, FileName: name})
	}
	d.attachments("Attached Files", files)
	return d.output(w)
}

func videoLabel(p entities.Product) string {
	switch p.Video() {
	case entities.VideoEmbed:
		return p.VideoURL
	case entities.VideoUploaded:
		return "Uploaded video (preview in app)"
	}
	return ""
}

func numbered(items []string) [][2]string {
	rows := make([][2]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, [2]string{strconv.Itoa(i + 1), it})
	}
	return rows
}

// WriteReportPDF renders the business report: metrics, then the completed orders of the window.
func (r *Renderer) WriteReportPDF(w io.Writer, rep views.Report, generatedAt time.Time) error {
	d := r.newDocument("P", true)
	d.title("Antenna Business Report")
	d.line(12, "Period: "+string(rep.Period))
	d.line(12, "Generated on: "+generatedAt.Format(GeneratedLayout))
	d.pdf.Ln(4)

	d.keyValues("Metric", "Value", [][2]string{
		{"Completed Orders", strconv.Itoa(len(rep.CompletedOrders))},
		{"Active Orders", strconv.Itoa(len(rep.ActiveOrders))},
		{"Total Contacts", strconv.Itoa(rep.TotalContacts)},
		{"Total Training Registrations", strconv.Itoa(rep.TotalTrainings)},
		{"Total Received Letters", strconv.Itoa(rep.TotalLetters)},
		{"Revenue (Completed)", views.FormatETB(rep.TotalRevenue)},
		{"Total Payments Received", views.FormatETB(rep.TotalPaymentsReceived)},
	})

	if len(rep.CompletedOrders) > 0 {
		rows := make([][]string, 0, len(rep.CompletedOrders))
		for _, o := range rep.CompletedOrders {
			rows = append(rows, []string{
				o.ID, o.CustomerFirstName + " " + o.CustomerFatherName, o.MachineType,
				views.FormatETB(o.MachinePrice), o.DeliveryDate.String(),
			})
		}
		d.table([]string{"Order ID", "Customer", "Machine Type", "Price", "Delivery Date"}, []float64{1, 2, 2, 1.5, 1.3}, rows)
	}
	return d.output(w)
}
