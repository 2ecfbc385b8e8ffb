package export

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/views"
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// GeneratedLayout is how export timestamps are printed.
const GeneratedLayout = "2006-01-02 15:04:05"

// csvWriter keeps the first error so table builders can write unconditionally.
type csvWriter struct {
	w   *csv.Writer
	err error
}

func newCSVWriter(w io.Writer) *csvWriter {
	return &csvWriter{w: csv.NewWriter(w)}
}

func (c *csvWriter) row(fields ...string) {
	if c.err != nil {
		return
	}
	c.err = c.w.Write(fields)
}

// blank ends a labeled table; two newlines separate tables in a multi-table file.
func (c *csvWriter) blank() {
	c.row()
}

func (c *csvWriter) flush() error {
	if c.err != nil {
		return c.err
	}
	c.w.Flush()
	return c.w.Error()
}

// WriteReportCSV writes the summary, machine type and completed order tables, each under
// its own label line and separated by a blank line. Empty tables are omitted.
func WriteReportCSV(w io.Writer, r views.Report, generatedAt time.Time) error {
	c := newCSVWriter(w)

	c.row("Summary Report")
	c.row("Metric", "Value")
	c.row("Report Period", string(r.Period))
	c.row("Generated On", generatedAt.Format(GeneratedLayout))
	c.row()
	c.row("Completed Orders (in period)", strconv.Itoa(len(r.CompletedOrders)))
	c.row("Active Orders (in period)", strconv.Itoa(len(r.ActiveOrders)))
	c.row("Total Contacts (all time)", strconv.Itoa(r.TotalContacts))
	c.row("Total Training Registrations (all time)", strconv.Itoa(r.TotalTrainings))
	c.row("Total Received Letters (all time)", strconv.Itoa(r.TotalLetters))
	c.row("Revenue (Completed, in period)", views.FormatETB(r.TotalRevenue))
	c.row("Total Payments Received (in period)", views.FormatETB(r.TotalPaymentsReceived))
	c.blank()

	if len(r.MachineTypeCounts) > 0 {
		c.row("Orders by Machine Type (in period)")
		c.row("Machine Type", "Count")
		for _, mt := range r.MachineTypeCounts {
			c.row(mt.Label, strconv.Itoa(mt.Count))
		}
		c.blank()
	}

	if len(r.CompletedOrders) > 0 {
		c.row("Completed Orders (in period)")
		c.row("Order ID", "Customer", "Machine Type", "Price (ETB)", "Delivery Date")
		for _, o := range r.CompletedOrders {
			c.row(o.ID, o.CustomerFirstName+" "+o.CustomerFatherName, o.MachineType,
				strconv.FormatInt(o.MachinePrice, 10), o.DeliveryDate.String())
		}
		c.blank()
	}
	return c.flush()
}

// WriteContactsCSV exports every contact. Lead status is "N/A" for customers.
func WriteContactsCSV(w io.Writer, contacts []entities.Contact) error {
	c := newCSVWriter(w)
	c.row("Category", "Name", "Phone", "Address", "Product Interest", "Lead Status", "Notes")
	for _, ct := range contacts {
		status := "N/A"
		if ct.Type == entities.ContactTypeLead {
			status = string(entities.LeadStatusNew)
			if ct.LeadStatus != "" {
				status = string(ct.LeadStatus)
			}
		}
		c.row(string(ct.Type), ct.Name, ct.Phone, ct.Address, ct.ProductInterest, status, ct.Description)
	}
	return c.flush()
}

// WriteTrainingHistoryCSV exports completed trainings. Completion date is the certificate
// issue date when one was recorded, otherwise the due date.
func WriteTrainingHistoryCSV(w io.Writer, trainings []entities.Training) error {
	c := newCSVWriter(w)
	c.row("Trainee Name", "Phone", "Training Type", "Specific Focus", "Completion Date", "Certificate ID")
	for _, t := range views.CompletedTrainings(trainings) {
		completed := t.DueDate
		if t.Certificate.IssueDate != "" {
			completed = t.Certificate.IssueDate
		}
		certID := t.Certificate.ID
		if certID == "" {
			certID = "N/A"
		}
		c.row(t.Name, t.Phone, t.TrainingType, t.TrainingCategory, completed.String(), certID)
	}
	return c.flush()
}

// WriteOrdersCSV exports active orders with their delivery date.
func WriteOrdersCSV(w io.Writer, orders []entities.Order) error {
	return writeOrderTable(w, orders, "Delivery Date", func(o entities.Order) entities.Date { return o.DeliveryDate })
}

// WriteHistoryCSV exports completed orders with their final payment date.
func WriteHistoryCSV(w io.Writer, history []entities.Order) error {
	return writeOrderTable(w, history, "Completion Date", func(o entities.Order) entities.Date { return o.PaymentDate })
}

func writeOrderTable(w io.Writer, orders []entities.Order, dateHeader string, date func(entities.Order) entities.Date) error {
	c := newCSVWriter(w)
	c.row("Order ID", "Customer Name", "Machine Type", "Price (ETB)", dateHeader, "Salesperson", "Status")
	for _, o := range orders {
		c.row(o.ID, o.CustomerFirstName+" "+o.CustomerFatherName+" "+o.CustomerGrandfatherName, o.MachineType,
			strconv.FormatInt(o.MachinePrice, 10), date(o).String(), o.Salesperson, string(o.Status))
	}
	return c.flush()
}
