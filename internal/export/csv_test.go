package export

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/views"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleReport() views.Report {
	return views.Report{
		Period: views.PeriodWeekly,
		CompletedOrders: []entities.Order{
			{ID: "ANN003", CustomerFirstName: "Kebede", CustomerFatherName: "Tola", MachineType: "Grain Mill",
				MachinePrice: 90000, DeliveryDate: "2024-07-12", PaymentDate: "2024-07-15", Status: entities.OrderStatusCompleted},
		},
		ActiveOrders:          []entities.Order{{ID: "ANN001"}, {ID: "ANN002"}},
		TotalContacts:         2,
		TotalTrainings:        2,
		TotalLetters:          1,
		TotalRevenue:          90000,
		TotalPaymentsReceived: 91000,
		MachineTypeCounts:     []views.Count{{Label: "Grain Mill", Count: 2}, {Label: "Oil Press Machine", Count: 1}},
	}
}

var generatedAt = time.Date(2024, 7, 18, 9, 30, 0, 0, time.UTC)

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, sampleReport(), generatedAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"Summary Report",
		"Metric,Value",
		"Report Period,Weekly",
		"Generated On,2024-07-18 09:30:00",
		"",
		"Completed Orders (in period),1",
		"Active Orders (in period),2",
		"Total Contacts (all time),2",
		"Total Training Registrations (all time),2",
		"Total Received Letters (all time),1",
		`"Revenue (Completed, in period)","90,000 ETB"`,
		`Total Payments Received (in period),"91,000 ETB"`,
		"",
		"Orders by Machine Type (in period)",
		"Machine Type,Count",
		"Grain Mill,2",
		"Oil Press Machine,1",
		"",
		"Completed Orders (in period)",
		"Order ID,Customer,Machine Type,Price (ETB),Delivery Date",
		"ANN003,Kebede Tola,Grain Mill,90000,2024-07-12",
		"",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("report csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReportCSV_EmptyTablesOmitted(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, views.Report{Period: views.PeriodMonthly}, generatedAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Orders by Machine Type") || strings.Count(out, "Completed Orders (in period)") != 1 {
		t.Fatalf("empty tables should be omitted:\n%s", out)
	}
	if !strings.HasSuffix(out, "\"0 ETB\"\n\n") && !strings.HasSuffix(out, "0 ETB\n\n") {
		t.Fatalf("summary should end with a blank separator line:\n%q", out)
	}
}

func TestWriteContactsCSV(t *testing.T) {
	contacts := []entities.Contact{
		{Type: entities.ContactTypeLead, Name: "Almaz", Phone: "0911", LeadStatus: entities.LeadStatusQualified,
			Description: `He said "hi", then left`},
		{Type: entities.ContactTypeLead, Name: "Bereket", Phone: "0933"},
		{Type: entities.ContactTypeCustomer, Name: "Tesfaye", Phone: "0922", Address: "Bole", ProductInterest: "Grain Mill",
			Description: "line one\nline two"},
	}
	var buf bytes.Buffer
	if err := WriteContactsCSV(&buf, contacts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Category,Name,Phone,Address,Product Interest,Lead Status,Notes\n" +
		`Lead,Almaz,0911,,,Qualified,"He said ""hi"", then left"` + "\n" +
		"Lead,Bereket,0933,,,New,\n" +
		"Customer,Tesfaye,0922,Bole,Grain Mill,N/A,\"line one\nline two\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("contacts csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTrainingHistoryCSV(t *testing.T) {
	trainings := []entities.Training{
		{Name: "Hana", Phone: "0944", TrainingType: "Other", Status: entities.TrainingStatusOngoing, DueDate: "2024-08-01"},
		{Name: "Yonas", Phone: "0955", TrainingType: "Paper Bag Production", TrainingCategory: "Glycerin",
			Status: entities.TrainingStatusCompleted, DueDate: "2024-06-01", Certificate: entities.GeneratedCertificate("2024-06-02", "CERT-9")},
		{Name: "Abel", Phone: "0966", TrainingType: "Other", Status: entities.TrainingStatusCompleted, DueDate: "2024-05-01",
			Certificate: entities.UploadedCertificate("data:application/pdf;base64,JVBERi0=")},
	}
	var buf bytes.Buffer
	if err := WriteTrainingHistoryCSV(&buf, trainings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Trainee Name,Phone,Training Type,Specific Focus,Completion Date,Certificate ID\n" +
		"Yonas,0955,Paper Bag Production,Glycerin,2024-06-02,CERT-9\n" +
		"Abel,0966,Other,,2024-05-01,N/A\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("training csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteOrdersCSV(t *testing.T) {
	orders := []entities.Order{
		{ID: "ANN001", CustomerFirstName: "Abebe", CustomerFatherName: "Kebede", CustomerGrandfatherName: "Tola",
			MachineType: "Grain Mill", MachinePrice: 250000, DeliveryDate: "2024-07-25", PaymentDate: "2024-07-30",
			Salesperson: "Dawit", Status: entities.OrderStatusPending},
	}
	var active, history bytes.Buffer
	if err := WriteOrdersCSV(&active, orders); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteHistoryCSV(&history, orders); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Order ID,Customer Name,Machine Type,Price (ETB),Delivery Date,Salesperson,Status\n" +
		"ANN001,Abebe Kebede Tola,Grain Mill,250000,2024-07-25,Dawit,Pending\n"; active.String() != want {
		t.Fatalf("unexpected orders csv:\n%s", active.String())
	}
	if !strings.Contains(history.String(), "Completion Date") || !strings.Contains(history.String(), "2024-07-30") {
		t.Fatalf("history csv should use the payment date:\n%s", history.String())
	}
}
