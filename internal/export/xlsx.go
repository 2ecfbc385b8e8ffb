package export

import (
	"antenna_ops/internal/views"
	"io"
	"log"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary         = "Summary"
	SheetMachineTypes    = "Machine Types"
	SheetCompletedOrders = "Completed Orders"
)

// WriteReportXLSX writes the report as a workbook with one sheet per table. Amounts are
// numeric cells so the workbook can be summed.
func WriteReportXLSX(w io.Writer, r views.Report, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[export][xlsx] close failed err=%v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Metric", "Value"},
		{"Report Period", string(r.Period)},
		{"Generated On", generatedAt.Format(GeneratedLayout)},
		{"Completed Orders (in period)", len(r.CompletedOrders)},
		{"Active Orders (in period)", len(r.ActiveOrders)},
		{"Total Contacts (all time)", r.TotalContacts},
		{"Total Training Registrations (all time)", r.TotalTrainings},
		{"Total Received Letters (all time)", r.TotalLetters},
		{"Revenue (Completed, in period) ETB", r.TotalRevenue},
		{"Total Payments Received (in period) ETB", r.TotalPaymentsReceived},
	}
	if err := writeSheet(f, SheetSummary, summary, bold, 42); err != nil {
		return err
	}

	machineTypes := [][]any{{"Machine Type", "Count"}}
	for _, c := range r.MachineTypeCounts {
		machineTypes = append(machineTypes, []any{c.Label, c.Count})
	}
	if _, err := f.NewSheet(SheetMachineTypes); err != nil {
		return err
	}
	if err := writeSheet(f, SheetMachineTypes, machineTypes, bold, 32); err != nil {
		return err
	}

	orders := [][]any{{"Order ID", "Customer", "Machine Type", "Price (ETB)", "Delivery Date", "Payment Date"}}
	for _, o := range r.CompletedOrders {
		orders = append(orders, []any{
			o.ID, o.CustomerFirstName + " " + o.CustomerFatherName, o.MachineType,
			o.MachinePrice, o.DeliveryDate.String(), o.PaymentDate.String(),
		})
	}
	if _, err := f.NewSheet(SheetCompletedOrders); err != nil {
		return err
	}
	if err := writeSheet(f, SheetCompletedOrders, orders, bold, 24); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

// writeSheet fills rows from A1 and styles the header row.
func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int, firstColWidth float64) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", firstColWidth)
}
