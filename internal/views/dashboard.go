package views

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"slices"
)

// DefaultRecentFilesLimit is the size of the dashboard "recent files" window.
const DefaultRecentFilesLimit = 8

type DashboardStats struct {
	InManufacturing    int    `json:"inManufacturing"`
	ReadyForCompletion int    `json:"readyForCompletion"`
	Completed          int    `json:"completed"`
	PendingTasks       int    `json:"pendingTasks"`
	TotalContacts      int    `json:"totalContacts"`
	TotalTrainings     int    `json:"totalTrainings"`
	TotalLetters       int    `json:"totalLetters"`
	TotalProducts      int    `json:"totalProducts"`
	TotalRevenue       int64  `json:"totalRevenue"`
	TotalRevenueText   string `json:"totalRevenueText"`
}

type Dashboard struct {
	Stats       DashboardStats `json:"stats"`
	Taxonomy    []SectorNode   `json:"taxonomy"`
	RecentFiles []RecentFile   `json:"recentFiles"`
}

// FileType groups recent files for display.
type FileType string

const (
	FileTypeContract    FileType = "contract"
	FileTypeReceipt     FileType = "receipt"
	FileTypeLetter      FileType = "letter"
	FileTypeCertificate FileType = "certificate"
)

type RecentFile struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Type   FileType            `json:"type"`
	Date   entities.Date       `json:"date"`
	Source string              `json:"source"`
	File   entities.Attachment `json:"file"`
}

func BuildDashboard(snap usecase.Snapshot, recentLimit int) Dashboard {
	return Dashboard{
		Stats:       Stats(snap),
		Taxonomy:    Taxonomy(snap.Products),
		RecentFiles: RecentFiles(snap, recentLimit),
	}
}

// Stats counts orders by status and sums revenue over History.
func Stats(snap usecase.Snapshot) DashboardStats {
	st := DashboardStats{
		Completed:      len(snap.History),
		TotalContacts:  len(snap.Contacts),
		TotalTrainings: len(snap.Trainings),
		TotalLetters:   len(snap.Letters),
		TotalProducts:  len(snap.Products),
	}
	for _, o := range snap.Orders {
		switch o.Status {
		case entities.OrderStatusPending:
			st.InManufacturing++
		case entities.OrderStatusReadyForCompletion:
			st.ReadyForCompletion++
		}
	}
	for _, t := range snap.Tasks {
		if t.Status != entities.TaskStatusDone {
			st.PendingTasks++
		}
	}
	st.TotalRevenue = Revenue(snap.History)
	st.TotalRevenueText = FormatThousands(st.TotalRevenue)
	return st
}

// Revenue is the sum of machine prices.
func Revenue(orders []entities.Order) int64 {
	var total int64
	for _, o := range orders {
		total += o.MachinePrice
	}
	return total
}

// RecentFiles unions the document fields of orders, history, letters and uploaded
// certificates, newest first, capped at limit (DefaultRecentFilesLimit when limit <= 0).
// Undated entries sort last.
func RecentFiles(snap usecase.Snapshot, limit int) []RecentFile {
	if limit <= 0 {
		limit = DefaultRecentFilesLimit
	}
	var files []RecentFile
	orders := append(append([]entities.Order{}, snap.Orders...), snap.History...)
	for _, o := range orders {
		source := "Order #" + o.ID
		if o.ContractFile.Present() {
			files = append(files, RecentFile{
				ID: o.ID + "cont", Name: "Contract - " + o.CustomerFirstName, Type: FileTypeContract,
				Date: firstDate(o.PaymentDate, o.DeliveryDate), Source: source, File: o.ContractFile,
			})
		}
		if o.PrepaymentReceipt.Present() {
			files = append(files, RecentFile{
				ID: o.ID + "pre", Name: "Receipt - " + o.CustomerFirstName, Type: FileTypeReceipt,
				Date: o.DeliveryDate, Source: source, File: o.PrepaymentReceipt,
			})
		}
		if o.RestOfPaymentReceipt.Present() {
			files = append(files, RecentFile{
				ID: o.ID + "rest", Name: "Final Receipt - " + o.CustomerFirstName, Type: FileTypeReceipt,
				Date: o.PaymentDate, Source: source, File: o.RestOfPaymentReceipt,
			})
		}
	}
	for _, l := range snap.Letters {
		if l.LetterFile.Present() {
			files = append(files, RecentFile{
				ID: l.ID, Name: l.Subject, Type: FileTypeLetter,
				Date: l.DateReceived, Source: "Letter from " + l.SenderName, File: l.LetterFile,
			})
		}
	}
	for _, t := range snap.Trainings {
		if t.Certificate.Kind == entities.CertificateUploaded && t.Certificate.File.Present() {
			files = append(files, RecentFile{
				ID: t.ID, Name: "Certificate - " + t.Name, Type: FileTypeCertificate,
				Date: firstDate(t.Certificate.IssueDate, t.DueDate), Source: "Training: " + t.TrainingType,
				File: t.Certificate.File,
			})
		}
	}

	slices.SortStableFunc(files, func(a, b RecentFile) int {
		av, bv := a.Date.Valid(), b.Date.Valid()
		switch {
		case av && !bv:
			return -1
		case !av && bv:
			return 1
		}
		return compareDates(b.Date, a.Date)
	})
	if len(files) > limit {
		files = files[:limit]
	}
	if files == nil {
		files = []RecentFile{}
	}
	return files
}

func firstDate(dates ...entities.Date) entities.Date {
	for _, d := range dates {
		if d != "" {
			return d
		}
	}
	return ""
}
