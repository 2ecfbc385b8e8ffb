package views

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const pdf = entities.Attachment("data:application/pdf;base64,JVBERi0=")

func dashboardSnapshot() usecase.Snapshot {
	return usecase.Snapshot{
		Orders: []entities.Order{
			{ID: "ANN001", CustomerFirstName: "Abebe", MachineType: "Grain Mill", DeliveryDate: "2024-07-25", PaymentDate: "",
				Prepayment: 1000, PrepaymentReceipt: pdf, Status: entities.OrderStatusPending},
			{ID: "ANN002", CustomerFirstName: "Sara", MachineType: "Oil Press Machine", DeliveryDate: "2024-07-16",
				Status: entities.OrderStatusReadyForCompletion},
			{ID: "ANN004", CustomerFirstName: "Lulit", MachineType: "Grain Mill", DeliveryDate: "2024-07-05", Status: entities.OrderStatusPending},
		},
		History: []entities.Order{
			{ID: "ANN003", CustomerFirstName: "Kebede", CustomerFatherName: "Tola", MachineType: "Grain Mill", MachinePrice: 90000, Prepayment: 40000,
				PaymentHistory: []entities.Payment{{Amount: 50000, Date: "2024-07-15"}}, DeliveryDate: "2024-07-12", PaymentDate: "2024-07-15",
				ContractFile: pdf, RestOfPaymentReceipt: pdf, Status: entities.OrderStatusCompleted},
			{ID: "ANN000", CustomerFirstName: "Old", MachineType: "Corn Sheller", MachinePrice: 275000, PaymentDate: "2024-05-01",
				Status: entities.OrderStatusCompleted},
		},
		Contacts: []entities.Contact{{ID: "c1"}, {ID: "c2"}},
		Trainings: []entities.Training{
			{ID: "t1", Name: "Hana", TrainingType: "Other", DueDate: "2024-07-11", Status: entities.TrainingStatusCompleted,
				Certificate: entities.UploadedCertificate(pdf)},
			{ID: "t2", Name: "Yonas", TrainingType: "Other", DueDate: "2024-07-30", Status: entities.TrainingStatusCompleted,
				Certificate: entities.GeneratedCertificate("2024-07-17", "C-1")},
		},
		Letters: []entities.Letter{
			{ID: "l1", SenderName: "Ministry", Subject: "Permit", DateReceived: "2024-07-02", LetterFile: pdf, Status: entities.LetterStatusNew},
		},
		Tasks: []entities.Task{
			{ID: "k1", Status: entities.TaskStatusToDo},
			{ID: "k2", Status: entities.TaskStatusInProgress},
			{ID: "k3", Status: entities.TaskStatusDone},
		},
		Products: []entities.Product{
			{ID: "p1", Sector: entities.SectorMachineManufacturing, Category: "Construction", ItemGroup: "Block Machine"},
			{ID: "p2", Sector: entities.SectorTraining, Category: "Chemicals", ItemGroup: "Soap"},
			{ID: "p3", Sector: entities.SectorMachineManufacturing, Category: "Agro", ItemGroup: "Mill",
				Images: []entities.Attachment{"data:image/png;base64,iVBORw0KGgo="}},
			{ID: "p4", Sector: entities.SectorMachineManufacturing, Category: "Construction", ItemGroup: "Block Machine"},
		},
	}
}

func TestStats(t *testing.T) {
	got := Stats(dashboardSnapshot())
	want := DashboardStats{
		InManufacturing:    2,
		ReadyForCompletion: 1,
		Completed:          2,
		PendingTasks:       2,
		TotalContacts:      2,
		TotalTrainings:     2,
		TotalLetters:       1,
		TotalProducts:      4,
		TotalRevenue:       365000,
		TotalRevenueText:   "365.0k",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestTaxonomy(t *testing.T) {
	got := Taxonomy(dashboardSnapshot().Products)
	if len(got) != 2 || got[0].Sector != entities.SectorMachineManufacturing || got[1].Sector != entities.SectorTraining {
		t.Fatalf("unexpected sectors %+v", got)
	}
	cats := got[0].Categories
	if len(cats) != 2 || cats[0].Name != "Construction" || cats[1].Name != "Agro" {
		t.Fatalf("categories should keep first-seen order, got %+v", cats)
	}
	if cats[0].ItemGroups[0].Count != 2 {
		t.Fatalf("expected two block machines, got %+v", cats[0].ItemGroups)
	}
	if !cats[1].ItemGroups[0].Cover.Present() {
		t.Fatal("expected the mill group to carry a cover image")
	}
	if empty := Taxonomy(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty tree, got %#v", empty)
	}
}

func TestSpecFilters(t *testing.T) {
	products := []entities.Product{
		{Specifications: []entities.Specification{{Label: "Power", Value: "5kW"}, {Label: "Voltage", Value: "380V"}}},
		{Specifications: []entities.Specification{{Label: "Power", Value: "3kW"}, {Label: "Voltage", Value: "380V"}}},
		{Specifications: []entities.Specification{{Label: "Power", Value: ""}}},
	}
	got := SpecFilters(products)
	want := map[string][]string{"Power": {"3kW", "5kW"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestRecentFiles(t *testing.T) {
	got := RecentFiles(dashboardSnapshot(), 0)
	var names []string
	for _, f := range got {
		names = append(names, f.Name)
	}
	want := []string{
		"Receipt - Abebe",
		"Contract - Kebede",
		"Final Receipt - Kebede",
		"Certificate - Hana",
		"Permit",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("recent files mismatch (-want +got):\n%s", diff)
	}
	if got[0].Source != "Order #ANN001" || got[4].Source != "Letter from Ministry" || got[3].Source != "Training: Other" {
		t.Fatalf("unexpected sources %+v", got)
	}

	t.Run("window is capped", func(t *testing.T) {
		if capped := RecentFiles(dashboardSnapshot(), 2); len(capped) != 2 {
			t.Fatalf("expected 2 files, got %d", len(capped))
		}
	})
}

func TestFormatting(t *testing.T) {
	if got := FormatETB(150000); got != "150,000 ETB" {
		t.Fatalf("unexpected amount %q", got)
	}
	if got := FormatAmount(999); got != "999" {
		t.Fatalf("unexpected amount %q", got)
	}
	if got := FormatThousands(90500); got != "90.5k" {
		t.Fatalf("unexpected revenue text %q", got)
	}
}
