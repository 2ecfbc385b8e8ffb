package response

import (
	"antenna_ops/internal/domain/entities"
	"testing"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{ID: "ANN001", CustomerFirstName: "Abebe", CustomerFatherName: "Kebede", MachinePrice: 250000,
		Prepayment: 100000, PaymentHistory: []entities.Payment{{Amount: 50000, Date: "2024-07-01"}}}
	res := FromOrder(o)
	if res.TotalPaid != 150000 || res.RemainingBalance != 100000 {
		t.Fatalf("unexpected totals %+v", res)
	}
	if res.TotalPaidText != "150,000 ETB" || res.RemainingText != "100,000 ETB" {
		t.Fatalf("unexpected text %q %q", res.TotalPaidText, res.RemainingText)
	}
	if res.CustomerName != "Abebe Kebede" {
		t.Fatalf("unexpected customer name %q", res.CustomerName)
	}
	if got := FromOrders(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromTasks(t *testing.T) {
	tasks := []entities.Task{
		{ID: "k1", Status: entities.TaskStatusToDo, DueDate: "2024-07-10", Reminder: entities.ReminderOnDueDate},
		{ID: "k2", Status: entities.TaskStatusDone, DueDate: "2024-07-10"},
		{ID: "k3", Status: entities.TaskStatusInProgress, DueDate: "2024-07-18"},
	}
	board := FromTasks(tasks, "2024-07-18")
	if len(board.ToDo) != 1 || len(board.InProgress) != 1 || len(board.Done) != 1 {
		t.Fatalf("unexpected board %+v", board)
	}
	if board.ToDo[0].DueStatus != "Overdue" || board.ToDo[0].ReminderText != "Reminder set for: On the due date" {
		t.Fatalf("unexpected badges %+v", board.ToDo[0])
	}
	if board.InProgress[0].DueStatus != "Due Today" {
		t.Fatalf("unexpected badge %q", board.InProgress[0].DueStatus)
	}
	if board.Done[0].DueStatus != "" {
		t.Fatalf("done tasks carry no due badge")
	}
}
