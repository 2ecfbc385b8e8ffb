package views

import (
	"antenna_ops/internal/domain/entities"
	"testing"
)

func TestDeliveryCountdown(t *testing.T) {
	today := entities.Date("2024-07-18")
	cases := []struct {
		name     string
		delivery entities.Date
		urgency  Urgency
		text     string
	}{
		{"two days overdue", "2024-07-16", UrgencyOverdue, "Overdue by 2 days"},
		{"one day overdue", "2024-07-17", UrgencyOverdue, "Overdue by 1 day"},
		{"due today", "2024-07-18", UrgencyDueSoon, "Due Today"},
		{"tomorrow", "2024-07-19", UrgencyDueSoon, "1 day left"},
		{"three days", "2024-07-21", UrgencyDueSoon, "3 days left"},
		{"five days is still soon", "2024-07-23", UrgencyDueSoon, "5 days left"},
		{"six days is normal", "2024-07-24", UrgencyNormal, "6 days left"},
		{"ten days", "2024-07-28", UrgencyNormal, "10 days left"},
		{"across a month", "2024-08-02", UrgencyNormal, "15 days left"},
		{"unparseable", "soon", UrgencyInvalid, "Invalid Date"},
		{"empty", "", UrgencyInvalid, "Invalid Date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeliveryCountdown(tc.delivery, today)
			if got.Urgency != tc.urgency || got.Text != tc.text {
				t.Fatalf("expected %s %q, got %s %q", tc.urgency, tc.text, got.Urgency, got.Text)
			}
		})
	}
}

func TestTaskDueStatus(t *testing.T) {
	today := entities.Date("2024-07-18")
	if got := TaskDueStatus("2024-07-01", today); got != "Overdue" {
		t.Fatalf("expected Overdue, got %q", got)
	}
	if got := TaskDueStatus(today, today); got != "Due Today" {
		t.Fatalf("expected Due Today, got %q", got)
	}
	if got := TaskDueStatus("2024-07-19", today); got != "" {
		t.Fatalf("expected no status, got %q", got)
	}
	if got := TaskDueStatus("", today); got != "" {
		t.Fatalf("expected no status for empty date, got %q", got)
	}
}

func TestReminderText(t *testing.T) {
	if got := ReminderText(entities.ReminderOneWeekBefore); got != "Reminder set for: 1 week before the due date" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := ReminderText(entities.ReminderNone); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
