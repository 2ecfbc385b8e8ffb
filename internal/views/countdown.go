package views

import (
	"antenna_ops/internal/domain/entities"
	"fmt"
)

// Urgency classifies a delivery date relative to today.
type Urgency string

const (
	UrgencyInvalid Urgency = "invalid"
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "due_soon"
	UrgencyNormal  Urgency = "normal"
)

// dueSoonDays is the widest gap still reported as due soon.
const dueSoonDays = 5

type Countdown struct {
	Urgency Urgency `json:"urgency"`
	Days    int     `json:"days"`
	Text    string  `json:"text"`
}

// DeliveryCountdown compares calendar days only. Days is negative when overdue.
func DeliveryCountdown(delivery, today entities.Date) Countdown {
	diff, err := today.DaysUntil(delivery)
	if err != nil {
		return Countdown{Urgency: UrgencyInvalid, Text: "Invalid Date"}
	}
	switch {
	case diff < 0:
		return Countdown{Urgency: UrgencyOverdue, Days: diff, Text: "Overdue by " + plural(-diff, "day")}
	case diff == 0:
		return Countdown{Urgency: UrgencyDueSoon, Text: "Due Today"}
	case diff <= dueSoonDays:
		return Countdown{Urgency: UrgencyDueSoon, Days: diff, Text: plural(diff, "day") + " left"}
	}
	return Countdown{Urgency: UrgencyNormal, Days: diff, Text: fmt.Sprintf("%d days left", diff)}
}

// TaskDueStatus returns "Overdue", "Due Today" or "" for anything later or unparseable.
func TaskDueStatus(due, today entities.Date) string {
	diff, err := today.DaysUntil(due)
	if err != nil {
		return ""
	}
	switch {
	case diff < 0:
		return "Overdue"
	case diff == 0:
		return "Due Today"
	}
	return ""
}

var reminderLabels = map[entities.Reminder]string{
	entities.ReminderOnDueDate:     "On the due date",
	entities.ReminderOneDayBefore:  "1 day before the due date",
	entities.ReminderTwoDaysBefore: "2 days before the due date",
	entities.ReminderOneWeekBefore: "1 week before the due date",
}

func ReminderText(r entities.Reminder) string {
	label, ok := reminderLabels[r]
	if !ok {
		return ""
	}
	return "Reminder set for: " + label
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
