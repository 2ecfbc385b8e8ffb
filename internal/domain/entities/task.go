package entities

// TaskStatus is a board column. Any column may move to any other.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// Reminder is how long before the due date a notification fires.
type Reminder string

const (
	ReminderNone          Reminder = "none"
	ReminderOnDueDate     Reminder = "on_due_date"
	ReminderOneDayBefore  Reminder = "1_day_before"
	ReminderTwoDaysBefore Reminder = "2_days_before"
	ReminderOneWeekBefore Reminder = "1_week_before"
)

// OffsetDays returns the reminder lead time. ok is false for none or unknown values.
func (r Reminder) OffsetDays() (days int, ok bool) {
	switch r {
	case ReminderOnDueDate:
		return 0, true
	case ReminderOneDayBefore:
		return 1, true
	case ReminderTwoDaysBefore:
		return 2, true
	case ReminderOneWeekBefore:
		return 7, true
	}
	return 0, false
}

var TaskDepartments = []string{
	"General",
	"Management",
	"Chemical Engineering Trainer",
	"Fiberglass Trainer",
	"Paper Bag Trainer",
	"Operations",
	"Sales",
}

func ValidDepartment(name string) bool {
	for _, d := range TaskDepartments {
		if d == name {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Assignee    string       `json:"assignee"`
	Department  string       `json:"department"`
	DueDate     Date         `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Reminder    Reminder     `json:"reminder,omitempty"`
}

type TaskDraft struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Assignee    string       `json:"assignee"`
	Department  string       `json:"department"`
	DueDate     Date         `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	Reminder    Reminder     `json:"reminder,omitempty"`
}

func (d TaskDraft) ToTask(id string) Task {
	return Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Assignee:    d.Assignee,
		Department:  d.Department,
		DueDate:     d.DueDate,
		Priority:    d.Priority,
		Status:      TaskStatusToDo,
		Reminder:    d.Reminder,
	}
}

// ReminderDate is the day the task's reminder fires. ok is false when no reminder applies.
func (t Task) ReminderDate() (Date, bool) {
	offset, ok := t.Reminder.OffsetDays()
	if !ok {
		return "", false
	}
	d, err := t.DueDate.AddDays(-offset)
	if err != nil {
		return "", false
	}
	return d, true
}
