package response

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/views"
)

// TaskResponse adds the board badges computed against today.
type TaskResponse struct {
	entities.Task
	DueStatus    string `json:"dueStatus,omitempty"`
	ReminderText string `json:"reminderText,omitempty"`
}

func FromTask(t entities.Task, today entities.Date) TaskResponse {
	res := TaskResponse{Task: t, ReminderText: views.ReminderText(t.Reminder)}
	if t.Status != entities.TaskStatusDone {
		res.DueStatus = views.TaskDueStatus(t.DueDate, today)
	}
	return res
}

// TaskBoard groups tasks into the three board columns.
type TaskBoard struct {
	ToDo       []TaskResponse `json:"toDo"`
	InProgress []TaskResponse `json:"inProgress"`
	Done       []TaskResponse `json:"done"`
}

func FromTasks(tasks []entities.Task, today entities.Date) TaskBoard {
	board := TaskBoard{ToDo: []TaskResponse{}, InProgress: []TaskResponse{}, Done: []TaskResponse{}}
	for _, t := range tasks {
		res := FromTask(t, today)
		switch t.Status {
		case entities.TaskStatusInProgress:
			board.InProgress = append(board.InProgress, res)
		case entities.TaskStatusDone:
			board.Done = append(board.Done, res)
		default:
			board.ToDo = append(board.ToDo, res)
		}
	}
	return board
}
