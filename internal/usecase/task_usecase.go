package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidTask       = errors.New("invalid task")
)

// ITaskUseCase drives the three-column board. Any status may move to any other.
// Every persisted change re-runs the reminder check through the store watcher.
type ITaskUseCase interface {
	AddTask(ctx context.Context, draft entities.TaskDraft) (entities.Task, error)
	UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListTasks(ctx context.Context) []entities.Task
}

type TaskUseCase struct {
	store *Store
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(store *Store) *TaskUseCase {
	return &TaskUseCase{store: store}
}

func (u *TaskUseCase) AddTask(ctx context.Context, draft entities.TaskDraft) (entities.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return entities.Task{}, ErrInvalidTask
	}
	if draft.Priority == "" {
		draft.Priority = entities.TaskPriorityMedium
	}
	if draft.Reminder == "" {
		draft.Reminder = entities.ReminderNone
	}
	if !draft.Priority.Valid() {
		return entities.Task{}, ErrInvalidTask
	}
	t := draft.ToTask(u.store.NewID())
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		st.Tasks = append(st.Tasks, t)
		return []entities.Slot{entities.SlotTasks}
	})
	log.Printf("[task][usecase] add id=%s due=%s reminder=%s", t.ID, t.DueDate, t.Reminder)
	return t, nil
}

// UpdateTask replaces the editable fields; the board column is kept.
func (u *TaskUseCase) UpdateTask(ctx context.Context, t entities.Task) (entities.Task, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	if strings.TrimSpace(t.Title) == "" || (t.Priority != "" && !t.Priority.Valid()) {
		return entities.Task{}, ErrInvalidTask
	}
	return u.replace(ctx, t.ID, func(cur entities.Task) entities.Task {
		t.Status = cur.Status
		return t
	})
}

func (u *TaskUseCase) UpdateTaskStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	if !status.Valid() {
		return entities.Task{}, ErrInvalidTaskStatus
	}
	updated, err := u.replace(ctx, id, func(cur entities.Task) entities.Task {
		cur.Status = status
		return cur
	})
	if err == nil {
		log.Printf("[task][usecase] status id=%s status=%q", id, status)
	}
	return updated, err
}

func (u *TaskUseCase) replace(ctx context.Context, id string, fn func(entities.Task) entities.Task) (entities.Task, error) {
	var (
		updated entities.Task
		found   bool
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				st.Tasks[i] = fn(st.Tasks[i])
				updated = st.Tasks[i]
				found = true
				return []entities.Slot{entities.SlotTasks}
			}
		}
		return nil
	})
	if !found {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) DeleteTask(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaskID
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				st.Tasks = append(st.Tasks[:i:i], st.Tasks[i+1:]...)
				found = true
				return []entities.Slot{entities.SlotTasks}
			}
		}
		return nil
	})
	if !found {
		return ErrTaskNotFound
	}
	log.Printf("[task][usecase] delete id=%s", id)
	return nil
}

func (u *TaskUseCase) GetByID(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	for _, t := range u.store.Snapshot().Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.Task{}, ErrTaskNotFound
}

func (u *TaskUseCase) ListTasks(ctx context.Context) []entities.Task {
	return u.store.Snapshot().Tasks
}
