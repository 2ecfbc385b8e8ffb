package usecase

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
)

// IReminderUseCase is the notification scheduler.
//
// Rules:
//   - tasks that are Done, or have no reminder, never fire
//   - reminder date = due date - offset (0, 1, 2 or 7 days)
//   - a task fires when today equals its reminder date; the notification key is the task id
//   - dedup of repeated checks on the same day is the notifier's job
type IReminderUseCase interface {
	CheckReminders(ctx context.Context, today entities.Date) ([]entities.Notification, error)
	CheckNow(ctx context.Context) ([]entities.Notification, error)
}

type ReminderUseCase struct {
	store    *Store
	notifier interfaces.INotifier
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

// NewReminderUseCase wires the scheduler and subscribes it to task changes.
func NewReminderUseCase(store *Store, notifier interfaces.INotifier) *ReminderUseCase {
	u := &ReminderUseCase{store: store, notifier: notifier}
	store.Watch(entities.SlotTasks, func(ctx context.Context, snap Snapshot) {
		if _, err := u.check(ctx, snap.Tasks, store.Today()); err != nil {
			log.Printf("[reminder][usecase] check after task change failed err=%v", err)
		}
	})
	return u
}

func (u *ReminderUseCase) CheckNow(ctx context.Context) ([]entities.Notification, error) {
	return u.CheckReminders(ctx, u.store.Today())
}

func (u *ReminderUseCase) CheckReminders(ctx context.Context, today entities.Date) ([]entities.Notification, error) {
	return u.check(ctx, u.store.Snapshot().Tasks, today)
}

func (u *ReminderUseCase) check(ctx context.Context, tasks []entities.Task, today entities.Date) ([]entities.Notification, error) {
	due := DueReminders(tasks, today)
	var firstErr error
	for _, n := range due {
		if u.notifier == nil {
			break
		}
		if err := u.notifier.Notify(ctx, n); err != nil {
			log.Printf("[reminder][usecase] notify failed key=%s err=%v", n.Key, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return due, firstErr
}

// DueReminders returns the notifications that fire on today.
func DueReminders(tasks []entities.Task, today entities.Date) []entities.Notification {
	var out []entities.Notification
	for _, t := range tasks {
		if t.Status == entities.TaskStatusDone {
			continue
		}
		at, ok := t.ReminderDate()
		if !ok || at != today {
			continue
		}
		out = append(out, entities.Notification{
			Key:   t.ID,
			Title: "Task Reminder: " + t.Title,
			Body:  fmt.Sprintf("Due: %s\nPriority: %s\n%s", t.DueDate, t.Priority, t.Description),
			Date:  today,
		})
	}
	return out
}
