package response

import "antenna_ops/internal/domain/entities"

type ReminderCheckResponse struct {
	Date          entities.Date           `json:"date"`
	Count         int                     `json:"count"`
	Notifications []entities.Notification `json:"notifications"`
}

func FromNotifications(today entities.Date, ns []entities.Notification) ReminderCheckResponse {
	if ns == nil {
		ns = []entities.Notification{}
	}
	return ReminderCheckResponse{Date: today, Count: len(ns), Notifications: ns}
}
