package interfaces

import (
	"antenna_ops/internal/domain/entities"
	"context"
)

// INotifier delivers local reminders. Implementations deduplicate by Notification.Key.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
