package notify

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"io"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LogNotifier prints reminders to a writer (stdout in the CLI, the process log for the API).
type LogNotifier struct {
	logger *log.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(w io.Writer) *LogNotifier {
	return &LogNotifier{logger: log.New(w, "", log.LstdFlags)}
}

func (n *LogNotifier) Notify(_ context.Context, msg entities.Notification) error {
	n.logger.Printf("[notify] key=%s date=%s title=%q body=%q", msg.Key, msg.Date, msg.Title, msg.Body)
	return nil
}

// DedupNotifier collapses repeated notifications with the same key on the same day.
// The cache is bounded; the oldest keys fall out first.
type DedupNotifier struct {
	next interfaces.INotifier
	seen *lru.Cache[string, struct{}]
}

var _ interfaces.INotifier = (*DedupNotifier)(nil)

func NewDedupNotifier(next interfaces.INotifier, size int) (*DedupNotifier, error) {
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &DedupNotifier{next: next, seen: cache}, nil
}

func (n *DedupNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	key := msg.Key + "@" + string(msg.Date)

	if found, _ := n.seen.ContainsOrAdd(key, struct{}{}); found {
		return nil
	}

	if err := n.next.Notify(ctx, msg); err != nil {
		n.seen.Remove(key)
		return err
	}
	return nil
}
