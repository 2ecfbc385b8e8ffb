package notify

import (
	"antenna_ops/internal/domain/entities"
	mock_interfaces "antenna_ops/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_PushesToSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 1 })

	n := entities.Notification{Key: "k1", Title: "Task Reminder: Call supplier", Date: "2024-07-18"}
	if err := hub.Notify(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Type != "reminder" || got.Payload != n {
		t.Fatalf("unexpected message %+v", got)
	}

	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })
}

func TestHub_NotifyAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	// Fill the queue so the send cannot succeed.
	for i := 0; i < broadcastQueue; i++ {
		hub.broadcast <- []byte("{}")
	}
	if err := hub.Notify(context.Background(), entities.Notification{Key: "k"}); !errors.Is(err, ErrHubClosed) {
		t.Fatalf("expected ErrHubClosed, got %v", err)
	}
}

func TestMultiNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ok := mock_interfaces.NewMockINotifier(ctrl)
	failing := mock_interfaces.NewMockINotifier(ctrl)
	boom := errors.New("boom")
	n := entities.Notification{Key: "k1"}
	ok.EXPECT().Notify(gomock.Any(), n).Return(nil)
	failing.EXPECT().Notify(gomock.Any(), n).Return(boom)

	err := MultiNotifier{failing, ok}.Notify(context.Background(), n)
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error, got %v", err)
	}
}
