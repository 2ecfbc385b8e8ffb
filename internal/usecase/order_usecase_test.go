package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_AddOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
	uc := NewOrderUseCase(store)

	repo.EXPECT().Save(gomock.Any(), entities.SlotOrders, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Slot, payload []byte) error {
			var orders []entities.Order
			if err := json.Unmarshal(payload, &orders); err != nil {
				t.Fatalf("payload is not an order array: %v", err)
			}
			if len(orders) != 3 || orders[2].ID != "ANN004" {
				t.Fatalf("unexpected persisted orders: %+v", orders)
			}
			return nil
		},
	)

	got, err := uc.AddOrder(context.Background(), entities.OrderDraft{CustomerFirstName: "Meron", MachineType: "Block Machine", MachinePrice: 1000, Prepayment: 400})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "ANN004" {
		t.Fatalf("expected ANN004, got %s", got.ID)
	}
	if got.Status != entities.OrderStatusPending || got.PaymentHistory == nil || len(got.PaymentHistory) != 0 {
		t.Fatalf("unexpected new order: %+v", got)
	}
}

func TestOrderUseCase_MarkAsReady(t *testing.T) {
	t.Run("pending moves forward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
		repo.EXPECT().Save(gomock.Any(), entities.SlotOrders, gomock.Any()).Return(nil)

		got, err := NewOrderUseCase(store).MarkAsReady(context.Background(), "ANN001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusReadyForCompletion {
			t.Fatalf("unexpected status %q", got.Status)
		}
	})

	cases := []struct {
		name string
		id   string
		want error
	}{
		{name: "already ready", id: "ANN002", want: ErrInvalidOrderTransition},
		{name: "history order", id: "ANN003", want: ErrOrderNotFound},
		{name: "unknown id", id: "ANN999", want: ErrOrderNotFound},
		{name: "blank id", id: " ", want: ErrInvalidOrderID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store, _ := newLoadedStore(t, ctrl, sampleSnapshot())
			before := store.Snapshot()

			_, err := NewOrderUseCase(store).MarkAsReady(context.Background(), tc.id)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			after := store.Snapshot()
			if after.Orders[1].Status != before.Orders[1].Status || len(after.History) != len(before.History) {
				t.Fatalf("state changed on rejected transition")
			}
		})
	}
}

func TestOrderUseCase_CompleteOrder(t *testing.T) {
	t.Run("moves the order to history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
		gomock.InOrder(
			repo.EXPECT().Save(gomock.Any(), entities.SlotHistory, gomock.Any()).Return(nil),
			repo.EXPECT().Save(gomock.Any(), entities.SlotOrders, gomock.Any()).Return(nil),
		)
		docs := entities.CompletionDocuments{ContractFile: "data:application/pdf;base64,JVBERi0="}

		got, err := NewOrderUseCase(store).CompleteOrder(context.Background(), "ANN002", docs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCompleted || got.ContractFile != docs.ContractFile {
			t.Fatalf("unexpected completed order: %+v", got)
		}

		snap := store.Snapshot()
		for _, o := range snap.Orders {
			if o.ID == "ANN002" {
				t.Fatalf("completed order still active")
			}
			if !o.Status.Active() {
				t.Fatalf("inactive order in Orders: %+v", o)
			}
		}
		for _, o := range snap.History {
			if o.Status != entities.OrderStatusCompleted {
				t.Fatalf("history order not completed: %+v", o)
			}
		}
		if snap.History[len(snap.History)-1].ID != "ANN002" {
			t.Fatalf("expected ANN002 appended to history")
		}
	})

	t.Run("pending can complete directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, err := NewOrderUseCase(store).CompleteOrder(context.Background(), "ANN001", entities.CompletionDocuments{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newLoadedStore(t, ctrl, sampleSnapshot())

		_, err := NewOrderUseCase(store).CompleteOrder(context.Background(), "ANN003", entities.CompletionDocuments{})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		snap := store.Snapshot()
		if len(snap.Orders) != 2 || len(snap.History) != 1 {
			t.Fatalf("collections changed: orders=%d history=%d", len(snap.Orders), len(snap.History))
		}
	})
}

func TestOrderUseCase_Payments(t *testing.T) {
	t.Run("appending payments keeps the balance derived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
		repo.EXPECT().Save(gomock.Any(), entities.SlotOrders, gomock.Any()).Return(nil).Times(2)
		uc := NewOrderUseCase(store)

		if _, err := uc.AddPayment(context.Background(), "ANN001", entities.Payment{Amount: 30000, Date: "2024-07-10"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.AddPayment(context.Background(), "ANN001", entities.Payment{Amount: 20000, Date: "2024-07-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalPaid() != 200000 || got.RemainingBalance() != 50000 {
			t.Fatalf("unexpected totals paid=%d remaining=%d", got.TotalPaid(), got.RemainingBalance())
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.AddPayment(context.Background(), "ANN001", entities.Payment{Amount: 0, Date: "2024-07-10"})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.AddPayment(context.Background(), "ANN001", entities.Payment{Amount: 10, Date: "10/07/2024"})
		if !errors.Is(err, ErrInvalidPaymentDate) {
			t.Fatalf("expected ErrInvalidPaymentDate, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateOrder(t *testing.T) {
	t.Run("replaces fields but keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, repo := newLoadedStore(t, ctrl, sampleSnapshot())
		repo.EXPECT().Save(gomock.Any(), entities.SlotOrders, gomock.Any()).Return(nil)
		uc := NewOrderUseCase(store)

		o, _ := uc.GetByID(context.Background(), "ANN002")
		o.Description = "rush"
		o.Status = entities.OrderStatusPending

		got, err := uc.UpdateOrder(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Description != "rush" || got.Status != entities.OrderStatusReadyForCompletion {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newLoadedStore(t, ctrl, sampleSnapshot())

		_, err := NewOrderUseCase(store).UpdateOrder(context.Background(), entities.Order{ID: "ANN404"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("history orders are read-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newLoadedStore(t, ctrl, sampleSnapshot())
		uc := NewOrderUseCase(store)

		h, err := uc.GetByID(context.Background(), "ANN003")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.UpdateOrder(context.Background(), h); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
