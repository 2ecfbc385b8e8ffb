package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidOrderTransition = errors.New("invalid order status transition")
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrInvalidPaymentDate     = errors.New("invalid payment date")
)

// IOrderUseCase exposes the order lifecycle.
//
// Lifecycle:
//   - AddOrder => Pending, id ANN + zero-padded (orders+history+1)
//   - MarkAsReady => Pending -> Ready for Completion
//   - CompleteOrder => attaches final documents and moves the record to History
//   - UpdateOrder / AddPayment => edits while the order is still active

type IOrderUseCase interface {
	AddOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	UpdateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	AddPayment(ctx context.Context, id string, payment entities.Payment) (entities.Order, error)
	MarkAsReady(ctx context.Context, id string) (entities.Order, error)
	CompleteOrder(ctx context.Context, id string, docs entities.CompletionDocuments) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) []entities.Order
	ListHistory(ctx context.Context) []entities.Order
}

type OrderUseCase struct {
	store *Store
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store *Store) *OrderUseCase {
	return &OrderUseCase{store: store}
}

func (u *OrderUseCase) AddOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	var created entities.Order
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		id := entities.OrderID(len(st.Orders) + len(st.History) + 1)
		created = draft.ToOrder(id)
		st.Orders = append(st.Orders, created)
		return []entities.Slot{entities.SlotOrders}
	})
	log.Printf("[order][usecase] add id=%s machine=%q price=%d", created.ID, created.MachineType, created.MachinePrice)
	return created.Clone(), nil
}

// UpdateOrder replaces the editable fields of an active order. Status only moves through
// MarkAsReady and CompleteOrder, so the stored status is kept.
func (u *OrderUseCase) UpdateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	id := strings.TrimSpace(order.ID)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	var (
		updated entities.Order
		found   bool
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexOrder(st.Orders, id)
		if i < 0 {
			return nil
		}
		found = true
		next := order.Clone()
		next.ID = id
		next.Status = st.Orders[i].Status
		st.Orders[i] = next
		updated = next
		return []entities.Slot{entities.SlotOrders}
	})
	if !found {
		log.Printf("[order][usecase] update miss id=%s", id)
		return entities.Order{}, ErrOrderNotFound
	}
	return updated.Clone(), nil
}

func (u *OrderUseCase) AddPayment(ctx context.Context, id string, payment entities.Payment) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if payment.Amount <= 0 {
		return entities.Order{}, ErrInvalidPaymentAmount
	}
	if !payment.Date.Valid() {
		return entities.Order{}, ErrInvalidPaymentDate
	}
	var (
		updated entities.Order
		found   bool
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexOrder(st.Orders, id)
		if i < 0 {
			return nil
		}
		found = true
		st.Orders[i].PaymentHistory = append(st.Orders[i].PaymentHistory, payment)
		updated = st.Orders[i]
		return []entities.Slot{entities.SlotOrders}
	})
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] payment id=%s amount=%d remaining=%d", id, payment.Amount, updated.RemainingBalance())
	return updated.Clone(), nil
}

func (u *OrderUseCase) MarkAsReady(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	var (
		updated entities.Order
		err     error
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexOrder(st.Orders, id)
		if i < 0 {
			err = ErrOrderNotFound
			return nil
		}
		if !st.Orders[i].Status.CanTransitionTo(entities.OrderStatusReadyForCompletion) {
			err = ErrInvalidOrderTransition
			return nil
		}
		st.Orders[i].Status = entities.OrderStatusReadyForCompletion
		updated = st.Orders[i]
		return []entities.Slot{entities.SlotOrders}
	})
	if err != nil {
		log.Printf("[order][usecase] mark-ready rejected id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] mark-ready id=%s", id)
	return updated.Clone(), nil
}

// CompleteOrder moves the order to History. History is written before Orders, so an
// interrupted save leaves the order in both collections rather than in neither.
func (u *OrderUseCase) CompleteOrder(ctx context.Context, id string, docs entities.CompletionDocuments) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	var (
		completed entities.Order
		err       error
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexOrder(st.Orders, id)
		if i < 0 {
			err = ErrOrderNotFound
			return nil
		}
		if !st.Orders[i].Status.CanTransitionTo(entities.OrderStatusCompleted) {
			err = ErrInvalidOrderTransition
			return nil
		}
		completed = st.Orders[i].Clone()
		completed.Status = entities.OrderStatusCompleted
		completed.RestOfPaymentReceipt = docs.RestOfPaymentReceipt
		completed.ContractFile = docs.ContractFile
		completed.WarrantyFile = docs.WarrantyFile
		completed.CertificationFile = docs.CertificationFile

		st.History = append(st.History, completed)
		st.Orders = append(st.Orders[:i:i], st.Orders[i+1:]...)
		return []entities.Slot{entities.SlotHistory, entities.SlotOrders}
	})
	if err != nil {
		log.Printf("[order][usecase] complete rejected id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] complete id=%s", id)
	return completed.Clone(), nil
}

// GetByID looks in the active orders first, then in History.
func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	snap := u.store.Snapshot()
	if i := indexOrder(snap.Orders, id); i >= 0 {
		return snap.Orders[i], nil
	}
	if i := indexOrder(snap.History, id); i >= 0 {
		return snap.History[i], nil
	}
	return entities.Order{}, ErrOrderNotFound
}

func (u *OrderUseCase) ListOrders(ctx context.Context) []entities.Order {
	return u.store.Snapshot().Orders
}

func (u *OrderUseCase) ListHistory(ctx context.Context) []entities.Order {
	return u.store.Snapshot().History
}

func indexOrder(orders []entities.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
