package repository

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"sync"
)

// MemorySlotRepository keeps slots in process memory. Nothing survives a restart; used
// by tests and by the "memory" backend for demos.
type MemorySlotRepository struct {
	mu    sync.RWMutex
	slots map[entities.Slot][]byte
}

var _ interfaces.ISlotRepository = (*MemorySlotRepository)(nil)

func NewMemorySlotRepository() *MemorySlotRepository {
	return &MemorySlotRepository{slots: map[entities.Slot][]byte{}}
}

func (r *MemorySlotRepository) Load(_ context.Context, slot entities.Slot) ([]byte, bool, error) {
	if err := checkSlot(slot); err != nil {
		return nil, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.slots[slot]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (r *MemorySlotRepository) Save(_ context.Context, slot entities.Slot, payload []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot] = append([]byte(nil), payload...)
	return nil
}
