package repository

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "slot/"

// BadgerSlotRepository stores each slot under key "slot/<name>" in an embedded badger
// database. It is the default backend: a local file-backed key-value store.
type BadgerSlotRepository struct {
	db *badger.DB
}

var _ interfaces.ISlotRepository = (*BadgerSlotRepository)(nil)

func NewBadgerSlotRepository(db *badger.DB) *BadgerSlotRepository {
	return &BadgerSlotRepository{db: db}
}

func (r *BadgerSlotRepository) Load(_ context.Context, slot entities.Slot) ([]byte, bool, error) {
	if err := checkSlot(slot); err != nil {
		return nil, false, err
	}
	var payload []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(slotKey(badgerKeyPrefix, slot)))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (r *BadgerSlotRepository) Save(_ context.Context, slot entities.Slot, payload []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(slotKey(badgerKeyPrefix, slot)), payload)
	})
}
