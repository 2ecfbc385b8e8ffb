package interfaces

import (
	"antenna_ops/internal/domain/entities"
	"context"
)

// ISlotRepository abstracts the durable key-value storage behind the store.
//
// One slot per collection, holding the JSON-encoded array:
//   - Load reports found=false when the slot was never written
//   - Save overwrites the whole slot; there are no partial writes and no cross-slot transactions

type ISlotRepository interface {
	Load(ctx context.Context, slot entities.Slot) (payload []byte, found bool, err error)
	Save(ctx context.Context, slot entities.Slot, payload []byte) error
}
