package repository

import (
	"antenna_ops/internal/domain/entities"
	"fmt"
)

// slotKey namespaces a slot name for shared key spaces (badger, redis).
func slotKey(prefix string, slot entities.Slot) string {
	return prefix + string(slot)
}

func checkSlot(slot entities.Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("unknown slot %q", slot)
	}
	return nil
}
