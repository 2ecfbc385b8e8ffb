package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var ErrInvalidMachineType = errors.New("invalid machine type")

// IMachineTypeUseCase owns the append-only, deduplicated machine type list.
type IMachineTypeUseCase interface {
	AddMachineType(ctx context.Context, name string) ([]string, error)
	ListMachineTypes(ctx context.Context) []string
}

type MachineTypeUseCase struct {
	store *Store
}

var _ IMachineTypeUseCase = (*MachineTypeUseCase)(nil)

func NewMachineTypeUseCase(store *Store) *MachineTypeUseCase {
	return &MachineTypeUseCase{store: store}
}

// AddMachineType appends name unless it is already listed. Adding an existing name is not
// an error and writes nothing.
func (u *MachineTypeUseCase) AddMachineType(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidMachineType
	}
	added := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for _, existing := range st.MachineTypes {
			if existing == name {
				return nil
			}
		}
		st.MachineTypes = append(st.MachineTypes, name)
		added = true
		return []entities.Slot{entities.SlotMachineTypes}
	})
	if added {
		log.Printf("[machine-type][usecase] add name=%q", name)
	}
	return u.ListMachineTypes(ctx), nil
}

func (u *MachineTypeUseCase) ListMachineTypes(ctx context.Context) []string {
	return u.store.Snapshot().MachineTypes
}
