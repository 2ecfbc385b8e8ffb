package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidSector    = errors.New("invalid sector")
)

// IProductUseCase manages the catalog. Deletion is hard and unchecked: orders and trainings
// copied product values at prefill time.
type IProductUseCase interface {
	AddProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) []entities.Product
}

type ProductUseCase struct {
	store *Store
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(store *Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

func (u *ProductUseCase) AddProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p, err := prepareProduct(p)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = u.store.NewID()
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		st.Products = append(st.Products, cloneProduct(p))
		return []entities.Slot{entities.SlotProducts}
	})
	log.Printf("[product][usecase] add id=%s sector=%q category=%q group=%q", p.ID, p.Sector, p.Category, p.ItemGroup)
	return p, nil
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := prepareProduct(p)
	if err != nil {
		return entities.Product{}, err
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		if i := indexProduct(st.Products, p.ID); i >= 0 {
			st.Products[i] = cloneProduct(p)
			found = true
			return []entities.Slot{entities.SlotProducts}
		}
		return nil
	})
	if !found {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		if i := indexProduct(st.Products, id); i >= 0 {
			st.Products = append(st.Products[:i:i], st.Products[i+1:]...)
			found = true
			return []entities.Slot{entities.SlotProducts}
		}
		return nil
	})
	if !found {
		return ErrProductNotFound
	}
	log.Printf("[product][usecase] delete id=%s", id)
	return nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	snap := u.store.Snapshot()
	if i := indexProduct(snap.Products, strings.TrimSpace(id)); i >= 0 {
		return snap.Products[i], nil
	}
	return entities.Product{}, ErrProductNotFound
}

func (u *ProductUseCase) ListProducts(ctx context.Context) []entities.Product {
	return u.store.Snapshot().Products
}

func prepareProduct(p entities.Product) (entities.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return entities.Product{}, ErrInvalidProduct
	}
	if !p.Sector.Valid() {
		return entities.Product{}, ErrInvalidSector
	}
	if p.Price != nil && *p.Price < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	if p.Sector != entities.SectorTraining {
		p.TrainingManual = ""
	}
	return p.Normalize(), nil
}

func indexProduct(ps []entities.Product, id string) int {
	for i := range ps {
		if ps[i].ID == id {
			return i
		}
	}
	return -1
}
