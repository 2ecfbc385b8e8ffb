package repository

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DashboardSlot is one row per collection.
type DashboardSlot struct {
	Slot      string    `gorm:"primaryKey;size:32"`
	Payload   []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (DashboardSlot) TableName() string {
	return "dashboard_slots"
}

// PostgresSlotRepository keeps slots in the dashboard_slots table; Save is an upsert.
type PostgresSlotRepository struct {
	db *gorm.DB
}

var _ interfaces.ISlotRepository = (*PostgresSlotRepository)(nil)

// NewPostgresSlotRepository migrates the table and returns the repository.
func NewPostgresSlotRepository(db *gorm.DB) (*PostgresSlotRepository, error) {
	if err := db.AutoMigrate(&DashboardSlot{}); err != nil {
		return nil, err
	}
	return &PostgresSlotRepository{db: db}, nil
}

func (r *PostgresSlotRepository) Load(ctx context.Context, slot entities.Slot) ([]byte, bool, error) {
	if err := checkSlot(slot); err != nil {
		return nil, false, err
	}
	var row DashboardSlot
	err := r.db.WithContext(ctx).Where("slot = ?", string(slot)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (r *PostgresSlotRepository) Save(ctx context.Context, slot entities.Slot, payload []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	row := DashboardSlot{Slot: string(slot), Payload: payload}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}
