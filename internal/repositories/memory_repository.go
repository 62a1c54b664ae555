package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderplan/internal/models/db_models"
)

type MemoryRepository interface {
	Create(ctx context.Context, memory *db_models.Memory) error
	ListByHistory(ctx context.Context, accountID, historyID uuid.UUID) ([]db_models.Memory, error)
}

type memoryRepository struct {
	db *gorm.DB
}

func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepository{db: db}
}

func (m *memoryRepository) Create(ctx context.Context, memory *db_models.Memory) error {
	return m.db.WithContext(ctx).Create(memory).Error
}

func (m *memoryRepository) ListByHistory(ctx context.Context, accountID, historyID uuid.UUID) ([]db_models.Memory, error) {
	var memories []db_models.Memory
	err := m.db.WithContext(ctx).
		Where("account_id = ? AND history_id = ?", accountID, historyID).
		Order("day ASC, created_at ASC").
		Find(&memories).Error
	if err != nil {
		return nil, err
	}
	return memories, nil
}
