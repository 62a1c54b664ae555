package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderplan/internal/models/db_models"
)

type HistoryRepository interface {
	Create(ctx context.Context, record *db_models.HistoryRecord) error
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*db_models.HistoryRecord, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, kind string, page, pageSize int) ([]db_models.HistoryRecord, int64, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (h *historyRepository) Create(ctx context.Context, record *db_models.HistoryRecord) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// FindByID only returns records owned by accountID.
func (h *historyRepository) FindByID(ctx context.Context, accountID, id uuid.UUID) (*db_models.HistoryRecord, error) {
	var record db_models.HistoryRecord
	err := h.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListByAccount pages newest first. An empty kind lists every kind.
func (h *historyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, kind string, page, pageSize int) ([]db_models.HistoryRecord, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("account_id = ?", accountID)
		if kind != "" {
			db = db.Where("kind = ?", kind)
		}
		return db
	}

	var total int64
	if err := h.db.WithContext(ctx).Model(&db_models.HistoryRecord{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []db_models.HistoryRecord
	err := h.db.WithContext(ctx).Scopes(scope, func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Delete soft-deletes the record and its memories. It reports false when
// the record does not exist or belongs to someone else.
func (h *historyRepository) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	var deleted bool
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND account_id = ?", id, accountID).Delete(&db_models.HistoryRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("history_id = ?", id).Delete(&db_models.Memory{}).Error
	})
	return deleted, err
}
