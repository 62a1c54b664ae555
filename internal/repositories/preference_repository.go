package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wanderplan/internal/models/db_models"
)

type PreferenceRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.TravelPreference, error)
	Upsert(ctx context.Context, pref *db_models.TravelPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (p *preferenceRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.TravelPreference, error) {
	var pref db_models.TravelPreference
	err := p.db.WithContext(ctx).Where("account_id = ?", accountID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert writes the account's single preference row.
func (p *preferenceRepository) Upsert(ctx context.Context, pref *db_models.TravelPreference) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"updated_at", "destination", "start_date", "end_date", "travelers",
			"budget_level", "budget_amount", "pace", "interests", "accommodation",
			"transport", "dietary_needs", "notes", "onboarding_completed",
		}),
	}).Create(pref).Error
}
