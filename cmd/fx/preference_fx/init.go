package preference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo,
	services.NewPreferenceService,
)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}
