package history_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(
	provideHistoryRepo,
	provideMemoryRepo,
	services.NewHistoryService,
	services.NewMemoryService,
)

func provideHistoryRepo(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideMemoryRepo(db *gorm.DB) repositories.MemoryRepository {
	return repositories.NewMemoryRepository(db)
}
