package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/internal/config"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(
	services.NewAccountService, provideAccountRepo, provideGoogleProvider)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

// provideGoogleProvider yields nil when Google credentials are missing;
// the services then reject Google sign-in and Drive uploads.
func provideGoogleProvider(cfg config.Config) services.GoogleProvider {
	return services.NewGoogleProvider(cfg)
}
