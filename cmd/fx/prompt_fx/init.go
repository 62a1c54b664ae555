package prompt_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderplan/internal/config"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerator,
	services.NewPromptService,
)

// ProvideGenerator creates the model client for the configured provider and
// closes it on shutdown.
func ProvideGenerator(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (utils.Generator, error) {
	apiKey, model := cfg.AIKeyAndModel()
	gen, err := utils.NewGenerator(context.Background(), cfg.AIProvider, apiKey, model)
	if err != nil {
		return nil, err
	}

	if _, mock := gen.(*utils.MockGenerator); mock {
		logger.Warn("no AI key configured, using the mock generator", zap.String("provider", cfg.AIProvider))
	} else {
		logger.Info("AI generator ready", zap.String("provider", cfg.AIProvider), zap.String("model", model))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return gen.Close()
		},
	})
	return gen, nil
}
