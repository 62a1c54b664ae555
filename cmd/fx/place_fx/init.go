package place_fx

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderplan/internal/config"
	"wanderplan/internal/infra"
	"wanderplan/internal/services"
	"wanderplan/pkg/enrich"
)

var Module = fx.Provide(
	provideEnricher,
	services.NewPlaceService,
)

type placeCaches struct {
	photos  enrich.Cache
	weather enrich.Cache
}

func provideEnricher(lc fx.Lifecycle, cfg config.Config, reg *prometheus.Registry, logger *zap.Logger) (*enrich.Enricher, error) {
	caches, err := newPlaceCaches(lc, cfg, logger)
	if err != nil {
		return nil, err
	}

	httpClient := enrich.NewHTTPClient(cfg.EnrichTimeout())
	photos := enrich.NewPhotoClient(httpClient, cfg.WikipediaBaseURL, cfg.WikipediaRestURL)
	weather := enrich.NewWeatherClient(httpClient, cfg.OpenMeteoGeocodeURL, cfg.OpenMeteoForecastURL)

	return enrich.NewEnricher(photos, weather, caches.photos, caches.weather, enrich.NewMetrics(reg), logger.Named("enrich")), nil
}

// newPlaceCaches builds one cache per lookup kind for PLACE_CACHE.
func newPlaceCaches(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (placeCaches, error) {
	switch cfg.PlaceCache {
	case "none":
		return placeCaches{photos: enrich.NoopCache{}, weather: enrich.NoopCache{}}, nil
	case "ttl":
		return placeCaches{
			photos:  enrich.NewTTLCache(cfg.PlaceCacheTTL()),
			weather: enrich.NewTTLCache(cfg.PlaceCacheTTL()),
		}, nil
	case "redis":
		client, err := infra.ConnRedis(context.Background(), cfg.RedisURL, cfg.EnrichTimeout())
		if err != nil {
			return placeCaches{}, fmt.Errorf("place cache: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closeRedis(client, logger)
			},
		})
		logger.Info("place cache backed by redis")
		return placeCaches{
			photos:  enrich.NewRedisCache(client, "wanderplan:photo:", cfg.PlaceCacheTTL()),
			weather: enrich.NewRedisCache(client, "wanderplan:weather:", cfg.PlaceCacheTTL()),
		}, nil
	default:
		return placeCaches{photos: enrich.NewMemoryCache(), weather: enrich.NewMemoryCache()}, nil
	}
}

func closeRedis(client *redis.Client, logger *zap.Logger) error {
	if err := client.Close(); err != nil {
		logger.Warn("close redis", zap.Error(err))
		return err
	}
	return nil
}
