// Package enrich decorates places with a photo, a weather line and map
// links. Every lookup is best effort: upstream failures turn into
// fallbacks and are never cached.
package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wanderplan/pkg/planparse"
)

const maxConcurrentPlaces = 4

type PlaceLookup struct {
	PlaceName       string `json:"placeName"`
	DestinationHint string `json:"destinationHint"`
	DayText         string `json:"dayText"`
}

type PlaceEnrichment struct {
	Name          string `json:"name"`
	PhotoURL      string `json:"photoUrl"`
	Weather       string `json:"weather"`
	MapURL        string `json:"mapUrl"`
	StreetViewURL string `json:"streetViewUrl"`
}

// Source fetches one kind of enrichment for a place.
type Source interface {
	Lookup(ctx context.Context, placeName, destinationHint string) (string, error)
}

type Enricher struct {
	photos       Source
	weather      Source
	photoCache   Cache
	weatherCache Cache
	metrics      *Metrics
	logger       *zap.Logger
}

func NewEnricher(photos, weather Source, photoCache, weatherCache Cache, metrics *Metrics, logger *zap.Logger) *Enricher {
	if photoCache == nil {
		photoCache = NewMemoryCache()
	}
	if weatherCache == nil {
		weatherCache = NewMemoryCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		photos:       photos,
		weather:      weather,
		photoCache:   photoCache,
		weatherCache: weatherCache,
		metrics:      metrics,
		logger:       logger,
	}
}

// Enrich looks up the photo and the weather concurrently. It never fails.
func (e *Enricher) Enrich(ctx context.Context, lookup PlaceLookup) PlaceEnrichment {
	name := strings.TrimSpace(lookup.PlaceName)
	if name == "" {
		name = planparse.FallbackPlace
	}
	hint := strings.TrimSpace(lookup.DestinationHint)

	out := PlaceEnrichment{
		Name:          name,
		MapURL:        planparse.BuildGoogleMapsURL(name, hint),
		StreetViewURL: planparse.BuildStreetViewURL(name, hint),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.PhotoURL = e.Photo(gctx, name, hint)
		return nil
	})
	g.Go(func() error {
		out.Weather = e.Weather(gctx, name, hint, lookup.DayText)
		return nil
	})
	_ = g.Wait()

	return out
}

// EnrichMany keeps the input order.
func (e *Enricher) EnrichMany(ctx context.Context, lookups []PlaceLookup) []PlaceEnrichment {
	results := make([]PlaceEnrichment, len(lookups))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentPlaces)
	for i, l := range lookups {
		g.Go(func() error {
			results[i] = e.Enrich(ctx, l)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Photo returns an image URL for the place, or a placeholder.
func (e *Enricher) Photo(ctx context.Context, placeName, destinationHint string) string {
	v, ok := e.lookup(ctx, kindPhoto, e.photos, e.photoCache, placeName, destinationHint)
	if !ok {
		return PlaceholderPhotoURL(placeName)
	}
	return v
}

// Weather returns a forecast line, or an estimate from dayText.
func (e *Enricher) Weather(ctx context.Context, placeName, destinationHint, dayText string) string {
	v, ok := e.lookup(ctx, kindWeather, e.weather, e.weatherCache, placeName, destinationHint)
	if !ok {
		return planparse.InferApproxWeatherFromText(dayText)
	}
	return v
}

func (e *Enricher) lookup(ctx context.Context, kind string, src Source, c Cache, placeName, destinationHint string) (string, bool) {
	key := CacheKey(placeName, destinationHint)
	if v, ok := c.Get(ctx, key); ok {
		e.metrics.observe(kind, outcomeHit)
		return v, true
	}
	if src == nil {
		e.metrics.observe(kind, outcomeFallback)
		return "", false
	}

	v, err := src.Lookup(ctx, placeName, destinationHint)
	if err != nil || v == "" {
		e.logger.Debug("enrichment lookup failed",
			zap.String("kind", kind),
			zap.String("place", placeName),
			zap.String("hint", destinationHint),
			zap.Error(err),
		)
		e.metrics.observe(kind, outcomeFallback)
		return "", false
	}

	c.Set(ctx, key, v)
	e.metrics.observe(kind, outcomeFetched)
	return v, true
}
