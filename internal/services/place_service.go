package services

import (
	"context"
	"strings"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/enrich"
)

type PlaceServiceInterface interface {
	Enrich(ctx context.Context, request request_models.PlaceEnrichRequest) []enrich.PlaceEnrichment
	Weather(ctx context.Context, query request_models.PlaceQuery) response_models.PlaceWeatherResponse
	Photo(ctx context.Context, query request_models.PlaceQuery) response_models.PlacePhotoResponse
}

type PlaceService struct {
	enricher *enrich.Enricher
}

func NewPlaceService(enricher *enrich.Enricher) PlaceServiceInterface {
	return &PlaceService{enricher: enricher}
}

func (p *PlaceService) Enrich(ctx context.Context, request request_models.PlaceEnrichRequest) []enrich.PlaceEnrichment {
	lookups := make([]enrich.PlaceLookup, 0, len(request.Places))
	for _, name := range request.Places {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lookups = append(lookups, enrich.PlaceLookup{
			PlaceName:       name,
			DestinationHint: strings.TrimSpace(request.DestinationHint),
			DayText:         request.DayText,
		})
	}
	return p.enricher.EnrichMany(ctx, lookups)
}

func (p *PlaceService) Weather(ctx context.Context, query request_models.PlaceQuery) response_models.PlaceWeatherResponse {
	name := strings.TrimSpace(query.Name)
	return response_models.PlaceWeatherResponse{
		Name:    name,
		Weather: p.enricher.Weather(ctx, name, strings.TrimSpace(query.Hint), query.Day),
	}
}

func (p *PlaceService) Photo(ctx context.Context, query request_models.PlaceQuery) response_models.PlacePhotoResponse {
	name := strings.TrimSpace(query.Name)
	return response_models.PlacePhotoResponse{
		Name:     name,
		PhotoURL: p.enricher.Photo(ctx, name, strings.TrimSpace(query.Hint)),
	}
}
