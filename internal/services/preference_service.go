package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

const defaultTravelers = 1

type PreferenceServiceInterface interface {
	GetPreferences(ctx context.Context, accountID uuid.UUID) (response_models.PreferenceResponse, error)
	UpdatePreferences(ctx context.Context, accountID uuid.UUID, request request_models.PreferenceRequest) (response_models.PreferenceResponse, error)
}

type PreferenceService struct {
	preferenceRepo repositories.PreferenceRepository
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{preferenceRepo: preferenceRepo}
}

func (p *PreferenceService) GetPreferences(ctx context.Context, accountID uuid.UUID) (response_models.PreferenceResponse, error) {
	pref, err := p.preferenceRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return response_models.PreferenceResponse{}, utils.ErrDatabaseError
	}
	if pref == nil {
		return response_models.PreferenceResponse{}, utils.ErrPreferenceNotFound
	}
	return toPreferenceResponse(pref), nil
}

func (p *PreferenceService) UpdatePreferences(ctx context.Context, accountID uuid.UUID, request request_models.PreferenceRequest) (response_models.PreferenceResponse, error) {
	if err := utils.ValidateTripDates(request.StartDate, request.EndDate); err != nil {
		return response_models.PreferenceResponse{}, err
	}
	if request.Travelers < 0 {
		return response_models.PreferenceResponse{}, fmt.Errorf("travelers must be at least 1: %w", utils.ErrInvalidInput)
	}
	if request.BudgetAmount < 0 {
		return response_models.PreferenceResponse{}, fmt.Errorf("budget amount cannot be negative: %w", utils.ErrInvalidInput)
	}

	travelers := request.Travelers
	if travelers == 0 {
		travelers = defaultTravelers
	}

	pref := &db_models.TravelPreference{
		AccountID:           accountID,
		Destination:         strings.TrimSpace(request.Destination),
		StartDate:           strings.TrimSpace(request.StartDate),
		EndDate:             strings.TrimSpace(request.EndDate),
		Travelers:           travelers,
		BudgetLevel:         request.BudgetLevel,
		BudgetAmount:        request.BudgetAmount,
		Pace:                request.Pace,
		Interests:           pq.StringArray(cleanList(request.Interests)),
		Accommodation:       request.Accommodation,
		Transport:           request.Transport,
		DietaryNeeds:        request.DietaryNeeds,
		Notes:               request.Notes,
		OnboardingCompleted: request.OnboardingCompleted,
	}

	if err := p.preferenceRepo.Upsert(ctx, pref); err != nil {
		return response_models.PreferenceResponse{}, utils.ErrDatabaseError
	}
	return toPreferenceResponse(pref), nil
}

func toPreferenceResponse(pref *db_models.TravelPreference) response_models.PreferenceResponse {
	interests := []string(pref.Interests)
	if interests == nil {
		interests = []string{}
	}
	return response_models.PreferenceResponse{
		Destination:         pref.Destination,
		StartDate:           pref.StartDate,
		EndDate:             pref.EndDate,
		Travelers:           pref.Travelers,
		BudgetLevel:         pref.BudgetLevel,
		BudgetAmount:        pref.BudgetAmount,
		Pace:                pref.Pace,
		Interests:           interests,
		Accommodation:       pref.Accommodation,
		Transport:           pref.Transport,
		DietaryNeeds:        pref.DietaryNeeds,
		Notes:               pref.Notes,
		OnboardingCompleted: pref.OnboardingCompleted,
		UpdatedAt:           utils.FormatUnixRFC3339(pref.UpdatedAt),
	}
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
