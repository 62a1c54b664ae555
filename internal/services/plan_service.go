package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/planparse"
	"wanderplan/pkg/utils"
)

const planTemperature = 0.7

type PlanServiceInterface interface {
	Generate(ctx context.Context, accountID uuid.UUID, request request_models.GeneratePlanRequest) (response_models.PlanResponse, error)
	// View rebuilds the plan view from the stored markdown on every call.
	View(ctx context.Context, accountID, historyID uuid.UUID) (response_models.PlanResponse, error)
	Parse(markdown, destinationHint string) planparse.PlanView
}

type PlanService struct {
	generator      utils.Generator
	prompts        PromptServiceInterface
	preferenceRepo repositories.PreferenceRepository
	historyRepo    repositories.HistoryRepository
	logger         *zap.Logger
}

func NewPlanService(
	generator utils.Generator,
	prompts PromptServiceInterface,
	preferenceRepo repositories.PreferenceRepository,
	historyRepo repositories.HistoryRepository,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		generator:      generator,
		prompts:        prompts,
		preferenceRepo: preferenceRepo,
		historyRepo:    historyRepo,
		logger:         logger,
	}
}

func (p *PlanService) Generate(ctx context.Context, accountID uuid.UUID, request request_models.GeneratePlanRequest) (response_models.PlanResponse, error) {
	pref, err := p.preferenceRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	brief := NewTripBrief(pref, request)
	if err := utils.ValidateTripDates(brief.StartDate, brief.EndDate); err != nil {
		return response_models.PlanResponse{}, err
	}

	prompt := p.prompts.TripPlanPrompt(brief)
	markdown, err := p.generator.Generate(ctx, utils.GenerateRequest{Prompt: prompt, Temperature: planTemperature})
	if err != nil {
		p.logger.Error("trip plan generation failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return response_models.PlanResponse{}, fmt.Errorf("generate plan: %w", utils.ErrUnexpectedBehaviorOfAI)
	}
	if strings.TrimSpace(markdown) == "" {
		return response_models.PlanResponse{}, fmt.Errorf("empty plan: %w", utils.ErrUnexpectedBehaviorOfAI)
	}

	view := planparse.BuildPlanView(markdown, brief.Destination)
	title := planTitle(brief, view)

	summary, err := json.Marshal(SummarizePlan(view))
	if err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("encode summary: %w", err)
	}

	record := &db_models.HistoryRecord{
		AccountID:   accountID,
		Kind:        db_models.HistoryKindTripPlan,
		Title:       title,
		Destination: view.PrimaryDestination,
		Prompt:      prompt,
		Response:    markdown,
		Summary:     datatypes.JSON(summary),
	}
	if err := p.historyRepo.Create(ctx, record); err != nil {
		p.logger.Error("saving trip plan failed", zap.Error(err))
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	p.logger.Info("trip plan generated",
		zap.String("history_id", record.ID.String()),
		zap.Int("days", len(view.Days)),
		zap.String("destination", view.PrimaryDestination))

	return response_models.PlanResponse{
		HistoryID: record.ID.String(),
		Title:     title,
		View:      view,
	}, nil
}

func (p *PlanService) View(ctx context.Context, accountID, historyID uuid.UUID) (response_models.PlanResponse, error) {
	record, err := p.historyRepo.FindByID(ctx, accountID, historyID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if record == nil {
		return response_models.PlanResponse{}, utils.ErrHistoryNotFound
	}

	return response_models.PlanResponse{
		HistoryID: record.ID.String(),
		Title:     record.Title,
		View:      planparse.BuildPlanView(record.Response, record.Destination),
	}, nil
}

func (p *PlanService) Parse(markdown, destinationHint string) planparse.PlanView {
	return planparse.BuildPlanView(markdown, destinationHint)
}

// SummarizePlan is the snapshot of counts stored next to a plan.
func SummarizePlan(view planparse.PlanView) response_models.PlanSummary {
	return response_models.PlanSummary{
		Days:         len(view.Days),
		Sections:     len(view.Sections),
		BudgetItems:  len(view.Budget),
		Destinations: view.Destinations,
	}
}

func planTitle(brief TripBrief, view planparse.PlanView) string {
	destination := brief.Destination
	if destination == "" {
		destination = view.PrimaryDestination
	}
	if destination == "" {
		destination = planparse.FallbackPlace
	}

	days := len(view.Days)
	if days == 0 {
		days = brief.DayCount()
	}
	if days == 1 {
		return fmt.Sprintf("1 day in %s", destination)
	}
	return fmt.Sprintf("%d days in %s", days, destination)
}
