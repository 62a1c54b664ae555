package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

const (
	liveTitleRunes   = 60
	liveTemperature  = 0.4
	liveErrorMessage = "The travel assistant could not finish this answer. Please try again."
)

type LiveServiceInterface interface {
	// Stream relays model output to emit in arrival order. Errors returned
	// happen before the first event; later failures are sent as an error
	// event and Stream returns nil.
	Stream(ctx context.Context, accountID uuid.UUID, request request_models.LiveStreamRequest, emit func(response_models.LiveEvent) error) error
}

type LiveService struct {
	generator      utils.Generator
	prompts        PromptServiceInterface
	preferenceRepo repositories.PreferenceRepository
	historyRepo    repositories.HistoryRepository
	logger         *zap.Logger
}

func NewLiveService(
	generator utils.Generator,
	prompts PromptServiceInterface,
	preferenceRepo repositories.PreferenceRepository,
	historyRepo repositories.HistoryRepository,
	logger *zap.Logger,
) LiveServiceInterface {
	return &LiveService{
		generator:      generator,
		prompts:        prompts,
		preferenceRepo: preferenceRepo,
		historyRepo:    historyRepo,
		logger:         logger,
	}
}

type liveSummary struct {
	HasImage bool   `json:"hasImage"`
	Location string `json:"location,omitempty"`
	Chunks   int    `json:"chunks"`
}

func (l *LiveService) Stream(ctx context.Context, accountID uuid.UUID, request request_models.LiveStreamRequest, emit func(response_models.LiveEvent) error) error {
	if strings.TrimSpace(request.Message) == "" && strings.TrimSpace(request.Image) == "" {
		return fmt.Errorf("a message or an image is required: %w", utils.ErrInvalidInput)
	}

	var image *utils.ImagePayload
	if request.Image != "" {
		prepared, err := utils.PrepareImage(request.Image)
		if err != nil {
			return err
		}
		image = prepared
	}

	pref, err := l.preferenceRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	brief := NewTripBrief(pref, request_models.GeneratePlanRequest{})
	prompt := l.prompts.LivePrompt(brief, request)

	var output strings.Builder
	chunks := 0
	err = l.generator.Stream(ctx, utils.GenerateRequest{Prompt: prompt, Image: image, Temperature: liveTemperature}, func(text string) error {
		if text == "" {
			return nil
		}
		chunks++
		output.WriteString(text)
		return emit(response_models.LiveEvent{Type: response_models.LiveEventChunk, Text: text})
	})
	if err != nil {
		l.logger.Warn("live stream interrupted", zap.String("account_id", accountID.String()), zap.Error(err))
		l.emitError(emit)
		return nil
	}

	answer := output.String()
	if strings.TrimSpace(answer) == "" {
		l.logger.Warn("live stream returned no text", zap.String("account_id", accountID.String()))
		l.emitError(emit)
		return nil
	}

	summary, _ := json.Marshal(liveSummary{HasImage: image != nil, Location: strings.TrimSpace(request.Location), Chunks: chunks})
	destination := strings.TrimSpace(request.Location)
	if destination == "" {
		destination = brief.Destination
	}

	record := &db_models.HistoryRecord{
		AccountID:   accountID,
		Kind:        db_models.HistoryKindLiveTravel,
		Title:       liveTitle(request),
		Destination: destination,
		Prompt:      request.Message,
		Response:    answer,
		Summary:     datatypes.JSON(summary),
	}
	if err := l.historyRepo.Create(ctx, record); err != nil {
		l.logger.Error("saving live answer failed", zap.Error(err))
		l.emitError(emit)
		return nil
	}

	if err := emit(response_models.LiveEvent{Type: response_models.LiveEventDone, HistoryID: record.ID.String()}); err != nil {
		l.logger.Debug("client left before done event", zap.Error(err))
	}
	return nil
}

func (l *LiveService) emitError(emit func(response_models.LiveEvent) error) {
	if err := emit(response_models.LiveEvent{Type: response_models.LiveEventError, Message: liveErrorMessage}); err != nil {
		l.logger.Debug("client left before error event", zap.Error(err))
	}
}

func liveTitle(request request_models.LiveStreamRequest) string {
	title := strings.Join(strings.Fields(request.Message), " ")
	if title == "" {
		return "Photo question"
	}
	if utf8.RuneCountInString(title) > liveTitleRunes {
		title = string([]rune(title)[:liveTitleRunes]) + "..."
	}
	return title
}
