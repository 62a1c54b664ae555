package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

type HistoryServiceInterface interface {
	List(ctx context.Context, accountID uuid.UUID, request request_models.HistoryListRequest) (response_models.HistoryPageResponse, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (response_models.HistoryDetailResponse, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type HistoryService struct {
	historyRepo repositories.HistoryRepository
}

func NewHistoryService(historyRepo repositories.HistoryRepository) HistoryServiceInterface {
	return &HistoryService{historyRepo: historyRepo}
}

func (h *HistoryService) List(ctx context.Context, accountID uuid.UUID, request request_models.HistoryListRequest) (response_models.HistoryPageResponse, error) {
	page, pageSize := request.Page, request.PageSize
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return response_models.HistoryPageResponse{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return response_models.HistoryPageResponse{}, utils.ErrInvalidPageSize
	}

	switch request.Kind {
	case "", db_models.HistoryKindTripPlan, db_models.HistoryKindLiveTravel:
	default:
		return response_models.HistoryPageResponse{}, fmt.Errorf("unknown history kind %q: %w", request.Kind, utils.ErrInvalidInput)
	}

	records, total, err := h.historyRepo.ListByAccount(ctx, accountID, request.Kind, page, pageSize)
	if err != nil {
		return response_models.HistoryPageResponse{}, utils.ErrDatabaseError
	}

	items := make([]response_models.HistoryItemResponse, 0, len(records))
	for i := range records {
		items = append(items, toHistoryItem(&records[i]))
	}

	return response_models.HistoryPageResponse{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (h *HistoryService) Get(ctx context.Context, accountID, id uuid.UUID) (response_models.HistoryDetailResponse, error) {
	record, err := h.historyRepo.FindByID(ctx, accountID, id)
	if err != nil {
		return response_models.HistoryDetailResponse{}, utils.ErrDatabaseError
	}
	if record == nil {
		return response_models.HistoryDetailResponse{}, utils.ErrHistoryNotFound
	}
	return response_models.HistoryDetailResponse{
		HistoryItemResponse: toHistoryItem(record),
		Prompt:              record.Prompt,
		Response:            record.Response,
	}, nil
}

func (h *HistoryService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	deleted, err := h.historyRepo.Delete(ctx, accountID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrHistoryNotFound
	}
	return nil
}

func toHistoryItem(record *db_models.HistoryRecord) response_models.HistoryItemResponse {
	item := response_models.HistoryItemResponse{
		ID:          record.ID.String(),
		Kind:        record.Kind,
		Title:       record.Title,
		Destination: record.Destination,
		CreatedAt:   utils.FormatUnixRFC3339(record.CreatedAt),
	}
	if len(record.Summary) > 0 && json.Valid(record.Summary) {
		item.Summary = json.RawMessage(record.Summary)
	}
	return item
}
