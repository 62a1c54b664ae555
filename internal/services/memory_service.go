package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

// MemoryUpload is one photo posted from the dashboard.
type MemoryUpload struct {
	HistoryID string
	Day       int
	Caption   string
	FileName  string
	MimeType  string
	Content   io.Reader
}

type MemoryServiceInterface interface {
	Upload(ctx context.Context, accountID uuid.UUID, upload MemoryUpload) (response_models.MemoryResponse, error)
	List(ctx context.Context, accountID uuid.UUID, historyID string) ([]response_models.MemoryResponse, error)
}

type MemoryService struct {
	memoryRepo  repositories.MemoryRepository
	historyRepo repositories.HistoryRepository
	accountRepo repositories.AccountRepository
	google      GoogleProvider
	logger      *zap.Logger
}

func NewMemoryService(
	memoryRepo repositories.MemoryRepository,
	historyRepo repositories.HistoryRepository,
	accountRepo repositories.AccountRepository,
	google GoogleProvider,
	logger *zap.Logger,
) MemoryServiceInterface {
	return &MemoryService{
		memoryRepo:  memoryRepo,
		historyRepo: historyRepo,
		accountRepo: accountRepo,
		google:      google,
		logger:      logger,
	}
}

func (m *MemoryService) Upload(ctx context.Context, accountID uuid.UUID, upload MemoryUpload) (response_models.MemoryResponse, error) {
	historyID, err := uuid.Parse(strings.TrimSpace(upload.HistoryID))
	if err != nil {
		return response_models.MemoryResponse{}, fmt.Errorf("historyId must be a uuid: %w", utils.ErrInvalidInput)
	}
	if upload.Day < 0 {
		return response_models.MemoryResponse{}, fmt.Errorf("day cannot be negative: %w", utils.ErrInvalidInput)
	}
	if !strings.HasPrefix(upload.MimeType, "image/") {
		return response_models.MemoryResponse{}, fmt.Errorf("only images can be saved as memories: %w", utils.ErrInvalidInput)
	}

	record, err := m.historyRepo.FindByID(ctx, accountID, historyID)
	if err != nil {
		return response_models.MemoryResponse{}, utils.ErrDatabaseError
	}
	if record == nil {
		return response_models.MemoryResponse{}, utils.ErrHistoryNotFound
	}

	account, err := m.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return response_models.MemoryResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.MemoryResponse{}, utils.ErrAccountNotFound
	}
	if m.google == nil || !account.DriveLinked() {
		return response_models.MemoryResponse{}, utils.ErrDriveNotLinked
	}

	fileName := driveFileName(record, upload)
	uploaded, err := m.google.UploadFile(ctx, account.GoogleRefreshToken, DriveFile{
		Name:     fileName,
		MimeType: upload.MimeType,
		Content:  upload.Content,
	})
	if err != nil {
		m.logger.Warn("drive upload failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return response_models.MemoryResponse{}, fmt.Errorf("%w: %v", utils.ErrMemoryUploadFailed, err)
	}

	memory := &db_models.Memory{
		AccountID:   accountID,
		HistoryID:   historyID,
		Day:         upload.Day,
		Caption:     strings.TrimSpace(upload.Caption),
		FileName:    fileName,
		MimeType:    upload.MimeType,
		DriveFileID: uploaded.FileID,
		DriveLink:   uploaded.Link,
	}
	if err := m.memoryRepo.Create(ctx, memory); err != nil {
		return response_models.MemoryResponse{}, utils.ErrDatabaseError
	}
	return toMemoryResponse(memory), nil
}

func (m *MemoryService) List(ctx context.Context, accountID uuid.UUID, historyID string) ([]response_models.MemoryResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(historyID))
	if err != nil {
		return nil, fmt.Errorf("historyId must be a uuid: %w", utils.ErrInvalidInput)
	}

	memories, err := m.memoryRepo.ListByHistory(ctx, accountID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MemoryResponse, 0, len(memories))
	for i := range memories {
		out = append(out, toMemoryResponse(&memories[i]))
	}
	return out, nil
}

// driveFileName keeps the original extension so Drive previews work.
func driveFileName(record *db_models.HistoryRecord, upload MemoryUpload) string {
	base := filepath.Base(strings.TrimSpace(upload.FileName))
	if base == "." || base == "/" || base == "" {
		base = "photo"
	}
	title := strings.Join(strings.Fields(record.Title), " ")
	if title == "" {
		title = "Trip"
	}
	if upload.Day > 0 {
		return fmt.Sprintf("%s - Day %d - %s", title, upload.Day, base)
	}
	return fmt.Sprintf("%s - %s", title, base)
}

func toMemoryResponse(memory *db_models.Memory) response_models.MemoryResponse {
	return response_models.MemoryResponse{
		ID:        memory.ID.String(),
		HistoryID: memory.HistoryID.String(),
		Day:       memory.Day,
		Caption:   memory.Caption,
		FileName:  memory.FileName,
		MimeType:  memory.MimeType,
		DriveLink: memory.DriveLink,
		CreatedAt: utils.FormatUnixRFC3339(memory.CreatedAt),
	}
}
