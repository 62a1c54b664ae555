package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

const maxMemoryBytes = 10 << 20

type MemoryController struct {
	memoryService services.MemoryServiceInterface
}

func NewMemoryController(memoryService services.MemoryServiceInterface) *MemoryController {
	return &MemoryController{memoryService: memoryService}
}

// UploadMemory godoc
// @Summary Save a trip photo
// @Description Uploads the photo to the caller's Google Drive and records it against a trip
// @Tags Memories
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo"
// @Param historyId formData string true "History record id"
// @Param day formData int false "Trip day"
// @Param caption formData string false "Caption"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/memories [post]
func (m *MemoryController) UploadMemory(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A photo file is required")
		return
	}
	if header.Size > maxMemoryBytes {
		utils.RespondError(c, http.StatusBadRequest, "Photos must be 10 MB or smaller")
		return
	}

	day := 0
	if raw := c.PostForm("day"); raw != "" {
		if day, err = strconv.Atoi(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Day must be a number")
			return
		}
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the photo")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		sniff := make([]byte, 512)
		n, _ := file.Read(sniff)
		mimeType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, 0); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Could not read the photo")
			return
		}
	}

	memory, err := m.memoryService.Upload(c.Request.Context(), accountID, services.MemoryUpload{
		HistoryID: c.PostForm("historyId"),
		Day:       day,
		Caption:   c.PostForm("caption"),
		FileName:  header.Filename,
		MimeType:  mimeType,
		Content:   file,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, memory, "Memory saved successfully")
}

// ListMemories godoc
// @Summary List trip photos
// @Tags Memories
// @Produce json
// @Param historyId query string true "History record id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/memories [get]
func (m *MemoryController) ListMemories(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	memories, err := m.memoryService.List(c.Request.Context(), accountID, c.Query("historyId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, memories, "Memories fetched successfully")
}
