package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{historyService: historyService}
}

// ListHistory godoc
// @Summary List history
// @Description Trip plans and live answers of the caller, newest first
// @Tags History
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (1-100)" default(20)
// @Param kind query string false "trip_plan or live_travel"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/history [get]
func (h *HistoryController) ListHistory(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req request_models.HistoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page parameters")
		return
	}

	page, err := h.historyService.List(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "History fetched successfully")
}

// GetHistory godoc
// @Summary Get a history record
// @Tags History
// @Produce json
// @Param id path string true "History record id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/history/{id} [get]
func (h *HistoryController) GetHistory(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	record, err := h.historyService.Get(c.Request.Context(), accountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "History record fetched successfully")
}

// DeleteHistory godoc
// @Summary Delete a history record
// @Tags History
// @Produce json
// @Param id path string true "History record id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/history/{id} [delete]
func (h *HistoryController) DeleteHistory(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.historyService.Delete(c.Request.Context(), accountID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "History record deleted successfully")
}
