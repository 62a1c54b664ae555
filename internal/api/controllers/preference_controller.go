package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{preferenceService: preferenceService}
}

// GetPreferences godoc
// @Summary Get travel preferences
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/preferences [get]
func (p *PreferenceController) GetPreferences(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	pref, err := p.preferenceService.GetPreferences(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pref, "Preferences fetched successfully")
}

// UpdatePreferences godoc
// @Summary Save travel preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.PreferenceRequest true "Onboarding answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/preferences [put]
func (p *PreferenceController) UpdatePreferences(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req request_models.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pref, err := p.preferenceService.UpdatePreferences(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pref, "Preferences saved successfully")
}
