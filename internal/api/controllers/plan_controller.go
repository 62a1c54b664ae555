package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{planService: planService}
}

// GeneratePlan godoc
// @Summary Generate a trip plan
// @Description Builds a prompt from the saved preferences, asks the model for a plan and stores it in history
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest false "Overrides for the saved preferences"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plans [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req request_models.GeneratePlanRequest
	// an empty body means "use my preferences as they are"
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.Generate(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Trip plan generated successfully")
}

// GetPlan godoc
// @Summary Get a stored trip plan
// @Description Rebuilds the dashboard view of a stored plan
// @Tags Plans
// @Produce json
// @Param id path string true "History record id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plans/{id} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	historyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := p.planService.View(c.Request.Context(), accountID, historyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan fetched successfully")
}

// ParsePlan godoc
// @Summary Parse plan markdown
// @Description Runs the extraction pipeline on arbitrary markdown
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.ParsePlanRequest true "Markdown to parse"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plans/parse [post]
func (p *PlanController) ParsePlan(c *gin.Context) {
	var req request_models.ParsePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Markdown is required")
		return
	}

	utils.RespondSuccess(c, p.planService.Parse(req.Markdown, req.DestinationHint), "Plan parsed successfully")
}
