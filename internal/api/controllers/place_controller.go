package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// EnrichPlaces godoc
// @Summary Enrich places
// @Description Photo, weather and map links for up to 20 places. Lookups never fail; fallbacks are returned instead.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.PlaceEnrichRequest true "Places to enrich"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/places/enrich [post]
func (p *PlaceController) EnrichPlaces(c *gin.Context) {
	var req request_models.PlaceEnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Between 1 and 20 places are required")
		return
	}

	utils.RespondSuccess(c, p.placeService.Enrich(c.Request.Context(), req), "Places enriched successfully")
}

// PlaceWeather godoc
// @Summary Weather for a place
// @Tags Places
// @Produce json
// @Param name query string true "Place name"
// @Param hint query string false "Destination hint"
// @Param dayText query string false "Day text used for the seasonal estimate"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/places/weather [get]
func (p *PlaceController) PlaceWeather(c *gin.Context) {
	var q request_models.PlaceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place name is required")
		return
	}

	utils.RespondSuccess(c, p.placeService.Weather(c.Request.Context(), q), "Weather fetched successfully")
}

// PlacePhoto godoc
// @Summary Photo for a place
// @Tags Places
// @Produce json
// @Param name query string true "Place name"
// @Param hint query string false "Destination hint"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/places/photo [get]
func (p *PlaceController) PlacePhoto(c *gin.Context) {
	var q request_models.PlaceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place name is required")
		return
	}

	utils.RespondSuccess(c, p.placeService.Photo(c.Request.Context(), q), "Photo fetched successfully")
}
