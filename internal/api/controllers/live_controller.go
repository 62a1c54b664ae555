package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

// maxLiveBodyBytes bounds the JSON body, which carries a base64 photo.
const maxLiveBodyBytes = 12 << 20

type LiveController struct {
	liveService services.LiveServiceInterface
}

func NewLiveController(liveService services.LiveServiceInterface) *LiveController {
	return &LiveController{liveService: liveService}
}

// Stream godoc
// @Summary Live travel assistant
// @Description Streams the model answer as server-sent events: chunk events, then done or error
// @Tags Live
// @Accept json
// @Produce text/event-stream
// @Param request body request_models.LiveStreamRequest true "Question and optional base64 photo"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/live/stream [post]
func (l *LiveController) Stream(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxLiveBodyBytes)
	var req request_models.LiveStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	started := false
	emit := func(event response_models.LiveEvent) error {
		if !started {
			header := c.Writer.Header()
			header.Set("Content-Type", "text/event-stream")
			header.Set("Cache-Control", "no-cache")
			header.Set("Connection", "keep-alive")
			header.Set("X-Accel-Buffering", "no")
			c.Status(http.StatusOK)
			started = true
		}

		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
			return err
		}
		c.Writer.Flush()
		return c.Request.Context().Err()
	}

	if err := l.liveService.Stream(c.Request.Context(), accountID, req, emit); err != nil && !started {
		utils.HandleServiceError(c, err)
	}
}
