package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/pkg/middleware"
	"wanderplan/pkg/utils"
)

// currentAccount writes a 401 and returns false when the caller is anonymous.
func currentAccount(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.CurrentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
