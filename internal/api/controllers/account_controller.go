package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.CreateAccount(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Login successful")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	account, err := a.accountService.Me(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// GoogleAuthURL godoc
// @Summary Google sign-in URL
// @Description Returns the Google consent URL for signing in
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/google/url [get]
func (a *AccountController) GoogleAuthURL(c *gin.Context) {
	a.googleURL(c, uuid.Nil)
}

// GoogleLinkURL godoc
// @Summary Google Drive link URL
// @Description Returns the Google consent URL that links Drive to the signed-in account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/google/link [get]
func (a *AccountController) GoogleLinkURL(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	a.googleURL(c, accountID)
}

func (a *AccountController) googleURL(c *gin.Context, linkAccountID uuid.UUID) {
	resp, err := a.accountService.GoogleAuthURL(c.Request.Context(), linkAccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Google consent URL created")
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code and returns a token
// @Tags Accounts
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google/callback [get]
func (a *AccountController) GoogleCallback(c *gin.Context) {
	var req request_models.GoogleCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing code or state")
		return
	}

	auth, err := a.accountService.GoogleCallback(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Google sign-in successful")
}
