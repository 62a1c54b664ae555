package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderplan/internal/config"
	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	mem "wanderplan/pkg/memcache"
	"wanderplan/pkg/utils"
)

const oauthStateBytes = 16

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (response_models.AuthResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) (response_models.AuthResponse, error)
	Me(ctx context.Context, accountID uuid.UUID) (response_models.AccountResponse, error)

	// GoogleAuthURL starts the consent flow. linkAccountID is the signed-in
	// account that wants Drive access, or uuid.Nil for a plain sign-in.
	GoogleAuthURL(ctx context.Context, linkAccountID uuid.UUID) (response_models.GoogleAuthURLResponse, error)
	GoogleCallback(ctx context.Context, request request_models.GoogleCallbackRequest) (response_models.AuthResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	states      mem.StateStore
	google      GoogleProvider
	jwtSecret   string
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	states mem.StateStore,
	google GoogleProvider,
	cfg config.Config,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		states:      states,
		google:      google,
		jwtSecret:   cfg.JWTSecret,
		logger:      logger,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AuthResponse{}, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	return a.authResponse(account)
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) (response_models.AuthResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	return a.authResponse(newAccount)
}

func (a *AccountService) Me(ctx context.Context, accountID uuid.UUID) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func (a *AccountService) GoogleAuthURL(ctx context.Context, linkAccountID uuid.UUID) (response_models.GoogleAuthURLResponse, error) {
	if a.google == nil {
		return response_models.GoogleAuthURLResponse{}, fmt.Errorf("google sign-in is not configured: %w", utils.ErrInvalidInput)
	}

	state, err := utils.GenerateSecureToken(oauthStateBytes)
	if err != nil {
		return response_models.GoogleAuthURLResponse{}, fmt.Errorf("generate state: %w", err)
	}

	value := ""
	if linkAccountID != uuid.Nil {
		value = linkAccountID.String()
	}
	a.states.Set(state, value, mem.DefaultStateTTL)

	return response_models.GoogleAuthURLResponse{
		URL:   a.google.AuthCodeURL(state),
		State: state,
	}, nil
}

func (a *AccountService) GoogleCallback(ctx context.Context, request request_models.GoogleCallbackRequest) (response_models.AuthResponse, error) {
	if a.google == nil {
		return response_models.AuthResponse{}, fmt.Errorf("google sign-in is not configured: %w", utils.ErrInvalidInput)
	}

	linkAccountID, ok := a.states.Consume(request.State)
	if !ok {
		return response_models.AuthResponse{}, utils.ErrInvalidOAuthState
	}

	identity, err := a.google.Exchange(ctx, request.Code)
	if err != nil {
		a.logger.Warn("google code exchange failed", zap.Error(err))
		return response_models.AuthResponse{}, fmt.Errorf("google exchange: %w", utils.ErrInvalidCredentials)
	}

	account, err := a.resolveGoogleAccount(ctx, linkAccountID, identity)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	account.GoogleSubject = identity.Subject
	if identity.Picture != "" {
		account.Picture = identity.Picture
	}
	if account.Name == "" {
		account.Name = identity.Name
	}
	// Google only sends a refresh token on the first consent.
	if identity.RefreshToken != "" {
		account.GoogleRefreshToken = identity.RefreshToken
	}

	if account.ID == uuid.Nil {
		err = a.accountRepo.InsertTx(account, ctx)
	} else {
		err = a.accountRepo.Update(ctx, account)
	}
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	return a.authResponse(account)
}

// resolveGoogleAccount finds the account a Google identity belongs to:
// the linking account, then the subject, then a verified email. A new
// account is returned unsaved when nothing matches.
func (a *AccountService) resolveGoogleAccount(ctx context.Context, linkAccountID string, identity *GoogleIdentity) (*db_models.Account, error) {
	if linkAccountID != "" {
		account, err := a.accountRepo.FindById(ctx, linkAccountID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if account == nil {
			return nil, utils.ErrAccountNotFound
		}
		return account, nil
	}

	account, err := a.accountRepo.FindByGoogleSubject(ctx, identity.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		return account, nil
	}

	// Email matching and new accounts both need an address Google vouches for.
	email := normalizeEmail(identity.Email)
	if email == "" || !identity.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account has no verified email", utils.ErrInvalidInput)
	}

	account, err = a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		return account, nil
	}

	return &db_models.Account{
		Name:  identity.Name,
		Email: email,
		Role:  db_models.RoleUser,
	}, nil
}

func (a *AccountService) authResponse(account *db_models.Account) (response_models.AuthResponse, error) {
	token, err := utils.CreateToken(a.jwtSecret, account.ID, account.Role)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}
	return response_models.AuthResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          account.ID.String(),
		Name:        account.Name,
		Email:       account.Email,
		Role:        account.Role,
		Picture:     account.Picture,
		DriveLinked: account.DriveLinked(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
