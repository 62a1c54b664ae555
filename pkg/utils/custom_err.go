package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrHistoryNotFound        = errors.New("history not found")
	ErrPreferenceNotFound     = errors.New("preference not found")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrInvalidOAuthState      = errors.New("invalid oauth state")
	ErrDriveNotLinked         = errors.New("google drive not linked")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrMemoryUploadFailed     = errors.New("memory upload failed")
)
