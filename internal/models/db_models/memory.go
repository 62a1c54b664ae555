package db_models

import "github.com/google/uuid"

// Memory is a photo uploaded to the owner's Google Drive for one trip day.
type Memory struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	HistoryID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Day         int
	Caption     string
	FileName    string
	MimeType    string
	DriveFileID string
	DriveLink   string
}
