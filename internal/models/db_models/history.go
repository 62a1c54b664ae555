package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	HistoryKindTripPlan   = "trip_plan"
	HistoryKindLiveTravel = "live_travel"
)

type HistoryRecord struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind        string    `gorm:"index;not null"`
	Title       string
	Destination string
	Prompt      string `gorm:"type:text"`
	Response    string `gorm:"type:text"`
	Summary     datatypes.JSON
	Memories    []Memory `gorm:"foreignKey:HistoryID"`
}
