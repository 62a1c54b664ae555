package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TravelPreference is what the onboarding wizard collects. One per account.
type TravelPreference struct {
	BaseModel
	AccountID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Destination         string
	StartDate           string
	EndDate             string
	Travelers           int
	BudgetLevel         string
	BudgetAmount        float64
	Pace                string
	Interests           pq.StringArray `gorm:"type:text[]"`
	Accommodation       string
	Transport           string
	DietaryNeeds        string
	Notes               string
	OnboardingCompleted bool
}
