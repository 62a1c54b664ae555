package request_models

type PreferenceRequest struct {
	Destination         string   `json:"destination"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	Travelers           int      `json:"travelers"`
	BudgetLevel         string   `json:"budgetLevel"`
	BudgetAmount        float64  `json:"budgetAmount"`
	Pace                string   `json:"pace"`
	Interests           []string `json:"interests"`
	Accommodation       string   `json:"accommodation"`
	Transport           string   `json:"transport"`
	DietaryNeeds        string   `json:"dietaryNeeds"`
	Notes               string   `json:"notes"`
	OnboardingCompleted bool     `json:"onboardingCompleted"`
}
