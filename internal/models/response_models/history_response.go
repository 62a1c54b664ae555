package response_models

import (
	"encoding/json"

	"wanderplan/pkg/planparse"
)

type HistoryItemResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Summary     json.RawMessage `json:"summary,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}

type HistoryDetailResponse struct {
	HistoryItemResponse
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

type HistoryPageResponse struct {
	Items    []HistoryItemResponse `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
	Total    int64                 `json:"total"`
}

// PlanSummary is stored with every trip plan for list views.
type PlanSummary struct {
	Days         int      `json:"days"`
	Sections     int      `json:"sections"`
	BudgetItems  int      `json:"budgetItems"`
	Destinations []string `json:"destinations"`
}

type PlanResponse struct {
	HistoryID string             `json:"historyId"`
	Title     string             `json:"title"`
	View      planparse.PlanView `json:"view"`
}
