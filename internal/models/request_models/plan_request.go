package request_models

// GeneratePlanRequest overrides stored preferences for one generation.
// Empty fields keep the stored value.
type GeneratePlanRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Travelers   int      `json:"travelers"`
	BudgetLevel string   `json:"budgetLevel"`
	Pace        string   `json:"pace"`
	Interests   []string `json:"interests"`
	ExtraNotes  string   `json:"extraNotes"`
}

type ParsePlanRequest struct {
	Markdown        string `json:"markdown" binding:"required"`
	DestinationHint string `json:"destinationHint"`
}

// LiveStreamRequest is one live-travel question, optionally with a photo.
type LiveStreamRequest struct {
	Message  string `json:"message"`
	Image    string `json:"image"`
	Location string `json:"location"`
}

type HistoryListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Kind     string `form:"kind"`
}

type PlaceEnrichRequest struct {
	Places          []string `json:"places" binding:"required,min=1,max=20"`
	DestinationHint string   `json:"destinationHint"`
	DayText         string   `json:"dayText"`
}

type PlaceQuery struct {
	Name string `form:"name" binding:"required"`
	Hint string `form:"hint"`
	Day  string `form:"dayText"`
}
