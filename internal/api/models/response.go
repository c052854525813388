package models

import (
	"league-simulator/internal/analysis"
	"league-simulator/internal/model"
)

// SimulateResponse represents the response from a simulation run.
type SimulateResponse struct {
	Status       string                    `json:"status"`
	Iterations   int                       `json:"iterations"`
	Seed         int64                     `json:"seed"`
	Distribution []model.RankProbabilities `json:"distribution"`
	CurrentTable model.Table               `json:"current_table"`
	Outlook      []analysis.TeamOutlook    `json:"outlook,omitempty"`
	Warnings     []string                  `json:"warnings,omitempty"`
}

// BaselineResponse carries the seed ELO derived for a new team.
type BaselineResponse struct {
	Status      string  `json:"status"`
	Baseline    float64 `json:"baseline_elo"`
	BottomTeams int     `json:"bottom_teams"`
}

// DefaultsResponse lists the calibrated engine defaults.
type DefaultsResponse struct {
	Params     model.SimParams `json:"params"`
	Iterations int             `json:"iterations"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
