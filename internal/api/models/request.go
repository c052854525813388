package models

import "league-simulator/internal/data"

// SimulateRequest represents the request body for running a simulation.
// Teams are listed in index order; fixtures reference them by index.
type SimulateRequest struct {
	Teams    []data.TeamSeed      `json:"teams" binding:"required"`
	Fixtures []data.FixtureRecord `json:"fixtures" binding:"required"`

	// Run sizing. Iterations defaults to the engine default; Seed defaults
	// to 0 (fixed, reproducible); Workers defaults to GOMAXPROCS.
	Iterations int    `json:"iterations,omitempty"`
	Seed       *int64 `json:"seed,omitempty"`
	Workers    int    `json:"workers,omitempty"`

	// Optional match-model overrides; zero fields use calibrated defaults.
	Params ParamsConfig `json:"params,omitempty"`

	Adjustments AdjustmentsConfig `json:"adjustments,omitempty"`

	// Position groups for the outlook section of the response. Both zero
	// means no outlook is computed.
	PromotionSpots  int `json:"promotion_spots,omitempty"`
	RelegationSpots int `json:"relegation_spots,omitempty"`
}

// ParamsConfig mirrors the match-model constants.
type ParamsConfig struct {
	ModFactor     float64 `json:"mod_factor,omitempty"`
	HomeAdvantage float64 `json:"home_advantage,omitempty"`
	GoalSlope     float64 `json:"goal_slope,omitempty"`
	GoalIntercept float64 `json:"goal_intercept,omitempty"`
}

// AdjustmentsConfig carries the per-team table adjustments.
type AdjustmentsConfig struct {
	Points       []int `json:"points,omitempty"`
	Goals        []int `json:"goals,omitempty"`
	GoalsAgainst []int `json:"goals_against,omitempty"`
	GoalDiff     []int `json:"goal_diff,omitempty"`
}

// BaselineRequest represents a request to derive a seed ELO for a new team
// from a finished season.
type BaselineRequest struct {
	Teams    []data.TeamSeed      `json:"teams" binding:"required"`
	Fixtures []data.FixtureRecord `json:"fixtures" binding:"required"`
	// BottomTeams is how many bottom-table teams to average (default 4).
	BottomTeams int          `json:"bottom_teams,omitempty"`
	Params      ParamsConfig `json:"params,omitempty"`
}
