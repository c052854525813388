package montecarlo

import (
	"fmt"

	"league-simulator/internal/model"
)

// validate rejects malformed requests before any replication runs. It
// returns non-fatal warnings alongside; nothing here is retried or
// degraded, a bad request fails the whole call.
func validate(req Request) ([]string, error) {
	if req.Iterations <= 0 {
		return nil, &model.ConfigError{
			Field:   "iterations",
			Message: fmt.Sprintf("iteration count must be positive, got %d", req.Iterations),
		}
	}
	if err := req.Season.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateElo(req.InitialElo, req.Season.NumTeams); err != nil {
		return nil, err
	}
	if len(req.TeamNames) != 0 && len(req.TeamNames) != req.Season.NumTeams {
		return nil, &model.ConfigError{
			Field:   "team_names",
			Message: "team name list length must equal team count",
		}
	}
	if err := req.Adjustments.Validate(req.Season.NumTeams); err != nil {
		return nil, err
	}

	var warnings []string
	for _, team := range req.Adjustments.Inconsistencies() {
		warnings = append(warnings, fmt.Sprintf(
			"goal-diff adjustment for %s ignored: %d != goals %d - goals against %d",
			teamName(req.TeamNames, team),
			req.Adjustments.GoalDiff[team],
			req.Adjustments.GoalsFor(team),
			req.Adjustments.GoalsAgainstFor(team),
		))
	}
	return warnings, nil
}
