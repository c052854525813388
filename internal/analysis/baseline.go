// Package analysis derives secondary figures from simulation output:
// rating baselines for incoming teams and promotion/relegation outlooks.
package analysis

import (
	"fmt"

	"league-simulator/internal/model"
	"league-simulator/internal/simulation"
)

// DefaultBaselineTeams is the usual number of bottom-table teams averaged
// when seeding a newly promoted team's rating.
const DefaultBaselineTeams = 4

// RelegationBaseline replays a fully played season and returns the mean
// final ELO of the bottom k ranked teams. That average is the seed rating
// for a team entering the division with no history of its own.
func RelegationBaseline(season model.Season, initialElo []float64, params model.SimParams, k int) (float64, error) {
	if err := season.Validate(); err != nil {
		return 0, err
	}
	if err := model.ValidateElo(initialElo, season.NumTeams); err != nil {
		return 0, err
	}
	if k <= 0 || k > season.NumTeams {
		return 0, &model.ConfigError{
			Field:   "k",
			Message: fmt.Sprintf("bottom-team count must be in 1..%d, got %d", season.NumTeams, k),
		}
	}
	if open := season.Unplayed(); open > 0 {
		return 0, &model.ValidationError{
			Field:   "season",
			Message: fmt.Sprintf("baseline needs a fully played season, %d fixtures open", open),
		}
	}

	fixtures, finalElo := simulation.Evolve(season, initialElo, params, nil)
	table := simulation.ComputeTable(fixtures, season.NumTeams, model.Adjustments{})

	sum := 0.0
	for _, row := range table[season.NumTeams-k:] {
		sum += finalElo[row.Team]
	}
	return sum / float64(k), nil
}
