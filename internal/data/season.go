// Package data loads season files from disk for the CLI and demo. Fetching
// live results belongs to an upstream collaborator; this package only reads
// the already-assembled fixture list.
package data

import (
	"encoding/json"
	"os"

	"league-simulator/internal/model"
)

// SeasonFile is the on-disk season shape: team seeds in index order plus an
// ordered fixture list referencing them by index.
type SeasonFile struct {
	League   string          `json:"league,omitempty"`
	Teams    []TeamSeed      `json:"teams"`
	Fixtures []FixtureRecord `json:"fixtures"`
}

// TeamSeed is one team's name and initial ELO rating.
type TeamSeed struct {
	Name string  `json:"name"`
	Elo  float64 `json:"elo"`
}

// FixtureRecord is one scheduled match. Both goal fields are present for a
// played match and absent for an open one; a half-filled record is invalid.
type FixtureRecord struct {
	Home      int  `json:"home"`
	Away      int  `json:"away"`
	HomeGoals *int `json:"home_goals,omitempty"`
	AwayGoals *int `json:"away_goals,omitempty"`
}

// LoadSeasonJSON reads a season file from disk.
func LoadSeasonJSON(path string) (*SeasonFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f SeasonFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Season converts the file into engine inputs: the season template, the
// initial ELO vector and the team name list.
func (f *SeasonFile) Season() (model.Season, []float64, []string, error) {
	elos := make([]float64, len(f.Teams))
	names := make([]string, len(f.Teams))
	for i, t := range f.Teams {
		elos[i] = t.Elo
		names[i] = t.Name
	}

	season := model.Season{
		NumTeams: len(f.Teams),
		Fixtures: make([]model.Fixture, len(f.Fixtures)),
	}
	for i, r := range f.Fixtures {
		fx := model.Fixture{Home: r.Home, Away: r.Away}
		switch {
		case r.HomeGoals != nil && r.AwayGoals != nil:
			fx.Result = &model.Score{Home: *r.HomeGoals, Away: *r.AwayGoals}
		case r.HomeGoals != nil || r.AwayGoals != nil:
			return model.Season{}, nil, nil, &model.ValidationError{
				Field:   "fixtures",
				Message: "a fixture must have both goal counts or neither",
			}
		}
		season.Fixtures[i] = fx
	}
	return season, elos, names, nil
}
