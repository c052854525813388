package model

import "math"

// Score is a concrete scoreline. A nil *Score on a Fixture means the match
// has not been played yet; there is no sentinel value for "unplayed".
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Fixture is one match between two team indices. Result is nil until the
// match has been played or simulated.
type Fixture struct {
	Home   int    `json:"home"`
	Away   int    `json:"away"`
	Result *Score `json:"result,omitempty"`
}

// Played reports whether the fixture has a concrete scoreline.
func (f Fixture) Played() bool { return f.Result != nil }

// Season is an ordered fixture list for one division. Order matters: ELO
// evolves match by match, so fixture i+1 sees the ratings produced by
// fixtures 0..i.
type Season struct {
	NumTeams int       `json:"num_teams"`
	Fixtures []Fixture `json:"fixtures"`
}

// Unplayed returns the number of fixtures still missing a result.
func (s Season) Unplayed() int {
	n := 0
	for _, f := range s.Fixtures {
		if !f.Played() {
			n++
		}
	}
	return n
}

// Validate checks structural soundness: team indices in range, no team
// playing itself and no negative goals. It does not require any fixture to
// be played; an empty season is valid.
func (s Season) Validate() error {
	if s.NumTeams <= 0 {
		return &ConfigError{Field: "season.num_teams", Message: "team count must be positive"}
	}
	for i, f := range s.Fixtures {
		if f.Home < 0 || f.Home >= s.NumTeams || f.Away < 0 || f.Away >= s.NumTeams {
			return &ConfigError{
				Field:   fieldf("season.fixtures[%d]", i),
				Message: "fixture references a team index outside the division",
			}
		}
		if f.Home == f.Away {
			return &ConfigError{
				Field:   fieldf("season.fixtures[%d]", i),
				Message: "a team cannot play itself",
			}
		}
		if f.Result != nil && (f.Result.Home < 0 || f.Result.Away < 0) {
			return &ValidationError{
				Field:   fieldf("season.fixtures[%d]", i),
				Message: "goals cannot be negative",
			}
		}
	}
	return nil
}

// ValidateElo rejects non-finite ratings. NaN would otherwise propagate
// silently through every update of a replication.
func ValidateElo(elos []float64, numTeams int) error {
	if len(elos) != numTeams {
		return &ConfigError{
			Field:   "initial_elo",
			Message: "ELO vector length must equal team count",
		}
	}
	for i, e := range elos {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return &ValidationError{
				Field:   fieldf("initial_elo[%d]", i),
				Message: "ELO rating must be finite",
			}
		}
	}
	return nil
}
