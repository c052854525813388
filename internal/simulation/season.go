// Package simulation contains the single-replication machinery: the
// sequential season walk and the standings calculation.
package simulation

import (
	"math/rand"

	"league-simulator/internal/elo"
	"league-simulator/internal/model"
)

// Evolve processes a season's fixtures strictly in list order, replaying
// known results and sampling unknown ones, so the ratings used for fixture
// i+1 reflect every update from fixtures 0..i. Played fixtures still move
// the ratings; only the scoreline is taken as given.
//
// The input season and ELO vector are never mutated: the returned fixture
// list has every result filled in and the returned vector holds the final
// ratings. rng is only consumed for unplayed fixtures, so a fully played
// season replays identically with a nil rng.
func Evolve(season model.Season, initialElo []float64, params model.SimParams, rng *rand.Rand) ([]model.Fixture, []float64) {
	fixtures := make([]model.Fixture, len(season.Fixtures))
	copy(fixtures, season.Fixtures)

	elos := make([]float64, len(initialElo))
	copy(elos, initialElo)

	for i := range fixtures {
		f := &fixtures[i]

		var out model.MatchOutcome
		if f.Played() {
			out = elo.Exchange(elos[f.Home], elos[f.Away], *f.Result, params)
		} else {
			out = elo.Simulate(elos[f.Home], elos[f.Away], params, rng.Float64(), rng.Float64())
			score := out.Score()
			f.Result = &score
		}

		elos[f.Home] = out.HomeElo
		elos[f.Away] = out.AwayElo
	}

	return fixtures, elos
}
