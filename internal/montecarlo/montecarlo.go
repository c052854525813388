// Package montecarlo drives many independent season replications and
// aggregates their final tables into a per-team rank distribution.
package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"league-simulator/internal/model"
	"league-simulator/internal/simulation"
)

// Request bundles everything one simulation run needs. The season, ELO
// vector and adjustments are treated as immutable templates; every
// replication works on private copies.
type Request struct {
	Season      model.Season
	InitialElo  []float64
	TeamNames   []string
	Params      model.SimParams
	Adjustments model.Adjustments

	// Iterations is the replication count. It must be positive even when
	// the season is fully played and only one pass will actually run.
	Iterations int
	// Seed is the reproducibility anchor: the same seed yields the same
	// distribution regardless of Workers.
	Seed int64
	// Workers sizes the replication pool; 0 means GOMAXPROCS.
	Workers int
}

// Run validates the request, then either replays a fully played season once
// or runs Iterations randomized replications on a worker pool. Each
// replication owns an RNG derived from (Seed, replication index), so the
// result does not depend on scheduling order. Cancellation is honored
// between replications; a canceled run returns ctx.Err() and no partial
// distribution.
func Run(ctx context.Context, req Request) (*model.RankDistribution, error) {
	warnings, err := validate(req)
	if err != nil {
		return nil, err
	}

	n := req.Season.NumTeams

	// A season with no open fixtures has exactly one outcome; skip the
	// iteration loop and spend no randomness.
	if req.Season.Unplayed() == 0 {
		fixtures, _ := simulation.Evolve(req.Season, req.InitialElo, req.Params, nil)
		table := simulation.ComputeTable(fixtures, n, req.Adjustments)

		counts := newCounts(n)
		for _, row := range table {
			counts[row.Team][row.Rank-1] = 1
		}
		return buildDistribution(req, counts, 1, warnings), nil
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.Iterations {
		workers = req.Iterations
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for rep := 0; rep < req.Iterations; rep++ {
			select {
			case jobs <- rep:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Each worker accumulates into a private count matrix; the matrices
	// are merged once at the end, so replications never contend on shared
	// counters.
	locals := make(chan [][]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts := newCounts(n)
			for rep := range jobs {
				rng := rand.New(rand.NewSource(replicationSeed(req.Seed, rep)))
				fixtures, _ := simulation.Evolve(req.Season, req.InitialElo, req.Params, rng)
				table := simulation.ComputeTable(fixtures, n, req.Adjustments)
				for _, row := range table {
					counts[row.Team][row.Rank-1]++
				}
			}
			locals <- counts
		}()
	}
	wg.Wait()
	close(locals)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := newCounts(n)
	for local := range locals {
		for team := range local {
			for rank := range local[team] {
				counts[team][rank] += local[team][rank]
			}
		}
	}

	return buildDistribution(req, counts, req.Iterations, warnings), nil
}

func newCounts(n int) [][]int {
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	return counts
}

// replicationSeed derives an independent sub-seed per replication index
// (splitmix64 finalizer). Seeding rep RNGs from a shared counter rather
// than a global stream keeps runs reproducible under any pool size.
func replicationSeed(seed int64, rep int) int64 {
	z := uint64(seed) + uint64(rep)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

func buildDistribution(req Request, counts [][]int, iterations int, warnings []string) *model.RankDistribution {
	n := req.Season.NumTeams
	rows := make([]model.RankProbabilities, n)
	for team := 0; team < n; team++ {
		probs := make([]float64, n)
		expected := 0.0
		for rank := 0; rank < n; rank++ {
			p := float64(counts[team][rank]) / float64(iterations)
			probs[rank] = p
			expected += float64(rank+1) * p
		}
		rows[team] = model.RankProbabilities{
			Team:          team,
			Name:          teamName(req.TeamNames, team),
			Probabilities: probs,
			ExpectedRank:  expected,
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ExpectedRank != rows[j].ExpectedRank {
			return rows[i].ExpectedRank < rows[j].ExpectedRank
		}
		return rows[i].Team < rows[j].Team
	})

	return &model.RankDistribution{
		Rows:       rows,
		Iterations: iterations,
		Seed:       req.Seed,
		Warnings:   warnings,
	}
}

func teamName(names []string, team int) string {
	if team < len(names) {
		return names[team]
	}
	return fmt.Sprintf("Team %d", team+1)
}
