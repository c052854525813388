package simulation

import (
	"testing"

	"league-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func played(home, away, homeGoals, awayGoals int) model.Fixture {
	return model.Fixture{
		Home:   home,
		Away:   away,
		Result: &model.Score{Home: homeGoals, Away: awayGoals},
	}
}

// completedSeason is a full 4-team double round robin (12 fixtures) with
// hand-computed standings used by several tests.
func completedSeason() model.Season {
	return model.Season{
		NumTeams: 4,
		Fixtures: []model.Fixture{
			played(0, 1, 2, 0),
			played(0, 2, 1, 1),
			played(0, 3, 3, 0),
			played(1, 0, 1, 2),
			played(1, 2, 2, 2),
			played(1, 3, 1, 0),
			played(2, 0, 0, 1),
			played(2, 1, 3, 1),
			played(2, 3, 2, 0),
			played(3, 0, 0, 2),
			played(3, 1, 1, 1),
			played(3, 2, 0, 0),
		},
	}
}

func TestComputeTableCompletedSeason(t *testing.T) {
	season := completedSeason()
	table := ComputeTable(season.Fixtures, season.NumTeams, model.Adjustments{})
	require.Len(t, table, 4)

	expected := []model.StandingsRow{
		{Team: 0, Played: 6, Won: 5, Drawn: 1, Lost: 0, GoalsFor: 11, GoalsAgainst: 2, GoalDiff: 9, Points: 16, Rank: 1},
		{Team: 2, Played: 6, Won: 2, Drawn: 3, Lost: 1, GoalsFor: 8, GoalsAgainst: 5, GoalDiff: 3, Points: 9, Rank: 2},
		{Team: 1, Played: 6, Won: 1, Drawn: 2, Lost: 3, GoalsFor: 6, GoalsAgainst: 10, GoalDiff: -4, Points: 5, Rank: 3},
		{Team: 3, Played: 6, Won: 0, Drawn: 2, Lost: 4, GoalsFor: 1, GoalsAgainst: 9, GoalDiff: -8, Points: 2, Rank: 4},
	}
	assert.Equal(t, expected, []model.StandingsRow(table))
}

func TestComputeTableEmptySeason(t *testing.T) {
	table := ComputeTable(nil, 4, model.Adjustments{})
	require.Len(t, table, 4)
	for i, row := range table {
		assert.Equal(t, i, row.Team, "zero rows keep index order")
		assert.Equal(t, i+1, row.Rank)
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
		assert.Zero(t, row.GoalsFor)
		assert.Zero(t, row.GoalsAgainst)
		assert.Zero(t, row.GoalDiff)
	}
}

func TestComputeTableSkipsUnplayed(t *testing.T) {
	fixtures := []model.Fixture{
		played(0, 1, 1, 0),
		{Home: 1, Away: 2},
	}
	table := ComputeTable(fixtures, 3, model.Adjustments{})
	row, ok := table.Row(2)
	require.True(t, ok)
	assert.Zero(t, row.Played)
}

func TestComputeTablePointsPenalty(t *testing.T) {
	// A drawn match plus a -50 point penalty drops the penalized team to
	// the bottom despite identical results.
	fixtures := []model.Fixture{played(0, 1, 1, 1)}
	adj := model.Adjustments{Points: []int{-50, 0, 0}}
	table := ComputeTable(fixtures, 3, adj)

	row, ok := table.Row(0)
	require.True(t, ok)
	assert.Equal(t, -49, row.Points)
	assert.Equal(t, 3, row.Rank)
}

func TestComputeTableGoalDiffAlwaysConsistent(t *testing.T) {
	// Even with a deliberately wrong goal-diff adjustment, GD is derived
	// from the adjusted for/against totals.
	season := completedSeason()
	adj := model.Adjustments{
		Goals:        []int{5, 0, 0, 0},
		GoalsAgainst: []int{0, 3, 0, 0},
		GoalDiff:     []int{100, 100, 100, 100},
	}
	table := ComputeTable(season.Fixtures, season.NumTeams, adj)
	for _, row := range table {
		assert.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDiff)
	}

	row, ok := table.Row(0)
	require.True(t, ok)
	assert.Equal(t, 16, row.GoalsFor)
	assert.Equal(t, 14, row.GoalDiff)
}

func TestComputeTableTieBreaks(t *testing.T) {
	// Teams 0 and 1 finish level on points; goal difference separates
	// them. Teams 2 and 3 are level on everything; index breaks the tie.
	fixtures := []model.Fixture{
		played(0, 2, 3, 0),
		played(1, 3, 1, 0),
	}
	table := ComputeTable(fixtures, 4, model.Adjustments{})
	assert.Equal(t, []int{0, 1, 3, 2}, ranksToTeams(table))

	// Same goal difference, more goals scored wins the tie.
	fixtures = []model.Fixture{
		played(0, 2, 3, 1),
		played(1, 3, 2, 0),
	}
	table = ComputeTable(fixtures, 4, model.Adjustments{})
	assert.Equal(t, []int{0, 1, 2, 3}, ranksToTeams(table))
}

func ranksToTeams(table model.Table) []int {
	teams := make([]int, len(table))
	for i, row := range table {
		teams[i] = row.Team
	}
	return teams
}
