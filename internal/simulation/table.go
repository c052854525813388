package simulation

import (
	"sort"

	"league-simulator/internal/model"
)

// ComputeTable folds match results into a ranked table. Rows are seeded
// with the per-team adjustments, then every played fixture contributes
// 3/1/0 points and its goals. Goal difference is recomputed from the
// adjusted for/against totals, so GD == GF-GA holds for every row no matter
// what goal-difference adjustment the caller supplied.
//
// Ordering: points, then goal difference, then goals scored, all
// descending; any remaining tie is broken by team index so the table is a
// deterministic total order. An empty fixture list yields all-zero rows
// (plus adjustments) ranked by index.
func ComputeTable(fixtures []model.Fixture, numTeams int, adj model.Adjustments) model.Table {
	rows := make(model.Table, numTeams)
	for i := range rows {
		rows[i] = model.StandingsRow{
			Team:         i,
			Points:       adj.PointsFor(i),
			GoalsFor:     adj.GoalsFor(i),
			GoalsAgainst: adj.GoalsAgainstFor(i),
		}
	}

	for _, f := range fixtures {
		if !f.Played() {
			continue
		}
		home, away := &rows[f.Home], &rows[f.Away]

		home.Played++
		away.Played++
		home.GoalsFor += f.Result.Home
		home.GoalsAgainst += f.Result.Away
		away.GoalsFor += f.Result.Away
		away.GoalsAgainst += f.Result.Home

		result := model.ResultFromScore(*f.Result)
		switch result {
		case model.ResultHomeWin:
			home.Won++
			away.Lost++
		case model.ResultAwayWin:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
		hp, ap := result.Points()
		home.Points += hp
		away.Points += ap
	}

	for i := range rows {
		rows[i].GoalDiff = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
