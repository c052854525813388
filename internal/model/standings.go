package model

// StandingsRow is one team's line in a ranked table, after adjustments.
// GoalDiff is always GoalsFor-GoalsAgainst; the table never carries an
// independent goal-difference figure.
type StandingsRow struct {
	Team         int `json:"team"`
	Played       int `json:"played"`
	Won          int `json:"won"`
	Drawn        int `json:"drawn"`
	Lost         int `json:"lost"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	GoalDiff     int `json:"goal_diff"`
	Points       int `json:"points"`
	Rank         int `json:"rank"` // 1-based, 1 = champion
}

// Table is a full division table ordered best to worst.
type Table []StandingsRow

// Row returns the row for a team index, or false if the index is unknown.
func (t Table) Row(team int) (StandingsRow, bool) {
	for _, r := range t {
		if r.Team == team {
			return r, true
		}
	}
	return StandingsRow{}, false
}
