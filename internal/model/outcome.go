package model

// Result is a human-friendly outcome label for a match.
// Keep these values stable; they are intended for CSV output.
type Result string

const (
	ResultHomeWin Result = "HOME_WIN"
	ResultDraw    Result = "DRAW"
	ResultAwayWin Result = "AWAY_WIN"
)

// ResultFromScore classifies a concrete scoreline.
func ResultFromScore(s Score) Result {
	switch {
	case s.Home > s.Away:
		return ResultHomeWin
	case s.Home < s.Away:
		return ResultAwayWin
	default:
		return ResultDraw
	}
}

// Points returns the league points awarded to each side.
func (r Result) Points() (home, away int) {
	switch r {
	case ResultHomeWin:
		return 3, 0
	case ResultAwayWin:
		return 0, 3
	default:
		return 1, 1
	}
}

// MatchOutcome is the result of putting one fixture through the match
// model: both updated ratings, the resolved scoreline (real or sampled) and
// the pre-update home win probability.
type MatchOutcome struct {
	HomeElo     float64 `json:"home_elo"`
	AwayElo     float64 `json:"away_elo"`
	HomeGoals   int     `json:"home_goals"`
	AwayGoals   int     `json:"away_goals"`
	HomeWinProb float64 `json:"home_win_prob"`
}

// Score returns the outcome's scoreline.
func (o MatchOutcome) Score() Score {
	return Score{Home: o.HomeGoals, Away: o.AwayGoals}
}
