package model

// RankProbabilities is one team's probability of finishing in each final
// position. Probabilities[i] is the probability of rank i+1; the slice
// always covers every rank 1..N and sums to 1.
type RankProbabilities struct {
	Team          int       `json:"team"`
	Name          string    `json:"name"`
	Probabilities []float64 `json:"probabilities"`
	ExpectedRank  float64   `json:"expected_rank"`
}

// Probability returns the probability of finishing at the given 1-based
// rank, 0 for ranks outside the division.
func (r RankProbabilities) Probability(rank int) float64 {
	if rank < 1 || rank > len(r.Probabilities) {
		return 0
	}
	return r.Probabilities[rank-1]
}

// RankDistribution is the Monte Carlo output: one probability row per team,
// ordered by ascending expected rank for presentation. The original team
// index is preserved on each row.
type RankDistribution struct {
	Rows       []RankProbabilities `json:"rows"`
	Iterations int                 `json:"iterations"`
	Seed       int64               `json:"seed"`
	// Warnings carries non-fatal configuration findings, currently only
	// goal-difference adjustments that disagree with goals/goals-against.
	Warnings []string `json:"warnings,omitempty"`
}

// Row returns the distribution row for a team index, or false if absent.
func (d *RankDistribution) Row(team int) (RankProbabilities, bool) {
	for _, r := range d.Rows {
		if r.Team == team {
			return r, true
		}
	}
	return RankProbabilities{}, false
}
