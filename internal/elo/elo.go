// Package elo implements the match-level rating model: the zero-sum ELO
// exchange for a known result and Poisson scoreline sampling for an
// unplayed fixture.
package elo

import (
	"math"

	"league-simulator/internal/model"
)

// maxDelta caps the rating gap fed into the win-probability logistic.
// Larger gaps still influence goal expectations, which use the raw delta.
const maxDelta = 400

// minLambda keeps the Poisson mean strictly positive for extreme mismatches.
const minLambda = 0.001

// WinProbability is the probability of a home win implied by the rating
// gap. 0.5 when the sides are level after home advantage.
func WinProbability(eloHome, eloAway, homeAdvantage float64) float64 {
	delta := eloHome + homeAdvantage - eloAway
	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < -maxDelta {
		delta = -maxDelta
	}
	return 1 / (1 + math.Pow(10, -delta/400))
}

// Exchange recalculates both ratings from a known scoreline. The update is
// exactly zero-sum: whatever the home side gains the away side loses.
func Exchange(eloHome, eloAway float64, goals model.Score, params model.SimParams) model.MatchOutcome {
	prob := WinProbability(eloHome, eloAway, params.HomeAdvantage)

	goalDiff := goals.Home - goals.Away
	result := (float64(sign(goalDiff)) + 1) / 2 // 0 loss, 0.5 draw, 1 win
	goalFactor := math.Sqrt(math.Max(math.Abs(float64(goalDiff)), 1))

	mod := (result - prob) * goalFactor * params.ModFactor

	return model.MatchOutcome{
		HomeElo:     eloHome + mod,
		AwayElo:     eloAway - mod,
		HomeGoals:   goals.Home,
		AwayGoals:   goals.Away,
		HomeWinProb: prob,
	}
}

// Simulate resolves an unplayed fixture from two independent uniform draws
// in [0,1). Goal expectations are linear in the uncapped rating gap; the
// sampled scoreline then feeds the same exchange as a real result, so the
// zero-sum guarantee holds here too.
func Simulate(eloHome, eloAway float64, params model.SimParams, uHome, uAway float64) model.MatchOutcome {
	delta := eloHome + params.HomeAdvantage - eloAway

	lambdaHome := math.Max(delta*params.GoalSlope+params.GoalIntercept, minLambda)
	lambdaAway := math.Max(-delta*params.GoalSlope+params.GoalIntercept, minLambda)

	goals := model.Score{
		Home: PoissonQuantile(uHome, lambdaHome),
		Away: PoissonQuantile(uAway, lambdaAway),
	}
	return Exchange(eloHome, eloAway, goals, params)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
