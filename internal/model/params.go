package model

// SimParams are the tuning constants of the match model. The defaults are
// the values the rating history was calibrated against; changing them
// invalidates stored ELO seeds, so overrides are rare.
type SimParams struct {
	// ModFactor is the learning rate: how far one result moves the ratings.
	ModFactor float64 `json:"mod_factor" yaml:"mod_factor"`
	// HomeAdvantage is added to the home side's ELO before computing win
	// probability and goal expectations.
	HomeAdvantage float64 `json:"home_advantage" yaml:"home_advantage"`
	// GoalSlope and GoalIntercept map an ELO delta to an expected goal
	// count for each side (linear regression over historic results).
	GoalSlope     float64 `json:"goal_slope" yaml:"goal_slope"`
	GoalIntercept float64 `json:"goal_intercept" yaml:"goal_intercept"`
}

// DefaultIterations is the replication count used when a request does not
// specify one.
const DefaultIterations = 10000

// DefaultSimParams returns the calibrated match-model constants.
func DefaultSimParams() SimParams {
	return SimParams{
		ModFactor:     20.0,
		HomeAdvantage: 65.0,
		GoalSlope:     0.0017854953143549,
		GoalIntercept: 1.3218390804597700,
	}
}
