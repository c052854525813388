package model

// Team is one club in a division. Index is the team's position in every
// per-team vector handed to the engine (ELO, adjustments, names) and never
// changes within a season.
type Team struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Elo   float64 `json:"elo"`
}

// Adjustments are additive per-team corrections applied only when the table
// is computed. The classic use is docking a reserve team enough points to
// keep it out of the promotion places without touching its real results.
//
// A nil vector means "no adjustment" for every team. GoalDiff is accepted
// for interface compatibility but the table always recomputes goal
// difference from the adjusted for/against totals; a GoalDiff vector that
// disagrees with Goals-GoalsAgainst is reported as a warning upstream.
type Adjustments struct {
	Points       []int `json:"points,omitempty"`
	Goals        []int `json:"goals,omitempty"`
	GoalsAgainst []int `json:"goals_against,omitempty"`
	GoalDiff     []int `json:"goal_diff,omitempty"`
}

func at(v []int, i int) int {
	if v == nil {
		return 0
	}
	return v[i]
}

// PointsFor returns the points adjustment for team i (0 when unset).
func (a Adjustments) PointsFor(i int) int { return at(a.Points, i) }

// GoalsFor returns the goals-for adjustment for team i.
func (a Adjustments) GoalsFor(i int) int { return at(a.Goals, i) }

// GoalsAgainstFor returns the goals-against adjustment for team i.
func (a Adjustments) GoalsAgainstFor(i int) int { return at(a.GoalsAgainst, i) }

// Validate checks that every supplied vector has one entry per team.
func (a Adjustments) Validate(numTeams int) error {
	check := func(field string, v []int) error {
		if v != nil && len(v) != numTeams {
			return &ConfigError{
				Field:   field,
				Message: "adjustment vector length must equal team count",
			}
		}
		return nil
	}
	if err := check("adjustments.points", a.Points); err != nil {
		return err
	}
	if err := check("adjustments.goals", a.Goals); err != nil {
		return err
	}
	if err := check("adjustments.goals_against", a.GoalsAgainst); err != nil {
		return err
	}
	return check("adjustments.goal_diff", a.GoalDiff)
}

// Inconsistencies lists the teams whose supplied GoalDiff adjustment does
// not equal Goals-GoalsAgainst. The table ignores the supplied value either
// way, so these are warnings rather than errors.
func (a Adjustments) Inconsistencies() []int {
	if a.GoalDiff == nil {
		return nil
	}
	var teams []int
	for i := range a.GoalDiff {
		if a.GoalDiff[i] != at(a.Goals, i)-at(a.GoalsAgainst, i) {
			teams = append(teams, i)
		}
	}
	return teams
}
