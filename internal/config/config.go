package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"league-simulator/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load league settings from a separate YAML (e.g.
	// examples/leagues/*.yaml). If both LeagueFile and League are provided,
	// League overrides LeagueFile.
	LeagueFile string           `yaml:"league_file"`
	League     LeagueConfig     `yaml:"league"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// LeagueConfig describes one division: its teams and the table adjustments
// that encode league rules (typically second teams barred from promotion).
type LeagueConfig struct {
	Name            string   `yaml:"name"`
	Teams           []string `yaml:"teams"`
	AdjPoints       []int    `yaml:"adj_points"`
	AdjGoals        []int    `yaml:"adj_goals"`
	AdjGoalsAgainst []int    `yaml:"adj_goals_against"`
	AdjGoalDiff     []int    `yaml:"adj_goal_diff"`
	PromotionSpots  int      `yaml:"promotion_spots"`
	RelegationSpots int      `yaml:"relegation_spots"`
}

// SimulationConfig holds match-model constants and run sizing. Zero fields
// fall back to the calibrated defaults.
type SimulationConfig struct {
	ModFactor     float64 `yaml:"mod_factor"`
	HomeAdvantage float64 `yaml:"home_advantage"`
	GoalSlope     float64 `yaml:"goal_slope"`
	GoalIntercept float64 `yaml:"goal_intercept"`
	Iterations    int     `yaml:"iterations"`
	Workers       int     `yaml:"workers"`
	Seed          int64   `yaml:"seed"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or apply
// defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If league_file is set, load it and merge in any explicit overrides
	// from c.League.
	if c.LeagueFile != "" {
		leaguePath := c.LeagueFile
		if !filepath.IsAbs(leaguePath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), leaguePath)
			if _, err := os.Stat(cand); err == nil {
				leaguePath = cand
			}
		}
		loaded, err := loadLeagueFile(leaguePath)
		if err != nil {
			return nil, err
		}
		c.League = MergeLeague(loaded, c.League)
	}
	return &c, nil
}

// applyDefaults treats a zero field as unset, like MergeLeague. Zero is
// never a meaningful value for the calibrated constants or the iteration
// count, so nothing expressible is lost.
func (c *Config) applyDefaults() {
	def := model.DefaultSimParams()
	if c.Simulation.ModFactor == 0 {
		c.Simulation.ModFactor = def.ModFactor
	}
	if c.Simulation.HomeAdvantage == 0 {
		c.Simulation.HomeAdvantage = def.HomeAdvantage
	}
	if c.Simulation.GoalSlope == 0 {
		c.Simulation.GoalSlope = def.GoalSlope
	}
	if c.Simulation.GoalIntercept == 0 {
		c.Simulation.GoalIntercept = def.GoalIntercept
	}
	if c.Simulation.Iterations == 0 {
		c.Simulation.Iterations = model.DefaultIterations
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.Iterations <= 0 {
		return errors.New("simulation.iterations must be positive")
	}
	if c.Simulation.Workers < 0 {
		return errors.New("simulation.workers must be >= 0")
	}
	n := len(c.League.Teams)
	if n > 0 {
		if err := c.ToAdjustments().Validate(n); err != nil {
			return fmt.Errorf("league config invalid: %w", err)
		}
		if c.League.PromotionSpots+c.League.RelegationSpots > n {
			return errors.New("league promotion + relegation spots exceed team count")
		}
	}
	return nil
}

// ToSimParams extracts the match-model constants.
func (c *Config) ToSimParams() model.SimParams {
	return model.SimParams{
		ModFactor:     c.Simulation.ModFactor,
		HomeAdvantage: c.Simulation.HomeAdvantage,
		GoalSlope:     c.Simulation.GoalSlope,
		GoalIntercept: c.Simulation.GoalIntercept,
	}
}

// ToAdjustments extracts the per-team adjustment vectors.
func (c *Config) ToAdjustments() model.Adjustments {
	return model.Adjustments{
		Points:       c.League.AdjPoints,
		Goals:        c.League.AdjGoals,
		GoalsAgainst: c.League.AdjGoalsAgainst,
		GoalDiff:     c.League.AdjGoalDiff,
	}
}

type leagueFileWrapper struct {
	League LeagueConfig `yaml:"league"`
}

func loadLeagueFile(path string) (LeagueConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LeagueConfig{}, err
	}
	var w leagueFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return LeagueConfig{}, err
	}
	return w.League, nil
}

// MergeLeague overlays non-zero fields from override onto base. This is
// used when loading a league file and then applying overrides from the
// main config or a request.
func MergeLeague(base, override LeagueConfig) LeagueConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if len(override.Teams) > 0 {
		out.Teams = override.Teams
	}
	if override.AdjPoints != nil {
		out.AdjPoints = override.AdjPoints
	}
	if override.AdjGoals != nil {
		out.AdjGoals = override.AdjGoals
	}
	if override.AdjGoalsAgainst != nil {
		out.AdjGoalsAgainst = override.AdjGoalsAgainst
	}
	if override.AdjGoalDiff != nil {
		out.AdjGoalDiff = override.AdjGoalDiff
	}
	if override.PromotionSpots != 0 {
		out.PromotionSpots = override.PromotionSpots
	}
	if override.RelegationSpots != 0 {
		out.RelegationSpots = override.RelegationSpots
	}
	return out
}
