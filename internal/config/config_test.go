package config

import (
	"os"
	"path/filepath"
	"testing"

	"league-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "simulation:\n  seed: 7\n")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultSimParams(), c.ToSimParams())
	assert.Equal(t, model.DefaultIterations, c.Simulation.Iterations)
	assert.Equal(t, int64(7), c.Simulation.Seed)
	assert.Equal(t, 0, c.Simulation.Workers)
}

func TestLoadExplicitValuesSurviveDefaults(t *testing.T) {
	content := `simulation:
  mod_factor: 30
  home_advantage: 50
  iterations: 2500
  workers: 2
`
	path := writeFile(t, t.TempDir(), "config.yaml", content)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, c.Simulation.ModFactor)
	assert.Equal(t, 50.0, c.Simulation.HomeAdvantage)
	assert.Equal(t, 2500, c.Simulation.Iterations)
	assert.Equal(t, 2, c.Simulation.Workers)
	// Unset constants still get the calibrated defaults.
	assert.Equal(t, model.DefaultSimParams().GoalSlope, c.Simulation.GoalSlope)
}

func TestLoadLeagueFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "league.yaml", `league:
  name: "2. Bundesliga"
  teams: ["A", "B", "C"]
  adj_points: [0, -3, 0]
  promotion_spots: 2
  relegation_spots: 1
`)
	// The main config points at the league file by a path relative to the
	// config directory and overrides one field.
	path := writeFile(t, dir, "config.yaml", `league_file: league.yaml
league:
  promotion_spots: 1
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2. Bundesliga", c.League.Name)
	assert.Equal(t, []string{"A", "B", "C"}, c.League.Teams)
	assert.Equal(t, 1, c.League.PromotionSpots)
	assert.Equal(t, 1, c.League.RelegationSpots)
	assert.Equal(t, model.Adjustments{Points: []int{0, -3, 0}}, c.ToAdjustments())
}

func TestLoadMissingLeagueFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "league_file: nope.yaml\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative iterations", "simulation:\n  iterations: -1\n"},
		{"negative workers", "simulation:\n  workers: -1\n"},
		{"adjustment length mismatch", "league:\n  teams: [\"A\", \"B\"]\n  adj_points: [1]\n"},
		{"spots exceed teams", "league:\n  teams: [\"A\", \"B\"]\n  promotion_spots: 2\n  relegation_spots: 1\n"},
		{"not yaml", "{{{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", tc.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMergeLeague(t *testing.T) {
	base := LeagueConfig{
		Name:            "Base",
		Teams:           []string{"A", "B"},
		AdjPoints:       []int{0, 0},
		PromotionSpots:  1,
		RelegationSpots: 1,
	}
	override := LeagueConfig{
		AdjPoints:      []int{0, -6},
		PromotionSpots: 2,
	}

	merged := MergeLeague(base, override)
	assert.Equal(t, "Base", merged.Name)
	assert.Equal(t, []string{"A", "B"}, merged.Teams)
	assert.Equal(t, []int{0, -6}, merged.AdjPoints)
	assert.Equal(t, 2, merged.PromotionSpots)
	assert.Equal(t, 1, merged.RelegationSpots)
}
