package data

import (
	"os"
	"path/filepath"
	"testing"

	"league-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeason = `{
  "league": "Test League",
  "teams": [
    {"name": "Alpha", "elo": 1600},
    {"name": "Beta", "elo": 1500},
    {"name": "Gamma", "elo": 1450}
  ],
  "fixtures": [
    {"home": 0, "away": 1, "home_goals": 2, "away_goals": 0},
    {"home": 1, "away": 2},
    {"home": 2, "away": 0}
  ]
}`

func TestLoadSeasonJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeason), 0o644))

	f, err := LoadSeasonJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "Test League", f.League)
	require.Len(t, f.Teams, 3)
	require.Len(t, f.Fixtures, 3)

	season, elos, names, err := f.Season()
	require.NoError(t, err)
	assert.Equal(t, 3, season.NumTeams)
	assert.Equal(t, []float64{1600, 1500, 1450}, elos)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names)

	require.NotNil(t, season.Fixtures[0].Result)
	assert.Equal(t, model.Score{Home: 2, Away: 0}, *season.Fixtures[0].Result)
	assert.Nil(t, season.Fixtures[1].Result)
	assert.Equal(t, 2, season.Unplayed())
}

func TestLoadSeasonJSONMissingFile(t *testing.T) {
	_, err := LoadSeasonJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadSeasonJSONBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadSeasonJSON(path)
	assert.Error(t, err)
}

func TestSeasonRejectsHalfFilledResult(t *testing.T) {
	goals := 1
	f := &SeasonFile{
		Teams: []TeamSeed{{Name: "A", Elo: 1500}, {Name: "B", Elo: 1500}},
		Fixtures: []FixtureRecord{
			{Home: 0, Away: 1, HomeGoals: &goals},
		},
	}

	_, _, _, err := f.Season()
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSeasonEmptyFile(t *testing.T) {
	f := &SeasonFile{}
	season, elos, names, err := f.Season()
	require.NoError(t, err)
	assert.Zero(t, season.NumTeams)
	assert.Empty(t, elos)
	assert.Empty(t, names)
}
