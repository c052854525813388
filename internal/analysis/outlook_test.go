package analysis

import (
	"testing"

	"league-simulator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDistribution() *model.RankDistribution {
	return &model.RankDistribution{
		Rows: []model.RankProbabilities{
			{Team: 0, Name: "A", Probabilities: []float64{0.7, 0.2, 0.1, 0.0}, ExpectedRank: 1.4},
			{Team: 1, Name: "B", Probabilities: []float64{0.2, 0.5, 0.2, 0.1}, ExpectedRank: 2.2},
			{Team: 2, Name: "C", Probabilities: []float64{0.1, 0.2, 0.4, 0.3}, ExpectedRank: 2.9},
			{Team: 3, Name: "D", Probabilities: []float64{0.0, 0.1, 0.3, 0.6}, ExpectedRank: 3.5},
		},
		Iterations: 10,
		Seed:       1,
	}
}

func TestSeasonOutlook(t *testing.T) {
	outlook, err := SeasonOutlook(sampleDistribution(), 2, 1)
	require.NoError(t, err)
	require.Len(t, outlook, 4)

	a := outlook[0]
	assert.Equal(t, "A", a.Name)
	assert.InDelta(t, 0.7, a.TitleProb, 1e-12)
	assert.InDelta(t, 0.9, a.PromotionProb, 1e-12)
	assert.InDelta(t, 0.0, a.RelegationProb, 1e-12)

	d := outlook[3]
	assert.InDelta(t, 0.0, d.TitleProb, 1e-12)
	assert.InDelta(t, 0.1, d.PromotionProb, 1e-12)
	assert.InDelta(t, 0.6, d.RelegationProb, 1e-12)
}

func TestSeasonOutlookZeroSpots(t *testing.T) {
	outlook, err := SeasonOutlook(sampleDistribution(), 0, 0)
	require.NoError(t, err)
	for _, o := range outlook {
		assert.Zero(t, o.PromotionProb)
		assert.Zero(t, o.RelegationProb)
	}
}

func TestSeasonOutlookInvalidSpots(t *testing.T) {
	var ce *model.ConfigError

	_, err := SeasonOutlook(sampleDistribution(), 3, 2)
	require.ErrorAs(t, err, &ce)

	_, err = SeasonOutlook(sampleDistribution(), -1, 0)
	require.ErrorAs(t, err, &ce)
}
