package analysis

import (
	"fmt"

	"league-simulator/internal/model"
)

// TeamOutlook condenses one team's rank distribution into the questions a
// league report actually asks: title, promotion, relegation.
type TeamOutlook struct {
	Team           int     `json:"team"`
	Name           string  `json:"name"`
	ExpectedRank   float64 `json:"expected_rank"`
	TitleProb      float64 `json:"title_prob"`
	PromotionProb  float64 `json:"promotion_prob"`  // finish within the promotion spots
	RelegationProb float64 `json:"relegation_prob"` // finish within the relegation spots
}

// SeasonOutlook sums each team's rank probabilities over the promotion and
// relegation position groups. Rows keep the distribution's expected-rank
// ordering.
func SeasonOutlook(dist *model.RankDistribution, promotionSpots, relegationSpots int) ([]TeamOutlook, error) {
	n := len(dist.Rows)
	if promotionSpots < 0 || relegationSpots < 0 || promotionSpots+relegationSpots > n {
		return nil, &model.ConfigError{
			Field:   "spots",
			Message: fmt.Sprintf("promotion %d + relegation %d spots exceed %d teams", promotionSpots, relegationSpots, n),
		}
	}

	out := make([]TeamOutlook, n)
	for i, row := range dist.Rows {
		o := TeamOutlook{
			Team:         row.Team,
			Name:         row.Name,
			ExpectedRank: row.ExpectedRank,
			TitleProb:    row.Probability(1),
		}
		for rank := 1; rank <= promotionSpots; rank++ {
			o.PromotionProb += row.Probability(rank)
		}
		for rank := n - relegationSpots + 1; rank <= n; rank++ {
			o.RelegationProb += row.Probability(rank)
		}
		out[i] = o
	}
	return out, nil
}
