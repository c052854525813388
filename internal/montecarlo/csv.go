package montecarlo

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"league-simulator/internal/model"
)

// WriteDistributionCSV writes one row per team: name, expected rank, then
// the probability of each final position.
func WriteDistributionCSV(path string, dist *model.RankDistribution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	n := 0
	if len(dist.Rows) > 0 {
		n = len(dist.Rows[0].Probabilities)
	}

	header := []string{"team", "expected_rank"}
	for rank := 1; rank <= n; rank++ {
		header = append(header, fmt.Sprintf("p%d", rank))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range dist.Rows {
		rec := []string{row.Name, fmtFloat(row.ExpectedRank)}
		for _, p := range row.Probabilities {
			rec = append(rec, fmtFloat(p))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
