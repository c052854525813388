package main

import (
	"context"
	"flag"
	"fmt"

	"league-simulator/internal/analysis"
	"league-simulator/internal/model"
	"league-simulator/internal/montecarlo"
)

// Demo:
// - Build a small half-played season in code
// - Run the Monte Carlo aggregator over it
// - Print the rank-probability matrix and a promotion/relegation outlook
func main() {
	iterations := flag.Int("iterations", 10000, "Number of Monte Carlo replications")
	seed := flag.Int64("seed", 42, "RNG seed")
	flag.Parse()

	names := []string{"Bayern Munich", "Borussia Dortmund", "RB Leipzig", "1. FC Koeln"}
	elos := []float64{1900, 1800, 1750, 1550}

	played := func(h, a, gh, ga int) model.Fixture {
		return model.Fixture{Home: h, Away: a, Result: &model.Score{Home: gh, Away: ga}}
	}
	open := func(h, a int) model.Fixture {
		return model.Fixture{Home: h, Away: a}
	}

	season := model.Season{
		NumTeams: 4,
		Fixtures: []model.Fixture{
			played(0, 1, 2, 1),
			played(2, 3, 3, 0),
			played(1, 2, 1, 1),
			played(3, 0, 0, 4),
			open(0, 2), open(1, 3),
			open(2, 0), open(3, 1),
			open(0, 3), open(1, 2),
			open(3, 2), open(2, 1),
		},
	}

	req := montecarlo.Request{
		Season:     season,
		InitialElo: elos,
		TeamNames:  names,
		Params:     model.DefaultSimParams(),
		Iterations: *iterations,
		Seed:       *seed,
	}

	fmt.Printf("Running %d Monte Carlo replications...\n\n", *iterations)
	dist, err := montecarlo.Run(context.Background(), req)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-20s", "Team")
	for rank := 1; rank <= season.NumTeams; rank++ {
		fmt.Printf(" | %5s", fmt.Sprintf("%d.", rank))
	}
	fmt.Println(" |")
	for _, row := range dist.Rows {
		fmt.Printf("%-20s", row.Name)
		for _, p := range row.Probabilities {
			fmt.Printf(" | %4.1f%%", p*100)
		}
		fmt.Println(" |")
	}

	outlook, err := analysis.SeasonOutlook(dist, 1, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println()
	for _, o := range outlook {
		fmt.Printf("%-20s title %5.1f%%  relegation %5.1f%%\n",
			o.Name, o.TitleProb*100, o.RelegationProb*100)
	}
}
