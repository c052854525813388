package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"league-simulator/internal/analysis"
	"league-simulator/internal/config"
	"league-simulator/internal/data"
	"league-simulator/internal/model"
	"league-simulator/internal/montecarlo"
	"league-simulator/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "table":
		cmdTable(os.Args[2:])
	case "baseline":
		cmdBaseline(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --season season.json [--config config.yaml] [--iterations N] [--seed S] [--out results/dist.csv]")
	fmt.Println("  cli table    --season season.json [--config config.yaml]")
	fmt.Println("  cli baseline --season season.json [--k 4]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints per-team final-rank probabilities from Monte Carlo replications")
	fmt.Println("  - table prints the current standings from played fixtures only")
	fmt.Println("  - baseline prints the mean bottom-k final ELO, the seed rating for a new team")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	seasonPath := fs.String("season", "season.json", "Path to season JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	iterations := fs.Int("iterations", 0, "Replication count (0 = config/default)")
	seed := fs.Int64("seed", 0, "RNG seed")
	workers := fs.Int("workers", 0, "Worker pool size (0 = GOMAXPROCS)")
	outPath := fs.String("out", "", "Optional path to write distribution CSV")
	_ = fs.Parse(args)

	season, elos, names := loadSeason(*seasonPath)

	req := montecarlo.Request{
		Season:     season,
		InitialElo: elos,
		TeamNames:  names,
		Params:     model.DefaultSimParams(),
		Iterations: model.DefaultIterations,
		Seed:       *seed,
		Workers:    *workers,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		req.Params = cfg.ToSimParams()
		req.Adjustments = cfg.ToAdjustments()
		req.Iterations = cfg.Simulation.Iterations
		if *seed == 0 {
			req.Seed = cfg.Simulation.Seed
		}
		if *workers == 0 {
			req.Workers = cfg.Simulation.Workers
		}
	}
	if *iterations > 0 {
		req.Iterations = *iterations
	}

	dist, err := montecarlo.Run(context.Background(), req)
	if err != nil {
		panic(err)
	}

	printDistribution(dist)
	for _, w := range dist.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := montecarlo.WriteDistributionCSV(*outPath, dist); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(dist.Rows), *outPath)
	}
}

func cmdTable(args []string) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	seasonPath := fs.String("season", "season.json", "Path to season JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional, for adjustments)")
	_ = fs.Parse(args)

	season, _, names := loadSeason(*seasonPath)

	var adj model.Adjustments
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		adj = cfg.ToAdjustments()
	}

	table := simulation.ComputeTable(season.Fixtures, season.NumTeams, adj)
	printTable(names, table)
}

func cmdBaseline(args []string) {
	fs := flag.NewFlagSet("baseline", flag.ExitOnError)
	seasonPath := fs.String("season", "season.json", "Path to season JSON")
	k := fs.Int("k", analysis.DefaultBaselineTeams, "Number of bottom teams to average")
	_ = fs.Parse(args)

	season, elos, _ := loadSeason(*seasonPath)

	baseline, err := analysis.RelegationBaseline(season, elos, model.DefaultSimParams(), *k)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Relegation baseline (bottom %d): %.1f\n", *k, baseline)
}

func loadSeason(path string) (model.Season, []float64, []string) {
	file, err := data.LoadSeasonJSON(path)
	if err != nil {
		panic(err)
	}
	season, elos, names, err := file.Season()
	if err != nil {
		panic(err)
	}
	return season, elos, names
}

func printDistribution(dist *model.RankDistribution) {
	n := len(dist.Rows)
	fmt.Printf("Rank probabilities over %d replications (seed %d)\n", dist.Iterations, dist.Seed)
	fmt.Printf("%-20s %8s", "team", "exp")
	for rank := 1; rank <= n; rank++ {
		fmt.Printf(" %6s", fmt.Sprintf("p%d", rank))
	}
	fmt.Println()
	for _, row := range dist.Rows {
		fmt.Printf("%-20s %8.2f", row.Name, row.ExpectedRank)
		for _, p := range row.Probabilities {
			fmt.Printf(" %5.1f%%", p*100)
		}
		fmt.Println()
	}
}

func printTable(names []string, table model.Table) {
	fmt.Printf("%-4s %-20s %3s %3s %3s %3s %4s %4s %4s %4s\n",
		"pos", "team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	for _, row := range table {
		fmt.Printf("%-4d %-20s %3d %3d %3d %3d %4d %4d %4d %4d\n",
			row.Rank,
			names[row.Team],
			row.Played,
			row.Won,
			row.Drawn,
			row.Lost,
			row.GoalsFor,
			row.GoalsAgainst,
			row.GoalDiff,
			row.Points,
		)
	}
}
