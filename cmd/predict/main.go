package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"drawcast/adapters/ingest"
	"drawcast/adapters/rng"
	"drawcast/adapters/stats/engine"
)

// One-shot prediction from a history file, no database required:
//
//	predict -history draws.csv [-seed 42] [-beta 0.05] [-alpha 1.0]
func main() {
	historyFile := flag.String("history", "", "xlsx/csv draw history file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	alpha := flag.Float64("alpha", 1.0, "Laplace smoothing strength")
	beta := flag.Float64("beta", 0.05, "co-occurrence bias strength")
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.Alpha = *alpha
	cfg.Beta = *beta

	predictor, err := engine.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var history *ingest.ImportResult
	if *historyFile != "" {
		history, err = ingest.NewHistoryReader(*historyFile).ReadHistory()
		if err != nil {
			log.Fatalf("Failed to read history: %v", err)
		}
	} else {
		history = &ingest.ImportResult{}
		fmt.Fprintln(os.Stderr, "No history file given; sampling from the uniform regime")
	}

	ctx := context.Background()
	stream, err := rng.NewAdapter(*seed).Stream(ctx, "", "predict", *seed)
	if err != nil {
		log.Fatalf("Failed to create RNG stream: %v", err)
	}

	result, err := predictor.Predict(ctx, history.Records, stream)
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}

	numbers, stars := result.DrawSet().EncodeParts()
	fmt.Printf("numbers: %s\nstars:   %s\n", numbers, stars)
}
