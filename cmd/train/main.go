// train: fits a deep binary classifier on a CSV dataset
//
// Usage:
//
//	train --data=samples.csv --layers="4 1" --iterations=5000 --alpha=0.05 --graph=cost.png
//
// Each CSV row holds the input features followed by a 0/1 label. Without
// --data the trainer uses a small synthetic two-feature dataset.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"dnn/chart"
	"dnn/m"
	"dnn/utils"
)

var (
	dataPath   = flag.String("data", "", "CSV file of samples: features..., label")
	layers     = flag.String("layers", "4 1", "Nodes per layer, output layer last")
	iterations = flag.Int("iterations", 5000, "Number of training iterations")
	alpha      = flag.Float64("alpha", 0.05, "Learning rate")
	step       = flag.Int("step", 100, "Report the cost every step iterations")
	verbose    = flag.Bool("verbose", true, "Verbose output")
	graphPath  = flag.String("graph", "", "Write the training cost chart to this file")
	seed       = flag.Int64("seed", 42, "Random seed")
	normalize  = flag.Bool("normalize", false, "Standardize every feature before training")
	samples    = flag.Int("samples", 200, "Number of synthetic samples when --data is empty")
)

func main() {
	flag.Parse()

	arch, err := utils.ParseArchitecture(*layers)
	if err != nil {
		log.Fatalf("Invalid --layers: %v", err)
	}
	cfg := utils.Config{
		Architecture: arch,
		DataPath:     *dataPath,
		Iterations:   *iterations,
		Alpha:        *alpha,
		Step:         *step,
		Verbose:      *verbose,
		GraphPath:    *graphPath,
		Seed:         *seed,
		Normalize:    *normalize,
	}
	if err := utils.ValidateConfig(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	utils.Verbose = cfg.Verbose

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Layers:        %v\n", cfg.Architecture)
	fmt.Printf("  Iterations:    %d\n", cfg.Iterations)
	fmt.Printf("  Learning Rate: %.4f\n", cfg.Alpha)
	fmt.Printf("  Seed:          %d\n", cfg.Seed)
	fmt.Println()

	stats := &utils.TimingStats{}
	totalStart := time.Now()
	src := rand.NewSource(uint64(cfg.Seed))

	start := time.Now()
	lines, err := loadLines(cfg, src)
	if err != nil {
		log.Fatalf("Failed to load samples: %v", err)
	}
	if cfg.Normalize {
		lines = m.NormalizeLines(lines, m.CalculateStdDev(lines), m.CalculateMean(lines))
	}
	X, Y := lines.Matrices()
	if X == nil {
		log.Fatalf("No samples in %s", cfg.DataPath)
	}
	stats.DataLoadingTime = time.Since(start)
	nx, count := X.Dims()
	fmt.Printf("Loaded %d samples with %d features\n", count, nx)

	start = time.Now()
	net, err := m.NewNetwork(nx, cfg.Architecture, src)
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	stats.ModelInitTime = time.Since(start)

	start = time.Now()
	_, initialCost := net.Evaluate(X, Y)
	stats.EvaluationTime = time.Since(start)
	fmt.Printf("Initial cost: %v\n\n", initialCost)

	opts := m.TrainOptions{
		Iterations: cfg.Iterations,
		Alpha:      cfg.Alpha,
		Verbose:    cfg.Verbose,
		Step:       cfg.Step,
		Progress:   os.Stdout,
	}
	if cfg.GraphPath != "" {
		opts.Graph = true
		opts.Chart = chart.File{Path: cfg.GraphPath}
	}

	start = time.Now()
	prediction, cost, err := net.Train(X, Y, opts)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	stats.TrainingTime = time.Since(start)

	fmt.Printf("\nFinal cost: %v\n", cost)
	fmt.Printf("Accuracy: %.2f%%\n", accuracy(prediction, Y))
	if cfg.GraphPath != "" {
		fmt.Printf("Cost chart written to %s\n", cfg.GraphPath)
	}

	stats.TotalTime = time.Since(totalStart)
	utils.PrintTimingStats(stats, cfg.Iterations)
}

func loadLines(cfg utils.Config, src rand.Source) (m.Lines, error) {
	if cfg.DataPath == "" {
		return generateData(*samples, src), nil
	}
	data, err := os.ReadFile(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	nx := featureCount(data)
	if nx < 1 {
		return nil, fmt.Errorf("%s: expected at least one feature column before the label", cfg.DataPath)
	}
	return m.GetLines(bytes.NewReader(data), nx)
}

// featureCount is the number of columns in the first non-blank row minus the label.
func featureCount(data []byte) int {
	for _, row := range strings.Split(string(data), "\n") {
		if row = strings.TrimSpace(row); row != "" {
			return strings.Count(row, ",")
		}
	}
	return 0
}

// generateData samples points in [-1, 1]^2 labelled 1 outside the unit
// circle of radius 0.6.
func generateData(n int, src rand.Source) m.Lines {
	rng := rand.New(src)
	lines := make(m.Lines, n)
	for i := range lines {
		x1 := rng.Float64()*2 - 1
		x2 := rng.Float64()*2 - 1
		label := 0.0
		if x1*x1+x2*x2 > 0.36 {
			label = 1
		}
		lines[i] = m.Line{Inputs: []float64{x1, x2}, Label: label}
	}
	return lines
}

func accuracy(prediction, Y mat.Matrix) float64 {
	_, c := Y.Dims()
	var correct float64
	for j := 0; j < c; j++ {
		if prediction.At(0, j) == Y.At(0, j) {
			correct++
		}
	}
	return 100 * correct / float64(c)
}
