package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sloth-encode/src/operations"
	"sloth-encode/src/types"
	"sloth-encode/src/utils"
)

// BenchmarkCommand handles the benchmark subcommand
func BenchmarkCommand(args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)

	var (
		duration       = fs.Duration("duration", 10*time.Second, "How long to run each sample")
		samples        = fs.Int("samples", 3, "Number of benchmark samples to take")
		primeSizeBytes = fs.Int("prime-size", 32, "Prime size in bytes (B) to benchmark against")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s benchmark [--duration DURATION] [--samples COUNT] [--prime-size B]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBenchmark the forward permutation to estimate achievable round counts\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s benchmark\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s benchmark --duration 30s --samples 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking forward permutation performance...\n")
	fmt.Printf("Duration per sample: %v\n", *duration)
	fmt.Printf("Number of samples: %d\n\n", *samples)

	result, err := operations.RunBenchmark(operations.BenchmarkOptions{
		Duration:       *duration,
		Samples:        *samples,
		PrimeSizeBytes: *primeSizeBytes,
	})
	if err != nil {
		return err
	}

	for i, sample := range result.Samples {
		fmt.Printf("Sample %d/%d:\n", i+1, len(result.Samples))
		fmt.Printf("  Operations: %d\n", sample.Operations)
		fmt.Printf("  Time: %v\n", sample.Elapsed)
		fmt.Printf("  Rate: %.0f ops/sec\n\n", sample.OpsPerSecond)
	}

	fmt.Printf("=== Benchmark Results ===\n")
	fmt.Printf("Average rate: %.0f permutations/second\n", result.AvgOpsPerSecond)
	fmt.Printf("Total operations: %d\n", result.TotalOps)
	fmt.Printf("Total time: %v\n\n", result.TotalTime)

	fmt.Printf("=== Time Estimates ===\n")
	for _, est := range result.TimeEstimates {
		fmt.Printf("Rounds %s: %s\n", formatNumber(est.Rounds), utils.HumanDuration(est.EstimatedTime))
	}

	fmt.Printf("\nTo encode with a specific delay, use:\n")
	fmt.Printf("  sloth encode --genesis piece.bin --output proof.bin --rounds N\n")
	blocks := types.PieceSizeBytes / *primeSizeBytes
	fmt.Printf("\nWhere N = desired_seconds x %.0f (%d permutations per round)\n", result.AvgOpsPerSecond/float64(blocks), blocks)

	return nil
}
