package operations

import (
	"fmt"
	"math/big"
	"time"

	"sloth-encode/src/primefield"
	"sloth-encode/src/types"
)

// BenchmarkOptions contains all the parameters needed for benchmarking.
type BenchmarkOptions struct {
	Duration       time.Duration
	Samples        int
	PrimeSizeBytes int
}

// BenchmarkSample represents a single benchmark sample.
type BenchmarkSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// BenchmarkResult contains the results of the benchmark operation.
type BenchmarkResult struct {
	Samples         []BenchmarkSample
	TotalOps        uint64
	TotalTime       time.Duration
	AvgOpsPerSecond float64
	TimeEstimates   []TimeEstimate
}

// TimeEstimate represents an estimated time for a given round count.
type TimeEstimate struct {
	Rounds        uint64
	EstimatedTime time.Duration
}

// RunBenchmark measures how many forward permutations (the operation an
// encoder must run sequentially) this machine can perform per second, then
// extrapolates wall-clock time for a handful of representative round counts.
func RunBenchmark(opts BenchmarkOptions) (*BenchmarkResult, error) {
	p := primefield.LargestPrime(opts.PrimeSizeBytes)
	e := primefield.Exponent(p)

	var samples []BenchmarkSample
	var totalOps uint64
	var totalTime time.Duration

	for sample := 1; sample <= opts.Samples; sample++ {
		ops, elapsed, err := benchmarkPermute(p, e, opts.Duration)
		if err != nil {
			return nil, fmt.Errorf("benchmark sample %d failed: %v", sample, err)
		}
		opsPerSecond := float64(ops) / elapsed.Seconds()

		samples = append(samples, BenchmarkSample{
			Operations:   ops,
			Elapsed:      elapsed,
			OpsPerSecond: opsPerSecond,
		})

		totalOps += ops
		totalTime += elapsed
	}

	avgOpsPerSecond := float64(totalOps) / totalTime.Seconds()

	roundCounts := []uint64{1000, 100000, 10000000, 1000000000}

	// Each round is one layer: one permutation per block of the piece.
	blocks := uint64(types.PieceSizeBytes / opts.PrimeSizeBytes)

	var timeEstimates []TimeEstimate
	for _, rounds := range roundCounts {
		seconds := float64(rounds*blocks) / avgOpsPerSecond
		timeEstimates = append(timeEstimates, TimeEstimate{
			Rounds:        rounds,
			EstimatedTime: time.Duration(seconds * float64(time.Second)),
		})
	}

	return &BenchmarkResult{
		Samples:         samples,
		TotalOps:        totalOps,
		TotalTime:       totalTime,
		AvgOpsPerSecond: avgOpsPerSecond,
		TimeEstimates:   timeEstimates,
	}, nil
}

// benchmarkPermute repeatedly permutes a fixed field element for the given
// duration, counting how many calls complete.
func benchmarkPermute(p, e *big.Int, duration time.Duration) (uint64, time.Duration, error) {
	x := big.NewInt(12345)
	x.Mod(x, p)

	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		for i := 0; i < 1000; i++ {
			y, err := primefield.Permute(x, p, e)
			if err != nil {
				return 0, 0, err
			}
			x = y
			operations++
		}
	}

	return operations, time.Since(start), nil
}
