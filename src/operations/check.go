package operations

import (
	"encoding/hex"
	"fmt"
	"os"

	"sloth-encode/src/types"
	"sloth-encode/src/utils"
)

// CheckOptions contains all the parameters needed for checking proof metadata.
type CheckOptions struct {
	InputFile string
}

// CheckResult contains the metadata extracted from a proof file.
type CheckResult struct {
	InputFile      string
	Version        uint32
	PrimeSizeBytes int
	Rounds         uint64
	Nonce          uint64
	KeyHashHex     string
	TotalFileSize  int64
	EstimatedTime  string
}

// CheckFile inspects a proof file and extracts its metadata without
// attempting to decode it.
func CheckFile(opts CheckOptions) (*CheckResult, error) {
	proof, err := utils.ReadProof(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof: %v", err)
	}

	info, err := os.Stat(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to stat proof file: %v", err)
	}

	return &CheckResult{
		InputFile:      opts.InputFile,
		Version:        proof.Version,
		PrimeSizeBytes: int(proof.PrimeSizeBytes),
		Rounds:         proof.Rounds,
		Nonce:          proof.Nonce,
		KeyHashHex:     hex.EncodeToString(proof.KeyHash),
		TotalFileSize:  info.Size(),
		EstimatedTime:  estimateDecodeTime(proof.Rounds, int(proof.PrimeSizeBytes)),
	}, nil
}

// estimateDecodeTime gives a rough, hardware-independent estimate of
// sequential decode time; `sloth benchmark` measures the real rate for the
// caller's own machine.
func estimateDecodeTime(rounds uint64, primeSizeBytes int) string {
	const avgPermutesPerSecond = 20000
	blocks := types.PieceSizeBytes / primeSizeBytes
	totalPermutes := rounds * uint64(blocks)
	return "~" + utils.HumanDuration(utils.EtaForOps(totalPermutes, avgPermutesPerSecond))
}
