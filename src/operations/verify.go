package operations

import (
	"fmt"

	"sloth-encode/src/spartan"
	"sloth-encode/src/types"
	"sloth-encode/src/utils"
)

// VerifyOptions contains all the parameters needed to verify a proof.
type VerifyOptions struct {
	ProofFile   string
	GenesisFile string
	Parallel    bool
}

// VerifyResult contains the results of the verify operation.
type VerifyResult struct {
	ProofFile      string
	Valid          bool
	PrimeSizeBytes int
	Rounds         uint64
	Nonce          uint64
}

// VerifyFile checks whether a proof decodes back to the expected genesis
// piece under the parameters it carries.
func VerifyFile(opts VerifyOptions) (*VerifyResult, error) {
	proof, err := utils.ReadProof(opts.ProofFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof: %v", err)
	}

	genesis, err := utils.ReadFile(opts.GenesisFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %v", err)
	}
	if len(genesis) != types.PieceSizeBytes {
		return nil, fmt.Errorf("genesis file must be exactly %d bytes, got %d", types.PieceSizeBytes, len(genesis))
	}

	s := spartan.New(genesis, int(proof.PrimeSizeBytes), types.PieceSizeBytes)

	var valid bool
	if opts.Parallel {
		valid = s.IsValidParallel(proof.Encoding[:], proof.KeyHash, proof.Nonce, int(proof.Rounds))
	} else {
		valid = s.IsValid(proof.Encoding[:], proof.KeyHash, proof.Nonce, int(proof.Rounds))
	}

	return &VerifyResult{
		ProofFile:      opts.ProofFile,
		Valid:          valid,
		PrimeSizeBytes: int(proof.PrimeSizeBytes),
		Rounds:         proof.Rounds,
		Nonce:          proof.Nonce,
	}, nil
}
