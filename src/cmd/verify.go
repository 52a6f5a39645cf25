package cmd

import (
	"flag"
	"fmt"
	"os"

	"sloth-encode/src/operations"
)

// VerifyCommand handles the verify subcommand
func VerifyCommand(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)

	var (
		proofFile   = fs.String("proof", "", "Proof file to verify (required)")
		genesisFile = fs.String("genesis", "", "Genesis piece the proof claims to decode back to (required)")
		parallel    = fs.Bool("parallel", false, "Decode each layer's blocks concurrently")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s verify --proof FILE --genesis FILE [--parallel]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDecode a proof and check it matches the genesis piece\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s verify --proof proof.bin --genesis piece.bin\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s verify --proof proof.bin --genesis piece.bin --parallel\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *proofFile == "" {
		fs.Usage()
		return fmt.Errorf("--proof is required")
	}
	if *genesisFile == "" {
		fs.Usage()
		return fmt.Errorf("--genesis is required")
	}

	result, err := operations.VerifyFile(operations.VerifyOptions{
		ProofFile:   *proofFile,
		GenesisFile: *genesisFile,
		Parallel:    *parallel,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Proof file:    %s\n", result.ProofFile)
	fmt.Printf("Prime size:    %d bytes\n", result.PrimeSizeBytes)
	fmt.Printf("Rounds:        %d\n", result.Rounds)
	fmt.Printf("Nonce:         %d\n", result.Nonce)
	if result.Valid {
		fmt.Printf("Result:        VALID\n")
	} else {
		fmt.Printf("Result:        INVALID\n")
		os.Exit(1)
	}

	return nil
}
