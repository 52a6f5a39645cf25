package cmd

import (
	"flag"
	"fmt"
	"os"

	"sloth-encode/src/operations"
	"sloth-encode/src/utils"
)

// EncodeCommand handles the encode subcommand
func EncodeCommand(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)

	var (
		genesisFile    = fs.String("genesis", "", "Genesis piece to encode, exactly 4096 bytes (required)")
		outputFile     = fs.String("output", "", "Output proof file (required)")
		primeSizeBytes = fs.Int("prime-size", 32, "Prime size in bytes (B); must evenly divide 4096")
		rounds         = fs.Uint64("rounds", 0, "Number of sequential layers to apply (required)")
		nonce          = fs.Uint64("nonce", 0, "Nonce to mix into the IV (default: random)")
		keyInput       = fs.String("key", "", "Passphrase or @file:path used to derive the key hash")
		keyHashHex     = fs.String("key-hash", "", "Key hash as hex, exactly --prime-size bytes (alternative to --key)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s encode --genesis FILE --output FILE --rounds N [--key KEY | --key-hash HEX] [--nonce N] [--prime-size B]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nApply the time-asymmetric permutation to a genesis piece and write a proof\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s encode --genesis piece.bin --output proof.bin --rounds 100000 --key \"passphrase\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s encode --genesis piece.bin --output proof.bin --rounds 100000 --key-hash %s\n", os.Args[0], exampleHex)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *genesisFile == "" {
		fs.Usage()
		return fmt.Errorf("--genesis is required")
	}
	if *outputFile == "" {
		fs.Usage()
		return fmt.Errorf("--output is required")
	}
	if *rounds == 0 {
		fs.Usage()
		return fmt.Errorf("--rounds is required and must be > 0")
	}

	var nonceArg uint64
	haveNonce := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "nonce" {
			haveNonce = true
			nonceArg = *nonce
		}
	})

	fmt.Printf("Reading genesis piece: %s\n", *genesisFile)
	fmt.Printf("Encoding (rounds: %d, prime size: %d bytes)...\n", *rounds, *primeSizeBytes)

	meter := utils.NewLayerMeter(*rounds)
	result, err := operations.EncodeFile(operations.EncodeOptions{
		GenesisFile:    *genesisFile,
		OutputFile:     *outputFile,
		PrimeSizeBytes: *primeSizeBytes,
		Rounds:         *rounds,
		Nonce:          nonceArg,
		HaveNonce:      haveNonce,
		KeyInput:       *keyInput,
		KeyHashHex:     *keyHashHex,
		OnLayer:        func(completed int) { meter.Set(uint64(completed)) },
	})
	if err != nil {
		return err
	}
	meter.Done()

	fmt.Printf("Encoding complete!\n")
	fmt.Printf("Genesis file: %s\n", result.GenesisFile)
	fmt.Printf("Proof file:   %s (%d byte encoding)\n", result.OutputFile, result.EncodingSize)
	fmt.Printf("Rounds:       %d\n", result.Rounds)
	fmt.Printf("Nonce:        %d\n", result.Nonce)

	return nil
}

const exampleHex = "0011223344556677889900112233445566778899001122334455667788990011"
