package cmd

import (
	"flag"
	"fmt"
	"os"

	"sloth-encode/src/operations"
)

// SealCommand handles the seal subcommand
func SealCommand(args []string) error {
	fs := flag.NewFlagSet("seal", flag.ExitOnError)

	var (
		inputFile  = fs.String("input", "", "File to seal (required)")
		outputFile = fs.String("output", "", "Output file (default: input file + .sealed)")
		keyInput   = fs.String("key", "", "Passphrase or @file:path (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seal --input FILE --key KEY [--output FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEncrypt a local file (a cached genesis piece, key material) at rest\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seal --input piece.bin --key \"passphrase\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inputFile == "" {
		fs.Usage()
		return fmt.Errorf("--input is required")
	}
	if *keyInput == "" {
		fs.Usage()
		return fmt.Errorf("--key is required")
	}
	if *outputFile == "" {
		*outputFile = *inputFile + ".sealed"
	}

	result, err := operations.SealFile(operations.SealOptions{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
		KeyInput:   *keyInput,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Sealed %s -> %s (%d bytes)\n", result.InputFile, result.OutputFile, result.SealedSize)

	return nil
}
