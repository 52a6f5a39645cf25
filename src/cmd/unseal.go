package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"sloth-encode/src/operations"
)

// UnsealCommand handles the unseal subcommand
func UnsealCommand(args []string) error {
	fs := flag.NewFlagSet("unseal", flag.ExitOnError)

	var (
		inputFile  = fs.String("input", "", "Sealed file to open (required)")
		outputFile = fs.String("output", "", "Output file (default: removes .sealed extension)")
		keyInput   = fs.String("key", "", "Passphrase or @file:path (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s unseal --input FILE --key KEY [--output FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDecrypt a file previously sealed with 'sloth seal'\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s unseal --input piece.bin.sealed --key \"passphrase\"\n", os.Args[0])
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
		if strings.HasSuffix(*inputFile, ".sealed") {
			*outputFile = strings.TrimSuffix(*inputFile, ".sealed")
		} else {
			*outputFile = *inputFile + ".unsealed"
		}
	}

	result, err := operations.UnsealFile(operations.UnsealOptions{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
		KeyInput:   *keyInput,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Unsealed %s -> %s (%d bytes)\n", result.InputFile, result.OutputFile, result.PlaintextSize)

	return nil
}
