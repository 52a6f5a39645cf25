package main

import (
	"fmt"
	"os"

	"sloth-encode/src/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "encode":
		err = cmd.EncodeCommand(args)
	case "verify":
		err = cmd.VerifyCommand(args)
	case "benchmark":
		err = cmd.BenchmarkCommand(args)
	case "check":
		err = cmd.CheckCommand(args)
	case "seal":
		err = cmd.SealCommand(args)
	case "unseal":
		err = cmd.UnsealCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("sloth-encode - time-asymmetric proof-of-replication encoder\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  encode      Apply the permutation to a genesis piece and write a proof\n")
	fmt.Printf("  verify      Decode a proof and check it against a genesis piece\n")
	fmt.Printf("  check       Inspect a proof file and show metadata\n")
	fmt.Printf("  benchmark   Benchmark forward permutation performance\n")
	fmt.Printf("  seal        Encrypt a local file at rest with a passphrase\n")
	fmt.Printf("  unseal      Decrypt a file sealed with 'seal'\n")
	fmt.Printf("  help        Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s encode --genesis piece.bin --output proof.bin --rounds 100000 --key \"passphrase\"\n", os.Args[0])
	fmt.Printf("  %s verify --proof proof.bin --genesis piece.bin\n", os.Args[0])
	fmt.Printf("  %s check --input proof.bin\n", os.Args[0])
	fmt.Printf("  %s benchmark\n", os.Args[0])
	fmt.Printf("  %s seal --input piece.bin --key \"passphrase\"\n", os.Args[0])
	fmt.Printf("  %s unseal --input piece.bin.sealed --key \"passphrase\"\n", os.Args[0])
	fmt.Printf("\nFor detailed help on a command, use:\n")
	fmt.Printf("  %s <command> --help\n", os.Args[0])
}
