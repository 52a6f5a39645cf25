package cmd

import (
	"flag"
	"fmt"
	"os"

	"sloth-encode/src/operations"
)

// CheckCommand handles the check subcommand
func CheckCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	var (
		inputFile = fs.String("input", "", "Proof file to inspect (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check --input FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInspect a proof file and display its metadata\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s check --input proof.bin\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inputFile == "" {
		fs.Usage()
		return fmt.Errorf("--input is required")
	}

	result, err := operations.CheckFile(operations.CheckOptions{InputFile: *inputFile})
	if err != nil {
		return err
	}

	printCheckResults(result)

	return nil
}

// printCheckResults displays the check results in a formatted way
func printCheckResults(result *operations.CheckResult) {
	fmt.Printf("═══════════════════════════════════════════════════════════════════════════════\n")
	fmt.Printf("                               PROOF METADATA\n")
	fmt.Printf("═══════════════════════════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")

	fmt.Printf("📁 FILE INFORMATION\n")
	fmt.Printf("   File:           %s\n", result.InputFile)
	fmt.Printf("   Total Size:     %d bytes (%.2f KB)\n", result.TotalFileSize, float64(result.TotalFileSize)/1024)
	fmt.Printf("   Format Version: %d\n", result.Version)
	fmt.Printf("\n")

	fmt.Printf("🔒 PERMUTATION PARAMETERS\n")
	fmt.Printf("   Prime Size:     %d bytes\n", result.PrimeSizeBytes)
	fmt.Printf("   Key Hash:       %s\n", result.KeyHashHex)
	fmt.Printf("   Nonce:          %d\n", result.Nonce)
	fmt.Printf("\n")

	fmt.Printf("⏰ ENCODING DEPTH\n")
	fmt.Printf("   Rounds:         %s\n", formatNumber(result.Rounds))
	fmt.Printf("   Estimated Time: %s*\n", result.EstimatedTime)
	fmt.Printf("\n")

	fmt.Printf("───────────────────────────────────────────────────────────────────────────────\n")
	fmt.Printf("* Estimated time is approximate and depends on hardware performance\n")
	fmt.Printf("  Use 'sloth benchmark' to get more accurate estimates for your system\n")
}

// formatNumber formats large numbers with commas for readability
func formatNumber(n uint64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
