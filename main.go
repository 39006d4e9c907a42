package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seq_modeller_go/benchmark"
	"seq_modeller_go/config"
	"seq_modeller_go/logger"
	"seq_modeller_go/tools/sanity_check"
	"seq_modeller_go/tools/seq_modeller"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Seq Modeller - Custom Help Menu
Usage:
  seq_modeller <tool> [options]

Tools:
  seq_modeller		Generate synthetic FASTA batches from a JSON configuration
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Logs computational resource usage and
			pertinent operating system information

Environment (.env is read when present):
  SEQ_MODELLER_SEED	Seed used when -seed is not given
  SEQ_MODELLER_OUT_DIR	Directory for relative output paths
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Seq Modeller - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tSeq Modeller:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tSequence Generator:\t%s\n", config.Seq_Modeller)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	if len(os.Args) < 3 {
		for _, arg := range os.Args[1:] {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env found, using local environment")
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "seq_modeller", "generate":
			seq_modeller.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			logger.Error("Unknown tool", zap.String("tool", toolName))
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("seq_modeller %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
