package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/housecomp/housing-simulator/internal/calculation"
	"github.com/housecomp/housing-simulator/internal/config"
	"github.com/housecomp/housing-simulator/internal/output"
)

var (
	compareConfigPath string
	compareFormat     string
	compareOutFile    string
	compareLogLevel   string
	compareVerbose    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the three scenario simulations and compare them",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareConfigPath, "config", "c", "housecomp.yaml", "path to the simulation input file")
	compareCmd.Flags().StringVarP(&compareFormat, "output", "o", "console", "output format: console, csv, json")
	compareCmd.Flags().StringVar(&compareOutFile, "out", "", "write the report to a file instead of stdout")
	compareCmd.Flags().StringVar(&compareLogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "include the month-by-month ledger (console format only)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	formatter, err := output.GetFormatterByName(compareFormat)
	if err != nil {
		return err
	}
	if compareVerbose {
		if console, ok := formatter.(output.ConsoleFormatter); ok {
			console.Verbose = true
			formatter = console
		}
	}

	logger, sync, err := newEngineLogger(compareLogLevel)
	if err != nil {
		return err
	}
	defer sync()

	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(compareConfigPath)
	if err != nil {
		return err
	}

	engine := calculation.NewSimulationEngine()
	engine.SetLogger(logger)

	result, err := engine.RunAll(context.Background(), input)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if compareOutFile != "" {
		if err := os.WriteFile(compareOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", compareOutFile, err)
		}
		fmt.Printf("Report written to %s\n", compareOutFile)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
