package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/housecomp/housing-simulator/internal/config"
)

var initOutFile string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example simulation input file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutFile, "out", "o", "housecomp.yaml", "destination file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutFile); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", initOutFile)
	}

	data, err := yaml.Marshal(config.CreateExampleInput())
	if err != nil {
		return err
	}

	if err := os.WriteFile(initOutFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOutFile, err)
	}

	fmt.Printf("Example configuration written to %s\n", initOutFile)
	return nil
}
