package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "housecomp",
	Short: "Compare buying, renting and saving-to-buy a home",
	Long: `housecomp projects, month by month, the financial outcome of three
strategies for acquiring a home: buy now with a mortgage, rent and invest
the difference, or keep investing until able to buy outright.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
