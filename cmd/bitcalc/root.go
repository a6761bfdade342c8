package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	// base selects the operand and result base (2 or 10).
	base int
	// verbose enables debug logging of parsed operands.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bitcalc",
	Short: "Arbitrary-precision unsigned integer calculator",
	Long: `bitcalc performs arbitrary-precision unsigned integer arithmetic.

Operands and results are binary digit strings by default, most significant
digit first; pass --base 10 to work in decimal instead.

Examples:
  bitcalc add 10010101 10010101
  bitcalc mul 11000 1001
  bitcalc div --base 10 24 9`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&base, "base", "b", 2, "operand and result base (2 or 10)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(cmpCmd)
}

func execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
