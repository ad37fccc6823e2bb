package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fcpgen",
		Short: "Free-choice two-armed-bandit trial sequence generator",
		Long: `fcpgen generates the complete trial list of a free-choice bandit session.

Each session interleaves easy and hard context pairs over randomly sized
segments, balances bonus offers inside factorial blocks, and pre-draws every
arm outcome so a presentation layer can replay the session verbatim.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (missing file means defaults)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
