package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noah",
	Short: "Noah - stable human-readable pseudonyms",
	Long: `Noah assigns stable, human-readable pseudonyms ("Big Bear", "Quiet Quail")
to arbitrary input values.

The same input always maps to the same pseudonym, no pseudonym is ever
issued twice within a run, and pseudonyms are drawn from a finite
combinatorial word space in shuffled order — optionally restricted to
alliterating combinations.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newWordsCmd())
}
