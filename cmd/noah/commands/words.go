package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cran/noah/internal/config"
	"github.com/cran/noah/internal/printer"
	"github.com/cran/noah/pkg/ark"
)

func newWordsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the configured word space and its capacity",
		Long: `Show the configured name-part categories, their sizes, the total number
of pseudonym combinations, and how many of them alliterate.

Examples:
  # Inspect the built-in adjective × animal space
  noah words

  # Inspect a custom word space
  noah words --config words.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Word-list configuration file (YAML)")
	return cmd
}

func runWords(cmd *cobra.Command, configPath string) error {
	space := ark.DefaultNameSpace()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return printer.Error("invalid word-list configuration", err.Error(), nil)
		}
		space, err = ark.NewNameSpace(cfg.ToCategories())
		if err != nil {
			return printer.Error("invalid word space", err.Error(), nil)
		}
	}

	out := cmd.OutOrStdout()
	for _, c := range space.Categories() {
		fmt.Fprintf(out, "%-16s %d words (%s, %s, ...)\n", c.Name, len(c.Words), c.Words[0], c.Words[len(c.Words)-1])
	}

	alliterations := len(ark.FindAlliterations(space, ark.NewCodec(space)))
	fmt.Fprintf(out, "\n%-16s %d\n", "combinations", space.Total())
	fmt.Fprintf(out, "%-16s %d\n", "alliterations", alliterations)
	return nil
}
