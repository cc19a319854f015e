package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cran/noah/internal/config"
	"github.com/cran/noah/internal/format"
	"github.com/cran/noah/internal/printer"
	"github.com/cran/noah/pkg/ark"
)

type generateOptions struct {
	count      int
	alliterate bool
	seed       uint64
	configPath string
	output     string
	stats      bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [value ...]",
		Short: "Assign pseudonyms to the given values",
		Long: `Assign one pseudonym to each given value. Repeated values receive the
same pseudonym; distinct values never share one.

With --count and no values, fresh anonymous keys are generated instead.

Examples:
  # Pseudonymize three values (the two "alice" rows match)
  noah generate alice bob alice

  # Five anonymous alliterating pseudonyms, reproducible draw order
  noah generate --count 5 --alliterate --seed 42

  # Custom word lists, machine-readable output
  noah generate --config words.yml --output jsonl alice bob`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Generate this many anonymous pseudonyms (no values needed)")
	cmd.Flags().BoolVarP(&opts.alliterate, "alliterate", "a", false, "Draw alliterating pseudonyms only (no silent fallback)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible draw order (0 = random)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Word-list configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, table, or jsonl")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print registry statistics after generating")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	values := args
	if len(values) == 0 {
		if opts.count <= 0 {
			return printer.Error(
				"nothing to pseudonymize",
				"Pass input values as arguments, or request anonymous pseudonyms with --count.",
				[]string{
					"noah generate alice bob alice",
					"noah generate --count 5 --alliterate",
				},
			)
		}
		// Anonymous mode: every row gets a fresh, collision-free key.
		values = make([]string, opts.count)
		for i := range values {
			values[i] = uuid.NewString()
		}
	} else if opts.count > 0 {
		return printer.Error(
			"--count cannot be combined with input values",
			"Anonymous generation and value pseudonymization are separate modes.",
			[]string{
				"noah generate alice bob",
				"noah generate --count 5",
			},
		)
	}

	a, err := buildArk(opts)
	if err != nil {
		return err
	}

	names, err := a.PseudonymizeValues(a.DefaultAlliterate(), values)
	if err != nil {
		var exhausted *ark.CapacityExhaustedError
		if errors.As(err, &exhausted) {
			suggestions := []string{
				fmt.Sprintf("Reduce the batch size (requested %d new pseudonyms)", exhausted.Requested),
				"Configure a larger word space with --config",
			}
			if exhausted.Alliterate && exhausted.RemainingFull > exhausted.RemainingAlliteration {
				suggestions = append([]string{
					fmt.Sprintf("Drop --alliterate: %d combinations remain in the full space", exhausted.RemainingFull),
				}, suggestions...)
			}
			return printer.Error("name space exhausted", err.Error(), suggestions)
		}
		return err
	}

	entries := make([]format.Entry, len(names))
	for i, name := range names {
		key := ""
		if len(args) > 0 {
			key = values[i]
		}
		entries[i] = format.Entry{Key: key, Pseudonym: name, Alliteration: ark.IsAlliteration(name)}
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case "text":
		if err := format.Text(out, entries); err != nil {
			return err
		}
	case "table":
		format.Table(out, entries)
	case "jsonl":
		if err := format.JSONL(out, entries); err != nil {
			return err
		}
	default:
		return printer.Error(
			fmt.Sprintf("unknown output format '%s'", opts.output),
			"Supported formats: text, table, jsonl.",
			nil,
		)
	}

	if opts.stats {
		printer.Summary("registered keys", a.Size())
		printer.Summary("alliterations", a.AlliterationCount())
		printer.Summary("remaining", a.Remaining())
		printer.Summary("remaining alliterations", a.RemainingAlliterations())
	}
	return nil
}

// buildArk assembles the engine from generate/words flags.
func buildArk(opts *generateOptions) (*ark.Ark, error) {
	arkOpts := []ark.Option{ark.WithAlliteration(opts.alliterate)}
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return nil, printer.Error("invalid word-list configuration", err.Error(), nil)
		}
		arkOpts = append(arkOpts, ark.WithCategories(cfg.ToCategories()))
	}
	if opts.seed != 0 {
		arkOpts = append(arkOpts, ark.WithSeed(opts.seed))
	}

	a, err := ark.New(arkOpts...)
	if err != nil {
		return nil, printer.Error("invalid word space", err.Error(), nil)
	}
	return a, nil
}
